package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "micattix/internal/api/http"
	"micattix/internal/api/ws"
	"micattix/internal/config"
	"micattix/internal/logger"
	"micattix/internal/room"
	"micattix/internal/store"

	// swagger packages
	_ "micattix/docs"
)

// @title Micattix API
// @version 1.0
// @description REST API for the Micattix number-capture board game (Go + Gin)
// @contact.name Backend Team
// @contact.email backend@micattix.dev
// @BasePath /
func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg)
	hub := ws.NewHub(rm)
	rm.SetBroadcaster(hub)
	r := httpapi.NewRouter(rm, hub, cfg)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	logger.Info("listening", "addr", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}
