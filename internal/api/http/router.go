package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"micattix/internal/api/http/middleware"
	"micattix/internal/api/ws"
	"micattix/internal/config"
	"micattix/internal/room"
)

func NewRouter(rm *room.Manager, hub *ws.Hub, cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Metrics())

	// WebSocket for live room updates
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/create-room", CreateRoomHandler(rm))
	r.POST("/join-room", JoinRoomHandler(rm))
	r.GET("/state", StateHandler(rm))

	// --- GAME ENDPOINTS ---
	r.POST("/start-game", StartGameHandler(rm))
	r.POST("/move", MoveHandler(rm))
	r.POST("/next-round", NextRoundHandler(rm))
	r.POST("/end-game", EndGameHandler(rm))
	r.GET("/legal-moves", LegalMovesHandler(rm))

	// --- CONFIG ENDPOINTS ---
	ch := NewCatalogHandler(cfg)
	r.GET("/catalog", ch.GetCatalogHandler)

	// --- OPS ENDPOINTS ---
	r.GET("/healthz", HealthHandler(rm))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
