package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"micattix/internal/config"
	"micattix/internal/game"
)

// CatalogHandler serves the fixed piece composition per board size.
type CatalogHandler struct {
	cfg *config.Config
}

func NewCatalogHandler(cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{cfg: cfg}
}

// GetCatalogHandler returns the piece multiset a round deals
// @Summary Get piece catalog
// @Description Returns the pieces dealt onto a board of the given size
// @Tags Config
// @Produce json
// @Param size query string false "Board size (small or large)"
// @Success 200 {object} map[string]interface{}
// @Router /catalog [get]
func (h *CatalogHandler) GetCatalogHandler(c *gin.Context) {
	size := game.BoardSize(c.Query("size"))
	if size == "" {
		size = h.cfg.DefaultSize
	}
	if !size.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "size must be small or large"})
		return
	}
	rows, cols := size.Dimensions()
	c.JSON(http.StatusOK, gin.H{
		"size":   size,
		"cells":  rows * cols,
		"pieces": game.Catalog(size),
	})
}
