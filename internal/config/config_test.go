package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"micattix/internal/game"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("BOARD_SIZE", "")
	t.Setenv("GAME_MODE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_JSON", "")

	cfg := Load()
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, game.SizeSmall, cfg.DefaultSize)
	assert.Equal(t, game.ModeTwoPlayer, cfg.DefaultMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogJSON)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9191")
	t.Setenv("BOARD_SIZE", "large")
	t.Setenv("GAME_MODE", "four_player")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_JSON", "true")

	cfg := Load()
	assert.Equal(t, ":9191", cfg.HTTPAddr)
	assert.Equal(t, game.SizeLarge, cfg.DefaultSize)
	assert.Equal(t, game.ModeFourPlayer, cfg.DefaultMode)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
}

func TestLoadFallsBackOnBadEnums(t *testing.T) {
	t.Setenv("BOARD_SIZE", "enormous")
	t.Setenv("GAME_MODE", "solo")
	t.Setenv("LOG_JSON", "maybe")

	cfg := Load()
	assert.Equal(t, game.SizeSmall, cfg.DefaultSize)
	assert.Equal(t, game.ModeTwoPlayer, cfg.DefaultMode)
	assert.False(t, cfg.LogJSON)
}
