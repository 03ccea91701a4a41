package config

import (
	"os"
	"strconv"

	"micattix/internal/game"

	"github.com/joho/godotenv"
)

// Config carries the server settings. Board size and mode are the defaults
// applied when a create-room request leaves them out.
type Config struct {
	HTTPAddr string

	DefaultSize game.BoardSize
	DefaultMode game.GameMode

	LogLevel string
	LogJSON  bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// Load reads the environment, with a .env file as fallback source.
func Load() *Config {
	_ = godotenv.Load()

	size := game.BoardSize(getenv("BOARD_SIZE", string(game.SizeSmall)))
	if !size.Valid() {
		size = game.SizeSmall
	}
	mode := game.GameMode(getenv("GAME_MODE", string(game.ModeTwoPlayer)))
	if !mode.Valid() {
		mode = game.ModeTwoPlayer
	}

	return &Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		DefaultSize: size,
		DefaultMode: mode,
		LogLevel:    getenv("LOG_LEVEL", "info"),
		LogJSON:     getenvBool("LOG_JSON", false),
	}
}
