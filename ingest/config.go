// Package ingest adapts external bar sources — Alpaca's REST history
// endpoint and its live websocket feed — into the plain
// timeseries.OHLCV values the core module consumes. Nothing in the
// core packages imports this one: ingest sits entirely on the host
// side of the boundary described by the engine's external interfaces.
package ingest

import (
	"fmt"
	"log"
	"os"
)

// Config holds the Alpaca credentials and endpoint read from the
// environment, the same three variables a strategy runner reads before
// handing them to a broker client.
type Config struct {
	APIKey    string
	APISecret string
	BaseURL   string
}

const defaultBaseURL = "https://paper-api.alpaca.markets"

// LoadConfig reads APCA_API_KEY_ID, APCA_API_SECRET_KEY, and
// APCA_API_BASE_URL from the environment, defaulting the base URL to
// Alpaca's paper-trading endpoint when unset.
func LoadConfig() (Config, error) {
	cfg := Config{
		APIKey:    os.Getenv("APCA_API_KEY_ID"),
		APISecret: os.Getenv("APCA_API_SECRET_KEY"),
		BaseURL:   os.Getenv("APCA_API_BASE_URL"),
	}
	if cfg.APIKey == "" || cfg.APISecret == "" {
		return Config{}, fmt.Errorf("ingest: missing API credentials in environment")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return cfg, nil
}

func newLogger(tag string) *log.Logger {
	return log.New(log.Writer(), fmt.Sprintf("[%s] ", tag), log.LstdFlags)
}
