package snapshot

import (
	"fmt"
	"strings"
	"time"

	"github.com/promptlab-io/labhub/internal/config"
)

type Config struct {
	PostgresURL string
	APIBaseURL  string
	APIToken    string
	Mode        string // FULL, SESSIONS, or PRUNE
	FetchMax    int
	AutoMigrate bool
	CallTimeout time.Duration
}

func LoadConfig() (Config, error) {
	cfg := Config{
		PostgresURL: config.PostgresURL(),
		APIBaseURL:  config.APIBaseURL(),
		APIToken:    config.APIToken(),
		Mode:        strings.ToUpper(config.SnapshotMode()),
		FetchMax:    config.SnapshotFetchMax(),
		AutoMigrate: config.AutoMigrate(),
	}

	timeout, err := parseDuration(config.APICallTimeout(), 30*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("invalid api_call_timeout: %w", err)
	}
	cfg.CallTimeout = timeout

	return cfg, nil
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, err
	}
	return d, nil
}
