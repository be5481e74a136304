package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var (
	errInvalidPort         = errors.New("config: invalid PORT number")
	errFetchTimeoutRange   = errors.New("config: FETCH_TIMEOUT_SECONDS must be 1-300")
	errTLSTimeoutRange     = errors.New("config: TLS_CHECK_TIMEOUT_SECONDS must be 1-60")
	errHistoryPathRequired = errors.New("config: HISTORY_DB_PATH must not be empty")
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port                   string
	LogLevel               string
	FetchTimeoutSeconds    int
	TLSCheckTimeoutSeconds int
	HistoryDBPath          string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:                   getEnv("PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "ERROR"),
		FetchTimeoutSeconds:    getEnvAsInt("FETCH_TIMEOUT_SECONDS", 30),
		TLSCheckTimeoutSeconds: getEnvAsInt("TLS_CHECK_TIMEOUT_SECONDS", 10),
		HistoryDBPath:          getEnv("HISTORY_DB_PATH", "diagnosis.db"),
	}

	return cfg, cfg.validate()
}

// FetchTimeout returns the page fetch timeout as a duration.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// TLSCheckTimeout returns the TLS handshake sub-check timeout as a duration.
func (c Config) TLSCheckTimeout() time.Duration {
	return time.Duration(c.TLSCheckTimeoutSeconds) * time.Second
}

func (c Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: %q", errInvalidPort, c.Port)
	}

	if c.FetchTimeoutSeconds < 1 || c.FetchTimeoutSeconds > 300 {
		return fmt.Errorf("%w: got %d", errFetchTimeoutRange, c.FetchTimeoutSeconds)
	}

	if c.TLSCheckTimeoutSeconds < 1 || c.TLSCheckTimeoutSeconds > 60 {
		return fmt.Errorf("%w: got %d", errTLSTimeoutRange, c.TLSCheckTimeoutSeconds)
	}

	if c.HistoryDBPath == "" {
		return errHistoryPathRequired
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}
