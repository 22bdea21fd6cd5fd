// Package config reads the process configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/thucthuc0607-code/SmartFin-2/internal/store"
	"golang.org/x/exp/slices"
)

type Config struct {
	// HTTP Server
	Port   string
	APIURL string

	// Storage
	DataBackend  string
	SQLiteDBPath string
	BadgerDir    string
	UserID       string

	// Syncer
	SyncDebounce     time.Duration
	SyncPollInterval time.Duration

	// Voice classification
	GeminiAPIKey string
	GeminiModel  string
	VoiceTimeout time.Duration
}

func Load() *Config {
	return &Config{
		Port:   getEnv("PORT", "8080"),
		APIURL: getEnv("API_URL", "http://localhost:8080"),

		DataBackend:  getEnv("DATA_BACKEND", string(store.BackendSQLite)),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "data/smartfin.db"),
		BadgerDir:    getEnv("BADGER_DIR", "data/badger"),
		UserID:       getEnv("USER_ID", "user_default"),

		SyncDebounce:     getEnvDuration("SYNC_DEBOUNCE", 1500*time.Millisecond),
		SyncPollInterval: getEnvDuration("SYNC_POLL_INTERVAL", 2*time.Second),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		VoiceTimeout: getEnvDuration("VOICE_TIMEOUT", 20*time.Second),
	}
}

var backends = []string{string(store.BackendSQLite), string(store.BackendBadger), string(store.BackendMemory)}

// Validate checks the complete configuration and reports all problems at once.
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if u, err := url.Parse(c.APIURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid API URL '%s': %v", c.APIURL, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid API URL scheme '%s': must be 'http' or 'https'", u.Scheme))
	}

	if !slices.Contains(backends, c.DataBackend) {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, backends))
	}

	if c.DataBackend == string(store.BackendSQLite) && c.SQLiteDBPath == "" {
		errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
	}

	if c.DataBackend == string(store.BackendBadger) && c.BadgerDir == "" {
		errors = append(errors, "badger directory cannot be empty when using badger backend")
	}

	if strings.TrimSpace(c.UserID) == "" {
		errors = append(errors, "user ID cannot be empty")
	}

	if c.SyncDebounce <= 0 {
		errors = append(errors, fmt.Sprintf("invalid sync debounce %v: must be positive", c.SyncDebounce))
	}

	if c.SyncPollInterval < 10*time.Millisecond {
		errors = append(errors, fmt.Sprintf("invalid sync poll interval %v: must be at least 10ms", c.SyncPollInterval))
	}

	if c.VoiceTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("invalid voice timeout %v: must be positive", c.VoiceTimeout))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// StoreOptions returns the options to open the configured store with.
func (c *Config) StoreOptions() store.Options {
	return store.Options{
		Backend:      store.Backend(c.DataBackend),
		SQLitePath:   c.SQLiteDBPath,
		BadgerDir:    c.BadgerDir,
		PollInterval: c.SyncPollInterval,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
