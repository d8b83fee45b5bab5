// Package config reads process configuration once at startup. The result
// is passed explicitly into constructors and never mutated afterwards.
package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the immutable startup configuration.
type Config struct {
	// ListenAddr is where the web front-end listens.
	ListenAddr string
	// APIBaseURL is the board API the front-end consumes.
	APIBaseURL string
	// DataDir holds the session database.
	DataDir string
	// SessionSecret keys session cookie signatures.
	SessionSecret string
	// RedirectOn401 sends unauthenticated visitors of the post list to
	// the auth view. Off, the list just shows the error, for deployments
	// where authentication is optional.
	RedirectOn401 bool
}

// Load reads configuration from the environment, with .env support.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr:    getEnv("BOARDFRONT_ADDR", ":8080"),
		APIBaseURL:    getEnv("BOARDFRONT_API_URL", ""),
		DataDir:       getEnv("BOARDFRONT_DATA_DIR", "data"),
		SessionSecret: getEnv("BOARDFRONT_SESSION_SECRET", ""),
		RedirectOn401: getBool("BOARDFRONT_REDIRECT_ON_401", false),
	}

	if cfg.APIBaseURL == "" {
		return Config{}, errors.New("BOARDFRONT_API_URL is required")
	}
	if cfg.SessionSecret == "" {
		log.Println("BOARDFRONT_SESSION_SECRET is not set; session cookies are signed with the built-in dev secret")
		cfg.SessionSecret = "boardfront-dev-secret"
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}
