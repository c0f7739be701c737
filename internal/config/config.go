// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// defaultLLMBaseURL is Google's OpenAI-compatible Gemini endpoint. Any
// OpenAI-compatible chat completions endpoint may be substituted.
const defaultLLMBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// LLMAPIKey authenticates against the text-generation provider. Required.
	LLMAPIKey string

	// SerperAPIKey authenticates against the Serper.dev search API. Required.
	SerperAPIKey string

	// LLMBaseURL is the OpenAI-compatible chat completions endpoint.
	// Defaults to the Gemini compatibility endpoint.
	LLMBaseURL string

	// LLMModel is the model name requested for every generation.
	// Defaults to "gemini-2.0-flash".
	LLMModel string

	// ProviderTimeout bounds each outbound provider call. Defaults to 60s.
	// The original design blocked unbounded; a bound keeps a stuck provider
	// from hanging a request forever.
	ProviderTimeout time.Duration
}

// Load reads configuration from environment variables and returns a Config.
// A .env file in the working directory is loaded first when present, for
// local development; a missing .env is not an error.
// Returns an error listing any required variables that are not set — the
// server must fail fast at startup rather than mid-session.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		LLMBaseURL:  getEnv("LLM_BASE_URL", defaultLLMBaseURL),
		LLMModel:    getEnv("LLM_MODEL", "gemini-2.0-flash"),
	}

	timeout := getEnv("PROVIDER_TIMEOUT", "60s")
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return Config{}, fmt.Errorf("invalid PROVIDER_TIMEOUT %q: %w", timeout, err)
	}
	cfg.ProviderTimeout = d

	var missing []string

	cfg.LLMAPIKey = os.Getenv("GEMINI_API_KEY")
	if cfg.LLMAPIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}

	cfg.SerperAPIKey = os.Getenv("SERPER_API_KEY")
	if cfg.SerperAPIKey == "" {
		missing = append(missing, "SERPER_API_KEY")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
