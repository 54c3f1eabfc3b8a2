package config

import (
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Config holds the application configuration populated from environment
// variables at startup. The Instagram credentials and the admin secret are
// deliberately NOT part of this struct: they are resolved from the
// environment on every request (see Credentials, AdminSecret), so rotating
// them does not require a restart.
type Config struct {
	App AppConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Berserk Tattoos API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}
	return cfg, nil
}

// DefaultHandle is the studio's own Instagram account, used when a feed
// request does not name a handle.
const DefaultHandle = "berserk_tattoos"

var handleKeyPattern = regexp.MustCompile(`[^A-Z0-9]+`)

// handleKey derives the environment-variable fragment for a handle:
// uppercased, with runs of non-alphanumerics collapsed to "_".
// "ben_whiteraven" -> "BEN_WHITERAVEN".
func handleKey(handle string) string {
	return handleKeyPattern.ReplaceAllString(strings.ToUpper(handle), "_")
}

// Credentials resolves the Instagram Graph API credential pair for a handle,
// read from the environment at call time. Per-handle variables
// (INSTAGRAM_<KEY>_USER_ID / INSTAGRAM_<KEY>_ACCESS_TOKEN) take precedence
// over the shared INSTAGRAM_USER_ID / INSTAGRAM_ACCESS_TOKEN pair.
// ok is false when either half of the pair is missing.
func Credentials(handle string) (userID, accessToken string, ok bool) {
	key := handleKey(handle)
	userID = os.Getenv("INSTAGRAM_" + key + "_USER_ID")
	if userID == "" {
		userID = os.Getenv("INSTAGRAM_USER_ID")
	}
	accessToken = os.Getenv("INSTAGRAM_" + key + "_ACCESS_TOKEN")
	if accessToken == "" {
		accessToken = os.Getenv("INSTAGRAM_ACCESS_TOKEN")
	}
	return userID, accessToken, userID != "" && accessToken != ""
}

// FeedLimit returns the default item count for feed reads (INSTAGRAM_LIMIT,
// falling back to 8).
func FeedLimit() int {
	return getEnvInt("INSTAGRAM_LIMIT", 8)
}

// AdminSecret returns the shared secret guarding the admin endpoints, read
// at call time. Empty means admin access is disabled entirely.
func AdminSecret() string {
	return os.Getenv("ADMIN_SECRET")
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
