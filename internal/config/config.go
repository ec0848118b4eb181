package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Code store backends
const (
	StoreBackendFile   = "file"
	StoreBackendSQLite = "sqlite"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string

	// Domain is the externally visible base URL used to build the payment
	// provider's success and cancel redirects.
	Domain string

	// StripeSecretKey may be empty: the app still boots and checkout
	// requests fail with a provider error instead.
	StripeSecretKey string

	// SourceDocument is the .docx the archetype narratives are extracted
	// from at startup.
	SourceDocument string

	// RegistryFiles is the priority-ordered candidate list for the
	// trait-code to archetype-name registry.
	RegistryFiles []string

	CodeStoreBackend string
	CodeStorePath    string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
		Environment:      getEnv("ENVIRONMENT", "dev"),
		Version:          getEnv("VERSION", "dev"),
		Domain:           getEnv("DOMAIN", "http://localhost:8080"),
		StripeSecretKey:  getEnv("STRIPE_SECRET_KEY", ""),
		SourceDocument:   getEnv("SOURCE_DOCX", "morrowland 243.docx"),
		RegistryFiles:    getEnvAsSlice("REGISTRY_FILES", []string{"archetypes_full.json", "archetypes.json"}),
		CodeStoreBackend: getEnv("CODE_STORE_BACKEND", StoreBackendFile),
	}

	port, err := getEnvAsInt("PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	switch cfg.CodeStoreBackend {
	case StoreBackendFile:
		cfg.CodeStorePath = getEnv("CODE_STORE_PATH", "free_codes.json")
	case StoreBackendSQLite:
		cfg.CodeStorePath = getEnv("CODE_STORE_PATH", "free_codes.db")
	default:
		return nil, fmt.Errorf("invalid CODE_STORE_BACKEND %q: must be %q or %q",
			cfg.CodeStoreBackend, StoreBackendFile, StoreBackendSQLite)
	}

	cfg.Domain = strings.TrimRight(cfg.Domain, "/")

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable or returns a default value
func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

// getEnvAsSlice retrieves a comma-separated environment variable or returns
// a default value
func getEnvAsSlice(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
