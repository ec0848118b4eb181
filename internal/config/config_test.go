package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "http://localhost:8080", cfg.Domain)
		assert.Equal(t, StoreBackendFile, cfg.CodeStoreBackend)
		assert.Equal(t, "free_codes.json", cfg.CodeStorePath)
		assert.Equal(t, []string{"archetypes_full.json", "archetypes.json"}, cfg.RegistryFiles)
	})

	t.Run("missing stripe key is not fatal", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Empty(t, cfg.StripeSecretKey)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("PORT", "not-a-port")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("sqlite backend default path", func(t *testing.T) {
		t.Setenv("CODE_STORE_BACKEND", StoreBackendSQLite)
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "free_codes.db", cfg.CodeStorePath)
	})

	t.Run("unknown backend rejected", func(t *testing.T) {
		t.Setenv("CODE_STORE_BACKEND", "redis")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("domain trailing slash trimmed", func(t *testing.T) {
		t.Setenv("DOMAIN", "https://example.com/")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", cfg.Domain)
	})
}

func TestGetEnvAsSlice(t *testing.T) {
	t.Run("splits and trims", func(t *testing.T) {
		t.Setenv("TEST_SLICE_VAR", "a.json, b.json ,c.json")
		got := getEnvAsSlice("TEST_SLICE_VAR", nil)
		assert.Equal(t, []string{"a.json", "b.json", "c.json"}, got)
	})

	t.Run("empty value falls back to default", func(t *testing.T) {
		t.Setenv("TEST_SLICE_VAR", "  ")
		got := getEnvAsSlice("TEST_SLICE_VAR", []string{"fallback.json"})
		assert.Equal(t, []string{"fallback.json"}, got)
	})
}
