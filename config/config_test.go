package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"

	"github.com/cloudx-io/endoscan/marketapi"
)

var configKeys = []string{
	"WFM_AUCTIONS_URL",
	"WFM_LANGUAGE",
	"WFM_PLATFORM",
	"WFM_TIMEOUT_SECONDS",
	"WFM_DETAIL_FILTERS",
}

// clearEnv unsets every config variable for the duration of the test.
// t.Setenv records the original value for restore; the variable is then removed so
// godotenv treats it as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	assert.NoError(t, err)

	check.Equal(t, marketapi.DefaultAuctionsURL, cfg.AuctionsURL)
	check.Equal(t, "en", cfg.Language)
	check.Equal(t, "pc", cfg.Platform)
	check.Equal(t, 30*time.Second, cfg.Timeout)
	check.True(t, cfg.DetailFilters)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("WFM_AUCTIONS_URL", "http://localhost:9000/v1/auctions")
	t.Setenv("WFM_LANGUAGE", "pt")
	t.Setenv("WFM_PLATFORM", "switch")
	t.Setenv("WFM_TIMEOUT_SECONDS", "5")
	t.Setenv("WFM_DETAIL_FILTERS", "false")

	cfg, err := Load()
	assert.NoError(t, err)

	check.Equal(t, "http://localhost:9000/v1/auctions", cfg.AuctionsURL)
	check.Equal(t, "pt", cfg.Language)
	check.Equal(t, "switch", cfg.Platform)
	check.Equal(t, 5*time.Second, cfg.Timeout)
	check.False(t, cfg.DetailFilters)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-integer timeout", "WFM_TIMEOUT_SECONDS", "soon"},
		{"negative timeout", "WFM_TIMEOUT_SECONDS", "-1"},
		{"non-bool filters", "WFM_DETAIL_FILTERS", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			check.Error(t, err)
			check.Nil(t, cfg)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	assert.NoError(t, os.WriteFile(envFile, []byte("WFM_PLATFORM=xbox\nWFM_TIMEOUT_SECONDS=12\n"), 0o600))
	t.Setenv("WFM_LANGUAGE", "de")

	assert.NoError(t, LoadDotEnv(envFile))

	cfg, err := Load()
	assert.NoError(t, err)
	check.Equal(t, "xbox", cfg.Platform)
	check.Equal(t, "de", cfg.Language)
	check.Equal(t, 12*time.Second, cfg.Timeout)
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	check.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}
