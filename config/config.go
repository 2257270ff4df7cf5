package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/cloudx-io/endoscan/marketapi"
)

// Config holds the scanner's environment-driven settings.
type Config struct {
	AuctionsURL string
	Language    string
	Platform    string
	Timeout     time.Duration

	// DetailFilters offers the mastery and seller menus; off gives the price-only menu
	DetailFilters bool
}

// LoadDotEnv loads variables from the given .env files (default ".env") without
// overriding ones already set. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	return nil
}

// Load reads the config from the environment.
func Load() (*Config, error) {
	timeoutSeconds, err := getEnvInt("WFM_TIMEOUT_SECONDS", int(marketapi.DefaultTimeout/time.Second))
	if err != nil {
		return nil, err
	}
	if timeoutSeconds < 0 {
		return nil, fmt.Errorf("invalid value for WFM_TIMEOUT_SECONDS: %d (must not be negative)", timeoutSeconds)
	}

	detailFilters, err := getEnvBool("WFM_DETAIL_FILTERS", true)
	if err != nil {
		return nil, err
	}

	return &Config{
		AuctionsURL:   getEnv("WFM_AUCTIONS_URL", marketapi.DefaultAuctionsURL),
		Language:      getEnv("WFM_LANGUAGE", marketapi.DefaultLanguage),
		Platform:      getEnv("WFM_PLATFORM", marketapi.DefaultPlatform),
		Timeout:       time.Duration(timeoutSeconds) * time.Second,
		DetailFilters: detailFilters,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %s (must be a valid integer)", key, value)
	}
	return intValue, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid value for %s: %s (must be true or false)", key, value)
	}
	return boolValue, nil
}
