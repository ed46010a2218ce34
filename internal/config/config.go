package config

import (
	"os"
	"strconv"

	"extproc/domain/extension"
	"extproc/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Columns extension.ColumnConfig
	Output  OutputConfig
	Adjust  AdjustConfig
}

// OutputConfig holds file output settings
type OutputConfig struct {
	Dir string
}

// AdjustConfig holds date normalization settings
type AdjustConfig struct {
	ToSunday bool
}

// Load reads configuration from environment variables. Unset variables fall
// back to the MS Forms defaults, so a bare environment is valid.
func Load() (*Config, error) {
	defaults := extension.DefaultColumnConfig()

	config := &Config{
		Columns: extension.ColumnConfig{
			Email:      getEnvOrDefault("EXT_EMAIL_COLUMN", defaults.Email),
			Name:       getEnvOrDefault("EXT_NAME_COLUMN", defaults.Name),
			Assignment: getEnvOrDefault("EXT_ASSIGNMENT_COLUMN", defaults.Assignment),
			Date:       getEnvOrDefault("EXT_DATE_COLUMN", defaults.Date),
		},
		Output: OutputConfig{
			Dir: getEnvOrDefault("EXT_OUTPUT_DIR", "./extensions_output"),
		},
		Adjust: AdjustConfig{
			ToSunday: getEnvBoolOrDefault("EXT_ADJUST_TO_SUNDAY", true),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Columns.Email == "" {
		return errors.ConfigInvalid("email column name is required")
	}
	if config.Columns.Name == "" {
		return errors.ConfigInvalid("name column name is required")
	}
	if config.Columns.Assignment == "" {
		return errors.ConfigInvalid("assignment column name is required")
	}
	if config.Columns.Date == "" {
		return errors.ConfigInvalid("date column name is required")
	}
	if config.Output.Dir == "" {
		return errors.ConfigInvalid("output directory is required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
