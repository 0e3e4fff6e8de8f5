// Package config loads application configuration from defaults, an optional
// YAML file, and environment variables, in that order of precedence
// (environment wins). The declared dataset names live here rather than in
// code so a deployment can point the loader at differently named files.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// envPrefix namespaces the environment variables, e.g.
// RETAILPULSE_DATA_DIR or RETAILPULSE_LOGGING_LEVEL.
const envPrefix = "RETAILPULSE"

// Config is the complete application configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Data    DataConfig    `yaml:"data" envconfig:"DATA"`
}

// LoggingConfig controls the slog setup.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// DataConfig names the dataset source directory and the three dataset files.
type DataConfig struct {
	Dir          string `yaml:"dir" envconfig:"DIR" validate:"required"`
	Households   string `yaml:"households" envconfig:"HOUSEHOLDS" validate:"required"`
	Transactions string `yaml:"transactions" envconfig:"TRANSACTIONS" validate:"required"`
	Products     string `yaml:"products" envconfig:"PRODUCTS" validate:"required"`
}

// Default returns the built-in configuration: console logging at info level
// and the dataset file names the source data ships under.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: "logs/retailpulse.log",
		},
		Data: DataConfig{
			Dir:          "data",
			Households:   "400_households.csv",
			Transactions: "400_transactions.csv",
			Products:     "400_products.csv",
		},
	}
}

// Load builds the configuration from defaults, then the optional config
// file, then environment variables.
func Load() (*Config, error) {
	cfg := Default()

	if path, ok := configFilePath(); ok {
		if err := loadFromFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// configFilePath returns the config file to read: $RETAILPULSE_CONFIG if
// set, otherwise config.yaml when present in the working directory.
func configFilePath() (string, bool) {
	if path := os.Getenv(envPrefix + "_CONFIG"); path != "" {
		return path, true
	}
	if _, err := os.Stat("config.yaml"); err == nil {
		return "config.yaml", true
	}
	return "", false
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
