package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "azmardig/internal/errors"
)

// Config represents the complete application configuration.
type Config struct {
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// PathsConfig names the three input files the tool reads.
type PathsConfig struct {
	ArtifactsFile string `yaml:"artifacts_file" envconfig:"ARTIFACTS_FILE" default:"artifacts.xlsx" validate:"required"`
	LocationsFile string `yaml:"locations_file" envconfig:"LOCATIONS_FILE" default:"locations.tsv" validate:"required"`
	JournalFile   string `yaml:"journal_file" envconfig:"JOURNAL_FILE" default:"journal.txt" validate:"required"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"stdout" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/azmardig.log"`
}

const configFile = "config.yaml"

// Load builds the configuration from environment variables (AZMAR_ prefix),
// overlays an optional config.yaml, and validates the result.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("AZMAR", &cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, apperrors.NewConfigError("failed to load config from file", err)
		}
		cfg = mergeConfigs(cfg, *fileCfg)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, apperrors.NewConfigError("config validation failed", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration used when Load fails.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			ArtifactsFile: "artifacts.xlsx",
			LocationsFile: "locations.tsv",
			JournalFile:   "journal.txt",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "stdout",
			FilePath: "logs/azmardig.log",
		},
	}
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeConfigs overlays non-empty file values onto the env-derived base.
func mergeConfigs(base, file Config) Config {
	merged := base
	if file.Paths.ArtifactsFile != "" {
		merged.Paths.ArtifactsFile = file.Paths.ArtifactsFile
	}
	if file.Paths.LocationsFile != "" {
		merged.Paths.LocationsFile = file.Paths.LocationsFile
	}
	if file.Paths.JournalFile != "" {
		merged.Paths.JournalFile = file.Paths.JournalFile
	}
	if file.Logging.Level != "" {
		merged.Logging.Level = file.Logging.Level
	}
	if file.Logging.Format != "" {
		merged.Logging.Format = file.Logging.Format
	}
	if file.Logging.Output != "" {
		merged.Logging.Output = file.Logging.Output
	}
	if file.Logging.FilePath != "" {
		merged.Logging.FilePath = file.Logging.FilePath
	}
	return merged
}
