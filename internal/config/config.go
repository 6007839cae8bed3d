package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"ncschooldata/pkg/contracts/domain"
)

// Config represents the complete application configuration.
type Config struct {
	Years   YearsConfig   `yaml:"years" envconfig:"YEARS"`
	Fetch   FetchConfig   `yaml:"fetch" envconfig:"FETCH"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
}

// YearsConfig bounds the school years the pipeline accepts. Years are the
// end year of the school year: 2024 means 2023-24.
type YearsConfig struct {
	Min int `yaml:"min" envconfig:"MIN" default:"2006"`
	Max int `yaml:"max" envconfig:"MAX" default:"2025"`
}

// FetchConfig controls the fetch service.
type FetchConfig struct {
	// Proficiency selects the assessment standard: CCR, GLP, or both.
	Proficiency string `yaml:"proficiency" envconfig:"PROFICIENCY" default:"CCR"`

	// Concurrency caps how many years a range fetch processes at once.
	Concurrency int `yaml:"concurrency" envconfig:"CONCURRENCY" default:"4"`

	// Snapshot writes processed output to the snapshot store after a fetch.
	Snapshot bool `yaml:"snapshot" envconfig:"SNAPSHOT" default:"true"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/ncschooldata.log"`
}

// PathsConfig contains file system paths configuration.
type PathsConfig struct {
	DataDir   string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data"`
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"data/output"`
	CacheDir  string `yaml:"cache_dir" envconfig:"CACHE_DIR" default:"data/cache"`
	LogsDir   string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs"`
}

// Load loads configuration from environment variables and the config file.
// Environment variables (NCSD_* prefix) win over the file, which wins over
// defaults.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("NCSD", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configFile := findConfigFile(); configFile != "" {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = merge(*fileCfg, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
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

// merge fills zero-valued env fields from the file config. Environment
// variables take precedence, so only unset fields fall through.
func merge(fileCfg, envCfg Config) Config {
	if envCfg.Years.Min == 0 {
		envCfg.Years.Min = fileCfg.Years.Min
	}
	if envCfg.Years.Max == 0 {
		envCfg.Years.Max = fileCfg.Years.Max
	}
	if envCfg.Fetch.Proficiency == "" {
		envCfg.Fetch.Proficiency = fileCfg.Fetch.Proficiency
	}
	if envCfg.Fetch.Concurrency == 0 {
		envCfg.Fetch.Concurrency = fileCfg.Fetch.Concurrency
	}
	if envCfg.Logging.Level == "" {
		envCfg.Logging.Level = fileCfg.Logging.Level
	}
	if envCfg.Logging.Format == "" {
		envCfg.Logging.Format = fileCfg.Logging.Format
	}
	if envCfg.Logging.Output == "" {
		envCfg.Logging.Output = fileCfg.Logging.Output
	}
	if envCfg.Logging.FilePath == "" {
		envCfg.Logging.FilePath = fileCfg.Logging.FilePath
	}
	if envCfg.Paths.DataDir == "" {
		envCfg.Paths.DataDir = fileCfg.Paths.DataDir
	}
	if envCfg.Paths.OutputDir == "" {
		envCfg.Paths.OutputDir = fileCfg.Paths.OutputDir
	}
	if envCfg.Paths.CacheDir == "" {
		envCfg.Paths.CacheDir = fileCfg.Paths.CacheDir
	}
	if envCfg.Paths.LogsDir == "" {
		envCfg.Paths.LogsDir = fileCfg.Paths.LogsDir
	}
	return envCfg
}

func (c *Config) validate() error {
	if c.Years.Min <= 0 || c.Years.Max <= 0 {
		return fmt.Errorf("year bounds must be positive, got %d-%d", c.Years.Min, c.Years.Max)
	}
	if c.Years.Min > c.Years.Max {
		return fmt.Errorf("min year %d is after max year %d", c.Years.Min, c.Years.Max)
	}

	switch c.Fetch.Proficiency {
	case domain.StandardCCR, domain.StandardGLP, "both":
	default:
		return fmt.Errorf("invalid proficiency mode: %s", c.Fetch.Proficiency)
	}

	if c.Fetch.Concurrency <= 0 {
		c.Fetch.Concurrency = 1
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		c.Logging.Level = "info"
	}

	if c.Logging.Format != "text" {
		c.Logging.Format = "json"
	}

	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		c.Logging.Output = "console"
	}

	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/ncschooldata.log"
	}

	return nil
}

// findConfigFile returns the first config file found in the common
// locations, or empty when running from env vars alone.
func findConfigFile() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}
	return ""
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Years: YearsConfig{
			Min: 2006,
			Max: 2025,
		},
		Fetch: FetchConfig{
			Proficiency: domain.StandardCCR,
			Concurrency: 4,
			Snapshot:    true,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/ncschooldata.log",
		},
		Paths: PathsConfig{
			DataDir:   "data",
			OutputDir: "data/output",
			CacheDir:  "data/cache",
			LogsDir:   "logs",
		},
	}
}
