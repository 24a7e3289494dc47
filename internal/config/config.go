package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env       string   `mapstructure:"env"`        // current application environment (local, dev, production etc)
	OutputDir string   `mapstructure:"output_dir"` // root directory for generated CSV files
	Curricula []string `mapstructure:"curricula"`  // curricula to generate, in order
	Workers   int      `mapstructure:"workers"`    // subtopics built concurrently
	DryRun    bool     `mapstructure:"dry_run"`    // build and validate only, keep banks in memory
	Schedule  string   `mapstructure:"schedule"`   // optional cron expression for repeated runs
	DB        DB       `mapstructure:"database"`   // database configuration section
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Enabled reports whether a database connection string is configured.
func (db DB) Enabled() bool {
	return db.URL != ""
}

// Load reads .env, the optional config file and environment variables.
// Every key has a default, so an empty environment is a valid configuration.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("output_dir", "assessments")
	v.SetDefault("curricula", []string{"kindergarten", "grade1"})
	v.SetDefault("workers", 4)
	v.SetDefault("dry_run", false)
	v.SetDefault("schedule", "")
	v.SetDefault("database.max_connections", 4)
	v.SetDefault("database.max_conn_lifetime", "30s")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.Curricula = splitList(cfg.Curricula)
	cfg.DB.URL = v.GetString("database_url")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Curricula) == 0 {
		return fmt.Errorf("%w: no curricula selected", ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	if strings.TrimSpace(c.OutputDir) == "" && !c.DryRun {
		return fmt.Errorf("%w: output_dir is empty", ErrInvalidConfig)
	}
	return nil
}

// splitList accepts both YAML lists and comma-separated environment values.
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
