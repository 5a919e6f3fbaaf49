// internal/pkg/config/config.go
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Keys shared by the environment, .env files and command-line flags.
const (
	KeyAppEnv             = "app_env"
	KeyAppName            = "app_name"
	KeyAppVersion         = "app_version"
	KeyLogLevel           = "log_level"
	KeyLogFormat          = "log_format"
	KeyRegistryMaxBatches = "registry_max_batches"
	KeyExportPath         = "export_path"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Registry RegistryConfig
	Export   ExportConfig
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Name        string `required:"true"`
	Environment string // development, staging, production
	Version     string
	LogLevel    string
	LogFormat   string // json, text
}

// RegistryConfig bounds the batch registry
type RegistryConfig struct {
	// MaxBatches of 0 leaves the registry unbounded.
	MaxBatches int
}

// ExportConfig controls the workbook written when processing ends
type ExportConfig struct {
	Path string // empty disables the export
}

// Load builds the configuration from v, which may already carry bound flags.
// Precedence: flags, environment, .env (development only), defaults.
func Load(logger *slog.Logger, v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	setDefaults(v)

	// Load .env file in development
	if isDevelopment(v.GetString(KeyAppEnv)) {
		if err := godotenv.Load(); err != nil {
			logger.Debug("no .env file found, using environment variables",
				slog.String("error", err.Error()))
		} else {
			logger.Debug(".env file loaded successfully")
		}
	}

	cfg := &Config{
		App: AppConfig{
			Name:        v.GetString(KeyAppName),
			Environment: v.GetString(KeyAppEnv),
			Version:     v.GetString(KeyAppVersion),
			LogLevel:    strings.ToLower(v.GetString(KeyLogLevel)),
			LogFormat:   strings.ToLower(v.GetString(KeyLogFormat)),
		},
		Registry: RegistryConfig{
			MaxBatches: v.GetInt(KeyRegistryMaxBatches),
		},
		Export: ExportConfig{
			Path: v.GetString(KeyExportPath),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validators := []Validator{&BasicValidator{}}
	if c.IsProduction() {
		validators = append(validators, &ProductionValidator{})
	}

	for _, validator := range validators {
		if err := validator.Validate(c); err != nil {
			return err
		}
	}
	return nil
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// isDevelopment reports whether env loads a local .env file
func isDevelopment(env string) bool {
	return env == "development" || env == "local"
}

// ExportEnabled reports whether a workbook should be written on exit
func (c *Config) ExportEnabled() bool {
	return c.Export.Path != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyAppEnv, "development")
	v.SetDefault(KeyAppName, "vaxtrack")
	v.SetDefault(KeyAppVersion, "dev")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyRegistryMaxBatches, 1000)
	v.SetDefault(KeyExportPath, "")
}
