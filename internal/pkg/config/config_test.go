package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/vaxtrack/internal/pkg/config"
	"github.com/ammerola/vaxtrack/test/helpers"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg, err := config.Load(helpers.TestLogger(), viper.New())
	require.NoError(t, err)

	assert.Equal(t, "vaxtrack", cfg.App.Name)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "text", cfg.App.LogFormat)
	assert.Equal(t, 1000, cfg.Registry.MaxBatches)
	assert.False(t, cfg.ExportEnabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("REGISTRY_MAX_BATCHES", "0")
	t.Setenv("EXPORT_PATH", "/tmp/report.xlsx")

	cfg, err := config.Load(helpers.TestLogger(), viper.New())
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "json", cfg.App.LogFormat)
	assert.Equal(t, 0, cfg.Registry.MaxBatches)
	assert.True(t, cfg.ExportEnabled())
	assert.Equal(t, "/tmp/report.xlsx", cfg.Export.Path)
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("REGISTRY_MAX_BATCHES", "5")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("max-batches", 0, "")
	require.NoError(t, flags.Parse([]string{"--max-batches=7"}))

	v := viper.New()
	require.NoError(t, v.BindPFlag(config.KeyRegistryMaxBatches, flags.Lookup("max-batches")))

	cfg, err := config.Load(helpers.TestLogger(), v)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Registry.MaxBatches)
}

func TestLoad_DotEnvOnlyInDevelopment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("EXPORT_PATH=dotenv.xlsx\n"), 0o600))
	t.Chdir(dir)

	tests := []struct {
		env      string
		wantPath string
	}{
		{env: "test", wantPath: ""},
		{env: "production", wantPath: ""},
		{env: "local", wantPath: "dotenv.xlsx"},
		{env: "development", wantPath: "dotenv.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv("APP_ENV", tt.env)
			t.Setenv("LOG_FORMAT", "json")
			t.Cleanup(func() { _ = os.Unsetenv("EXPORT_PATH") })

			cfg, err := config.Load(helpers.TestLogger(), viper.New())
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, cfg.Export.Path)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			App: config.AppConfig{
				Name:        "vaxtrack",
				Environment: "development",
				LogLevel:    "info",
				LogFormat:   "text",
			},
			Registry: config.RegistryConfig{MaxBatches: 1000},
		}
	}

	tests := []struct {
		name     string
		mutate   func(*config.Config)
		errorMsg string
	}{
		{name: "valid_config", mutate: func(c *config.Config) {}},
		{
			name:     "missing_app_name",
			mutate:   func(c *config.Config) { c.App.Name = " " },
			errorMsg: "missing required configuration: App.Name",
		},
		{
			name:     "unknown_log_level",
			mutate:   func(c *config.Config) { c.App.LogLevel = "verbose" },
			errorMsg: "unknown log level",
		},
		{
			name:     "unknown_log_format",
			mutate:   func(c *config.Config) { c.App.LogFormat = "xml" },
			errorMsg: "log format must be json or text",
		},
		{
			name:     "negative_max_batches",
			mutate:   func(c *config.Config) { c.Registry.MaxBatches = -1 },
			errorMsg: "must not be negative",
		},
		{
			name:     "export_path_not_xlsx",
			mutate:   func(c *config.Config) { c.Export.Path = "report.csv" },
			errorMsg: "must end in .xlsx",
		},
		{
			name: "production_requires_json_logs",
			mutate: func(c *config.Config) {
				c.App.Environment = "production"
			},
			errorMsg: "json log format must be used in production",
		},
		{
			name: "production_with_json_logs",
			mutate: func(c *config.Config) {
				c.App.Environment = "production"
				c.App.LogFormat = "json"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.errorMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}
