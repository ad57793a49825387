package app

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/catalogs/persistence"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/constants"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/errors"
)

// Config holds the application configuration loaded from config files,
// environment variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Library configuration
	DataDir         string
	Storage         string
	Workers         int
	ExportDir       string
	ShutdownTimeout time.Duration

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (handled by cobra)
//  2. Environment variables (LIBRARY_DATA_DIR, LIBRARY_STORAGE, ...)
//  3. .env files
//  4. Config file (~/.library.yaml or ./.library.yaml)
//  5. Defaults
//
// An explicit configFile must exist; the default locations are optional.
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix("library")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("data_dir", constants.DefaultDataDir)
	v.SetDefault("storage", string(persistence.BackendYAML))
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("export_dir", defaultExportDir())
	v.SetDefault("shutdown_timeout", constants.DefaultShutdownTimeout)

	if configFile == "" {
		configFile = v.GetString("config")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".library")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, errors.NewConfigError("config", "reading config file", err)
		}
	}

	config := &Config{
		ConfigFile: v.ConfigFileUsed(),

		DataDir:         v.GetString("data_dir"),
		Storage:         v.GetString("storage"),
		Workers:         v.GetInt("workers"),
		ExportDir:       v.GetString("export_dir"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", v.GetString("log_level")),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the values that cannot be corrected silently.
func (c *Config) Validate() error {
	if _, err := persistence.ParseBackend(c.Storage); err != nil {
		return err
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = constants.DefaultShutdownTimeout
	}
	return nil
}

// UpdateFromFlags updates config values from parsed command flags so that
// flag values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// defaultExportDir returns ~/Downloads when it exists, else the working
// directory.
func defaultExportDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	dir := filepath.Join(home, constants.DefaultExportDirName)
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir
	}
	return "."
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
