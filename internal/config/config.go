package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Values are read once at startup from the environment (and an optional .env file)
// and never change afterwards.
type Config struct {
	Server    ServerConfig
	Static    StaticConfig
	CORS      CORSConfig
	Metrics   MetricsConfig
	LogLevel  string
	LogFormat string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// StaticConfig locates the entry file and the public asset directory.
// Empty paths select the assets embedded in the binary.
type StaticConfig struct {
	PublicDir   string
	EntryFile   string
	SPAFallback bool // serve the entry file when no static asset matches
}

type CORSConfig struct {
	AllowedOrigins []string
}

type MetricsConfig struct {
	Enabled bool
}

var defaults = map[string]any{
	"PORT":                 "3000",
	"HOST":                 "0.0.0.0",
	"READ_TIMEOUT":         15,
	"WRITE_TIMEOUT":        15,
	"SHUTDOWN_TIMEOUT":     30,
	"PUBLIC_DIR":           "",
	"ENTRY_FILE":           "",
	"SPA_FALLBACK":         false,
	"METRICS_ENABLED":      true,
	"CORS_ALLOWED_ORIGINS": "*",
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "text",
}

// Load reads configuration from environment variables and ./.env if present
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom reads configuration from environment variables, layered over the
// given env file. A missing file is not an error; an empty path skips it.
func LoadFrom(envFile string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetString("PORT"),
			Host:            v.GetString("HOST"),
			ReadTimeout:     v.GetInt("READ_TIMEOUT"),
			WriteTimeout:    v.GetInt("WRITE_TIMEOUT"),
			ShutdownTimeout: v.GetInt("SHUTDOWN_TIMEOUT"),
		},
		Static: StaticConfig{
			PublicDir:   v.GetString("PUBLIC_DIR"),
			EntryFile:   v.GetString("ENTRY_FILE"),
			SPAFallback: v.GetBool("SPA_FALLBACK"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
		LogLevel:  strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat: strings.ToLower(v.GetString("LOG_FORMAT")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid PORT: %q", c.Server.Port)
	}

	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log format: %s (must be text or json)", c.LogFormat)
	}

	if len(c.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one CORS origin must be configured")
	}

	return nil
}

// Addr returns the host:port the server listens on
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
