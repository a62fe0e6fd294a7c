package config

import (
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"sportstat/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig  `validate:"required"`
	Session SessionConfig `validate:"required"`
	Data    DataConfig    `validate:"required"`
	Plot    PlotConfig    `validate:"required"`
	Log     LogConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port            string        `validate:"required,numeric"`
	GinMode         string        `validate:"oneof=debug release test"`
	UploadMaxBytes  int64         `validate:"gt=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// SessionConfig holds browser session settings
type SessionConfig struct {
	TTL        time.Duration `validate:"gt=0"`
	CookieName string        `validate:"required"`
}

// DataConfig holds data loading settings
type DataConfig struct {
	File             string  // optional dataset preloaded into new sessions
	CoerceText       bool    // best-effort numeric coercion of textual columns
	NumericThreshold float64 `validate:"gt=0,lte=1"`
}

// PlotConfig holds rendered image sizes in centimetres
type PlotConfig struct {
	WidthCm  float64 `validate:"gt=0"`
	HeightCm float64 `validate:"gt=0"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:  *loadServerConfig(),
		Session: *loadSessionConfig(),
		Data:    *loadDataConfig(),
		Plot:    *loadPlotConfig(),
		Log:     LogConfig{Level: getEnvOrDefault("LOG_LEVEL", "INFO")},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Default returns the configuration used when no environment is set
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			GinMode:         "release",
			UploadMaxBytes:  32 << 20,
			ShutdownTimeout: 10 * time.Second,
		},
		Session: SessionConfig{TTL: 30 * time.Minute, CookieName: "sportstat_session"},
		Data:    DataConfig{CoerceText: true, NumericThreshold: 0.5},
		Plot:    PlotConfig{WidthCm: 16, HeightCm: 10},
		Log:     LogConfig{Level: "INFO"},
	}
}

func loadServerConfig() *ServerConfig {
	d := Default().Server
	return &ServerConfig{
		Port:            getEnvOrDefault("PORT", d.Port),
		GinMode:         getEnvOrDefault("GIN_MODE", d.GinMode),
		UploadMaxBytes:  int64(getEnvIntOrDefault("UPLOAD_MAX_BYTES", int(d.UploadMaxBytes))),
		ShutdownTimeout: getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", d.ShutdownTimeout),
	}
}

func loadSessionConfig() *SessionConfig {
	d := Default().Session
	return &SessionConfig{
		TTL:        getEnvDurationOrDefault("SESSION_TTL", d.TTL),
		CookieName: getEnvOrDefault("SESSION_COOKIE", d.CookieName),
	}
}

func loadDataConfig() *DataConfig {
	d := Default().Data
	return &DataConfig{
		File:             getEnvOrDefault("DATA_FILE", ""),
		CoerceText:       getEnvBoolOrDefault("COERCE_TEXT_COLUMNS", d.CoerceText),
		NumericThreshold: getEnvFloatOrDefault("NUMERIC_THRESHOLD", d.NumericThreshold),
	}
}

func loadPlotConfig() *PlotConfig {
	d := Default().Plot
	return &PlotConfig{
		WidthCm:  getEnvFloatOrDefault("PLOT_WIDTH_CM", d.WidthCm),
		HeightCm: getEnvFloatOrDefault("PLOT_HEIGHT_CM", d.HeightCm),
	}
}

var validate = validator.New()

func validateConfig(config *Config) error {
	if err := validate.Struct(config); err != nil {
		return &errors.AppError{Code: errors.CodeConfigInvalid, Message: "invalid configuration", Cause: err}
	}
	if config.Data.File != "" {
		if _, err := os.Stat(config.Data.File); err != nil {
			return errors.ConfigInvalid("DATA_FILE does not exist: " + config.Data.File)
		}
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

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
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

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
