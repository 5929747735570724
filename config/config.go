package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the assistant service
type Config struct {
	General   GeneralConfig   `mapstructure:"general"`
	Server    ServerConfig    `mapstructure:"server"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Assistant AssistantConfig `mapstructure:"assistant"`
}

// GeneralConfig contains general application settings
type GeneralConfig struct {
	Debug          bool          `mapstructure:"debug"`
	LogLevel       string        `mapstructure:"log_level"`
	DefaultTimeout time.Duration `mapstructure:"default_timeout"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Address        string        `mapstructure:"address"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	MaxRequestBody string        `mapstructure:"max_request_body"`
}

func (s ServerConfig) Validate() error {
	if strings.TrimSpace(s.Address) == "" {
		return fmt.Errorf("server.address is required")
	}
	return nil
}

// TelemetryConfig contains metrics settings
type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	MetricsPath string `mapstructure:"metrics_path"`
}

func (t TelemetryConfig) Validate() error {
	if t.Enabled && strings.TrimSpace(t.MetricsPath) == "" {
		return fmt.Errorf("telemetry.metrics_path must be set when telemetry is enabled")
	}
	return nil
}

// AssistantConfig contains routing and composition settings
type AssistantConfig struct {
	DefaultMode      string `mapstructure:"default_mode"`
	MaxQueryLength   int    `mapstructure:"max_query_length"`
	MaxHistoryTurns  int    `mapstructure:"max_history_turns"`
	LogRouteDecision bool   `mapstructure:"log_route_decision"`
}

// Normalize applies defaults for unset assistant values.
func (a AssistantConfig) Normalize() AssistantConfig {
	if strings.TrimSpace(a.DefaultMode) == "" {
		a.DefaultMode = "business"
	}
	if a.MaxQueryLength <= 0 {
		a.MaxQueryLength = 4000
	}
	if a.MaxHistoryTurns <= 0 {
		a.MaxHistoryTurns = 20
	}
	return a
}

func (a AssistantConfig) Validate() error {
	switch a.DefaultMode {
	case "business", "education", "instructor":
		return nil
	}
	return fmt.Errorf("assistant.default_mode must be business, education or instructor")
}

// LoadConfig loads config from file. An empty path searches the usual
// locations and falls back to defaults when no file exists; an explicit path
// that cannot be read is fatal.
func LoadConfig(path string) *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.SetDefault("general.log_level", "info")
	viper.SetDefault("general.default_timeout", "30s")
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("server.read_timeout", "15s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("telemetry.enabled", true)
	viper.SetDefault("telemetry.metrics_path", "/metrics")
	viper.SetDefault("assistant.default_mode", "business")
	viper.SetDefault("assistant.log_route_decision", true)

	if path == "" {
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		exe, _ := os.Executable()
		exeDir := filepath.Dir(exe)
		viper.AddConfigPath(exeDir)
		viper.AddConfigPath(filepath.Join(exeDir, ".."))
		viper.AddConfigPath(filepath.Join(exeDir, "..", "config"))
	} else {
		viper.SetConfigFile(path)
	}

	viper.SetEnvPrefix("MARKETPULSE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}
	config.Assistant = config.Assistant.Normalize()

	if err := config.Server.Validate(); err != nil {
		panic(err)
	}
	if err := config.Telemetry.Validate(); err != nil {
		panic(err)
	}
	if err := config.Assistant.Validate(); err != nil {
		panic(err)
	}
	return &config
}
