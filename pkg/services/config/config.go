package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the application configuration, loaded from an optional YAML file
// with environment variables (BIZLENS_*) taking precedence.
type Config struct {
	ServerHost      string        `mapstructure:"server_host"`
	ServerPort      string        `mapstructure:"server_port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	DBPath string `mapstructure:"db_path"`

	AnthropicAPIKey  string        `mapstructure:"anthropic_api_key"`
	NarrativeModel   string        `mapstructure:"narrative_model"`
	NarrativeTimeout time.Duration `mapstructure:"narrative_timeout"`

	BenchmarkOverrides string   `mapstructure:"benchmark_overrides"`
	ProtectedFields    []string `mapstructure:"protected_fields"`
	DetectionThreshold float64  `mapstructure:"detection_threshold"`
}

// Load reads configuration from path (optional) and the environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("server_host", "0.0.0.0")
	v.SetDefault("server_port", "8080")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("db_path", "bizlens.db")
	v.SetDefault("narrative_timeout", 30*time.Second)
	v.SetDefault("detection_threshold", 0.15)

	v.SetEnvPrefix("BIZLENS")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
