package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	YouTube YouTubeConfig `yaml:"youtube"`
	AI      AIConfig      `yaml:"ai"`
}

type ServerConfig struct {
	Port int `yaml:"port" env:"PORT"`
}

type YouTubeConfig struct {
	APIKey     string `yaml:"api_key" env:"YOUTUBE_API_KEY"`
	Region     string `yaml:"region"`
	MaxResults int64  `yaml:"max_results"`
}

type AIConfig struct {
	GeminiAPIKey string `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	Model        string `yaml:"model"`
}

// Load reads configuration once at startup. A missing config file is fine
// (env-only boot); a present but unparsable one is not. Missing API keys do
// not fail startup: the analyze handler surfaces them as a configuration
// error per request so the process can boot in degraded mode.
func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	var cfg Config
	data, err := os.ReadFile(configFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
	}

	if cfg.YouTube.APIKey == "" {
		cfg.YouTube.APIKey = os.Getenv("YOUTUBE_API_KEY")
	}
	if cfg.AI.GeminiAPIKey == "" {
		cfg.AI.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Server.Port == 0 {
		if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
			cfg.Server.Port = port
		}
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.YouTube.Region == "" {
		cfg.YouTube.Region = "US"
	}
	if cfg.YouTube.MaxResults == 0 {
		cfg.YouTube.MaxResults = 50
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = "gemini-2.5-flash"
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d is out of range", c.Server.Port)
	}
	if c.YouTube.MaxResults < 1 || c.YouTube.MaxResults > 50 {
		return fmt.Errorf("youtube max_results must be between 1 and 50, got %d", c.YouTube.MaxResults)
	}
	return nil
}
