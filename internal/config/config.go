package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for Vastra
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Shopping ShoppingConfig `mapstructure:"shopping"`
	Search   SearchConfig   `mapstructure:"search"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	BaseURL string `mapstructure:"base_url"`
}

// DatabaseConfig holds catalog database configuration
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LLMConfig holds LLM provider configuration
type LLMConfig struct {
	Provider string `mapstructure:"provider"`
	BaseURL  string `mapstructure:"base_url"`
	APIKey   string `mapstructure:"api_key"`
	Model    string `mapstructure:"model"`
}

// ShoppingConfig holds shopping index configuration
type ShoppingConfig struct {
	BaseURL      string `mapstructure:"base_url"`
	Country      string `mapstructure:"country"`
	Language     string `mapstructure:"language"`
	Location     string `mapstructure:"location"`
	GoogleDomain string `mapstructure:"google_domain"`
	GL           string `mapstructure:"gl"`
	HL           string `mapstructure:"hl"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// SearchConfig holds search pipeline configuration
type SearchConfig struct {
	UserID          string  `mapstructure:"user_id"`
	DefaultPriceMin float64 `mapstructure:"default_price_min"`
	DefaultPriceMax float64 `mapstructure:"default_price_max"`
}

// Load loads configuration from file and environment
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read config file if specified
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables
	v.SetEnvPrefix("VASTRA")
	v.AutomaticEnv()

	// Read config
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")

	v.SetDefault("database.path", "./data/vastra.db")

	v.SetDefault("llm.provider", "ollama")
	v.SetDefault("llm.base_url", "http://localhost:11434")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "qwen2.5:7b")

	v.SetDefault("shopping.base_url", "https://agent-service-2wpf.onrender.com")
	v.SetDefault("shopping.country", "IN")
	v.SetDefault("shopping.language", "en")
	v.SetDefault("shopping.location", "India")
	v.SetDefault("shopping.google_domain", "google.co.in")
	v.SetDefault("shopping.gl", "in")
	v.SetDefault("shopping.hl", "en")
	v.SetDefault("shopping.timeout_secs", 20)

	v.SetDefault("search.user_id", "user_12345")
	v.SetDefault("search.default_price_min", 500)
	v.SetDefault("search.default_price_max", 5000)
}

// Address returns the server address
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
