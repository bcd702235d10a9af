package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Paraphrase backend providers
const (
	ProviderNone   = "none"
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Paraphrase ParaphraseConfig
	OpenAI     OpenAIConfig
	Ollama     OllamaConfig
	Output     OutputConfig
	Cache      CacheConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ParaphraseConfig holds paraphrase-pass configuration. Provider selects
// the text-generation backend; "none" disables the pass entirely.
type ParaphraseConfig struct {
	Provider    string        `mapstructure:"provider"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// OpenAIConfig holds OpenAI-compatible backend configuration
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// OllamaConfig holds local Ollama backend configuration
type OllamaConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// OutputConfig holds artifact output configuration
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// CacheConfig holds paraphrase-cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/glowpage/")

	// Environment variable settings
	v.SetEnvPrefix("GLOWPAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Paraphrase defaults: deterministic mode unless a provider is chosen
	v.SetDefault("paraphrase.provider", ProviderNone)
	v.SetDefault("paraphrase.temperature", 0.2)
	v.SetDefault("paraphrase.max_tokens", 256)
	v.SetDefault("paraphrase.timeout", "30s")

	// Backend defaults. The empty api_key default registers the key so the
	// GLOWPAGE_OPENAI_API_KEY environment variable is picked up.
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.base_url", "https://api.openai.com")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("ollama.base_url", "http://localhost:11434")
	v.SetDefault("ollama.model", "llama3:8b")

	// Output defaults
	v.SetDefault("output.dir", "outputs")

	// Cache defaults
	v.SetDefault("cache.ttl", "24h")
}

// validate validates the configuration
func validate(config *Config) error {
	switch config.Paraphrase.Provider {
	case ProviderNone, ProviderOllama:
	case ProviderOpenAI:
		if config.OpenAI.APIKey == "" {
			return fmt.Errorf("OpenAI API key is required when paraphrase provider is %q (set GLOWPAGE_OPENAI_API_KEY)", ProviderOpenAI)
		}
	default:
		return fmt.Errorf("paraphrase provider must be %q, %q, or %q, got: %s",
			ProviderNone, ProviderOpenAI, ProviderOllama, config.Paraphrase.Provider)
	}

	if config.Output.Dir == "" {
		return fmt.Errorf("output directory must not be empty")
	}

	return nil
}
