package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"maildigest-backend/pkg/ai"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	AIProvider  string
	AIModel     string
	AIMaxTokens int
	AITimeout   time.Duration

	AnthropicAPIKey string
	GeminiAPIKey    string
	OllamaBaseURL   string
}

// fileConfig holds non-secret defaults read from CONFIG_FILE.
// Credentials only come from the environment.
type fileConfig struct {
	Port     string `yaml:"port"`
	GinMode  string `yaml:"gin_mode"`
	LogLevel string `yaml:"log_level"`
	AI       struct {
		Provider      string `yaml:"provider"`
		Model         string `yaml:"model"`
		MaxTokens     int    `yaml:"max_tokens"`
		Timeout       string `yaml:"timeout"`
		OllamaBaseURL string `yaml:"ollama_base_url"`
	} `yaml:"ai"`
}

// Load reads configuration from .env (if present), an optional YAML file
// named by CONFIG_FILE, and the process environment, in increasing priority.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	var fc fileConfig
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	timeout := 30 * time.Second
	if fc.AI.Timeout != "" {
		parsed, err := time.ParseDuration(fc.AI.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid ai.timeout %q: %w", fc.AI.Timeout, err)
		}
		timeout = parsed
	}
	if v := os.Getenv("AI_TIMEOUT"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid AI_TIMEOUT %q: %w", v, err)
		}
		timeout = parsed
	}

	maxTokens := ai.DefaultMaxTokens
	if fc.AI.MaxTokens > 0 {
		maxTokens = fc.AI.MaxTokens
	}
	if v := os.Getenv("AI_MAX_TOKENS"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid AI_MAX_TOKENS %q", v)
		}
		maxTokens = parsed
	}

	return &Config{
		Port:            getEnv("PORT", orDefault(fc.Port, "8080")),
		GinMode:         getEnv("GIN_MODE", orDefault(fc.GinMode, "release")),
		LogLevel:        getEnv("LOG_LEVEL", orDefault(fc.LogLevel, "info")),
		AIProvider:      getEnv("AI_PROVIDER", orDefault(fc.AI.Provider, string(ai.ProviderAuto))),
		AIModel:         getEnv("AI_MODEL", fc.AI.Model),
		AIMaxTokens:     maxTokens,
		AITimeout:       timeout,
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		OllamaBaseURL:   getEnv("OLLAMA_BASE_URL", fc.AI.OllamaBaseURL),
	}, nil
}

// AISettings returns the remote provider settings.
func (c *Config) AISettings() ai.Settings {
	return ai.Settings{
		Provider:        ai.ProviderType(c.AIProvider),
		Model:           c.AIModel,
		MaxTokens:       c.AIMaxTokens,
		AnthropicAPIKey: c.AnthropicAPIKey,
		GeminiAPIKey:    c.GeminiAPIKey,
		OllamaBaseURL:   c.OllamaBaseURL,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func orDefault(value, defaultValue string) string {
	if value != "" {
		return value
	}
	return defaultValue
}
