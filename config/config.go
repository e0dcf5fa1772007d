// File: config/config.go

// Package config holds the environment-driven configuration for the
// promptsmith agent and CLI. Values come from environment variables,
// optionally overlaid by a YAML file, then adjusted by functional
// options.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/alsokkary/promptsmith/internal/logging"
)

// DefaultSystemPrompt is the fixed system instruction sent with every
// agent request.
const DefaultSystemPrompt = "You are an intelligent assistant specialized in GitHub automation, " +
	"code analysis, and development workflows. Provide helpful, accurate, and practical advice. " +
	"Always consider best practices and security."

// Config holds agent settings. All fields are env-tagged so LoadConfig
// can populate them without further wiring.
type Config struct {
	Provider     string            `env:"LLM_PROVIDER" envDefault:"anthropic" yaml:"provider" validate:"required"`
	Model        string            `env:"LLM_MODEL" envDefault:"claude-3-5-sonnet-20241022" yaml:"model" validate:"required"`
	MaxTokens    int               `env:"LLM_MAX_TOKENS" envDefault:"2048" yaml:"max_tokens" validate:"min=1"`
	Temperature  float64           `env:"LLM_TEMPERATURE" envDefault:"0.7" yaml:"temperature" validate:"min=0,max=2"`
	Timeout      time.Duration     `env:"LLM_TIMEOUT" envDefault:"60s" yaml:"timeout"`
	LogLevel     logging.LogLevel  `env:"LLM_LOG_LEVEL" envDefault:"WARN" yaml:"-"`
	SystemPrompt string            `yaml:"system_prompt"`
	APIKeys      map[string]string `yaml:"-"`
}

// LoadConfig builds a Config from the environment. Any variable ending
// in _API_KEY lands in APIKeys under the lower-cased provider name, so
// ANTHROPIC_API_KEY serves the default provider without extra settings.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		APIKeys:      make(map[string]string),
		SystemPrompt: DefaultSystemPrompt,
	}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	loadAPIKeys(cfg)
	return cfg, nil
}

func loadAPIKeys(cfg *Config) {
	for _, envVar := range os.Environ() {
		key, value, found := strings.Cut(envVar, "=")
		if found && strings.HasSuffix(strings.ToUpper(key), "_API_KEY") {
			provider := strings.TrimSuffix(strings.ToUpper(key), "_API_KEY")
			cfg.APIKeys[strings.ToLower(provider)] = value
		}
	}
}

// Validate checks the configuration, including that an API key exists
// for the selected provider.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.APIKeys[c.Provider] == "" {
		return &MissingKeyError{Provider: c.Provider}
	}
	return nil
}

// MissingKeyError reports a provider with no configured API key.
type MissingKeyError struct {
	Provider string
}

func (e *MissingKeyError) Error() string {
	return "no API key configured for provider " + e.Provider
}

// Option mutates a Config after loading.
type Option func(*Config)

func SetProvider(provider string) Option {
	return func(c *Config) {
		c.Provider = provider
	}
}

func SetModel(model string) Option {
	return func(c *Config) {
		c.Model = model
	}
}

func SetMaxTokens(maxTokens int) Option {
	return func(c *Config) {
		if maxTokens < 1 {
			maxTokens = 1
		}
		c.MaxTokens = maxTokens
	}
}

func SetTemperature(temperature float64) Option {
	return func(c *Config) {
		c.Temperature = temperature
	}
}

func SetTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

func SetAPIKey(apiKey string) Option {
	return func(c *Config) {
		if c.APIKeys == nil {
			c.APIKeys = make(map[string]string)
		}
		c.APIKeys[c.Provider] = apiKey
	}
}

func SetLogLevel(level logging.LogLevel) Option {
	return func(c *Config) {
		c.LogLevel = level
	}
}

func SetSystemPrompt(prompt string) Option {
	return func(c *Config) {
		c.SystemPrompt = prompt
	}
}

// ApplyOptions applies options in order.
func ApplyOptions(cfg *Config, options ...Option) {
	for _, option := range options {
		option(cfg)
	}
}
