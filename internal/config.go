package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Providers
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
	ProviderDemo      = "demo"
)

const (
	DefaultAnthropicURL   = "https://api.anthropic.com/v1"
	DefaultAnthropicModel = "claude-sonnet-4-20250514"
	DefaultGeminiModel    = "gemini-2.5-flash"
	DefaultMaxTokens      = 4096
	DefaultTemperature    = 0.7
	DefaultTimeout        = 30 * time.Second
)

var ErrInvalidProvider = errors.New(`provider must be "anthropic", "gemini" or "demo"`)

// Config holds runtime settings for the assistant
type Config struct {
	Provider     string        `yaml:"provider"`
	APIKey       string        `yaml:"api_key"`
	BaseURL      string        `yaml:"base_url"`
	Model        string        `yaml:"model"`
	GeminiAPIKey string        `yaml:"gemini_api_key"`
	GeminiModel  string        `yaml:"gemini_model"`
	MaxTokens    int           `yaml:"max_tokens"`
	Temperature  float64       `yaml:"temperature"`
	Timeout      time.Duration `yaml:"timeout"`
	StoragePath  string        `yaml:"storage_path"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		BaseURL:     DefaultAnthropicURL,
		Model:       DefaultAnthropicModel,
		GeminiModel: DefaultGeminiModel,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
		Timeout:     DefaultTimeout,
		StoragePath: DefaultStoragePath(),
	}
}

// DefaultConfigPath returns ~/.config/roblox-ai/config.yaml
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "roblox-ai", "config.yaml")
}

// DefaultStoragePath returns ~/.roblox-ai/storage.db
func DefaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "roblox-ai.db"
	}
	return filepath.Join(home, ".roblox-ai", "storage.db")
}

// LoadConfig layers defaults, the YAML file at path (the default path when
// empty; a missing file is fine), a .env file in the working directory and
// the environment.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = DefaultConfigPath()
	}
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			LogWarn("Failed to load .env: %v", err)
		}
	}
	cfg.applyEnvOverrides()

	if err := cfg.resolveProvider(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			LogDebug("No config file at %s, using defaults", path)
			return nil
		}
		return &StorageError{Path: path, Op: "read", Err: err}
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return &ParseError{Source: "config", Key: path, Err: err}
	}
	LogDebug("Loaded config from %s", path)
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("REACT_APP_ANTHROPIC_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.GeminiAPIKey = v
	}
	if v := os.Getenv("ROBLOX_AI_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("ROBLOX_AI_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("ROBLOX_AI_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("ROBLOX_AI_STORAGE"); v != "" {
		c.StoragePath = v
	}
	if v := os.Getenv("ROBLOX_AI_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = d
		} else if secs, err := strconv.Atoi(v); err == nil {
			c.Timeout = time.Duration(secs) * time.Second
		} else {
			LogWarn("Ignoring invalid ROBLOX_AI_TIMEOUT %q", v)
		}
	}
}

// resolveProvider picks a provider from the configured keys when none is set
func (c *Config) resolveProvider() error {
	switch c.Provider {
	case "":
		switch {
		case c.APIKey != "":
			c.Provider = ProviderAnthropic
		case c.GeminiAPIKey != "":
			c.Provider = ProviderGemini
		default:
			c.Provider = ProviderDemo
		}
	case ProviderAnthropic, ProviderGemini, ProviderDemo:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidProvider, c.Provider)
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	return nil
}

// SetProvider overrides the provider, e.g. from a CLI flag
func (c *Config) SetProvider(provider string) error {
	c.Provider = provider
	return c.resolveProvider()
}

// ActiveModel returns the model name of the configured provider
func (c *Config) ActiveModel() string {
	if c.Provider == ProviderGemini {
		return c.GeminiModel
	}
	return c.Model
}
