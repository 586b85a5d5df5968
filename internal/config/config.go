package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the full application configuration
type Config struct {
	LLM    LLMConfig    `yaml:"llm"`
	Prompt PromptConfig `yaml:"prompt"`
	Log    LogConfig    `yaml:"log"`
}

// LLMConfig contains text-generation provider settings
type LLMConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
}

// PromptConfig contains interactive prompt settings
type PromptConfig struct {
	Label string `yaml:"label"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// apiKeyEnv maps a provider to the environment variable holding its credential
var apiKeyEnv = map[string]string{
	"openai": "OPENAI_API_KEY",
	"gemini": "GEMINI_API_KEY",
}

// Load reads and parses config from the given path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	expandConfigEnvVars(&cfg)
	applyDefaults(&cfg)

	return &cfg, nil
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// LoadOrDefault loads the config found by FindConfigPath, or the defaults
// when there is none.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path := FindConfigPath(explicit)
	if path == "" {
		return Default(), "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// FindConfigPath looks for config in common locations
func FindConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}

	paths := []string{
		"playlist-relay.yaml",
		"playlist-relay.yml",
		".playlist-relay.yaml",
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		homePath := filepath.Join(home, ".config", "playlist-relay", "config.yaml")
		if _, err := os.Stat(homePath); err == nil {
			return homePath
		}
	}

	return ""
}

// applyDefaults sets default values for unset fields
func applyDefaults(cfg *Config) {
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "openai"
	}
	// The key is taken as-is; a missing credential surfaces at call time.
	if cfg.LLM.APIKey == "" {
		if name, ok := apiKeyEnv[cfg.LLM.Provider]; ok {
			cfg.LLM.APIKey = os.Getenv(name)
		}
	}
	if cfg.Prompt.Label == "" {
		cfg.Prompt.Label = "What are you in the mood for? "
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
}

// Override applies command-line overrides on top of the loaded config.
// Switching provider re-reads the credential for the new provider and
// drops the model and base URL meant for the old one.
func (cfg *Config) Override(provider, model string) {
	if provider != "" && provider != cfg.LLM.Provider {
		cfg.LLM.Provider = provider
		cfg.LLM.Model = ""
		cfg.LLM.BaseURL = ""
		cfg.LLM.APIKey = ""
		if name, ok := apiKeyEnv[provider]; ok {
			cfg.LLM.APIKey = os.Getenv(name)
		}
	}
	if model != "" {
		cfg.LLM.Model = model
	}
}
