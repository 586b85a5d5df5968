package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the configuration for errors.
// The API key is not inspected; the provider rejects a bad one.
func Validate(cfg *Config) []error {
	var errs []error

	switch cfg.LLM.Provider {
	case "":
		errs = append(errs, ValidationError{"llm.provider", "required"})
	case "openai", "gemini":
	default:
		errs = append(errs, ValidationError{"llm.provider", "must be 'gemini' or 'openai'"})
	}

	if cfg.LLM.BaseURL != "" {
		if cfg.LLM.Provider != "openai" {
			errs = append(errs, ValidationError{"llm.base_url", "only supported for 'openai'"})
		} else if !strings.HasPrefix(cfg.LLM.BaseURL, "http://") && !strings.HasPrefix(cfg.LLM.BaseURL, "https://") {
			errs = append(errs, ValidationError{"llm.base_url", "must be an http(s) URL"})
		}
	}

	if !isLogLevel(cfg.Log.Level) {
		errs = append(errs, ValidationError{"log.level", "must be one of " + strings.Join(logLevels, ", ")})
	}

	return errs
}

func isLogLevel(level string) bool {
	for _, l := range logLevels {
		if l == level {
			return true
		}
	}
	return false
}
