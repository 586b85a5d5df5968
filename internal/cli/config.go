package cli

import (
	"fmt"
	"io"

	"github.com/Kavirubc/playlist-relay/internal/config"
	"github.com/Kavirubc/playlist-relay/internal/llm"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
	}

	cmd.AddCommand(newConfigValidateCmd(opts))
	return cmd
}

func newConfigValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if err := config.LoadDotEnv(opts.envFile); err != nil {
				return err
			}

			cfg, cfgPath, err := config.LoadOrDefault(opts.cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg.Override(opts.provider, opts.model)

			if cfgPath == "" {
				fmt.Fprintln(out, "No config file found, using defaults")
			} else {
				fmt.Fprintf(out, "Validating config: %s\n", cfgPath)
			}

			if errs := config.Validate(cfg); len(errs) > 0 {
				fmt.Fprintln(out, "\nValidation errors:")
				for _, e := range errs {
					fmt.Fprintf(out, "  - %v\n", e)
				}
				return fmt.Errorf("configuration is invalid")
			}

			fmt.Fprintln(out, "\nConfiguration is valid!")
			printConfigSummary(out, cfg)
			return nil
		},
	}
}

func printConfigSummary(out io.Writer, cfg *config.Config) {
	model := cfg.LLM.Model
	if model == "" {
		switch cfg.LLM.Provider {
		case "openai":
			model = llm.DefaultOpenAIModel
		case "gemini":
			model = llm.DefaultGeminiModel
		}
	}

	key := "not set"
	if cfg.LLM.APIKey != "" {
		key = "set"
	}

	fmt.Fprintf(out, "  - Provider: %s (%s)\n", cfg.LLM.Provider, model)
	if cfg.LLM.BaseURL != "" {
		fmt.Fprintf(out, "  - Base URL: %s\n", cfg.LLM.BaseURL)
	}
	fmt.Fprintf(out, "  - API key: %s\n", key)
	fmt.Fprintf(out, "  - Log level: %s\n", cfg.Log.Level)
}
