package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Kavirubc/playlist-relay/internal/config"
	"github.com/Kavirubc/playlist-relay/internal/llm"
	"github.com/Kavirubc/playlist-relay/internal/relay"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func runAsk(cmd *cobra.Command, opts *options, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(&cfg.Log, cmd.ErrOrStderr(), opts.verbose, opts.quiet)
	if err != nil {
		return err
	}
	defer closeLog()

	provider, err := llm.NewProvider(&cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to create LLM provider: %w", err)
	}

	r := relay.New(provider, logger)
	defer r.Close()

	var completion string
	if len(args) > 0 {
		completion, err = r.AskText(ctx, strings.Join(args, " "))
	} else {
		p := relay.NewPrompter(cmd.InOrStdin(), labelWriter(cmd))
		completion, err = r.Ask(ctx, p, cfg.Prompt.Label)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), completion)
	return nil
}

// loadConfig loads the env file and config, applies flag overrides and validates
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	if err := config.LoadDotEnv(opts.envFile); err != nil {
		return nil, err
	}

	cfg, _, err := config.LoadOrDefault(opts.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Override(opts.provider, opts.model)

	if errs := config.Validate(cfg); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(cmd.ErrOrStderr(), "config error: %v\n", e)
		}
		return nil, fmt.Errorf("invalid configuration")
	}

	return cfg, nil
}

// labelWriter returns where the prompt label goes: stderr, and only when a
// person is typing. Piped input gets no label.
func labelWriter(cmd *cobra.Command) io.Writer {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	return cmd.ErrOrStderr()
}
