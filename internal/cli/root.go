package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

// options holds the persistent flags shared by all commands
type options struct {
	cfgFile  string
	envFile  string
	verbose  bool
	quiet    bool
	provider string
	model    string
}

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "playlist-relay [prompt...]",
		Short: "Ask an AI music assistant for a playlist",
		Long: `playlist-relay reads what you are in the mood for, sends it to a hosted
language model acting as a music recommendation assistant, and prints the
suggested playlist as plain "artist - title" lines.

With no arguments one line is read from standard input. Arguments, when
given, are joined and used as the prompt instead.

Uses OpenAI (OPENAI_API_KEY) by default; Gemini (GEMINI_API_KEY) is also supported.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, opts, args)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file path")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "env file to load before reading config (empty to skip)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "only log errors")
	cmd.PersistentFlags().StringVar(&opts.provider, "provider", "", "override llm.provider (openai, gemini)")
	cmd.PersistentFlags().StringVar(&opts.model, "model", "", "override llm.model")

	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "playlist-relay version %s\n", version)
		},
	}
}
