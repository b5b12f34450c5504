package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/tinyc/internal/config"
)

var (
	cfgFile  string
	format   string
	noColor  bool
	logLevel string

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tinyc <file>",
	Short: "tinyc: parse and evaluate small C-like programs",
	Long: `tinyc tokenizes and parses a small C-like language, evaluating
declarations and assignments as it goes, then dumps the global symbol
and function tables.

Commands:
  parse   Parse a source file and print the tables (default)
  tokens  Print the classified token stream of a source file
  repl    Evaluate statements interactively
  init    Write a default tinyc.toml
`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runParse(cmd, args[0])
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $TINYC_CONFIG or ./tinyc.toml)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "text", "table format: text, pretty, yaml, json")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	rootCmd.AddCommand(ParseCmd, TokensCmd, ReplCmd, InitCmd)
}

// loadSettings resolves the config file, then lets explicitly set flags
// override it.
func loadSettings(cmd *cobra.Command, _ []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.Discover()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = format
	}
	if flags.Changed("no-color") {
		cfg.Output.Color = !noColor
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err = cfg.NewLogger(cmd.ErrOrStderr())
	return err
}
