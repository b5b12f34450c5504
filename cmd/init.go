package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/tinyc/internal/config"
)

// init: write a default config file
var InitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default tinyc.toml",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultFile
		if len(args) == 1 {
			path = args[0]
		}

		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("cannot create config: %w", err)
		}
		defer f.Close()

		if err := config.Default().Write(f); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "↪ wrote %s\n", path)
		return nil
	},
}
