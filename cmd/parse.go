package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/tinyc/internal/compiler"
	"github.com/arnavsurve/tinyc/internal/compiler/emitter"
)

// parse: the default action
var ParseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and print the symbol and function tables",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(cmd, args[0])
	},
}

// runParse prints the report for path. A failed parse is not an error; only
// an unreadable file is.
func runParse(cmd *cobra.Command, path string) error {
	res, err := compiler.ParseFile(path, compiler.Options{Logger: logger})
	if err != nil {
		return err
	}

	f, err := emitter.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	out, err := compiler.Render(res, f, bannerStyler())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
