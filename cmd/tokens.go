package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/tinyc/internal/compiler"
)

// tokens: dump the lexer output
var TokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the classified token stream of a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("cannot open source: %w", err)
		}

		w := cmd.OutOrStdout()
		for _, tok := range compiler.Tokens(string(content)) {
			if tok.IsEOF() {
				break
			}
			fmt.Fprintln(w, tok.String())
		}
		return nil
	},
}
