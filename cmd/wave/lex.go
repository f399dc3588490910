package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wave/internal/diag"
	"wave/internal/diagfmt"
	"wave/internal/lexer"
	"wave/internal/vfs"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file.wv>",
	Short: "Lex a wave source file and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func runLex(cmd *cobra.Command, args []string) error {
	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	maxDiagnostics, err := resolveMaxDiagnostics(cmd)
	if err != nil {
		return err
	}

	file := vfs.AddFile(path, content)
	bag := diag.NewBag(maxDiagnostics)
	toks := lexer.Lex(file, content, bag)

	if err := printDiagnostics(cmd, bag); err != nil {
		return err
	}

	for i := 0; i < toks.NumTokens(); i++ {
		start := toks.Start[i]
		text := string(lexer.TokenText(content, start))
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%6d  %-16s %q\n", start, toks.Kind[i], text); err != nil {
			return err
		}
	}

	if bag.HasErrors() {
		os.Exit(1)
	}
	return nil
}

// printDiagnostics renders bag to stderr if it holds anything, honoring
// the --color persistent flag.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag) error {
	if bag.Len() == 0 {
		return nil
	}
	useColor, err := resolveColor(cmd, os.Stderr)
	if err != nil {
		return err
	}
	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, diagfmt.PrettyOpts{Color: useColor, ContextLines: contextLines()})
	return nil
}
