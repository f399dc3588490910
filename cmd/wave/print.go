package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wave/internal/diagfmt"
	"wave/internal/parser"
	"wave/internal/printer"
	"wave/internal/vfs"
)

var printCmd = &cobra.Command{
	Use:   "print <file.wv>",
	Short: "Parse a wave source file and print its declarations as S-expressions",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrint,
}

func runPrint(cmd *cobra.Command, args []string) error {
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
	tree, bag := parser.Parse(file, content)
	capDiagnostics(bag, maxDiagnostics)

	if bag.Len() > 0 {
		useColor, err := resolveColor(cmd, os.Stderr)
		if err != nil {
			return err
		}
		bag.Sort()
		diagfmt.Pretty(os.Stderr, bag, diagfmt.PrettyOpts{Color: useColor, ContextLines: contextLines()})
	}

	printer.Print(cmd.OutOrStdout(), &tree)

	if bag.HasErrors() {
		os.Exit(1)
	}
	return nil
}
