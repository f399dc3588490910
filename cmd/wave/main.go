// Command wave is the CLI for the wave language front-end: a lexer,
// parser and S-expression printer over the core libraries in
// internal/{lexer,parser,printer}.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"wave/internal/config"
	"wave/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "wave",
	Short: "Wave language front-end",
	Long:  `Wave lexes and parses wave source files and renders their diagnostics and AST.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir, err := os.Getwd()
		if err != nil {
			return err
		}
		loadedConfig, err = config.Load(dir)
		return err
	},
}

// loadedConfig holds wave.toml's resolved settings (or Default() if no
// wave.toml was found), populated once by the root command's
// PersistentPreRunE before any subcommand runs. Flags explicitly passed
// on the command line always take precedence over it.
var loadedConfig = config.Default()

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(lexCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "accepted but has no effect: no subcommand reads it")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to show (0=unbounded, falls back to wave.toml)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// resolveColor applies the --color flag's auto|on|off tri-state against
// whether out is a terminal, falling back to wave.toml's color mode when
// --color was left at its cobra default.
func resolveColor(cmd *cobra.Command, out *os.File) (bool, error) {
	flags := cmd.Root().PersistentFlags()
	mode, err := flags.GetString("color")
	if err != nil {
		return false, err
	}
	if !flags.Changed("color") {
		return loadedConfig.ShouldColor(isTerminal(out)), nil
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return isTerminal(out), nil
	}
}

// resolveMaxDiagnostics applies --max-diagnostics, falling back to
// wave.toml's max_diagnostics when the flag was left at its default.
func resolveMaxDiagnostics(cmd *cobra.Command) (int, error) {
	flags := cmd.Root().PersistentFlags()
	n, err := flags.GetInt("max-diagnostics")
	if err != nil {
		return 0, err
	}
	if !flags.Changed("max-diagnostics") {
		return loadedConfig.MaxDiagnostics, nil
	}
	return n, nil
}

// contextLines passes wave.toml's [diagnostics].context_lines to every
// subcommand that renders a snippet, though diagfmt.Pretty does not read
// the value; there is no per-invocation flag for
// it, matching the teacher's pretty-printer which also hardcodes context
// width at the call site.
func contextLines() uint8 {
	return loadedConfig.ContextLines
}
