package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"wave/internal/ast"
	"wave/internal/diag"
	"wave/internal/diagfmt"
	"wave/internal/parser"
	"wave/internal/source"
	"wave/internal/vfs"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.wv|directory>",
	Short: "Parse a wave source file or directory and print node counts",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

type parseResult struct {
	path string
	file source.FileID
	tree *ast.Tree
	bag  *diag.Bag
	err  error
}

func runParse(cmd *cobra.Command, args []string) error {
	target := args[0]

	maxDiagnostics, err := resolveMaxDiagnostics(cmd)
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", target, err)
	}

	var paths []string
	if st.IsDir() {
		paths, err = collectWaveFiles(target)
		if err != nil {
			return err
		}
	} else {
		paths = []string{target}
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]parseResult, len(paths))
	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = parseOne(path, maxDiagnostics)
			return nil
		})
	}
	_ = g.Wait()

	hadErrors := false
	for idx, r := range results {
		if r.err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.path, r.err)
			hadErrors = true
			continue
		}
		if r.bag.HasErrors() || r.bag.HasWarnings() {
			useColor, cErr := resolveColor(cmd, os.Stderr)
			if cErr != nil {
				return cErr
			}
			r.bag.Sort()
			diagfmt.Pretty(os.Stderr, r.bag, diagfmt.PrettyOpts{Color: useColor, ContextLines: contextLines()})
		}
		if r.bag.HasErrors() {
			hadErrors = true
		}

		if !quiet && len(paths) > 1 {
			fmt.Fprintf(cmd.OutOrStdout(), "== %s ==\n", r.path)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d nodes, %d declarations\n", r.tree.NumNodes(), len(r.tree.Decls))
		if !quiet && len(paths) > 1 && idx < len(results)-1 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
	}

	if hadErrors {
		os.Exit(1)
	}
	return nil
}

func parseOne(path string, maxDiagnostics int) parseResult {
	content, err := os.ReadFile(path)
	if err != nil {
		return parseResult{path: path, err: err}
	}
	file := vfs.AddFile(path, content)
	tree, bag := parser.Parse(file, content)
	capDiagnostics(bag, maxDiagnostics)
	return parseResult{path: path, file: file, tree: &tree, bag: bag}
}

// capDiagnostics trims bag down to at most max entries in place. Parse
// itself never bounds its bag (it always runs to completion over one
// file), so the CLI's --max-diagnostics flag is enforced here instead.
func capDiagnostics(bag *diag.Bag, max int) {
	if max <= 0 || bag.Len() <= max {
		return
	}
	items := bag.Items()[:max]
	trimmed := diag.NewBag(0)
	for _, d := range items {
		trimmed.Add(d)
	}
	*bag = *trimmed
}

func collectWaveFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(p) == ".wv" {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
