package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"wave/internal/cache"
	"wave/internal/diag"
	"wave/internal/diagfmt"
	"wave/internal/parser"
	"wave/internal/vfs"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.wv|directory>...",
	Short: "Parse one or more wave source files and report diagnostics",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("no-cache", false, "ignore and do not populate the on-disk parse cache")
}

func runCheck(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := resolveMaxDiagnostics(cmd)
	if err != nil {
		return err
	}

	var paths []string
	for _, target := range args {
		st, err := os.Stat(target)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", target, err)
		}
		if st.IsDir() {
			found, err := collectWaveFiles(target)
			if err != nil {
				return err
			}
			paths = append(paths, found...)
		} else {
			paths = append(paths, target)
		}
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}

	var diskCache *cache.Cache
	if !noCache {
		dir, dirErr := cache.DefaultDir("wave")
		if dirErr == nil {
			diskCache, _ = cache.Open(dir)
		}
	}

	results := make([]parseResult, len(paths))
	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = checkOne(path, maxDiagnostics, diskCache)
			return nil
		})
	}
	_ = g.Wait()

	hadErrors := false
	merged := diag.NewBag(0)
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.path, r.err)
			hadErrors = true
			continue
		}
		merged.Merge(r.bag)
		if r.bag.HasErrors() {
			hadErrors = true
		}
	}

	// Sort/Dedup turn the per-file bags collected above into one
	// deterministic, file-ordered report instead of printing each
	// file's diagnostics as it happens to finish.
	merged.Sort()
	merged.Dedup()

	if merged.Len() > 0 {
		useColor, cErr := resolveColor(cmd, os.Stderr)
		if cErr != nil {
			return cErr
		}
		diagfmt.Pretty(os.Stderr, merged, diagfmt.PrettyOpts{Color: useColor, ContextLines: contextLines()})
	}

	errCount, warnCount := 0, 0
	for _, d := range merged.Items() {
		if d.Severity >= diag.SevError {
			errCount++
		} else {
			warnCount++
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d file(s) checked, %d error(s), %d warning(s)\n", len(paths), errCount, warnCount)
	if hadErrors {
		os.Exit(1)
	}
	return nil
}

func checkOne(path string, maxDiagnostics int, c *cache.Cache) parseResult {
	content, err := os.ReadFile(path)
	if err != nil {
		return parseResult{path: path, err: err}
	}
	file := vfs.AddFile(path, content)
	key := cache.Hash(content)

	if toks, tree, bag, ok, getErr := c.Get(key, file, content); getErr == nil && ok {
		_ = toks
		capDiagnostics(bag, maxDiagnostics)
		return parseResult{path: path, file: file, tree: &tree, bag: bag}
	}

	tree, bag := parser.Parse(file, content)
	_ = c.Put(key, file, tree.Toks, &tree, bag)
	capDiagnostics(bag, maxDiagnostics)
	return parseResult{path: path, file: file, tree: &tree, bag: bag}
}
