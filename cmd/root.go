// Package cmd implements the hburn CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"hburn/internal/budget"
	"hburn/internal/cli"
	"hburn/internal/config"
	"hburn/internal/model"
	"hburn/internal/pipeline"
	"hburn/internal/source"
	"hburn/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagFile          string
	flagDataDir       string
	flagProjects      []string
	flagUsers         []string
	flagPeriods       []string
	flagDefaultBudget float64
	flagNoCache       bool
	flagQuiet         bool
)

var rootCmd = &cobra.Command{
	Use:   "hburn",
	Short: "Project hours vs budget CLI",
	Long:  "Reconcile time-tracking exports (CSV/XLSX) against per-project contracted-hour budgets.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Single export file (overrides --data-dir)")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory of export files (default from config)")
	rootCmd.PersistentFlags().StringSliceVarP(&flagProjects, "projects", "p", nil, "Filter to these projects (exact names)")
	rootCmd.PersistentFlags().StringSliceVarP(&flagUsers, "users", "u", nil, "Filter to these users (exact names)")
	rootCmd.PersistentFlags().StringSliceVarP(&flagPeriods, "periods", "m", nil, "Filter to these YYYY-MM months")
	rootCmd.PersistentFlags().Float64Var(&flagDefaultBudget, "default-budget", -1, "Fallback contracted hours (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip the SQLite ingestion cache, reparse everything")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// exportPaths resolves which export files this run ingests.
func exportPaths(cfg config.Config) ([]string, error) {
	if flagFile != "" {
		return []string{flagFile}, nil
	}

	dataDir := flagDataDir
	if dataDir == "" {
		dataDir = cfg.General.DataDir
	}

	files, err := sourceScan(dataDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no export files found in %s (use --file or `hburn setup`)", dataDir)
	}
	return files, nil
}

func sourceScan(dataDir string) ([]string, error) {
	files, err := source.ScanDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dataDir, err)
	}
	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	return paths, nil
}

// loadData is the shared ingestion path used by all commands.
// Uses the SQLite cache when available for fast subsequent runs.
func loadData(cfg config.Config) (*pipeline.LoadResult, error) {
	paths, err := exportPaths(cfg)
	if err != nil {
		return nil, err
	}

	progressFn := func(current, total int) {
		if flagQuiet {
			return
		}
		fmt.Fprintf(os.Stderr, "\r  Reading [%d/%d]", current, total)
	}

	if !flagNoCache {
		cache, err := store.Open(pipeline.CachePath())
		if err != nil {
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Cache unavailable, doing full parse\n")
			}
		} else {
			defer func() { _ = cache.Close() }()

			cr, err := pipeline.LoadWithCache(paths, cfg.General.DayFirst, cache, progressFn)
			if err == nil {
				reportLoad(&cr.LoadResult, cr.CacheHits)
				return &cr.LoadResult, nil
			}
			var schemaErr *pipeline.SchemaError
			if errors.As(err, &schemaErr) {
				return nil, err // reparsing won't fix a missing column
			}
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "\n  Cache error, falling back to full parse\n")
			}
		}
	}

	result, err := pipeline.Load(paths, cfg.General.DayFirst, progressFn)
	if err != nil {
		return nil, err
	}
	reportLoad(result, 0)
	return result, nil
}

func reportLoad(result *pipeline.LoadResult, cacheHits int) {
	if flagQuiet || result.TotalFiles == 0 {
		return
	}
	cached := ""
	if cacheHits > 0 {
		cached = fmt.Sprintf(", %d cached", cacheHits)
	}
	fmt.Fprintf(os.Stderr, "\r  Loaded %s entries from %d files (%d projects%s)    \n",
		cli.FormatNumber(int64(len(result.Entries))),
		result.ParsedFiles,
		result.ProjectCount,
		cached,
	)
	if result.DroppedRows > 0 {
		fmt.Fprintf(os.Stderr, "  %d rows without a project were dropped\n", result.DroppedRows)
	}
	if result.FileErrors > 0 {
		fmt.Fprintf(os.Stderr, "  %d files could not be read\n", result.FileErrors)
	}
}

// selection builds the filter selection from the flags.
func selection() model.FilterSelection {
	return pipeline.Selection(flagProjects, flagUsers, flagPeriods)
}

// resolveBudgets derives budgets for the given entries from config,
// honoring the --default-budget override.
func resolveBudgets(cfg config.Config, entries []model.TimeEntry) []model.ProjectBudget {
	fallback := cfg.General.DefaultBudget
	if flagDefaultBudget >= 0 {
		fallback = flagDefaultBudget
	}
	return budget.Resolve(model.DistinctProjects(entries), cfg.Budgets, fallback)
}

// reconcile runs the whole engine for the current flags; used by the
// reporting commands so each interaction is one full recomputation.
func reconcile(cfg config.Config) (pipeline.Result, error) {
	result, err := loadData(cfg)
	if err != nil {
		return pipeline.Result{}, err
	}

	// Budgets cover every loaded project. Filters narrow consumption only,
	// so a project whose entries are all filtered out keeps its report row
	// with zero consumed hours.
	budgets := resolveBudgets(cfg, result.Entries)

	return pipeline.Reconcile(result.Entries, selection(), budgets), nil
}

func printEmpty(res pipeline.Result) {
	fmt.Println()
	if res.NoData {
		fmt.Println("  No time entries were loaded.")
		fmt.Println("  Check the export files, or run `hburn setup` to point at your data.")
		return
	}
	fmt.Println("  No entries match the current selection.")
	fmt.Println("  Adjust --projects/--users/--periods to widen it.")
}

func filterCaption() string {
	var parts []string
	if len(flagProjects) > 0 {
		parts = append(parts, "projects: "+strings.Join(flagProjects, ","))
	}
	if len(flagUsers) > 0 {
		parts = append(parts, "users: "+strings.Join(flagUsers, ","))
	}
	if len(flagPeriods) > 0 {
		parts = append(parts, "periods: "+strings.Join(flagPeriods, ","))
	}
	if len(parts) == 0 {
		return "all entries"
	}
	return strings.Join(parts, " · ")
}
