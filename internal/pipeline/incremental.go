package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"hburn/internal/model"
	"hburn/internal/store"
)

// CachedLoadResult extends LoadResult with cache metadata.
type CachedLoadResult struct {
	LoadResult
	CacheHits int
	Reparsed  int
}

// LoadWithCache diffs the export files against the ingestion cache, reads
// unchanged files from SQLite, reparses only changed ones, and returns the
// combined entry set in input file order.
func LoadWithCache(paths []string, dayFirst bool, cache *store.Cache, progressFn ProgressFunc) (*CachedLoadResult, error) {
	result := &CachedLoadResult{LoadResult: LoadResult{TotalFiles: len(paths)}}
	if len(paths) == 0 {
		return result, nil
	}

	tracked, err := cache.GetTrackedFiles()
	if err != nil {
		return nil, fmt.Errorf("reading cache: %w", err)
	}

	// Partition into unchanged (served from cache) and changed (reparse)
	type fileStat struct {
		mtimeNs int64
		size    int64
	}
	stats := make(map[string]fileStat, len(paths))
	changed := make(map[string]bool, len(paths))

	var toReparse []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			result.FileErrors++
			if result.FirstErr == nil {
				result.FirstErr = err
			}
			continue
		}
		stats[p] = fileStat{mtimeNs: info.ModTime().UnixNano(), size: info.Size()}

		cached, ok := tracked[p]
		if ok && cached.MtimeNs == info.ModTime().UnixNano() && cached.SizeBytes == info.Size() {
			result.CacheHits++
		} else {
			changed[p] = true
			toReparse = append(toReparse, p)
		}
	}
	result.Reparsed = len(toReparse)

	// Parse changed files with the uncached pipeline, then save them.
	parsed := make(map[string][]model.TimeEntry, len(toReparse))
	if len(toReparse) > 0 {
		// Load's error is safe to discard: per-file failures flow into the
		// counters merged below, and a total failure still surfaces through
		// errIfNothingParsed on the combined result.
		sub, _ := Load(toReparse, dayFirst, func(current, _ int) {
			if progressFn != nil {
				progressFn(result.CacheHits+current, len(paths))
			}
		})
		result.FileErrors += sub.FileErrors
		result.DroppedRows = sub.DroppedRows
		result.CoercedCells = sub.CoercedCells
		if result.FirstErr == nil {
			result.FirstErr = sub.FirstErr
		}

		byFile := make(map[string][]model.TimeEntry)
		for _, e := range sub.Entries {
			byFile[e.SourceFile] = append(byFile[e.SourceFile], e)
		}
		failed := make(map[string]bool)
		for _, p := range toReparse {
			if _, ok := byFile[p]; !ok && fileFailed(sub, p) {
				failed[p] = true
			}
		}
		for _, p := range toReparse {
			if failed[p] {
				continue
			}
			entries := byFile[p] // may be nil for a valid-but-empty file
			parsed[p] = entries
			st := stats[p]
			_ = cache.SaveEntries(p, st.mtimeNs, st.size, entries)
		}
	}

	// Assemble in input order so cached and reparsed runs are byte-identical.
	for _, p := range paths {
		if _, ok := stats[p]; !ok {
			continue // stat failed above
		}
		if changed[p] {
			if entries, ok := parsed[p]; ok {
				result.ParsedFiles++
				result.Entries = append(result.Entries, entries...)
			}
			continue
		}
		entries, err := cache.LoadEntries(p)
		if err != nil {
			return nil, fmt.Errorf("loading cached entries: %w", err)
		}
		result.ParsedFiles++
		result.Entries = append(result.Entries, entries...)
	}

	result.ProjectCount = len(model.DistinctProjects(result.Entries))
	return result, result.errIfNothingParsed()
}

// fileFailed reports whether a reparse batch recorded a failure for path.
// Load only exposes aggregate counters, so a file is considered failed when
// it produced no entries and the batch saw at least one error.
func fileFailed(sub *LoadResult, path string) bool {
	if sub.FileErrors == 0 {
		return false
	}
	for _, e := range sub.Entries {
		if e.SourceFile == path {
			return false
		}
	}
	return true
}

// CacheDir returns the platform-appropriate cache directory.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "hburn")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "hburn")
}

// CachePath returns the full path to the cache database.
func CachePath() string {
	return filepath.Join(CacheDir(), "ingest.db")
}
