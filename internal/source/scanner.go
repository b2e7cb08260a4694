// Package source discovers and reads time-tracking export files (CSV/XLSX).
package source

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanDir walks a data directory and discovers all export files it can read.
// Unreadable entries are skipped rather than failing the scan.
func ScanDir(dataDir string) ([]DiscoveredFile, error) {
	info, err := os.Stat(dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	var files []DiscoveredFile

	err = filepath.WalkDir(dataDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // intentionally skip unreadable entries
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		// Excel leaves "~$" lock files next to open workbooks
		if strings.HasPrefix(name, "~$") || strings.HasPrefix(name, ".") {
			return nil
		}
		switch strings.ToLower(filepath.Ext(name)) {
		case ".csv", ".xlsx":
			files = append(files, DiscoveredFile{Path: path, Name: name})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// WalkDir order is already lexical, but sort defensively so ingestion
	// order (and therefore entry order) is deterministic across platforms.
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	return files, nil
}

// ReadFile reads one export file into a Table, dispatching on extension.
func ReadFile(path string) (Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadXLSX(path)
	}
	return ReadCSV(path)
}
