package source

// Table is the raw tabular structure handed to the normalizer: a header row
// plus string cells, exactly as they appeared in the export file.
type Table struct {
	Path    string
	Headers []string
	Rows    [][]string
}

// DiscoveredFile is a time-tracking export found during directory scanning.
type DiscoveredFile struct {
	Path string
	Name string
}
