package source

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadCSV reads a CSV export into a Table. Clockify exports usually use
// commas, but some locales export with semicolons; the delimiter is sniffed
// from the header line.
func ReadCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	br := bufio.NewReader(f)

	sep, err := sniffDelimiter(br)
	if err != nil {
		return Table{}, fmt.Errorf("reading %s: %w", path, err)
	}

	r := csv.NewReader(br)
	r.Comma = sep
	r.FieldsPerRecord = -1 // ragged rows are the normalizer's problem
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return Table{Path: path}, nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		h = strings.TrimPrefix(h, "\ufeff") // strip UTF-8 BOM
		headers[i] = strings.TrimSpace(h)
	}

	return Table{
		Path:    path,
		Headers: headers,
		Rows:    records[1:],
	}, nil
}

// sniffDelimiter peeks at the first line and picks ';' only when it clearly
// dominates over ','.
func sniffDelimiter(br *bufio.Reader) (rune, error) {
	const peekSize = 4096
	buf, err := br.Peek(peekSize)
	if err != nil && len(buf) == 0 {
		if err == io.EOF {
			return ',', nil // empty file, delimiter is moot
		}
		return ',', err
	}

	line := string(buf)
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}

	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';', nil
	}
	return ',', nil
}
