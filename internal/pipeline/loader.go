package pipeline

import (
	"runtime"
	"sync"
	"sync/atomic"

	"hburn/internal/model"
	"hburn/internal/source"
)

// LoadResult holds the output of the full ingestion pipeline.
type LoadResult struct {
	Entries      []model.TimeEntry
	TotalFiles   int
	ParsedFiles  int
	FileErrors   int
	DroppedRows  int
	CoercedCells int
	ProjectCount int

	// FirstErr keeps the first per-file failure (typically a SchemaError)
	// so a fully failed ingestion can surface a descriptive condition.
	FirstErr error
}

// ProgressFunc is called during loading to report progress.
// current is the number of files processed so far, total is the total count.
type ProgressFunc func(current, total int)

// fileOutcome is one file's ingestion result, kept in input order.
type fileOutcome struct {
	res NormalizeResult
	err error
}

// Load reads and normalizes every export file using a bounded worker pool.
// Entries are concatenated in input file order so the normalized working set
// is deterministic for identical inputs.
func Load(paths []string, dayFirst bool, progressFn ProgressFunc) (*LoadResult, error) {
	result := &LoadResult{TotalFiles: len(paths)}
	if len(paths) == 0 {
		return result, nil
	}

	outcomes := make([]fileOutcome, len(paths))

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers < 1 {
		numWorkers = 4
	}
	if numWorkers > len(paths) {
		numWorkers = len(paths)
	}

	work := make(chan int, len(paths))
	var wg sync.WaitGroup
	var processed atomic.Int64

	for i := range paths {
		work <- i
	}
	close(work)

	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				outcomes[idx] = ingestFile(paths[idx], dayFirst)
				n := processed.Add(1)
				if progressFn != nil {
					progressFn(int(n), len(paths))
				}
			}
		}()
	}

	wg.Wait()

	collect(result, outcomes)
	return result, result.errIfNothingParsed()
}

// ingestFile reads one export and normalizes it.
func ingestFile(path string, dayFirst bool) fileOutcome {
	table, err := source.ReadFile(path)
	if err != nil {
		return fileOutcome{err: err}
	}
	res, err := Normalize(table, dayFirst)
	if err != nil {
		return fileOutcome{err: err}
	}
	return fileOutcome{res: res}
}

func collect(result *LoadResult, outcomes []fileOutcome) {
	for _, o := range outcomes {
		if o.err != nil {
			result.FileErrors++
			if result.FirstErr == nil {
				result.FirstErr = o.err
			}
			continue
		}
		result.ParsedFiles++
		result.DroppedRows += o.res.DroppedRows
		result.CoercedCells += o.res.CoercedDurations + o.res.UnparsedDates
		result.Entries = append(result.Entries, o.res.Entries...)
	}
	result.ProjectCount = len(model.DistinctProjects(result.Entries))
}

// errIfNothingParsed surfaces the first file error when no file could be
// ingested at all; partial failures are reported through counters instead.
func (r *LoadResult) errIfNothingParsed() error {
	if r.ParsedFiles == 0 && r.FirstErr != nil {
		return r.FirstErr
	}
	return nil
}
