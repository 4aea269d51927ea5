package qrai

import (
	"runtime"
	"sync"
)

// FileResult pairs one input path with its validation outcome.
type FileResult struct {
	Path   string
	Result *ValidationResult
	Err    error
}

// BatchOptions controls a ValidateFiles run.
type BatchOptions struct {
	// Fast switches each file to fast validation.
	Fast bool

	// Workers caps batch-level parallelism; 0 means one per CPU.
	// Each validation also uses the engine's shared worker pool
	// internally, so the batch runs its own goroutines rather than
	// competing with the stress harness for pool slots.
	Workers int
}

type fileJob struct {
	index int
	path  string
}

// ValidateFiles validates many image files in parallel and returns
// per-file results in input order. Individual failures are recorded
// per file and never abort the batch.
func ValidateFiles(paths []string, opts BatchOptions) []FileResult {
	if len(paths) == 0 {
		return nil
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	jobs := make(chan fileJob, len(paths))
	results := make([]FileResult, len(paths))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results[job.index] = validateOneFile(job.path, opts.Fast)
			}
		}()
	}

	for i, path := range paths {
		jobs <- fileJob{index: i, path: path}
	}
	close(jobs)
	wg.Wait()

	return results
}

func validateOneFile(path string, fast bool) FileResult {
	data, err := readFile(path)
	if err != nil {
		return FileResult{Path: path, Err: err}
	}
	var result *ValidationResult
	if fast {
		result, err = ValidateFast(data)
	} else {
		result, err = Validate(data)
	}
	return FileResult{Path: path, Result: result, Err: err}
}
