// Package workpool provides the process-wide data-parallel primitives
// used by the decode pipeline and the stress harness. The pool is a
// counting semaphore sized to the number of logical CPUs, initialised
// lazily on first use and shared for the life of the process.
package workpool

import (
	"runtime"
	"sync"
)

var (
	initOnce sync.Once
	slots    chan struct{}
)

func pool() chan struct{} {
	initOnce.Do(func() {
		slots = make(chan struct{}, runtime.NumCPU())
	})
	return slots
}

// Size reports the pool's worker capacity.
func Size() int {
	return cap(pool())
}

// FindAny evaluates fn over items concurrently and returns the first
// successful result. There is no ordering guarantee: any successful
// item may win. Once a success is seen, unstarted items are skipped;
// in-flight items run to completion and their results are dropped.
// The skip callback reports whether submission should stop early (for
// example because a tier budget expired); it may be nil.
func FindAny[T, R any](items []T, fn func(T) (R, bool), skip func() bool) (R, bool) {
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		result R
		found  bool
	)
	p := pool()

	done := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return found
	}

	for _, item := range items {
		if done() || (skip != nil && skip()) {
			break
		}
		p <- struct{}{}
		wg.Add(1)
		go func(item T) {
			defer wg.Done()
			defer func() { <-p }()
			r, ok := fn(item)
			if !ok {
				return
			}
			mu.Lock()
			if !found {
				found = true
				result = r
			}
			mu.Unlock()
		}(item)
	}

	wg.Wait()
	return result, found
}

// Each evaluates fn over every item concurrently and stores results
// in input order. Unlike FindAny it is a barrier: all items complete.
func Each[T, R any](items []T, fn func(T) R) []R {
	results := make([]R, len(items))
	var wg sync.WaitGroup
	p := pool()

	for i, item := range items {
		p <- struct{}{}
		wg.Add(1)
		go func(i int, item T) {
			defer wg.Done()
			defer func() { <-p }()
			results[i] = fn(item)
		}(i, item)
	}

	wg.Wait()
	return results
}
