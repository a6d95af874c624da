package checker

import (
	"sync"

	"github.com/lhaig/mjc/internal/diagnostic"
)

// checkParallel checks class bodies on up to workers goroutines. Each
// class gets its own checker, scope stack and diagnostics; the registry
// is only read. Results are merged in declaration order so the output
// matches a sequential run.
func checkParallel(reg *Registry, classes []*ClassDescriptor, workers int, into *Result) {
	results := make([]*Result, len(classes))
	sem := make(chan struct{}, workers)

	var wg sync.WaitGroup
	for i, cls := range classes {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int, cls *ClassDescriptor) {
			defer wg.Done()
			defer func() { <-sem }()

			out := newResult(diagnostic.New(), reg)
			newChecker(reg, out).checkClass(cls)
			results[idx] = out
		}(i, cls)
	}
	wg.Wait()

	for _, r := range results {
		into.merge(r)
	}
}
