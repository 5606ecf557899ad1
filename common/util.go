package common

import (
	"errors"
	"sync"
)

// RunParallel runs the given functions concurrently and waits for all of
// them. The returned error aggregates every non-nil result via
// errors.Join; it is nil when all functions succeed.
func RunParallel(funcs ...func() error) error {
	var wg sync.WaitGroup
	errCh := make(chan error, len(funcs))

	for _, fn := range funcs {
		wg.Add(1)
		go func(fn func() error) {
			defer wg.Done()
			if err := fn(); err != nil {
				errCh <- err
			}
		}(fn)
	}

	wg.Wait()
	close(errCh)

	var errs []error
	for err := range errCh {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
