// Copyright 2025 The go-parsort Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs a fixed number of cooperating workers for the
// duration of a single operation. The workers are spawned once, share
// whatever state the caller closes over, and are all joined before Run
// returns.
//
// Usage:
//
//	err := workerpool.Run(runtime.GOMAXPROCS(0), func(worker int) error {
//	    for !done() {
//	        step()
//	    }
//	    return nil
//	})
package workerpool

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
)

// PanicError reports a worker that panicked. Run recovers the panic so the
// remaining workers can still be joined.
type PanicError struct {
	Worker int
	Value  any
	Stack  []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("workerpool: worker %d panicked: %v", e.Worker, e.Value)
}

// Unwrap returns the panic value if it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Run starts numWorkers goroutines, each calling fn with its worker index in
// [0, numWorkers), and blocks until all of them return.
// If numWorkers <= 0, uses GOMAXPROCS.
//
// Run returns the first non-nil error (or recovered panic) reported by any
// worker. It does not stop the other workers; fn must observe the failure
// through shared state if the others should exit early.
func Run(numWorkers int, fn func(worker int) error) error {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	// A single worker runs inline.
	if numWorkers == 1 {
		return call(0, fn)
	}

	var g errgroup.Group
	for i := range numWorkers {
		g.Go(func() error {
			return call(i, fn)
		})
	}
	return g.Wait()
}

func call(worker int, fn func(worker int) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Worker: worker, Value: r, Stack: debug.Stack()}
		}
	}()
	return fn(worker)
}
