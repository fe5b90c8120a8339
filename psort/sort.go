// Copyright 2025 go-parsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package psort

import (
	"cmp"
	"errors"
	"log/slog"
	"time"

	"github.com/ajroetker/go-parsort/psort/contrib/taskstack"
	"github.com/ajroetker/go-parsort/psort/contrib/workerpool"
)

// IdleStrategy selects what a worker does when the task stack is empty but
// the sort is not finished.
type IdleStrategy int

const (
	// IdleWait blocks until a task is pushed or the sort finishes.
	IdleWait IdleStrategy = iota

	// IdleSpin polls the stack, yielding the processor between attempts.
	IdleSpin
)

func (s IdleStrategy) String() string {
	switch s {
	case IdleWait:
		return "wait"
	case IdleSpin:
		return "spin"
	}
	return "unknown"
}

// Sorter holds the configuration of a parallel sort. The zero value of every
// field except Compare selects the default. A Sorter is safe for concurrent
// use; each Sort call owns its own task stack and tracker.
type Sorter[T any] struct {
	// Compare returns a negative number when a < b, zero when a == b and a
	// positive number when a > b. It must describe a total order.
	Compare func(a, b T) int

	// Pivot configures pivot selection for partition steps.
	Pivot Pivot

	// Idle selects the behaviour of workers that find no pending task.
	Idle IdleStrategy

	// MaxPendingTasks bounds the task stack. Zero means unbounded. A push
	// that would exceed the bound aborts the sort with CodeResourceExhausted.
	MaxPendingTasks int

	// Logger receives debug records for each call. Nil means slog.Default().
	Logger *slog.Logger
}

// Sort sorts data[begin:end] in ascending order using numWorkers workers.
func Sort[T cmp.Ordered](data []T, begin, end, numWorkers int) error {
	s := Sorter[T]{Compare: cmp.Compare[T]}
	return s.Sort(data, begin, end, numWorkers)
}

// SortFunc sorts data[begin:end] in ascending order as determined by cmp,
// using numWorkers workers.
func SortFunc[T any](data []T, begin, end, numWorkers int, cmp func(a, b T) int) error {
	s := Sorter[T]{Compare: cmp}
	return s.Sort(data, begin, end, numWorkers)
}

// Sort sorts data[begin:end] in place and blocks until it is sorted or the
// run fails.
//
// Arguments are validated before anything is allocated or mutated; invalid
// ones yield an *Error with CodeInvalidArgument and leave data untouched.
// Ranges with fewer than two elements return immediately.
func (s *Sorter[T]) Sort(data []T, begin, end, numWorkers int) error {
	switch {
	case s.Compare == nil:
		return invalidArgument("nil comparison function")
	case numWorkers < 1:
		return invalidArgument("numWorkers = %d, want >= 1", numWorkers)
	case begin < 0:
		return invalidArgument("begin = %d, want >= 0", begin)
	case begin > end:
		return invalidArgument("begin = %d > end = %d", begin, end)
	case end > len(data):
		return invalidArgument("end = %d > len(data) = %d", end, len(data))
	}

	n := end - begin
	if n <= 1 {
		return nil
	}

	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := &run[T]{
		data:    data,
		cmp:     s.Compare,
		pivot:   s.Pivot,
		idle:    s.Idle,
		tasks:   taskstack.New[span](s.MaxPendingTasks),
		tracker: newTracker(n),
	}
	if err := r.tasks.Push(span{begin, end}); err != nil {
		return resourceExhausted(err)
	}

	logger.Debug("parallel sort starting",
		"n", n,
		"workers", numWorkers,
		"pivot", s.Pivot.Strategy,
		"idle", s.Idle,
	)
	start := time.Now()

	err := workerpool.Run(numWorkers, r.work)
	if err != nil {
		err = wrapRunError(err)
		logger.Error("parallel sort aborted",
			"n", n,
			"settled", r.tracker.load(),
			"error", err,
		)
		return err
	}

	logger.Debug("parallel sort finished",
		"n", n,
		"workers", numWorkers,
		"elapsed", time.Since(start),
	)
	return nil
}

func resourceExhausted(err error) *Error {
	return &Error{
		Code:    CodeResourceExhausted,
		Op:      "sort",
		Message: "cannot queue task",
		Err:     err,
	}
}

// wrapRunError maps a worker failure onto the package error taxonomy.
func wrapRunError(err error) error {
	var perr *Error
	if errors.As(err, &perr) {
		return perr
	}
	var panicErr *workerpool.PanicError
	if errors.As(err, &panicErr) {
		return &Error{Code: CodeInternal, Op: "sort", Message: "worker panicked", Err: panicErr}
	}
	return &Error{Code: CodeInternal, Op: "sort", Message: "worker failed", Err: err}
}
