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
	"runtime"

	"github.com/ajroetker/go-parsort/psort/contrib/taskstack"
)

// span is a half-open range [begin, end) of the array being sorted that is
// not yet known to be in order.
type span struct {
	begin, end int
}

// run is the state shared by the workers of one Sort call.
type run[T any] struct {
	data    []T
	cmp     func(a, b T) int
	pivot   Pivot
	idle    IdleStrategy
	tasks   *taskstack.Stack[span]
	tracker *tracker
}

// work is the loop run by every worker. It exits once the tracker reports
// that every element is settled, or after any worker fails.
func (r *run[T]) work(int) error {
	clean := false
	defer func() {
		if !clean {
			r.fail()
		}
	}()

	for !r.tracker.done() {
		t, ok := r.tasks.Pop()
		if !ok {
			r.wait()
			continue
		}
		if err := r.resolve(t); err != nil {
			return err
		}
	}
	clean = true
	return nil
}

func (r *run[T]) wait() {
	if r.idle == IdleSpin {
		runtime.Gosched()
		return
	}
	r.tasks.Wait()
}

// resolve processes one popped span exactly once: small spans are sorted by
// a network, larger ones are split around a pivot into two new spans.
func (r *run[T]) resolve(t span) error {
	n := t.end - t.begin
	if n <= MaxNetworkSize {
		SortSmall(r.data[t.begin:t.end], r.cmp)
		return r.settle(n)
	}

	q := Partition(r.data, t.begin, t.end, r.pivot, r.cmp)
	if err := r.tasks.Push(span{t.begin, q}); err != nil {
		return resourceExhausted(err)
	}
	if err := r.tasks.Push(span{q + 1, t.end}); err != nil {
		return resourceExhausted(err)
	}
	return r.settle(1)
}

func (r *run[T]) settle(k int) error {
	reached, overshoot := r.tracker.add(k)
	if overshoot {
		return &Error{
			Code:    CodeInternal,
			Op:      "sort",
			Message: "completion tracker passed the element count",
		}
	}
	if reached {
		r.tasks.Close()
	}
	return nil
}

// fail stops every worker of the run.
func (r *run[T]) fail() {
	r.tracker.abort()
	r.tasks.Close()
}
