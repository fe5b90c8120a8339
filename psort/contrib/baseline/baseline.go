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

// Package baseline holds single-threaded quicksorts built from the same
// sorting networks and partition step as the parallel engine. They serve as
// correctness oracles in tests and as reference points in benchmarks.
package baseline

import (
	"container/heap"
	"container/list"
	"fmt"

	"github.com/ajroetker/go-parsort/psort"
)

// Recursive sorts data[begin:end] with a recursive quicksort.
func Recursive[T any](data []T, begin, end int, p psort.Pivot, cmp func(a, b T) int) {
	if end-begin <= psort.MaxNetworkSize {
		psort.SortSmall(data[begin:end], cmp)
		return
	}

	q := psort.Partition(data, begin, end, p, cmp)
	Recursive(data, begin, q, p, cmp)
	Recursive(data, q+1, end, p, cmp)
}

// Container selects the collection holding pending ranges in Iterative.
type Container int

const (
	// Stack keeps ranges in a linked list used as a LIFO.
	Stack Container = iota

	// Vector keeps ranges in a slice used as a LIFO.
	Vector

	// PriorityQueue always resumes the range with the smallest begin index.
	PriorityQueue
)

func (c Container) String() string {
	switch c {
	case Stack:
		return "stack"
	case Vector:
		return "vector"
	case PriorityQueue:
		return "priority-queue"
	}
	return fmt.Sprintf("Container(%d)", int(c))
}

// Iterative sorts data[begin:end] with an explicit collection of pending
// ranges instead of recursion.
func Iterative[T any](data []T, begin, end int, c Container, p psort.Pivot, cmp func(a, b T) int) {
	pending := newRanges(c)
	pending.push(span{begin, end})

	for pending.len() > 0 {
		r := pending.pop()
		if r.end-r.begin <= psort.MaxNetworkSize {
			psort.SortSmall(data[r.begin:r.end], cmp)
			continue
		}

		q := psort.Partition(data, r.begin, r.end, p, cmp)
		pending.push(span{r.begin, q})
		pending.push(span{q + 1, r.end})
	}
}

type span struct {
	begin, end int
}

type ranges interface {
	push(span)
	pop() span
	len() int
}

func newRanges(c Container) ranges {
	switch c {
	case Vector:
		return &vectorRanges{}
	case PriorityQueue:
		return &queueRanges{}
	default:
		return &listRanges{l: list.New()}
	}
}

type listRanges struct {
	l *list.List
}

func (r *listRanges) push(s span) { r.l.PushBack(s) }
func (r *listRanges) len() int    { return r.l.Len() }

func (r *listRanges) pop() span {
	return r.l.Remove(r.l.Back()).(span)
}

type vectorRanges struct {
	items []span
}

func (r *vectorRanges) push(s span) { r.items = append(r.items, s) }
func (r *vectorRanges) len() int    { return len(r.items) }

func (r *vectorRanges) pop() span {
	s := r.items[len(r.items)-1]
	r.items = r.items[:len(r.items)-1]
	return s
}

// queueRanges is a min-heap of spans keyed by begin.
type queueRanges struct {
	h spanHeap
}

func (r *queueRanges) push(s span) { heap.Push(&r.h, s) }
func (r *queueRanges) pop() span   { return heap.Pop(&r.h).(span) }
func (r *queueRanges) len() int    { return r.h.Len() }

type spanHeap []span

func (h spanHeap) Len() int           { return len(h) }
func (h spanHeap) Less(i, j int) bool { return h[i].begin < h[j].begin }
func (h spanHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *spanHeap) Push(x any)        { *h = append(*h, x.(span)) }

func (h *spanHeap) Pop() any {
	old := *h
	n := len(old)
	s := old[n-1]
	*h = old[:n-1]
	return s
}
