// Copyright 2025 The go-parsort Authors. SPDX-License-Identifier: Apache-2.0

// Package taskstack provides a thread-safe LIFO stack of pending work items
// shared by a fixed set of workers.
//
// A single mutex guards every access, so Push and Pop are O(1) critical
// sections. Pop never blocks: an empty result only means nothing is pending
// right now, other workers may still push more. Workers that want to sleep
// instead of polling call Wait, which returns as soon as an item is pushed
// or the stack is closed.
//
// Usage:
//
//	s := taskstack.New[span](0)
//	_ = s.Push(span{0, n})
//
//	for !done() {
//	    t, ok := s.Pop()
//	    if !ok {
//	        s.Wait()
//	        continue
//	    }
//	    process(t)
//	}
package taskstack

import (
	"errors"
	"sync"
)

// ErrFull is returned by Push when the stack already holds its limit.
var ErrFull = errors.New("taskstack: stack is full")

// Stack is a mutex-guarded LIFO. The zero value is not usable; call New.
type Stack[T any] struct {
	mu     sync.Mutex
	cond   sync.Cond
	items  []T
	limit  int
	closed bool
}

// New creates an empty stack. A limit <= 0 means unbounded.
func New[T any](limit int) *Stack[T] {
	s := &Stack[T]{
		items: make([]T, 0, 64),
		limit: limit,
	}
	s.cond.L = &s.mu
	return s
}

// Push adds v on top of the stack and wakes one waiter.
// Pushing to a closed stack still succeeds; closing only releases waiters.
func (s *Stack[T]) Push(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.limit > 0 && len(s.items) >= s.limit {
		return ErrFull
	}
	s.items = append(s.items, v)
	s.cond.Signal()
	return nil
}

// Pop removes and returns the top item. It returns false if the stack is
// currently empty.
func (s *Stack[T]) Pop() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	v := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return v, true
}

// Wait blocks until the stack is non-empty or closed.
// A return does not guarantee that a following Pop succeeds: another worker
// may take the item first.
func (s *Stack[T]) Wait() {
	s.mu.Lock()
	for len(s.items) == 0 && !s.closed {
		s.cond.Wait()
	}
	s.mu.Unlock()
}

// Close wakes every waiter and makes future Wait calls return immediately.
// Calling Close multiple times is safe.
func (s *Stack[T]) Close() {
	s.mu.Lock()
	s.closed = true
	s.cond.Broadcast()
	s.mu.Unlock()
}

// Closed reports whether Close has been called.
func (s *Stack[T]) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Len returns the number of pending items.
func (s *Stack[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
