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
	"errors"
	"fmt"
)

// Code categorizes errors returned by Sort.
type Code string

const (
	// CodeInvalidArgument indicates bad worker count or range bounds.
	// Nothing was mutated.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// CodeResourceExhausted indicates the task stack refused a push.
	// The range may be left partially rearranged.
	CodeResourceExhausted Code = "RESOURCE_EXHAUSTED"

	// CodeInternal indicates a worker panicked or the completion
	// tracker overshot its target.
	CodeInternal Code = "INTERNAL"
)

// Sentinel errors matched by errors.Is against any *Error with the same Code.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrResourceExhausted = errors.New("resource exhausted")
	ErrInternal          = errors.New("internal error")
)

// Error is the error type returned by Sort.
type Error struct {
	// Code identifies the error category.
	Code Code

	// Op is the operation that failed, e.g. "sort".
	Op string

	// Message is a human-readable description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("psort: %s: %s: %s", e.Op, e.Code, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e.Code.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidArgument:
		return e.Code == CodeInvalidArgument
	case ErrResourceExhausted:
		return e.Code == CodeResourceExhausted
	case ErrInternal:
		return e.Code == CodeInternal
	}
	return false
}

func invalidArgument(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidArgument, Op: "sort", Message: fmt.Sprintf(format, args...)}
}
