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

// Package ratio provides a rational-number element type for exercising the
// parallel sort with comparisons that are expensive relative to swaps.
package ratio

import (
	"cmp"
	"fmt"
	"time"
)

// Ratio is the fraction Num/Den. Den is always positive for values built
// with New.
type Ratio struct {
	Num int64
	Den int64
}

// New returns num/den with the sign moved to the numerator.
// It panics if den is zero.
func New(num, den int64) Ratio {
	if den == 0 {
		panic("ratio: zero denominator")
	}
	if den < 0 {
		num, den = -num, -den
	}
	return Ratio{Num: num, Den: den}
}

// Compare orders a and b by value. Equivalent fractions such as 1/2 and 2/4
// compare equal.
func Compare(a, b Ratio) int {
	return cmp.Compare(a.Num*b.Den, b.Num*a.Den)
}

// Less reports whether r < o.
func (r Ratio) Less(o Ratio) bool {
	return Compare(r, o) < 0
}

// Float64 returns the value of r as a float64.
func (r Ratio) Float64() float64 {
	return float64(r.Num) / float64(r.Den)
}

func (r Ratio) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// SlowCompare returns Compare wrapped so that every call first sleeps for
// delay.
func SlowCompare(delay time.Duration) func(a, b Ratio) int {
	if delay <= 0 {
		return Compare
	}
	return func(a, b Ratio) int {
		time.Sleep(delay)
		return Compare(a, b)
	}
}

// Reciprocals returns 1/1, 1/2, ..., 1/n.
func Reciprocals(n int) []Ratio {
	out := make([]Ratio, n)
	for i := range out {
		out[i] = New(1, int64(i+1))
	}
	return out
}
