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

// PivotStrategy selects how Partition chooses its pivot.
type PivotStrategy int

const (
	// PivotMedianOfFive uses the median of five evenly spaced samples for
	// ranges longer than the threshold and the last element otherwise.
	PivotMedianOfFive PivotStrategy = iota

	// PivotLast always uses the last element of the range.
	PivotLast
)

// DefaultMedianThreshold is the range length at or below which
// PivotMedianOfFive falls back to the last element.
const DefaultMedianThreshold = 8

// minSampledLength is the shortest range with five distinct sample positions.
const minSampledLength = 5

func (s PivotStrategy) String() string {
	switch s {
	case PivotMedianOfFive:
		return "median-of-five"
	case PivotLast:
		return "last"
	}
	return "unknown"
}

// Pivot configures pivot selection.
type Pivot struct {
	Strategy PivotStrategy

	// Threshold applies to PivotMedianOfFive. Zero means DefaultMedianThreshold.
	Threshold int
}

func (p Pivot) sampled(n int) bool {
	if p.Strategy != PivotMedianOfFive {
		return false
	}
	threshold := p.Threshold
	if threshold <= 0 {
		threshold = DefaultMedianThreshold
	}
	return n > threshold && n >= minSampledLength
}

// Partition rearranges data[begin:end] around a pivot chosen by p and
// returns the pivot's final index q:
//   - data[begin:q] < pivot
//   - data[q] == pivot
//   - data[q+1:end] >= pivot
//
// It performs one linear scan with in-place swaps. Requires begin < end.
func Partition[T any](data []T, begin, end int, p Pivot, cmp func(a, b T) int) int {
	last := end - 1
	if p.sampled(end - begin) {
		selectMedianOfFive(data, begin, end, cmp)
	}

	pivot := data[last]
	i := begin
	for j := begin; j < last; j++ {
		if cmp(data[j], pivot) < 0 {
			data[i], data[j] = data[j], data[i]
			i++
		}
	}
	data[i], data[last] = data[last], data[i]
	return i
}

// selectMedianOfFive orders five evenly spaced samples of data[begin:end]
// with the 5-element network and moves the median to end-1.
func selectMedianOfFive[T any](data []T, begin, end int, cmp func(a, b T) int) {
	last := end - 1
	step := (end - begin) / 4
	idx := [5]int{begin, begin + step, begin + 2*step, begin + 3*step, last}
	sort5At(data, &idx, cmp)
	data[idx[2]], data[last] = data[last], data[idx[2]]
}
