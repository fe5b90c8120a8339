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
	"math/rand"
	"slices"
	"testing"
)

// checkPartition verifies the post-condition of Partition on data[begin:end]
// and that the range is a permutation of orig.
func checkPartition(t *testing.T, orig, data []int, begin, end, q int) {
	t.Helper()
	if q < begin || q >= end {
		t.Fatalf("Partition returned q=%d outside [%d, %d)", q, begin, end)
	}
	pivot := data[q]
	for i := begin; i < q; i++ {
		if data[i] >= pivot {
			t.Errorf("data[%d]=%v should be < pivot %v", i, data[i], pivot)
		}
	}
	for i := q + 1; i < end; i++ {
		if data[i] < pivot {
			t.Errorf("data[%d]=%v should be >= pivot %v", i, data[i], pivot)
		}
	}

	a := slices.Clone(orig[begin:end])
	b := slices.Clone(data[begin:end])
	slices.Sort(a)
	slices.Sort(b)
	if !slices.Equal(a, b) {
		t.Errorf("Partition did not permute the range: got %v from %v", data[begin:end], orig[begin:end])
	}
	if !slices.Equal(orig[:begin], data[:begin]) || !slices.Equal(orig[end:], data[end:]) {
		t.Errorf("Partition modified elements outside [%d, %d)", begin, end)
	}
}

var pivots = []Pivot{
	{Strategy: PivotLast},
	{Strategy: PivotMedianOfFive},
	{Strategy: PivotMedianOfFive, Threshold: 5},
}

func TestPartition(t *testing.T) {
	for _, p := range pivots {
		data := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
		orig := slices.Clone(data)

		q := Partition(data, 0, len(data), p, cmp.Compare[int])
		checkPartition(t, orig, data, 0, len(data), q)
	}
}

func TestPartitionLastPivot(t *testing.T) {
	data := []int{7, 2, 9, 4, 6}
	q := Partition(data, 0, len(data), Pivot{Strategy: PivotLast}, cmp.Compare[int])

	if q != 2 || data[q] != 6 {
		t.Errorf("Partition(last) = %d with pivot %d, want 2 with pivot 6", q, data[q])
	}
}

func TestPartitionMedianOfFiveReverse(t *testing.T) {
	// On reverse-sorted input the sampled median lands near the middle.
	n := 1001
	data := make([]int, n)
	for i := range data {
		data[i] = n - i
	}
	orig := slices.Clone(data)

	q := Partition(data, 0, n, Pivot{Strategy: PivotMedianOfFive}, cmp.Compare[int])
	checkPartition(t, orig, data, 0, n, q)

	if q < n/4 || q > 3*n/4 {
		t.Errorf("median-of-five pivot split reverse input at %d of %d", q, n)
	}
}

func TestPartitionSubrange(t *testing.T) {
	for _, p := range pivots {
		for trial := range 200 {
			rng := rand.New(rand.NewSource(int64(trial)))
			n := 1 + rng.Intn(60)
			data := make([]int, n)
			for i := range data {
				data[i] = rng.Intn(20)
			}
			begin := rng.Intn(n)
			end := begin + 1 + rng.Intn(n-begin)
			orig := slices.Clone(data)

			q := Partition(data, begin, end, p, cmp.Compare[int])
			checkPartition(t, orig, data, begin, end, q)
		}
	}
}

func TestPartitionAllEqual(t *testing.T) {
	for _, p := range pivots {
		data := []int{4, 4, 4, 4, 4, 4, 4, 4, 4, 4}
		orig := slices.Clone(data)

		q := Partition(data, 0, len(data), p, cmp.Compare[int])
		checkPartition(t, orig, data, 0, len(data), q)
		if q != 0 {
			t.Errorf("Partition(all equal, %v) = %d, want 0", p.Strategy, q)
		}
	}
}

func TestPivotSampled(t *testing.T) {
	tests := []struct {
		pivot Pivot
		n     int
		want  bool
	}{
		{Pivot{Strategy: PivotLast}, 100, false},
		{Pivot{Strategy: PivotMedianOfFive}, 8, false},
		{Pivot{Strategy: PivotMedianOfFive}, 9, true},
		{Pivot{Strategy: PivotMedianOfFive, Threshold: 2}, 4, false},
		{Pivot{Strategy: PivotMedianOfFive, Threshold: 2}, 5, true},
		{Pivot{Strategy: PivotMedianOfFive, Threshold: 100}, 100, false},
	}
	for _, tt := range tests {
		if got := tt.pivot.sampled(tt.n); got != tt.want {
			t.Errorf("%+v.sampled(%d) = %v, want %v", tt.pivot, tt.n, got, tt.want)
		}
	}
}

func TestStrategyString(t *testing.T) {
	if got := PivotMedianOfFive.String(); got != "median-of-five" {
		t.Errorf("PivotMedianOfFive.String() = %q", got)
	}
	if got := PivotLast.String(); got != "last" {
		t.Errorf("PivotLast.String() = %q", got)
	}
	if got := IdleSpin.String(); got != "spin" {
		t.Errorf("IdleSpin.String() = %q", got)
	}
	if got := IdleWait.String(); got != "wait" {
		t.Errorf("IdleWait.String() = %q", got)
	}
}
