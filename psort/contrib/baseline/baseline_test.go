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

package baseline

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-parsort/psort"
)

var pivots = []psort.Pivot{
	{Strategy: psort.PivotLast},
	{Strategy: psort.PivotMedianOfFive},
}

func randomInts(seed int64, n int) []int {
	rng := rand.New(rand.NewSource(seed))
	data := make([]int, n)
	for i := range data {
		data[i] = rng.Intn(n/2 + 1)
	}
	return data
}

func TestRecursive(t *testing.T) {
	for _, p := range pivots {
		for _, n := range []int{0, 1, 2, 5, 6, 17, 100, 1000} {
			data := randomInts(int64(n), n)
			want := slices.Clone(data)
			slices.Sort(want)

			Recursive(data, 0, n, p, cmp.Compare[int])
			assert.Equalf(t, want, data, "Recursive(n=%d, pivot=%v)", n, p.Strategy)
		}
	}
}

func TestIterative(t *testing.T) {
	for _, c := range []Container{Stack, Vector, PriorityQueue} {
		for _, p := range pivots {
			for _, n := range []int{0, 1, 3, 6, 64, 999} {
				data := randomInts(int64(n)+7, n)
				want := slices.Clone(data)
				slices.Sort(want)

				Iterative(data, 0, n, c, p, cmp.Compare[int])
				assert.Equalf(t, want, data, "Iterative(n=%d, %v, pivot=%v)", n, c, p.Strategy)
			}
		}
	}
}

func TestIterativeSubrange(t *testing.T) {
	data := randomInts(42, 200)
	orig := slices.Clone(data)

	Iterative(data, 20, 180, PriorityQueue, psort.Pivot{}, cmp.Compare[int])

	require.True(t, psort.IsSorted(data[20:180]))
	assert.Equal(t, orig[:20], data[:20])
	assert.Equal(t, orig[180:], data[180:])
}

func TestRecursiveDescending(t *testing.T) {
	data := make([]int, 1000)
	for i := range data {
		data[i] = len(data) - i
	}

	Recursive(data, 0, len(data), psort.Pivot{Strategy: psort.PivotLast}, cmp.Compare[int])
	assert.True(t, psort.IsSorted(data))
}

func TestPriorityQueueOrder(t *testing.T) {
	r := newRanges(PriorityQueue)
	for _, b := range []int{30, 10, 20} {
		r.push(span{b, b + 1})
	}

	var got []int
	for r.len() > 0 {
		got = append(got, r.pop().begin)
	}
	assert.Equal(t, []int{10, 20, 30}, got)
}

func TestLIFOContainers(t *testing.T) {
	for _, c := range []Container{Stack, Vector} {
		r := newRanges(c)
		for _, b := range []int{1, 2, 3} {
			r.push(span{b, b})
		}
		var got []int
		for r.len() > 0 {
			got = append(got, r.pop().begin)
		}
		assert.Equalf(t, []int{3, 2, 1}, got, "%v is not LIFO", c)
	}
}

func TestContainerString(t *testing.T) {
	assert.Equal(t, "stack", Stack.String())
	assert.Equal(t, "vector", Vector.String())
	assert.Equal(t, "priority-queue", PriorityQueue.String())
	assert.Equal(t, "Container(9)", Container(9).String())
}
