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

import "cmp"

//go:generate go run ../cmd/netgen -output network.gen.go

// MaxNetworkSize is the largest range resolved by a sorting network.
// Ranges with more elements are partitioned.
const MaxNetworkSize = 5

// compareSwap orders data[i] and data[j] so that data[i] <= data[j].
func compareSwap[T any](data []T, i, j int, cmp func(a, b T) int) {
	if cmp(data[j], data[i]) < 0 {
		data[i], data[j] = data[j], data[i]
	}
}

// SortSmall sorts data in place with the sorting network for its length.
// Slices of length 0 or 1 are left alone. It panics if len(data) > MaxNetworkSize.
func SortSmall[T any](data []T, cmp func(a, b T) int) {
	switch len(data) {
	case 0, 1:
	case 2:
		Sort2(data, cmp)
	case 3:
		Sort3(data, cmp)
	case 4:
		Sort4(data, cmp)
	case 5:
		Sort5(data, cmp)
	default:
		panic("psort: SortSmall called with more than MaxNetworkSize elements")
	}
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T cmp.Ordered](data []T) bool {
	return IsSortedFunc(data, cmp.Compare[T])
}

// IsSortedFunc reports whether data is in non-decreasing order under cmp.
func IsSortedFunc[T any](data []T, cmp func(a, b T) int) bool {
	for i := 1; i < len(data); i++ {
		if cmp(data[i], data[i-1]) < 0 {
			return false
		}
	}
	return true
}
