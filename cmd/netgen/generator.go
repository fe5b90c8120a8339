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

package main

import (
	"bytes"
	"fmt"

	"golang.org/x/tools/imports"
)

// Network is a fixed sequence of compare-and-swap steps on Size positions.
type Network struct {
	Size  int
	Pairs [][2]int

	// Indexed also emits sort<Size>At, which applies the network to
	// arbitrary positions of a slice.
	Indexed bool
}

// Networks are the size-optimal comparator sequences for 2 to 5 inputs.
var Networks = []Network{
	{Size: 2, Pairs: [][2]int{{0, 1}}},
	{Size: 3, Pairs: [][2]int{{0, 1}, {1, 2}, {0, 1}}},
	{Size: 4, Pairs: [][2]int{{0, 1}, {2, 3}, {0, 2}, {1, 3}, {1, 2}}},
	{
		Size: 5,
		Pairs: [][2]int{
			{0, 1}, {3, 4}, {2, 4}, {2, 3}, {0, 3}, {0, 2}, {1, 4}, {1, 3}, {1, 2},
		},
		Indexed: true,
	},
}

// Validate reports an error unless n sorts every 0/1 input of its size.
func (n Network) Validate() error {
	for _, p := range n.Pairs {
		if p[0] < 0 || p[1] >= n.Size || p[0] >= p[1] {
			return fmt.Errorf("network %d: bad comparator %v", n.Size, p)
		}
	}
	for bits := 0; bits < 1<<n.Size; bits++ {
		v := make([]int, n.Size)
		for i := range v {
			v[i] = (bits >> i) & 1
		}
		for _, p := range n.Pairs {
			if v[p[1]] < v[p[0]] {
				v[p[0]], v[p[1]] = v[p[1]], v[p[0]]
			}
		}
		for i := 1; i < len(v); i++ {
			if v[i] < v[i-1] {
				return fmt.Errorf("network %d does not sort input %0*b", n.Size, n.Size, bits)
			}
		}
	}
	return nil
}

// Generate returns formatted Go source declaring Sort<N> for every network
// and sort<N>At for indexed ones.
func Generate(filename, pkg string, networks []Network) ([]byte, error) {
	for _, n := range networks {
		if err := n.Validate(); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by netgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	for _, n := range networks {
		fmt.Fprintf(&buf, "// Sort%d sorts a slice of exactly %d elements in place.\n", n.Size, n.Size)
		fmt.Fprintf(&buf, "func Sort%d[T any](data []T, cmp func(a, b T) int) {\n", n.Size)
		fmt.Fprintf(&buf, "\t_ = data[%d]\n", n.Size-1)
		for _, p := range n.Pairs {
			fmt.Fprintf(&buf, "\tcompareSwap(data, %d, %d, cmp)\n", p[0], p[1])
		}
		fmt.Fprintf(&buf, "}\n\n")
	}

	for _, n := range networks {
		if !n.Indexed {
			continue
		}
		fmt.Fprintf(&buf, "// sort%dAt sorts the %d elements at positions idx in place, so that\n", n.Size, n.Size)
		fmt.Fprintf(&buf, "// data[idx[0]] <= data[idx[1]] <= ... <= data[idx[%d]].\n", n.Size-1)
		fmt.Fprintf(&buf, "func sort%dAt[T any](data []T, idx *[%d]int, cmp func(a, b T) int) {\n", n.Size, n.Size)
		for _, p := range n.Pairs {
			fmt.Fprintf(&buf, "\tcompareSwap(data, idx[%d], idx[%d], cmp)\n", p[0], p[1])
		}
		fmt.Fprintf(&buf, "}\n\n")
	}

	src, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", filename, err)
	}
	return src, nil
}
