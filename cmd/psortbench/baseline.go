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
	"cmp"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-parsort/psort"
	"github.com/ajroetker/go-parsort/psort/contrib/baseline"
)

// BaselineOptions holds flags for the baseline command.
type BaselineOptions struct {
	*RootOptions
	Size    int
	Workers int
	Pivot   string
}

// Timing is the running time of one sorting method.
type Timing struct {
	Method  string        `json:"method"`
	Sorted  bool          `json:"sorted"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// NewBaselineCommand creates the baseline command.
func NewBaselineCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BaselineOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Compare the parallel sort with the single-threaded baselines",
		Long: `Sort the same shuffled integers with the recursive quicksort, the iterative
quicksort over each container, slices.Sort, and the parallel sort.

Example:
  psortbench baseline --size 1000000 --workers 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pivot, err := parsePivot(opts.Pivot)
			if err != nil {
				return err
			}
			if opts.Workers <= 0 {
				opts.Workers = runtime.GOMAXPROCS(0)
			}
			runner := NewRunner(opts.Seed, slog.Default())
			timings, err := runner.Baselines(opts.Size, opts.Workers, psort.Pivot{Strategy: pivot})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.Format == "json" {
				return writeJSON(w, timings)
			}
			for _, t := range timings {
				fmt.Fprintf(w, "%-24s sorted=%-5v %dus\n", t.Method, t.Sorted, micros(t.Elapsed))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Size, "size", 1_000_000, "number of elements")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "workers for the parallel sort (0 = GOMAXPROCS)")
	cmd.Flags().StringVar(&opts.Pivot, "pivot", "", "pivot strategy (median-of-five|last)")

	return cmd
}

// Baselines times every sorting method on copies of one shuffled input.
func (r *Runner) Baselines(size, workers int, pivot psort.Pivot) ([]Timing, error) {
	ref := make([]int, size)
	for i := range ref {
		ref[i] = i
	}
	r.shuffle(len(ref), func(i, j int) { ref[i], ref[j] = ref[j], ref[i] })

	methods := []method{
		{"recursive", func(d []int) error {
			baseline.Recursive(d, 0, len(d), pivot, cmp.Compare[int])
			return nil
		}},
		{"iterative/" + baseline.Stack.String(), iterative(baseline.Stack, pivot)},
		{"iterative/" + baseline.Vector.String(), iterative(baseline.Vector, pivot)},
		{"iterative/" + baseline.PriorityQueue.String(), iterative(baseline.PriorityQueue, pivot)},
		{"slices.Sort", func(d []int) error {
			slices.Sort(d)
			return nil
		}},
		{fmt.Sprintf("parallel/%d", workers), func(d []int) error {
			s := psort.Sorter[int]{Compare: cmp.Compare[int], Pivot: pivot, Logger: r.Logger}
			return s.Sort(d, 0, len(d), workers)
		}},
	}

	timings := make([]Timing, 0, len(methods))
	for _, m := range methods {
		data := slices.Clone(ref)
		start := time.Now()
		if err := m.sort(data); err != nil {
			return nil, fmt.Errorf("%s: %w", m.name, err)
		}
		timings = append(timings, Timing{Method: m.name, Sorted: psort.IsSorted(data), Elapsed: time.Since(start)})
	}
	return timings, nil
}

type method struct {
	name string
	sort func([]int) error
}

func iterative(c baseline.Container, pivot psort.Pivot) func([]int) error {
	return func(d []int) error {
		baseline.Iterative(d, 0, len(d), c, pivot, cmp.Compare[int])
		return nil
	}
}
