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
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/ajroetker/go-parsort/psort"
	"github.com/ajroetker/go-parsort/psort/contrib/ratio"
)

// Element kinds understood by the runner.
const (
	ElementsInt   = "int"
	ElementsRatio = "ratio"
)

// DefaultRatioDelay is the per-comparison delay used for ratio scenarios
// that do not set one.
const DefaultRatioDelay = 100 * time.Microsecond

// Scenario describes one sort to run. A scenario with MaxWorkers > 0 is a
// sweep over 1..MaxWorkers workers instead of a single check.
type Scenario struct {
	Name       string        `yaml:"name" json:"name"`
	Elements   string        `yaml:"elements" json:"elements"`
	Size       int           `yaml:"size" json:"size"`
	Workers    int           `yaml:"workers,omitempty" json:"workers,omitempty"`
	MaxWorkers int           `yaml:"max_workers,omitempty" json:"max_workers,omitempty"`
	Delay      time.Duration `yaml:"delay,omitempty" json:"delay,omitempty"`
	Pivot      string        `yaml:"pivot,omitempty" json:"pivot,omitempty"`
	Idle       string        `yaml:"idle,omitempty" json:"idle,omitempty"`
}

// IsSweep reports whether s measures a range of worker counts.
func (s Scenario) IsSweep() bool {
	return s.MaxWorkers > 0
}

// WorkersLabel renders the worker count, or the swept range.
func (s Scenario) WorkersLabel() string {
	if s.IsSweep() {
		return fmt.Sprintf("1..%d", s.MaxWorkers)
	}
	return fmt.Sprintf("%d", s.Workers)
}

// Validate checks that s can be run.
func (s Scenario) Validate() error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, errors.New("missing name"))
	}
	if s.Elements != ElementsInt && s.Elements != ElementsRatio {
		errs = append(errs, fmt.Errorf("elements %q: must be %q or %q", s.Elements, ElementsInt, ElementsRatio))
	}
	if s.Size < 0 {
		errs = append(errs, fmt.Errorf("size %d: must be >= 0", s.Size))
	}
	if s.Workers < 1 && !s.IsSweep() {
		errs = append(errs, fmt.Errorf("workers %d: must be >= 1", s.Workers))
	}
	if s.Delay < 0 {
		errs = append(errs, fmt.Errorf("delay %v: must be >= 0", s.Delay))
	}
	if _, err := parsePivot(s.Pivot); err != nil {
		errs = append(errs, err)
	}
	if _, err := parseIdle(s.Idle); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return nil
}

func parsePivot(s string) (psort.PivotStrategy, error) {
	switch s {
	case "", psort.PivotMedianOfFive.String():
		return psort.PivotMedianOfFive, nil
	case psort.PivotLast.String():
		return psort.PivotLast, nil
	}
	return 0, fmt.Errorf("pivot %q: must be %q or %q", s, psort.PivotMedianOfFive, psort.PivotLast)
}

func parseIdle(s string) (psort.IdleStrategy, error) {
	switch s {
	case "", psort.IdleWait.String():
		return psort.IdleWait, nil
	case psort.IdleSpin.String():
		return psort.IdleSpin, nil
	}
	return 0, fmt.Errorf("idle %q: must be %q or %q", s, psort.IdleWait, psort.IdleSpin)
}

// BuiltinScenarios returns the default scenario table.
func BuiltinScenarios() []Scenario {
	return []Scenario{
		{Name: "int-200-w1", Elements: ElementsInt, Size: 200, Workers: 1},
		{Name: "int-200-w2", Elements: ElementsInt, Size: 200, Workers: 2},
		{Name: "int-20000-w4", Elements: ElementsInt, Size: 20000, Workers: 4},
		{Name: "int-20000-w8", Elements: ElementsInt, Size: 20000, Workers: 8},
		{Name: "ratio-100-w1", Elements: ElementsRatio, Size: 100, Workers: 1},
		{Name: "ratio-100-w2", Elements: ElementsRatio, Size: 100, Workers: 2},
		{Name: "ratio-100-w4", Elements: ElementsRatio, Size: 100, Workers: 4},
		{Name: "ratio-100-w8", Elements: ElementsRatio, Size: 100, Workers: 8},
		{Name: "ratio-200-w1", Elements: ElementsRatio, Size: 200, Workers: 1},
		{Name: "ratio-200-w2", Elements: ElementsRatio, Size: 200, Workers: 2},
		{Name: "ratio-200-w4", Elements: ElementsRatio, Size: 200, Workers: 4},
		{Name: "ratio-200-w200", Elements: ElementsRatio, Size: 200, Workers: 200},
		{Name: "ratio-200-sweep", Elements: ElementsRatio, Size: 200, MaxWorkers: 199},
	}
}

// Outcome is the result of one timed sort.
type Outcome struct {
	Workers int           `json:"workers"`
	Sorted  bool          `json:"sorted"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// SweepReport collects the outcomes of a sweep.
type SweepReport struct {
	RunID    string    `json:"run_id"`
	Scenario string    `json:"scenario"`
	Cores    int       `json:"cores"`
	Results  []Outcome `json:"results"`
	Fastest  Outcome   `json:"fastest"`
}

// Runner executes scenarios. Every sort gets a fresh shuffled input drawn
// from a generator seeded with Seed.
type Runner struct {
	Seed   int64
	Logger *slog.Logger

	rng *rand.Rand
}

// NewRunner creates a Runner. A zero seed is replaced by the clock.
func NewRunner(seed int64, logger *slog.Logger) *Runner {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{Seed: seed, Logger: logger, rng: rand.New(rand.NewSource(seed))}
}

// Check runs s once with the given worker count.
func (r *Runner) Check(s Scenario, workers int) (Outcome, error) {
	if err := s.Validate(); err != nil {
		return Outcome{}, err
	}
	pivot, _ := parsePivot(s.Pivot)
	idle, _ := parseIdle(s.Idle)

	switch s.Elements {
	case ElementsInt:
		data := make([]int, s.Size)
		for i := range data {
			data[i] = i
		}
		r.shuffle(len(data), func(i, j int) { data[i], data[j] = data[j], data[i] })
		sorter := psort.Sorter[int]{
			Compare: cmp.Compare[int],
			Pivot:   psort.Pivot{Strategy: pivot},
			Idle:    idle,
			Logger:  r.Logger,
		}
		return timeSort(&sorter, data, workers, psort.IsSorted[int])

	default:
		delay := s.Delay
		if delay == 0 {
			delay = DefaultRatioDelay
		}
		data := ratio.Reciprocals(s.Size)
		r.shuffle(len(data), func(i, j int) { data[i], data[j] = data[j], data[i] })
		sorter := psort.Sorter[ratio.Ratio]{
			Compare: ratio.SlowCompare(delay),
			Pivot:   psort.Pivot{Strategy: pivot},
			Idle:    idle,
			Logger:  r.Logger,
		}
		return timeSort(&sorter, data, workers, func(d []ratio.Ratio) bool {
			return psort.IsSortedFunc(d, ratio.Compare)
		})
	}
}

// Sweep runs s once for every worker count in 1..s.MaxWorkers and reports
// the fastest.
func (r *Runner) Sweep(s Scenario) (*SweepReport, error) {
	if !s.IsSweep() {
		return nil, fmt.Errorf("scenario %q is not a sweep", s.Name)
	}

	report := &SweepReport{
		RunID:    uuid.Must(uuid.NewV7()).String(),
		Scenario: s.Name,
		Cores:    runtime.NumCPU(),
	}
	for workers := 1; workers <= s.MaxWorkers; workers++ {
		out, err := r.Check(s, workers)
		if err != nil {
			return nil, err
		}
		if !out.Sorted {
			return nil, fmt.Errorf("scenario %q with %d workers produced unsorted output", s.Name, workers)
		}
		r.Logger.Debug("sweep step", "run_id", report.RunID, "workers", workers, "elapsed", out.Elapsed)
		report.Results = append(report.Results, out)
	}

	report.Fastest = lo.MinBy(report.Results, func(a, b Outcome) bool {
		return a.Elapsed < b.Elapsed
	})
	return report, nil
}

func (r *Runner) shuffle(n int, swap func(i, j int)) {
	r.rng.Shuffle(n, swap)
}

func timeSort[T any](s *psort.Sorter[T], data []T, workers int, sorted func([]T) bool) (Outcome, error) {
	start := time.Now()
	if err := s.Sort(data, 0, len(data), workers); err != nil {
		return Outcome{}, err
	}
	elapsed := time.Since(start)
	return Outcome{Workers: workers, Sorted: sorted(data), Elapsed: elapsed}, nil
}
