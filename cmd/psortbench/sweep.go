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
	"github.com/spf13/cobra"
)

// SweepOptions holds flags for the sweep command.
type SweepOptions struct {
	*RootOptions
	Scenario Scenario
}

// NewSweepCommand creates the sweep command.
func NewSweepCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SweepOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Time one sort per worker count and report the fastest",
		Long: `Sort a freshly shuffled input once for every worker count from 1 to
--max-workers and report each running time and the fastest configuration.

Example:
  psortbench sweep --elements ratio --size 200 --max-workers 64
  psortbench sweep --elements int --size 1000000 --max-workers 16 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Scenario.Name = "sweep"
			return runScenario(cmd, opts.RootOptions, opts.Scenario)
		},
	}

	cmd.Flags().StringVar(&opts.Scenario.Elements, "elements", ElementsRatio, "element kind (int|ratio)")
	cmd.Flags().IntVar(&opts.Scenario.Size, "size", 200, "number of elements")
	cmd.Flags().IntVar(&opts.Scenario.MaxWorkers, "max-workers", 199, "largest worker count to try")
	cmd.Flags().DurationVar(&opts.Scenario.Delay, "delay", DefaultRatioDelay, "per-comparison delay for ratio elements")
	cmd.Flags().StringVar(&opts.Scenario.Pivot, "pivot", "", "pivot strategy (median-of-five|last)")
	cmd.Flags().StringVar(&opts.Scenario.Idle, "idle", "", "idle strategy (wait|spin)")

	return cmd
}
