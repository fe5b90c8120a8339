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
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
)

// errScenarioFailed is returned after a scenario printed "Failed".
var errScenarioFailed = errors.New("scenario failed")

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <index>",
		Short: "Run one scenario from the table",
		Long: `Run the scenario at the given index of the table (see "psortbench list").

A check scenario sorts a shuffled input and prints OK or Failed.
A sweep scenario times one sort per worker count and reports the fastest.

Example:
  psortbench run 2
  psortbench run 12 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid scenario index %q: %w", args[0], err)
			}
			if idx < 0 || idx >= len(rootOpts.Scenarios) {
				return fmt.Errorf("scenario index %d out of range [0, %d)", idx, len(rootOpts.Scenarios))
			}
			return runScenario(cmd, rootOpts, rootOpts.Scenarios[idx])
		},
	}
}

func runScenario(cmd *cobra.Command, opts *RootOptions, s Scenario) error {
	w := cmd.OutOrStdout()
	runner := NewRunner(opts.Seed, slog.Default())
	slog.Info("running scenario", "name", s.Name, "seed", runner.Seed)

	if s.IsSweep() {
		report, err := runner.Sweep(s)
		if err != nil {
			return err
		}
		if opts.Format == "json" {
			return writeJSON(w, report)
		}
		writeSweepText(w, report)
		return nil
	}

	out, err := runner.Check(s, s.Workers)
	if err != nil {
		return err
	}
	if opts.Format == "json" {
		if err := writeJSON(w, out); err != nil {
			return err
		}
	} else if out.Sorted {
		fmt.Fprintln(w, "OK")
	} else {
		fmt.Fprintln(w, "Failed")
	}
	if !out.Sorted {
		return errScenarioFailed
	}
	return nil
}
