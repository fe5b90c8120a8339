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
	"encoding/json"
	"io"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	_, err := execute(t, "list", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestRootCommand_MissingConfig(t *testing.T) {
	_, err := execute(t, "list", "--config", "testdata/does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestListCommand_Golden(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	newGoldie(t).Assert(t, "list", []byte(out))
}

func TestListCommand_ConfigGolden(t *testing.T) {
	out, err := execute(t, "list", "--config", "testdata/scenarios.yaml")
	require.NoError(t, err)

	newGoldie(t).Assert(t, "list_config", []byte(out))
}

func TestListCommand_JSON(t *testing.T) {
	out, err := execute(t, "list", "--format", "json")
	require.NoError(t, err)

	var scenarios []Scenario
	require.NoError(t, json.Unmarshal([]byte(out), &scenarios))
	assert.Equal(t, BuiltinScenarios(), scenarios)
}

func TestRunCommand_OK(t *testing.T) {
	for _, idx := range []string{"0", "1", "3"} {
		out, err := execute(t, "run", idx, "--seed", "7")
		require.NoErrorf(t, err, "run %s", idx)
		assert.Equal(t, "OK\n", out)
	}
}

func TestRunCommand_JSON(t *testing.T) {
	out, err := execute(t, "run", "2", "--seed", "7", "--format", "json")
	require.NoError(t, err)

	var got Outcome
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Sorted)
	assert.Equal(t, 4, got.Workers)
}

func TestRunCommand_BadIndex(t *testing.T) {
	_, err := execute(t, "run", "13")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")

	_, err = execute(t, "run", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scenario index")

	_, err = execute(t, "run")
	assert.Error(t, err, "run requires an index")
}

func TestSweepCommand(t *testing.T) {
	out, err := execute(t, "sweep",
		"--elements", "int", "--size", "500", "--max-workers", "3", "--seed", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Number of cores")
	assert.Contains(t, out, "workers: 1 running time:")
	assert.Contains(t, out, "workers: 3 running time:")
	assert.Contains(t, out, "fastest workers:")
}

func TestSweepCommand_JSON(t *testing.T) {
	out, err := execute(t, "sweep",
		"--elements", "ratio", "--size", "30", "--max-workers", "4", "--delay", "1us",
		"--format", "json")
	require.NoError(t, err)

	var report SweepReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "sweep", report.Scenario)
	assert.NotEmpty(t, report.RunID)
	require.Len(t, report.Results, 4)
	assert.Contains(t, report.Results, report.Fastest)
}

func TestSweepCommand_InvalidElements(t *testing.T) {
	_, err := execute(t, "sweep", "--elements", "float", "--max-workers", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `elements "float"`)
}

func TestBaselineCommand(t *testing.T) {
	out, err := execute(t, "baseline", "--size", "2000", "--workers", "4", "--format", "json")
	require.NoError(t, err)

	var timings []Timing
	require.NoError(t, json.Unmarshal([]byte(out), &timings))
	require.Len(t, timings, 6)
	for _, tm := range timings {
		assert.Truef(t, tm.Sorted, "%s did not sort", tm.Method)
	}
	assert.Equal(t, "recursive", timings[0].Method)
	assert.Equal(t, "parallel/4", timings[5].Method)
}

func TestBaselineCommand_Text(t *testing.T) {
	out, err := execute(t, "baseline", "--size", "100", "--pivot", "last")
	require.NoError(t, err)
	assert.Contains(t, out, "iterative/priority-queue")
	assert.Contains(t, out, "sorted=true")
	assert.NotContains(t, out, "sorted=false")
}
