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
	"encoding/json"
	"fmt"
	"io"
	"time"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

// micros renders d as whole microseconds.
func micros(d time.Duration) int64 {
	return d.Microseconds()
}

func writeSweepText(w io.Writer, report *SweepReport) {
	fmt.Fprintf(w, "Number of cores %d\n", report.Cores)
	for _, out := range report.Results {
		fmt.Fprintf(w, "workers: %d running time: %dus\n", out.Workers, micros(out.Elapsed))
	}
	fmt.Fprintf(w, "fastest workers: %d running time: %dus\n", report.Fastest.Workers, micros(report.Fastest.Elapsed))
}
