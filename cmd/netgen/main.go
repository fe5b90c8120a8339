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

// Command netgen generates the unrolled sorting networks used by psort.
//
// Usage:
//
//	netgen -output network.gen.go -pkg psort
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/netgen -output network.gen.go
//
// Each network is checked against every 0/1 input of its size before any
// code is emitted, which by the zero-one principle proves it sorts all inputs.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "network.gen.go", "Output Go source file")
	packageOut = flag.String("pkg", "psort", "Output package name")
)

func main() {
	flag.Parse()

	src, err := Generate(*outputFile, *packageOut, Networks)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputFile, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: write %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated %d networks into %s\n", len(Networks), *outputFile)
}
