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
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML scenario file.
//
//	scenarios:
//	  - name: int-1m-w8
//	    elements: int
//	    size: 1000000
//	    workers: 8
//	  - name: slow-ratios
//	    elements: ratio
//	    size: 200
//	    max_workers: 32
//	    delay: 50us
type Config struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadConfig reads and validates a scenario file.
func LoadConfig(path string) ([]Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(raw)
}

// ParseConfig decodes and validates scenario YAML.
func ParseConfig(raw []byte) ([]Scenario, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if len(cfg.Scenarios) == 0 {
		return nil, fmt.Errorf("parse config: no scenarios defined")
	}
	for _, s := range cfg.Scenarios {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	return cfg.Scenarios, nil
}
