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

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// tracker counts elements settled into their final position during one
// sort call. Workers stop once settled reaches target or the run is aborted.
type tracker struct {
	target  int64
	_       cpu.CacheLinePad
	settled atomic.Int64
	_       cpu.CacheLinePad
	aborted atomic.Bool
}

func newTracker(target int) *tracker {
	return &tracker{target: int64(target)}
}

// done reports whether workers should stop.
func (t *tracker) done() bool {
	return t.settled.Load() >= t.target || t.aborted.Load()
}

// add records k newly settled elements. It reports whether this call brought
// the count to target, and false with overshoot set if the count passed it.
func (t *tracker) add(k int) (reached, overshoot bool) {
	if k == 0 {
		return false, false
	}
	n := t.settled.Add(int64(k))
	return n == t.target, n > t.target
}

func (t *tracker) abort() {
	t.aborted.Store(true)
}

func (t *tracker) load() int64 {
	return t.settled.Load()
}
