// Copyright 2025 go-highway Authors
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

package sort

import (
	"slices"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/mwc"
)

func TestHeapSort(t *testing.T) {
	rng := mwc.Rand()
	for _, n := range []int{0, 1, 2, 3, 4, 5, 16, 17, 100, 1000, 4097} {
		for _, p := range patterns {
			data := generate[int32](rng, p, n+10)
			orig := slices.Clone(data)

			want := slices.Clone(data[5 : n+5])
			slices.Sort(want)

			heapSort(data, 5, n+5)

			if !slices.Equal(data[5:n+5], want) {
				t.Fatalf("heapSort(%s, n=%d) produced wrong result", p.name, n)
			}
			assert.DeepEqual(t, data[:5], orig[:5])
			assert.DeepEqual(t, data[n+5:], orig[n+5:])
		}
	}
}

func TestPushDown(t *testing.T) {
	// A valid max-heap except at the root.
	data := []uint16{1, 9, 8, 7, 6, 5, 4}
	pushDown(data, 0, data[0], 0, len(data))
	assert.DeepEqual(t, data, []uint16{9, 7, 8, 1, 6, 5, 4})
}
