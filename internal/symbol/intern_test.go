// This file is part of ray - https://github.com/ray-lang/ray
//
// Copyright 2026 The Ray Authors
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

package symbol

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternIdempotent(t *testing.T) {
	in := New()
	a := in.Intern("foo")
	b := in.Intern("foo")
	require.Same(t, a, b, "interning the same bytes twice must return the same pointer")
	assert.NotSame(t, a, in.Intern("bar"), "distinct names must intern to distinct pointers")
}

func TestInternEqualsByteWise(t *testing.T) {
	in := New()
	assert.Equal(t, in.Intern("abc").ID(), in.Intern("abc").ID())
	assert.NotEqual(t, in.Intern("abc").ID(), in.Intern("abd").ID())
}

func TestLookupWithoutInterning(t *testing.T) {
	in := New()
	_, ok := in.Lookup("missing")
	assert.False(t, ok)
	in.Intern("present")
	sym, ok := in.Lookup("present")
	require.True(t, ok)
	assert.Equal(t, "present", sym.String())
}

func TestInternConcurrent(t *testing.T) {
	in := New()
	const workers = 32
	results := make([][]*Symbol, workers)
	var wg sync.WaitGroup
	names := []string{"alpha", "beta", "gamma", "delta"}
	for w := 0; w < workers; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := make([]*Symbol, len(names))
			for i, n := range names {
				out[i] = in.Intern(n)
			}
			results[w] = out
		}()
	}
	wg.Wait()
	for i := range names {
		for w := 1; w < workers; w++ {
			assert.Same(t, results[0][i], results[w][i], "symbol %q must intern to one pointer across goroutines", names[i])
		}
	}
}
