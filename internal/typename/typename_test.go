/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package typename

import (
	"reflect"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Local test types.
type Color int
type G[T any] struct{}

func TestOf(t *testing.T) {
	cases := []struct {
		name     string
		typ      reflect.Type
		expected string
	}{
		{"named", reflect.TypeOf(Color(0)), "typename.Color"},
		{"ptr", reflect.TypeOf((*Color)(nil)), "typename.Color"},
		{"slice of ptr", reflect.TypeOf([]*Color{}), "typename.Color"},
		{"array", reflect.TypeOf([2]Color{}), "typename.Color"},
		{"generic strips params", reflect.TypeOf(G[int]{}), "typename.G"},
		{"builtin", reflect.TypeOf(0), "int"},
		{"builtin string", reflect.TypeOf(""), "string"},
		{"anonymous struct", reflect.TypeOf(struct{ X int }{}), "struct { X int }"},
		{"map falls back to String", reflect.TypeOf(map[string]Color{}), "map[string]typename.Color"},
		{"nil", nil, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Of(tc.typ))
		})
	}
}

func TestFor(t *testing.T) {
	assert.Equal(t, "typename.Color", For[Color]())
	assert.Equal(t, "string", For[string]())
}

func TestOf_Concurrent(t *testing.T) {
	types := []reflect.Type{
		reflect.TypeOf(Color(0)),
		reflect.TypeOf(&G[string]{}),
		reflect.TypeOf(0),
	}
	expect := []string{"typename.Color", "typename.G", "int"}

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				idx := (i + id) % len(types)
				if got := Of(types[idx]); got != expect[idx] {
					t.Errorf("Of(%v) = %q, want %q", types[idx], got, expect[idx])
					return
				}
			}
		}(w)
	}
	wg.Wait()
}
