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

package registry

import (
	"errors"
	"reflect"
	"sort"
	"sync"

	"dirpx.dev/enumx/apis"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("enumx(registry): nil reflect.Type provided")
	// ErrNilEnum is returned when a nil enumeration is provided.
	ErrNilEnum = errors.New("enumx(registry): nil enumeration provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a key type with a different enumeration.
	ErrConflictingRegistration = errors.New("enumx(registry): conflicting enum registration")
)

// New constructs an empty Registry.
func New() apis.Registry {
	return &registry{}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps reflect.Type to the registered enumeration.
	m sync.Map // map[reflect.Type]apis.Enumeration
	// count tracks the number of registered entries.
	count int
}

// Register associates the key type t with e.
// It is idempotent for the same (type, enum) pair.
func (r *registry) Register(t reflect.Type, e apis.Enumeration) error {
	if t == nil {
		return ErrNilType
	}
	if isNil(e) {
		return ErrNilEnum
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(t); ok {
		if sameEnum(old.(apis.Enumeration), e) {
			return nil
		}
		return ErrConflictingRegistration
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(t); ok {
		if sameEnum(old.(apis.Enumeration), e) {
			return nil
		}
		return ErrConflictingRegistration
	}

	r.m.Store(t, e)
	r.count++
	return nil
}

// Lookup returns the enumeration registered for t.
func (r *registry) Lookup(t reflect.Type) (apis.Enumeration, bool) {
	if t == nil {
		return nil, false
	}
	if v, ok := r.m.Load(t); ok {
		return v.(apis.Enumeration), true
	}
	return nil, false
}

// Entries returns a snapshot for diagnostics/docs, sorted by enum name.
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Type: key.(reflect.Type),
			Enum: value.(apis.Enumeration),
		})
		return true
	})
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Enum.Name() < entries[j].Enum.Name()
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}

// sameEnum reports whether a and b are the same enumeration. Values of
// incomparable dynamic types are never the same.
func sameEnum(a, b apis.Enumeration) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// isNil reports whether e is nil or a typed nil pointer.
func isNil(e apis.Enumeration) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
