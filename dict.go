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

package enumx

import (
	"iter"
	"reflect"
	"slices"
)

// Dict is an ordered name-to-value mapping exported from an enum.
//
// A Dict is a snapshot: it owns its storage, so Set and Delete never reach
// back into the enum or into other snapshots. Iteration follows insertion
// order, which for exported dicts is the enum's declaration order.
// The zero value is an empty Dict ready to use.
// A Dict is not safe for concurrent mutation.
type Dict[V any] struct {
	keys []string
	vals map[string]V
}

// NewDict returns an empty Dict with room for size entries.
func NewDict[V any](size int) *Dict[V] {
	return &Dict[V]{
		keys: make([]string, 0, size),
		vals: make(map[string]V, size),
	}
}

// Len returns the number of entries.
func (d *Dict[V]) Len() int { return len(d.keys) }

// Keys returns the keys in order.
func (d *Dict[V]) Keys() []string { return slices.Clone(d.keys) }

// Values returns the values in key order.
func (d *Dict[V]) Values() []V {
	out := make([]V, 0, len(d.keys))
	for _, k := range d.keys {
		out = append(out, d.vals[k])
	}
	return out
}

// Get returns the value stored under key.
func (d *Dict[V]) Get(key string) (V, bool) {
	v, ok := d.vals[key]
	return v, ok
}

// GetOr returns the value stored under key, or def.
func (d *Dict[V]) GetOr(key string, def V) V {
	if v, ok := d.vals[key]; ok {
		return v
	}
	return def
}

// Has reports whether key is present.
func (d *Dict[V]) Has(key string) bool {
	_, ok := d.vals[key]
	return ok
}

// Set stores v under key. New keys are appended at the end.
func (d *Dict[V]) Set(key string, v V) {
	if d.vals == nil {
		d.vals = make(map[string]V)
	}
	if _, ok := d.vals[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = v
}

// Delete removes key. It reports whether the key was present.
func (d *Dict[V]) Delete(key string) bool {
	if _, ok := d.vals[key]; !ok {
		return false
	}
	delete(d.vals, key)
	d.keys = slices.DeleteFunc(d.keys, func(k string) bool { return k == key })
	return true
}

// Range calls fn for each entry in order until fn returns false.
func (d *Dict[V]) Range(fn func(key string, v V) bool) {
	for _, k := range d.keys {
		if !fn(k, d.vals[k]) {
			return
		}
	}
}

// All returns an iterator over entries in order.
func (d *Dict[V]) All() iter.Seq2[string, V] {
	return d.Range
}

// Map returns the entries as a new plain map. Order is lost.
func (d *Dict[V]) Map() map[string]V {
	out := make(map[string]V, len(d.keys))
	for _, k := range d.keys {
		out[k] = d.vals[k]
	}
	return out
}

// Clone returns an independent copy of d. Values are copied shallowly.
func (d *Dict[V]) Clone() *Dict[V] {
	out := NewDict[V](len(d.keys))
	for _, k := range d.keys {
		out.Set(k, d.vals[k])
	}
	return out
}

// Equal reports whether d and other hold the same keys in the same order
// with deeply equal values.
func (d *Dict[V]) Equal(other *Dict[V]) bool {
	if d == nil || other == nil {
		return d == other
	}
	if !slices.Equal(d.keys, other.keys) {
		return false
	}
	for _, k := range d.keys {
		if !reflect.DeepEqual(d.vals[k], other.vals[k]) {
			return false
		}
	}
	return true
}
