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

package apis

import "reflect"

// Registry maps enum key types to the enumerations that describe them.
// Keep it minimal so implementations can be lock-free or sync.Map-backed.
type Registry interface {
	// Register associates the key type t with enumeration e.
	// Implementations must be idempotent for the same (type, enum) pair.
	Register(t reflect.Type, e Enumeration) error
	// Lookup returns the enumeration registered for t, if any.
	Lookup(t reflect.Type) (e Enumeration, ok bool)
	// Entries returns a snapshot for diagnostics/docs, sorted by enum name.
	Entries() []Entry
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// Entry is a single (type, enum) association in a Registry snapshot.
type Entry struct {
	// Type is the registered key type.
	Type reflect.Type
	// Enum is the associated enumeration.
	Enum Enumeration
}
