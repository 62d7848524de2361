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

// Package enumx augments Go enumerations with dictionary-like helpers.
//
// Go has no reflective enum facility, so an enumeration is declared as a
// registration table over typed constants. Each member pairs a key (the
// constant), a declared name and a value of arbitrary type:
//
//	type Color int
//
//	const (
//		Red Color = iota
//		Green
//		Blue
//	)
//
//	var Colors = enumx.MustDefine(
//		enumx.Def(Red, "RED", 1),
//		enumx.Def(Green, "GREEN", 2),
//		enumx.Def(Blue, "BLUE", 3),
//	)
//
// # Operations
//
//   - Export: Colors.ToDict() returns an ordered name-to-value Dict. Every
//     call builds a new snapshot; mutating it never affects the enum.
//
//   - Initial member: InitialKey, InitialValue and its alias Initial return
//     the first-declared member's name or value, or ErrEmptyEnum.
//
//   - Lookup with fallback: Get(name) returns the member value or the
//     initial value; GetOr(name, def) falls back to def. GetIn and GetInOr
//     do the same over a caller-supplied name-keyed map after validating it.
//
//   - Validation: ValidateMappingKeys(e, m) succeeds only when the keys of m
//     are exactly the member names. Failures are *KeysError values matching
//     ErrMissingKeys or ErrExtraKeys (both match ErrKeyMismatch).
//
//   - Remapping: Map(e, m) turns a member-keyed map into a name-keyed Dict,
//     rejecting non-members (ErrNotMember) and incomplete maps (ErrMissingKeys).
//
// # Global state
//
// Like its configuration, the registry of defined enums is process-wide and
// published as an immutable snapshot through an atomic pointer. Define
// registers an enum under its key type so NameOf(Red) and Of[Color, int]()
// work anywhere in the process. Config, Lookup, Of and NameOf are lock-free;
// registry Count and Entries take a short lock, and writers (SetConfig,
// SetRegistry, SetAll) are serialized by a mutex.
//
// Member keys must be concrete types: Register and Define reject an
// interface K with ErrInterfaceKey, since NameOf resolves by dynamic type.
//
// Enums themselves are immutable after construction and safe for
// concurrent use. Caller-supplied maps are only read, never retained.
package enumx
