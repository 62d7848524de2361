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
	"fmt"
	"sort"

	"github.com/ecodeclub/ekit/mapx"
	"go.uber.org/multierr"
)

// ValidateMappingKeys checks that the key set of mapping equals the member
// names of e. It returns (true, nil) only on an exact match.
//
// Missing member names are reported in declaration order, unknown keys in
// sorted order. Both checks always run; with AggregateKeyErrors the two
// failures are combined into one error, otherwise the missing-keys failure
// wins. The mapping is only read.
func ValidateMappingKeys[K comparable, V, T any](e *Enum[K, V], mapping map[string]T) (bool, error) {
	var missing []string
	for _, m := range e.members {
		if _, ok := mapping[m.Name]; !ok {
			missing = append(missing, m.Name)
		}
	}

	var extra []string
	for _, k := range mapx.Keys(mapping) {
		if !e.Has(k) {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)

	var missingErr, extraErr error
	if len(missing) > 0 {
		missingErr = &KeysError{Enum: e.name, Reason: ErrMissingKeys, Keys: missing}
	}
	if len(extra) > 0 {
		extraErr = &KeysError{Enum: e.name, Reason: ErrExtraKeys, Keys: extra}
	}

	switch {
	case missingErr == nil && extraErr == nil:
		return true, nil
	case e.cfg.AggregateKeyErrors:
		return false, multierr.Combine(missingErr, extraErr)
	case missingErr != nil:
		return false, missingErr
	default:
		return false, extraErr
	}
}

// GetIn looks up key in a name-keyed mapping that must cover exactly the
// members of e. Unknown keys resolve to the mapping's entry for the initial
// member, or fail with ErrUnknownKey when FallbackToInitial is off.
func GetIn[K comparable, V, T any](e *Enum[K, V], mapping map[string]T, key string) (T, error) {
	var zero T
	if _, err := ValidateMappingKeys(e, mapping); err != nil {
		return zero, err
	}
	if v, ok := mapping[key]; ok {
		return v, nil
	}
	if !e.cfg.FallbackToInitial {
		return zero, fmt.Errorf("%w: enum %s, name %q", ErrUnknownKey, e.name, key)
	}
	initial, err := e.InitialKey()
	if err != nil {
		return zero, err
	}
	return mapping[initial], nil
}

// GetInOr is like GetIn but falls back to def for unknown keys.
func GetInOr[K comparable, V, T any](e *Enum[K, V], mapping map[string]T, key string, def T) (T, error) {
	if _, err := ValidateMappingKeys(e, mapping); err != nil {
		var zero T
		return zero, err
	}
	if v, ok := mapping[key]; ok {
		return v, nil
	}
	return def, nil
}

// Map renames a member-keyed mapping into an ordered name-keyed Dict.
//
// Every key of keyMapping must be a member of e (ErrNotMember otherwise),
// and every member must be present (ErrMissingKeys otherwise). The result
// follows declaration order; neither e nor keyMapping is modified.
func Map[K comparable, V, T any](e *Enum[K, V], keyMapping map[K]T) (*Dict[T], error) {
	var strangers []string
	for k := range keyMapping {
		if !e.Contains(k) {
			strangers = append(strangers, fmt.Sprintf("%v", k))
		}
	}
	if len(strangers) > 0 {
		sort.Strings(strangers)
		return nil, &KeysError{Enum: e.name, Reason: ErrNotMember, Keys: strangers}
	}

	out := NewDict[T](len(keyMapping))
	for _, m := range e.members {
		if v, ok := keyMapping[m.Key]; ok {
			out.Set(m.Name, v)
		}
	}

	if _, err := ValidateMappingKeys(e, out.vals); err != nil {
		return nil, err
	}
	return out, nil
}
