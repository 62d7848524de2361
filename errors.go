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
	"errors"
	"strings"
)

var (
	// ErrEmptyEnum is returned when an operation needs the initial member
	// of an enum that has none.
	ErrEmptyEnum = errors.New("enumx: empty enumeration")
	// ErrEmptyName is returned when a member is defined with an empty name.
	ErrEmptyName = errors.New("enumx: empty member name")
	// ErrDuplicateName is returned when two members share a name.
	ErrDuplicateName = errors.New("enumx: duplicate member name")
	// ErrDuplicateMember is returned when two members share a key.
	ErrDuplicateMember = errors.New("enumx: duplicate member key")
	// ErrUnknownKey is returned by lookups without a fallback.
	ErrUnknownKey = errors.New("enumx: unknown key")
	// ErrInterfaceKey is returned when registering an enum whose key type
	// is an interface.
	ErrInterfaceKey = errors.New("enumx: enum key type must be concrete")
	// ErrNotRegistered is returned when no enum is registered for a key type.
	ErrNotRegistered = errors.New("enumx: enum not registered")

	// ErrKeyMismatch is the parent of every mapping-key validation failure.
	ErrKeyMismatch = errors.New("enumx: mapping keys do not match members")
	// ErrMissingKeys reports member names absent from a mapping.
	ErrMissingKeys = &mismatch{msg: "missing keys"}
	// ErrExtraKeys reports mapping keys that are not member names.
	ErrExtraKeys = &mismatch{msg: "extra keys"}
	// ErrNotMember reports remapping keys that are not members of the enum.
	ErrNotMember = &mismatch{msg: "keys are not members"}
)

// mismatch is a sentinel kind that also matches ErrKeyMismatch.
type mismatch struct {
	msg string
}

func (m *mismatch) Error() string { return "enumx: " + m.msg }

func (m *mismatch) Unwrap() error { return ErrKeyMismatch }

// KeysError carries the offending keys of a mapping validation failure.
//
// Reason is one of ErrMissingKeys, ErrExtraKeys or ErrNotMember, so callers
// match with errors.Is and read Keys via errors.As.
type KeysError struct {
	// Enum is the diagnostic name of the enum.
	Enum string
	// Reason is the sentinel describing the failure kind.
	Reason error
	// Keys lists the offending names or keys.
	Keys []string
}

func (e *KeysError) Error() string {
	var b strings.Builder
	b.WriteString("enumx(")
	b.WriteString(e.Enum)
	b.WriteString("): ")
	if m, ok := e.Reason.(*mismatch); ok {
		b.WriteString(m.msg)
	} else if e.Reason != nil {
		b.WriteString(e.Reason.Error())
	}
	b.WriteString(": ")
	b.WriteString(strings.Join(e.Keys, ", "))
	return b.String()
}

func (e *KeysError) Unwrap() error { return e.Reason }
