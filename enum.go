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
	"reflect"

	"github.com/ecodeclub/ekit/slice"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/internal/typename"
)

// Member is one (key, name, value) triple of an enum.
// Key is the Go constant identifying the member.
type Member[K comparable, V any] struct {
	Key   K
	Name  string
	Value V
}

// Def declares a member. It is shorthand for a Member literal.
func Def[K comparable, V any](key K, name string, value V) Member[K, V] {
	return Member[K, V]{Key: key, Name: name, Value: value}
}

// Enum is an immutable, ordered set of members with dictionary-like helpers.
// All methods are safe for concurrent use.
type Enum[K comparable, V any] struct {
	name    string
	cfg     apis.Config
	members []Member[K, V]
	byName  map[string]int
	byKey   map[K]int
}

var _ apis.Enumeration = (*Enum[int, int])(nil)

// New builds an enum from members in declaration order using the global
// configuration. The enum is not registered; see Define.
func New[K comparable, V any](members ...Member[K, V]) (*Enum[K, V], error) {
	return NewWithConfig(Config(), members...)
}

// MustNew is like New but panics on error.
func MustNew[K comparable, V any](members ...Member[K, V]) *Enum[K, V] {
	e, err := New(members...)
	if err != nil {
		panic(err)
	}
	return e
}

// NewWithConfig builds an enum that uses cfg instead of the global configuration.
func NewWithConfig[K comparable, V any](cfg apis.Config, members ...Member[K, V]) (*Enum[K, V], error) {
	e := &Enum[K, V]{
		name:    typename.For[K](),
		cfg:     cfg,
		members: make([]Member[K, V], 0, len(members)),
		byName:  make(map[string]int, len(members)),
		byKey:   make(map[K]int, len(members)),
	}
	for _, m := range members {
		if m.Name == "" {
			return nil, fmt.Errorf("%w: enum %s, key %v", ErrEmptyName, e.name, m.Key)
		}
		if _, ok := e.byName[m.Name]; ok {
			return nil, fmt.Errorf("%w: enum %s, name %q", ErrDuplicateName, e.name, m.Name)
		}
		if _, ok := e.byKey[m.Key]; ok {
			return nil, fmt.Errorf("%w: enum %s, key %v", ErrDuplicateMember, e.name, m.Key)
		}
		e.byName[m.Name] = len(e.members)
		e.byKey[m.Key] = len(e.members)
		e.members = append(e.members, m)
	}
	return e, nil
}

// Name returns the diagnostic name of the enum, derived from K ("pkg.Type").
func (e *Enum[K, V]) Name() string { return e.name }

// String implements fmt.Stringer.
func (e *Enum[K, V]) String() string {
	return fmt.Sprintf("%s%v", e.name, e.Names())
}

// Config returns the configuration captured at construction.
func (e *Enum[K, V]) Config() apis.Config { return e.cfg }

// Len returns the number of members.
func (e *Enum[K, V]) Len() int { return len(e.members) }

// Members returns a copy of the members in declaration order.
func (e *Enum[K, V]) Members() []Member[K, V] {
	return append([]Member[K, V](nil), e.members...)
}

// Names returns member names in declaration order.
func (e *Enum[K, V]) Names() []string {
	return slice.Map(e.members, func(_ int, m Member[K, V]) string {
		return m.Name
	})
}

// Values returns member values in declaration order.
func (e *Enum[K, V]) Values() []V {
	return slice.Map(e.members, func(_ int, m Member[K, V]) V {
		return m.Value
	})
}

// Keys returns member keys in declaration order.
func (e *Enum[K, V]) Keys() []K {
	return slice.Map(e.members, func(_ int, m Member[K, V]) K {
		return m.Key
	})
}

// ToDict exports the members as an ordered name-to-value snapshot.
func (e *Enum[K, V]) ToDict() *Dict[V] {
	d := NewDict[V](len(e.members))
	for _, m := range e.members {
		d.Set(m.Name, m.Value)
	}
	return d
}

// InitialMember returns the first-declared member.
func (e *Enum[K, V]) InitialMember() (Member[K, V], error) {
	if len(e.members) == 0 {
		return Member[K, V]{}, fmt.Errorf("%w: %s", ErrEmptyEnum, e.name)
	}
	return e.members[0], nil
}

// InitialKey returns the name of the first-declared member.
func (e *Enum[K, V]) InitialKey() (string, error) {
	m, err := e.InitialMember()
	return m.Name, err
}

// InitialValue returns the value of the first-declared member.
func (e *Enum[K, V]) InitialValue() (V, error) {
	m, err := e.InitialMember()
	return m.Value, err
}

// Initial is an alias for InitialValue.
func (e *Enum[K, V]) Initial() (V, error) {
	return e.InitialValue()
}

// Lookup returns the value of the member named key.
func (e *Enum[K, V]) Lookup(key string) (V, bool) {
	if i, ok := e.byName[key]; ok {
		return e.members[i].Value, true
	}
	var zero V
	return zero, false
}

// Get returns the value of the member named key. Unknown names resolve to
// the initial value, or fail with ErrUnknownKey when FallbackToInitial is off.
func (e *Enum[K, V]) Get(key string) (V, error) {
	if v, ok := e.Lookup(key); ok {
		return v, nil
	}
	if !e.cfg.FallbackToInitial {
		var zero V
		return zero, fmt.Errorf("%w: enum %s, name %q", ErrUnknownKey, e.name, key)
	}
	return e.InitialValue()
}

// GetOr returns the value of the member named key, or def.
func (e *Enum[K, V]) GetOr(key string, def V) V {
	if v, ok := e.Lookup(key); ok {
		return v
	}
	return def
}

// Has reports whether name is a member name.
func (e *Enum[K, V]) Has(name string) bool {
	_, ok := e.byName[name]
	return ok
}

// Contains reports whether k is a member key.
func (e *Enum[K, V]) Contains(k K) bool {
	_, ok := e.byKey[k]
	return ok
}

// Parse returns the member key declared under name.
func (e *Enum[K, V]) Parse(name string) (K, bool) {
	if i, ok := e.byName[name]; ok {
		return e.members[i].Key, true
	}
	var zero K
	return zero, false
}

// NameOf returns the declared name of member k.
func (e *Enum[K, V]) NameOf(k K) (string, bool) {
	if i, ok := e.byKey[k]; ok {
		return e.members[i].Name, true
	}
	return "", false
}

// ValueOf returns the value of member k.
func (e *Enum[K, V]) ValueOf(k K) (V, bool) {
	if i, ok := e.byKey[k]; ok {
		return e.members[i].Value, true
	}
	var zero V
	return zero, false
}

// NameOfAny implements apis.Enumeration.
func (e *Enum[K, V]) NameOfAny(k any) (string, bool) {
	kk, ok := k.(K)
	if !ok {
		return "", false
	}
	return e.NameOf(kk)
}

// keyType returns the reflect.Type of K, used as the registry key.
func (e *Enum[K, V]) keyType() reflect.Type {
	return reflect.TypeFor[K]()
}
