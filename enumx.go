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
	"sync"
	"sync/atomic"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/registry"
)

// init initializes the global state.
func init() {
	st.Store(&state{
		cfg: config.DefaultConfig(),
		reg: registry.New(),
	})
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration to cfg.
// Enums already built keep the configuration they were built with.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: cfg, reg: old.reg})
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets the global registry to reg. Nil is ignored.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: old.cfg, reg: reg})
}

// SetAll replaces the configuration and the registry in one shot.
// A nil cfg keeps the current configuration; a nil reg installs a fresh,
// empty registry. This is mainly used by tests to get a clean state.
func SetAll(cfg *apis.Config, reg apis.Registry) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}
	if reg == nil {
		reg = registry.New()
	}
	st.Store(&state{cfg: ncfg, reg: reg})
}

// Register adds e to the global registry under its key type K.
// K must be a concrete type.
func Register[K comparable, V any](e *Enum[K, V]) error {
	if e == nil {
		return registry.ErrNilEnum
	}
	if t := e.keyType(); t.Kind() == reflect.Interface {
		return fmt.Errorf("%w: %s", ErrInterfaceKey, t)
	}
	return st.Load().reg.Register(e.keyType(), e)
}

// Define builds an enum with the global configuration and registers it.
func Define[K comparable, V any](members ...Member[K, V]) (*Enum[K, V], error) {
	e, err := New(members...)
	if err != nil {
		return nil, err
	}
	if err := Register(e); err != nil {
		return nil, fmt.Errorf("enumx: define %s: %w", e.name, err)
	}
	return e, nil
}

// MustDefine is like Define but panics on error. It is meant for
// package-level var declarations.
func MustDefine[K comparable, V any](members ...Member[K, V]) *Enum[K, V] {
	e, err := Define(members...)
	if err != nil {
		panic(err)
	}
	return e
}

// Lookup returns the enumeration registered for the key type K.
func Lookup[K comparable]() (apis.Enumeration, bool) {
	return st.Load().reg.Lookup(reflect.TypeFor[K]())
}

// Of returns the typed enum registered for K. It reports false when nothing
// is registered for K or when the registered enum has a value type other than V.
func Of[K comparable, V any]() (*Enum[K, V], bool) {
	e, ok := Lookup[K]()
	if !ok {
		return nil, false
	}
	typed, ok := e.(*Enum[K, V])
	return typed, ok
}

// MustOf is like Of but panics with ErrNotRegistered when nothing matches.
func MustOf[K comparable, V any]() *Enum[K, V] {
	e, ok := Of[K, V]()
	if !ok {
		var k K
		panic(fmt.Errorf("%w: %T", ErrNotRegistered, k))
	}
	return e
}

// NameOf returns the declared name of the member constant k, looking up its
// enum in the global registry.
func NameOf(k any) (string, bool) {
	if k == nil {
		return "", false
	}
	e, ok := st.Load().reg.Lookup(reflect.TypeOf(k))
	if !ok {
		return "", false
	}
	return e.NameOfAny(k)
}

// buildMu serializes writers so we never publish partially-built snapshots.
var buildMu sync.Mutex

// st is the global state.
var st atomic.Pointer[state]

// state is the global state snapshot.
// Immutable once published via st.Store; writers create a new state.
type state struct {
	// cfg is the global configuration applied by New and Define.
	cfg apis.Config
	// reg is the global registry.
	reg apis.Registry
}
