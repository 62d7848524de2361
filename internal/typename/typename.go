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

// Package typename derives stable "pkg.Type" names for enum key types.
package typename

import (
	"path"
	"reflect"
	"strings"
	"sync"
)

// maxUnwrap bounds container unwrapping (ptr/slice/array).
const maxUnwrap = 8

// cache memoizes resolved names by type.
var cache sync.Map // key: reflect.Type, val: string

// Of returns the domain-oriented name of t, e.g. "color.Color".
// Pointers, slices and arrays are unwrapped to the nearest named type and
// generic instantiation parameters are stripped. Builtin types keep their
// bare name ("int"). Anonymous types resolve to t.String().
func Of(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if v, ok := cache.Load(t); ok {
		return v.(string)
	}
	name := resolve(t)
	cache.Store(t, name)
	return name
}

// For returns the name of the type parameter T.
func For[T any]() string {
	return Of(reflect.TypeFor[T]())
}

func resolve(t reflect.Type) string {
	base := t
	for i := 0; i < maxUnwrap && base.Name() == ""; i++ {
		switch base.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Array:
			base = base.Elem()
		default:
			return t.String()
		}
	}
	if base.Name() == "" {
		return t.String()
	}

	name := stripTypeParams(base.Name())
	if p := base.PkgPath(); p != "" {
		name = path.Base(p) + "." + name
	}
	return name
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
