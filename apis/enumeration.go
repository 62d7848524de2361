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

// Enumeration is the type-erased view of an enum definition.
//
// Generic enums (enumx.Enum[K, V]) cannot be stored side by side in a
// registry, so the registry works against this interface. All methods must
// be safe for concurrent use; enum definitions are immutable.
type Enumeration interface {
	// Name returns the diagnostic name of the enum, usually "pkg.Type"
	// derived from the member key type.
	Name() string
	// Names returns member names in declaration order.
	Names() []string
	// Len returns the number of members.
	Len() int
	// NameOfAny returns the declared name of k if k is a member key.
	NameOfAny(k any) (string, bool)
}
