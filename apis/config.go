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

// Config carries read-only knobs that influence enum lookups and validation.
// It is passed by value and captured by an enum at construction time.
type Config struct {
	// AggregateKeyErrors controls how mapping validation reports a mapping
	// that is both missing member names and carrying unknown keys.
	// If true, both failures are combined into a single error; otherwise
	// only the missing-keys failure is returned.
	AggregateKeyErrors bool

	// FallbackToInitial controls what name-based lookups return for an
	// unknown name when no explicit default is given. If true, they fall
	// back to the initial (first-declared) member; otherwise they fail.
	FallbackToInitial bool
}
