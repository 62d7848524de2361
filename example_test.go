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

package enumx_test

import (
	"errors"
	"fmt"

	"dirpx.dev/enumx"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
)

func Example() {
	levels := enumx.MustNew(
		enumx.Def(Debug, "DEBUG", 10),
		enumx.Def(Info, "INFO", 20),
		enumx.Def(Warn, "WARN", 30),
	)

	for name, v := range levels.ToDict().All() {
		fmt.Println(name, v)
	}

	v, _ := levels.Get("TRACE")
	fmt.Println("fallback:", v)
	fmt.Println("default:", levels.GetOr("TRACE", 0))

	// Output:
	// DEBUG 10
	// INFO 20
	// WARN 30
	// fallback: 10
	// default: 0
}

func ExampleMap() {
	levels := enumx.MustNew(
		enumx.Def(Debug, "DEBUG", 10),
		enumx.Def(Info, "INFO", 20),
		enumx.Def(Warn, "WARN", 30),
	)

	colors, err := enumx.Map(levels, map[Level]string{
		Debug: "gray",
		Info:  "blue",
		Warn:  "yellow",
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(colors.Keys(), colors.Values())

	_, err = enumx.Map(levels, map[Level]string{Debug: "gray"})
	fmt.Println(errors.Is(err, enumx.ErrMissingKeys), err)

	// Output:
	// [DEBUG INFO WARN] [gray blue yellow]
	// true enumx(enumx_test.Level): missing keys: INFO, WARN
}
