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

package config

import (
	"dirpx.dev/enumx/apis"
)

const (
	// DefaultAggregateKeyErrors represents the default for AggregateKeyErrors.
	// When true, missing and extra keys are reported together.
	DefaultAggregateKeyErrors = true
	// DefaultFallbackToInitial represents the default for FallbackToInitial.
	// When true, unknown names resolve to the first-declared member.
	DefaultFallbackToInitial = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		AggregateKeyErrors: DefaultAggregateKeyErrors,
		FallbackToInitial:  DefaultFallbackToInitial,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithAggregateKeyErrors sets the AggregateKeyErrors option.
func WithAggregateKeyErrors(aggregate bool) Option {
	return func(c *apis.Config) {
		c.AggregateKeyErrors = aggregate
	}
}

// WithFallbackToInitial sets the FallbackToInitial option.
func WithFallbackToInitial(fallback bool) Option {
	return func(c *apis.Config) {
		c.FallbackToInitial = fallback
	}
}
