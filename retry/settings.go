// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings is the file form of the transient retry policy
// configuration. It mirrors the options accepted by
// NewTransientPolicy, except for the wait-strategy and error-matcher
// overrides, which are code, not data.
//
// A zero field means "use the default", so a partial document is
// valid:
//
//	max_attempts: 5
//	wait_max: 30s
//	retry_timeouts: false
type Settings struct {
	MaxAttempts int      `yaml:"max_attempts"`
	MaxElapsed  Duration `yaml:"max_elapsed"`
	WaitMax     Duration `yaml:"wait_max"`

	RetryRateLimited   *bool `yaml:"retry_rate_limited"`
	RetryServerErrors  *bool `yaml:"retry_server_errors"`
	RetryNetworkErrors *bool `yaml:"retry_network_errors"`
	RetryTimeouts      *bool `yaml:"retry_timeouts"`

	ServerErrorCodes []int `yaml:"server_error_codes"`
}

// ParseSettings decodes a YAML document into Settings. Unknown fields
// are rejected so configuration typos surface immediately.
func ParseSettings(data []byte) (*Settings, error) {
	var s Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, fmt.Errorf("httpr/retry: parse settings: %w", err)
	}
	return &s, nil
}

// Options converts the settings into the equivalent option list for
// NewTransientPolicy. Zero fields contribute no option, leaving the
// policy default in force.
func (s *Settings) Options() []Option {
	var opts []Option
	if s.MaxAttempts != 0 {
		opts = append(opts, WithMaxAttempts(s.MaxAttempts))
	}
	if s.MaxElapsed != 0 {
		opts = append(opts, WithMaxElapsed(time.Duration(s.MaxElapsed)))
	}
	if s.WaitMax != 0 {
		opts = append(opts, WithWaitMax(time.Duration(s.WaitMax)))
	}
	if s.RetryRateLimited != nil {
		opts = append(opts, WithRateLimited(*s.RetryRateLimited))
	}
	if s.RetryServerErrors != nil {
		opts = append(opts, WithServerErrors(*s.RetryServerErrors))
	}
	if s.RetryNetworkErrors != nil {
		opts = append(opts, WithNetworkErrors(*s.RetryNetworkErrors))
	}
	if s.RetryTimeouts != nil {
		opts = append(opts, WithTimeouts(*s.RetryTimeouts))
	}
	if s.ServerErrorCodes != nil {
		opts = append(opts, WithServerErrorCodes(s.ServerErrorCodes...))
	}
	return opts
}

// Policy assembles a retry policy from the settings, applying any
// additional options on top. Validation follows NewTransientPolicy.
func (s *Settings) Policy(extra ...Option) (Policy, error) {
	return NewTransientPolicy(append(s.Options(), extra...)...)
}

// Duration is a time.Duration that unmarshals from YAML in the format
// accepted by time.ParseDuration ("5s", "2m30s"), or from a bare
// number of nanoseconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var n int64
	if err := value.Decode(&n); err == nil {
		*d = Duration(n)
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("httpr/retry: invalid duration %q", value.Value)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("httpr/retry: invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
