// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package retryafter parses server-supplied retry timing hints, such
// as the value of a Retry-After response header, into concrete wait
// durations.
package retryafter

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultMax is the clamp ceiling applied to header-derived waits when
// no other ceiling is configured. A server asking for a longer wait is
// assumed to be misconfigured rather than obeyed.
const DefaultMax = 120 * time.Second

// Parse converts a retry timing hint into a wait duration.
//
// Per RFC 9110 §10.2.3, value is either a non-negative integer number
// of seconds or an HTTP-date indicating when the request may be
// retried. A date is converted to a duration relative to now; a date
// in the past produces a zero wait, never a negative one. Either form
// is clamped to [0, max].
//
// The second return value reports whether a wait could be derived.
// An empty or malformed value yields (0, false), meaning no hint, so
// the caller can fall back to another strategy.
func Parse(value string, now time.Time, max time.Duration) (time.Duration, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	if secs, err := strconv.Atoi(value); err == nil {
		if secs < 0 {
			return 0, false
		}
		return clamp(time.Duration(secs)*time.Second, max), true
	}

	// http.ParseTime accepts the three date formats RFC 9110 obliges
	// recipients to accept.
	t, err := http.ParseTime(value)
	if err != nil {
		return 0, false
	}
	return clamp(t.Sub(now), max), true
}

func clamp(d, max time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	if d > max {
		return max
	}
	return d
}
