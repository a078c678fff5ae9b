// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"time"

	"github.com/retryware/httpr/request"
)

// A Policy directs how the executing client sets the timeout on each
// individual request attempt, including retries.
//
// Implementations of Policy must be safe for concurrent use by
// multiple goroutines.
type Policy interface {
	// Timeout returns the timeout to set on the next request attempt,
	// given the current state of the plan execution.
	Timeout(e *request.Execution) time.Duration
}

// DefaultPolicy is the default timeout policy. It sets a fixed timeout
// of 5 seconds on each attempt.
var DefaultPolicy Policy = Fixed(5 * time.Second)

// Infinite is a built-in timeout policy which never times out.
var Infinite Policy = Fixed(1<<63 - 1)

// Fixed constructs a timeout policy that sets the same timeout d on
// every attempt. This is the typical timeout behavior supported by
// most retrying HTTP client software.
func Fixed(d time.Duration) Policy {
	return policy([]time.Duration{d})
}

// Adaptive constructs a timeout policy that varies the next timeout
// value when the previous attempt timed out.
//
// Use Adaptive if the remote service often exhibits one-off slow
// response times that are cured by quickly timing out and retrying,
// but you also need to protect against retry storms when the service
// goes through a burst of general slowness.
//
// Parameter usual is the timeout for the initial attempt and for any
// retry whose preceding attempt did not time out. Parameter after
// contains the timeouts used when the preceding attempt did time out:
// after the first timeout of the execution, after[0]; after the
// second, after[1]; and so on, sticking at the last element once
// exhausted.
//
// For example, Adaptive(200*time.Millisecond, time.Second,
// 10*time.Second) uses 200 milliseconds normally, 1 second after the
// execution's first timeout, and 10 seconds after any further timeout.
func Adaptive(usual time.Duration, after ...time.Duration) Policy {
	p := make([]time.Duration, 1, 1+len(after))
	p[0] = usual
	return policy(append(p, after...))
}

type policy []time.Duration

func (p policy) Timeout(e *request.Execution) time.Duration {
	if !e.Timeout() {
		return p[0]
	}

	i := e.AttemptTimeouts
	if i > len(p)-1 {
		i = len(p) - 1
	}

	return p[i]
}
