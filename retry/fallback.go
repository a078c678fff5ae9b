// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/retryware/httpr/request"
	"github.com/retryware/httpr/retryafter"
)

// A ConditionalWaiter is a wait strategy that may decline to produce a
// wait for a given execution state, for example because the response
// carries no usable timing hint.
//
// WaitIf returns the wait and true when the strategy has an opinion,
// and false otherwise. A deliberate zero-length wait is (0, true),
// which is distinct from declining.
//
// Implementations must be safe for concurrent use by multiple
// goroutines.
type ConditionalWaiter interface {
	WaitIf(e *request.Execution) (time.Duration, bool)
}

// The ConditionalWaiterFunc type is an adapter to allow the use of
// ordinary functions as conditional waiters.
type ConditionalWaiterFunc func(e *request.Execution) (time.Duration, bool)

// WaitIf calls f(e).
func (f ConditionalWaiterFunc) WaitIf(e *request.Execution) (time.Duration, bool) {
	return f(e)
}

// WithFallback chains a conditional wait strategy with a fallback.
// The returned Waiter consults primary first; whenever primary
// declines, the result is exactly what fallback returns for the same
// execution state.
func WithFallback(primary ConditionalWaiter, fallback Waiter) Waiter {
	if primary == nil {
		panic("httpr/retry: nil primary waiter")
	}
	if fallback == nil {
		panic("httpr/retry: nil fallback waiter")
	}
	return fallbackWaiter{primary: primary, fallback: fallback}
}

type fallbackWaiter struct {
	primary  ConditionalWaiter
	fallback Waiter
}

func (w fallbackWaiter) Wait(e *request.Execution) time.Duration {
	if d, ok := w.primary.WaitIf(e); ok {
		return d
	}
	return w.fallback.Wait(e)
}

// NewHeaderWaiter constructs a conditional waiter that derives the
// wait from a response header containing either a number of seconds or
// an HTTP-date, as parsed by retryafter.Parse. Derived waits are
// clamped to [0, max].
//
// The waiter declines when the most recent attempt produced no
// response, the header is absent, or its value cannot be parsed, so
// it is normally composed with a backoff strategy via WithFallback.
func NewHeaderWaiter(header string, max time.Duration) ConditionalWaiter {
	if header == "" {
		panic("httpr/retry: empty header name")
	}
	if max <= 0 {
		panic("httpr/retry: max must be positive")
	}
	return ConditionalWaiterFunc(func(e *request.Execution) (time.Duration, bool) {
		h := e.Header()
		if h == nil {
			return 0, false
		}
		return retryafter.Parse(h.Get(header), time.Now(), max)
	})
}

// NewRetryAfterWaiter constructs a Waiter that honors the standard
// Retry-After response header, clamped to retryafter.DefaultMax, and
// falls back to the given strategy when the header is absent or
// unusable.
func NewRetryAfterWaiter(fallback Waiter) Waiter {
	return WithFallback(NewHeaderWaiter("Retry-After", retryafter.DefaultMax), fallback)
}
