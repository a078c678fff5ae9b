// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"net/http"
	"time"

	"github.com/retryware/httpr/classify"
)

// An Execution represents the state of a single Plan execution.
//
// When a plan execution is requested, an Execution is created for it,
// updated as the execution progresses (a response arrives, an attempt
// fails, a retry begins), and ultimately returned as the result of the
// execution.
//
// Retry and timeout policies and event handlers may attach values to an
// Execution using SetValue and read them back using Value. They should
// otherwise treat the exported fields as immutable, as the execution
// state drives the retry loop.
type Execution struct {
	// Plan specifies the request plan being executed. It is never nil.
	Plan *Plan

	// Start is the time the plan execution started. It is set once,
	// when the execution starts, and is constant thereafter.
	Start time.Time

	// End is the time the plan execution ended. It is the zero time
	// until the execution ends.
	End time.Time

	// Attempt is the zero-based number of the current request attempt:
	// zero on the initial attempt, one on the first retry, and so on.
	//
	// After the execution ends, Attempt holds the number of the last
	// attempt made, so an execution that ended after the initial
	// attempt plus two retries has Attempt equal to 2.
	Attempt int

	// AttemptTimeouts counts the attempts that ended in a timeout
	// during this execution. Plan-level timeouts (the plan context's
	// own deadline) do not contribute to this counter.
	AttemptTimeouts int

	// Request is the HTTP request made, or about to be made, in the
	// current attempt.
	Request *http.Request

	// Response is the HTTP response received in the most recent
	// attempt, or nil if the attempt ended in an error, an attempt is
	// underway, or the execution has not started.
	Response *http.Response

	// Err is the error from the most recent attempt, or nil if the
	// attempt produced a response without error. Whenever Err is
	// non-nil, it has the type *url.Error.
	//
	// While the execution is in flight, Err may fluctuate between nil
	// and non-nil values. Once the execution has ended, Err is fixed
	// and equals the error returned by the executing client.
	Err error

	// Body is the fully-buffered response body from the most recent
	// attempt. It is only valid when Err is nil.
	Body []byte

	// data carries arbitrary values attached by event handlers and
	// policies. The library itself never touches it.
	data context.Context
}

// StatusCode returns the status code of the HTTP response from the
// most recent attempt, or 0 if there is no response (the attempt ended
// in error, an attempt is underway, or the execution has not started).
func (e *Execution) StatusCode() int {
	if e.Response == nil {
		return 0
	}

	return e.Response.StatusCode
}

// Header returns the HTTP response headers from the most recent
// attempt, or nil if there is no response.
//
// A nil return value is safe for read-only use, since http.Header is a
// map type.
func (e *Execution) Header() http.Header {
	if e.Response == nil {
		return nil
	}

	return e.Response.Header
}

// Duration returns the duration of the execution so far. Before the
// execution starts it is zero; after the execution ends it is fixed at
// End minus Start.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return 0
	} else if !e.Ended() {
		return time.Since(e.Start)
	}

	return e.End.Sub(e.Start)
}

// Started indicates whether the execution has started. When it returns
// true, Start is a non-zero time.
func (e *Execution) Started() bool {
	return e.Start != (time.Time{})
}

// Ended indicates whether the execution has ended. When it returns
// true, End is a non-zero time and the execution will not change
// further.
func (e *Execution) Ended() bool {
	return e.End != (time.Time{})
}

// Timeout indicates whether Err currently contains an error caused by
// a timeout, whether from an attempt timeout or from the plan's own
// deadline.
func (e *Execution) Timeout() bool {
	return classify.Categorize(e.Response, e.Err) == classify.Timeout
}

// SetValue attaches an arbitrary value to the execution.
//
// The key follows the same rules as the key parameter of
// context.WithValue: it must be comparable, must not be nil, and
// should not be of a built-in type, to avoid collisions between
// handlers.
func (e *Execution) SetValue(key, value interface{}) {
	ctx := e.data
	if ctx == nil {
		ctx = context.Background()
	}

	e.data = context.WithValue(ctx, key, value)
}

// Value returns the value associated with this execution for key, or
// nil if there is none.
func (e *Execution) Value(key interface{}) interface{} {
	ctx := e.data
	if ctx == nil {
		return nil
	}

	return ctx.Value(key)
}
