// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/retryware/httpr/classify"
	"github.com/retryware/httpr/request"
)

// A Decider decides if a retry should be done.
//
// Implementations of Decider must be safe for concurrent use by
// multiple goroutines.
//
// Use the built-in constructors Times, StatusCode, Before, and
// Categories, or implement your own Decider. Use DeciderFunc to
// convert an ordinary function into a Decider and to compose deciders
// logically with DeciderFunc.And and DeciderFunc.Or.
type Decider interface {
	Decide(e *request.Execution) bool
}

// The DeciderFunc type is an adapter to allow the use of ordinary
// functions as retry deciders. It implements the Decider interface,
// and also provides the logical composition methods And and Or.
//
// Every DeciderFunc must be safe for concurrent use by multiple
// goroutines.
type DeciderFunc func(e *request.Execution) bool

// DefaultTimes is the number of retries DefaultPolicy will allow, for
// a total of three attempts.
const DefaultTimes = 2

// DefaultDecider is a general-purpose retry decider suitable for
// common use cases. It allows up to DefaultTimes retries, and retries
// any outcome the default classifier finds transient: a 429 response,
// a server error (500, 502, 503, 504), a network error, or a timeout.
var DefaultDecider = Times(DefaultTimes).And(Transient)

// Transient is a decider that indicates a retry whenever the default
// classifier assigns the current attempt outcome any category other
// than NonRetryable.
//
// Compose it with Times or Before to bound the number of retries it
// allows.
var Transient = Categories(classify.Classifier{},
	classify.RateLimited, classify.ServerError, classify.NetworkError, classify.Timeout)

// Decide returns true if a retry should be done, and false otherwise,
// after examining the current plan execution state.
func (f DeciderFunc) Decide(e *request.Execution) bool {
	return f(e)
}

// And composes two retry deciders into a new decider which returns
// true if both sub-deciders return true, and false otherwise.
//
// Short-circuit logic is used, so g is not evaluated if f returns
// false.
func (f DeciderFunc) And(g DeciderFunc) DeciderFunc {
	return func(e *request.Execution) bool {
		return f(e) && g(e)
	}
}

// Or composes two retry deciders into a new decider which returns
// true if either of the two sub-deciders returns true, but false if
// they both return false.
//
// Short-circuit logic is used, so g is not evaluated if f returns
// true.
func (f DeciderFunc) Or(g DeciderFunc) DeciderFunc {
	return func(e *request.Execution) bool {
		return f(e) || g(e)
	}
}

// Times constructs a retry decider which allows up to n retries. The
// returned decider returns true while the execution attempt index
// e.Attempt is less than n, and false otherwise.
func Times(n int) DeciderFunc {
	return func(e *request.Execution) bool {
		return e.Attempt < n
	}
}

// Before constructs a retry decider allowing retries until a certain
// amount of time has elapsed since the start of the plan execution.
// The returned decider returns true while the execution duration is
// less than d, and false afterward.
func Before(d time.Duration) DeciderFunc {
	return func(e *request.Execution) bool {
		return e.Duration() < d
	}
}

// StatusCode constructs a retry decider allowing retries based on the
// HTTP response status code. If the most recent attempt received a
// valid HTTP response and the status code is contained in ss, the
// decider returns true. Otherwise it returns false.
func StatusCode(ss ...int) DeciderFunc {
	ss2 := make([]int, len(ss))
	copy(ss2, ss)
	return func(e *request.Execution) bool {
		for _, s := range ss2 {
			if e.StatusCode() == s {
				return true
			}
		}
		return false
	}
}

// Categories constructs a retry decider allowing retries based on the
// failure category of the most recent attempt outcome. The returned
// decider returns true if cls assigns the outcome one of the listed
// categories.
func Categories(cls classify.Classifier, cats ...classify.Category) DeciderFunc {
	cats2 := make([]classify.Category, len(cats))
	copy(cats2, cats)
	return func(e *request.Execution) bool {
		cat := cls.Categorize(e.Response, e.Err)
		for _, want := range cats2 {
			if cat == want {
				return true
			}
		}
		return false
	}
}
