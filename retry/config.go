// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"errors"
	"fmt"
	"time"

	"github.com/retryware/httpr/classify"
	"github.com/retryware/httpr/retryafter"
)

// DefaultAttempts is the total number of attempts NewTransientPolicy
// allows unless WithMaxAttempts says otherwise: the initial attempt
// plus two retries.
const DefaultAttempts = 3

// An Option adjusts the configuration consumed by NewTransientPolicy.
type Option func(*config)

type config struct {
	maxAttempts int
	maxElapsed  time.Duration
	waitMax     time.Duration

	retryRateLimited   bool
	retryServerErrors  bool
	retryNetworkErrors bool
	retryTimeouts      bool

	serverErrorCodes []int
	networkErrors    []classify.Matcher
	timeoutErrors    []classify.Matcher

	waitRateLimited   Waiter
	waitServerErrors  Waiter
	waitNetworkErrors Waiter
	waitTimeouts      Waiter
}

// WithMaxAttempts caps the total number of attempts, including the
// initial attempt and any retries. The default is DefaultAttempts.
func WithMaxAttempts(n int) Option {
	return func(c *config) { c.maxAttempts = n }
}

// WithMaxElapsed stops retrying once the plan execution has been
// running for at least d. Zero, the default, means no elapsed-time
// limit.
func WithMaxElapsed(d time.Duration) Option {
	return func(c *config) { c.maxElapsed = d }
}

// WithWaitMax sets the clamp ceiling for waits derived from response
// timing headers. The default is retryafter.DefaultMax.
func WithWaitMax(d time.Duration) Option {
	return func(c *config) { c.waitMax = d }
}

// WithRateLimited enables or disables retrying rate-limited (429)
// responses. Enabled by default.
func WithRateLimited(enabled bool) Option {
	return func(c *config) { c.retryRateLimited = enabled }
}

// WithServerErrors enables or disables retrying server error
// responses. Enabled by default.
func WithServerErrors(enabled bool) Option {
	return func(c *config) { c.retryServerErrors = enabled }
}

// WithNetworkErrors enables or disables retrying network errors.
// Enabled by default.
func WithNetworkErrors(enabled bool) Option {
	return func(c *config) { c.retryNetworkErrors = enabled }
}

// WithTimeouts enables or disables retrying timeouts. Enabled by
// default.
func WithTimeouts(enabled bool) Option {
	return func(c *config) { c.retryTimeouts = enabled }
}

// WithServerErrorCodes overrides the status codes categorized as
// server errors. The default is classify.DefaultServerErrorCodes.
func WithServerErrorCodes(codes ...int) Option {
	codes2 := make([]int, len(codes))
	copy(codes2, codes)
	return func(c *config) { c.serverErrorCodes = codes2 }
}

// WithNetworkErrorMatchers overrides the error matchers that
// categorize an attempt error as a network error. The default is
// classify.DefaultNetworkErrors.
func WithNetworkErrorMatchers(ms ...classify.Matcher) Option {
	ms2 := make([]classify.Matcher, len(ms))
	copy(ms2, ms)
	return func(c *config) { c.networkErrors = ms2 }
}

// WithTimeoutMatchers overrides the error matchers that categorize an
// attempt error as a timeout. The default is
// classify.DefaultTimeoutErrors.
func WithTimeoutMatchers(ms ...classify.Matcher) Option {
	ms2 := make([]classify.Matcher, len(ms))
	copy(ms2, ms)
	return func(c *config) { c.timeoutErrors = ms2 }
}

// WithRateLimitedWaiter overrides the wait strategy used for
// rate-limited responses. The default honors the Retry-After header
// and falls back to jittered exponential backoff.
func WithRateLimitedWaiter(w Waiter) Option {
	return func(c *config) { c.waitRateLimited = w }
}

// WithServerErrorWaiter overrides the wait strategy used for server
// error responses. The default honors the Retry-After header, since
// servers may legitimately rate-limit via 5xx responses too, and falls
// back to jittered exponential backoff.
func WithServerErrorWaiter(w Waiter) Option {
	return func(c *config) { c.waitServerErrors = w }
}

// WithNetworkErrorWaiter overrides the wait strategy used for network
// errors. The default is plain exponential backoff without jitter.
func WithNetworkErrorWaiter(w Waiter) Option {
	return func(c *config) { c.waitNetworkErrors = w }
}

// WithTimeoutWaiter overrides the wait strategy used for timeouts. The
// default is jittered exponential backoff.
func WithTimeoutWaiter(w Waiter) Option {
	return func(c *config) { c.waitTimeouts = w }
}

// NewTransientPolicy assembles a retry policy for transient HTTP
// failures with sensible defaults.
//
// With no options, the policy allows three total attempts and retries
// rate-limited responses (429), server errors (500, 502, 503, 504),
// network errors, and timeouts. Rate-limited and server error
// responses wait per the Retry-After header when one is present and
// usable, clamped to the configured wait ceiling; otherwise, and for
// timeouts, the wait is jittered exponential backoff. Network errors
// wait with plain exponential backoff.
//
// Configuration problems are reported here, at construction, never at
// first use. An error is returned if the attempt cap is less than one,
// the wait ceiling is not positive, the elapsed-time limit is
// negative, or every outcome category is disabled.
//
// The returned policy is immutable and safe for concurrent use by
// multiple goroutines.
func NewTransientPolicy(opts ...Option) (Policy, error) {
	c := config{
		maxAttempts:        DefaultAttempts,
		waitMax:            retryafter.DefaultMax,
		retryRateLimited:   true,
		retryServerErrors:  true,
		retryNetworkErrors: true,
		retryTimeouts:      true,
	}
	for _, opt := range opts {
		opt(&c)
	}

	if c.maxAttempts < 1 {
		return nil, fmt.Errorf("httpr/retry: max attempts must be at least 1, got %d", c.maxAttempts)
	}
	if c.maxElapsed < 0 {
		return nil, fmt.Errorf("httpr/retry: max elapsed time must not be negative, got %v", c.maxElapsed)
	}
	if c.waitMax <= 0 {
		return nil, fmt.Errorf("httpr/retry: wait ceiling must be positive, got %v", c.waitMax)
	}
	if !c.retryRateLimited && !c.retryServerErrors && !c.retryNetworkErrors && !c.retryTimeouts {
		return nil, errors.New("httpr/retry: no outcome category enabled")
	}

	cls := classify.Classifier{
		ServerErrorCodes: c.serverErrorCodes,
		NetworkErrors:    c.networkErrors,
		TimeoutErrors:    c.timeoutErrors,
	}

	headerThenBackoff := func() Waiter {
		return WithFallback(NewHeaderWaiter("Retry-After", c.waitMax), defaultJitterBackoff())
	}

	table := make(map[classify.Category]Waiter)
	var cats []classify.Category
	enable := func(cat classify.Category, override Waiter, def func() Waiter) {
		cats = append(cats, cat)
		if override != nil {
			table[cat] = override
		} else {
			table[cat] = def()
		}
	}
	if c.retryRateLimited {
		enable(classify.RateLimited, c.waitRateLimited, headerThenBackoff)
	}
	if c.retryServerErrors {
		enable(classify.ServerError, c.waitServerErrors, headerThenBackoff)
	}
	if c.retryNetworkErrors {
		enable(classify.NetworkError, c.waitNetworkErrors, defaultPlainBackoff)
	}
	if c.retryTimeouts {
		enable(classify.Timeout, c.waitTimeouts, defaultJitterBackoff)
	}

	decider := Times(c.maxAttempts - 1)
	if c.maxElapsed > 0 {
		decider = decider.And(Before(c.maxElapsed))
	}
	decider = decider.And(Categories(cls, cats...))

	return NewPolicy(decider, NewCategoryWaiter(cls, table)), nil
}

func defaultJitterBackoff() Waiter {
	return NewExpWaiter(50*time.Millisecond, 1*time.Second, time.Now())
}

func defaultPlainBackoff() Waiter {
	return NewExpWaiter(50*time.Millisecond, 1*time.Second, nil)
}
