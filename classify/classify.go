// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package classify

import "net/http"

// A Category is the failure category of a single HTTP request attempt
// outcome, as reported by Categorize.
//
// The category NonRetryable means a retry of the attempt is very
// unlikely to succeed. All other categories indicate a transient
// condition where a retry has some prospect of success.
type Category int

const (
	// NonRetryable indicates an outcome that is not worth retrying:
	// a successful response, a client error other than 429, or an
	// error outside the configured network-error and timeout sets. It
	// is the default category.
	NonRetryable Category = iota
	// RateLimited indicates the server answered 429 Too Many Requests.
	//
	// Classification is driven by the status code alone. A Retry-After
	// header on any other status never reclassifies the outcome as
	// RateLimited; the header only influences wait computation.
	RateLimited
	// ServerError indicates the server answered with a status code in
	// the classifier's server-error set, by default 500, 502, 503 and
	// 504.
	ServerError
	// NetworkError indicates the attempt failed with a transport
	// error matched by the classifier's network-error set: by default
	// connect, read and write errors, and truncated (unexpected EOF)
	// response bodies.
	NetworkError
	// Timeout indicates a client-side timeout, whether from a
	// connection deadline, a request context deadline, or any error
	// reporting Timeout() true.
	Timeout
)

var categoryNames = []string{
	"NonRetryable",
	"RateLimited",
	"ServerError",
	"NetworkError",
	"Timeout",
}

// String returns the name of the category.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Category(?)"
	}
	return categoryNames[c]
}

// DefaultServerErrorCodes lists the status codes the zero-value
// Classifier treats as ServerError.
var DefaultServerErrorCodes = []int{
	http.StatusInternalServerError,
	http.StatusBadGateway,
	http.StatusServiceUnavailable,
	http.StatusGatewayTimeout,
}

// A Classifier assigns a Category to the outcome of an HTTP request
// attempt. The zero value uses the default rule sets and is ready to
// use.
//
// A Classifier is immutable once constructed and is safe for
// concurrent use by multiple goroutines.
type Classifier struct {
	// ServerErrorCodes is the set of response status codes categorized
	// as ServerError. If nil, DefaultServerErrorCodes is used.
	ServerErrorCodes []int

	// NetworkErrors is the set of matchers that categorize an attempt
	// error as NetworkError. If nil, DefaultNetworkErrors() is used.
	NetworkErrors []Matcher

	// TimeoutErrors is the set of matchers that categorize an attempt
	// error as Timeout. If nil, DefaultTimeoutErrors() is used.
	TimeoutErrors []Matcher
}

// Categorize returns the category of an attempt outcome using the
// default classifier. It is shorthand for Classifier{}.Categorize.
func Categorize(resp *http.Response, err error) Category {
	return Classifier{}.Categorize(resp, err)
}

// Categorize returns the category of an attempt outcome. The outcome
// is either a raised error (err non-nil; resp is ignored) or a
// completed response.
//
// Classification is total: every outcome maps to exactly one category,
// with NonRetryable as the default. It is a pure function of the
// outcome and the classifier's rule sets, so categorizing the same
// outcome twice yields the same category.
//
// Timeout matchers are consulted before network-error matchers: in Go
// a dial timeout is both a connect error and a timeout, and the
// timeout reading wins.
func (c Classifier) Categorize(resp *http.Response, err error) Category {
	if err != nil {
		return c.categorizeErr(err)
	}
	if resp == nil {
		return NonRetryable
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return RateLimited
	}
	codes := c.ServerErrorCodes
	if codes == nil {
		codes = DefaultServerErrorCodes
	}
	for _, code := range codes {
		if resp.StatusCode == code {
			return ServerError
		}
	}
	return NonRetryable
}

func (c Classifier) categorizeErr(err error) Category {
	timeouts := c.TimeoutErrors
	if timeouts == nil {
		timeouts = defaultTimeoutErrors
	}
	for _, m := range timeouts {
		if m(err) {
			return Timeout
		}
	}

	network := c.NetworkErrors
	if network == nil {
		network = defaultNetworkErrors
	}
	for _, m := range network {
		if m(err) {
			return NetworkError
		}
	}

	return NonRetryable
}
