// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package classify

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"syscall"
)

// A Matcher reports whether an error belongs to an error-kind set. The
// built-in matchers examine wrapped cause errors contained within err,
// not just err itself.
//
// Matchers must be pure functions safe for concurrent use.
type Matcher func(err error) bool

// DefaultNetworkErrors returns the matchers the zero-value Classifier
// uses for the NetworkError category: connect, read and write errors,
// plus truncated response bodies.
func DefaultNetworkErrors() []Matcher {
	return []Matcher{ConnectError, ReadError, WriteError, UnexpectedEOF}
}

// DefaultTimeoutErrors returns the matchers the zero-value Classifier
// uses for the Timeout category.
func DefaultTimeoutErrors() []Matcher {
	return []Matcher{TimeoutError}
}

var (
	defaultNetworkErrors = DefaultNetworkErrors()
	defaultTimeoutErrors = DefaultTimeoutErrors()
)

// ConnectError matches errors raised while establishing a connection:
// a net.OpError from a "dial" operation, or a connection-refused or
// connection-reset errno anywhere in the cause chain.
func ConnectError(err error) bool {
	if opError(err, "dial") {
		return true
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == syscall.ECONNREFUSED || errno == syscall.ECONNRESET
	}
	return false
}

// ReadError matches errors raised while reading from an established
// connection (a net.OpError from a "read" operation).
func ReadError(err error) bool {
	return opError(err, "read")
}

// WriteError matches errors raised while writing to an established
// connection: a net.OpError from a "write" operation, or a broken-pipe
// errno anywhere in the cause chain.
func WriteError(err error) bool {
	if opError(err, "write") {
		return true
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == syscall.EPIPE
	}
	return false
}

// UnexpectedEOF matches a response body that ended before the declared
// or chunked encoding was complete.
func UnexpectedEOF(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF)
}

// TimeoutError matches client-side timeouts: any error in the cause
// chain with a Timeout method reporting true (net.Error, poll deadline
// errors), a context deadline, or ETIMEDOUT.
//
// TimeoutError never checks whether an error reports Temporary() true,
// as the semantics of Temporary are not well defined.
func TimeoutError(err error) bool {
	var t interface{ Timeout() bool }
	if errors.As(err, &t) && t.Timeout() {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var errno syscall.Errno
	return errors.As(err, &errno) && errno == syscall.ETIMEDOUT
}

func opError(err error, op string) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return opErr.Op == op
	}
	return false
}
