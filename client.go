// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpr

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/retryware/httpr/request"
	"github.com/retryware/httpr/retry"
	"github.com/retryware/httpr/timeout"
)

// An HTTPDoer implements a Do method in the same manner as the Go
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the Go
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

var emptyHandlers = HandlerGroup{}

// A Client is a robust HTTP client with retry support. Its zero value
// is a valid configuration.
//
// The zero value client uses http.DefaultClient (from net/http) as
// the HTTPDoer, timeout.DefaultPolicy as the timeout policy,
// retry.DefaultPolicy as the retry policy, and an empty handler group.
//
// Client's HTTPDoer typically has internal state (cached TCP
// connections) so Client instances should be reused instead of
// created as needed. Client is safe for concurrent use by multiple
// goroutines.
//
// A Client is higher-level than an HTTPDoer. The HTTPDoer is
// responsible for the mechanics of sending one HTTP request and
// receiving the response (including redirect policy); Client drives
// the attempt/retry loop on top of it. Per attempt, Client:
// classifies the outcome through the retry policy's decider; asks the
// policy's waiter how long to sleep when a retry is warranted; sets
// the attempt timeout per the timeout policy; buffers the entire
// response body into Execution.Body; and invokes user handlers at the
// designated plug-in points.
//
// Client's HTTP methods should feel familiar to anyone who has used
// the Go standard HTTP client. The differences are that Client.Do
// consumes a request.Plan, which is suitable for making multiple
// attempts (the execution logic converts the plan into an
// http.Request per attempt), and that all of Client's methods return
// a request.Execution containing execution metadata and the buffered
// body.
type Client struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses. If nil, http.DefaultClient is used.
	HTTPDoer HTTPDoer

	// RetryPolicy decides when to retry failed attempts and how long
	// to sleep before retrying. If nil, retry.DefaultPolicy is used.
	RetryPolicy retry.Policy

	// TimeoutPolicy specifies how to set timeouts on individual
	// request attempts. If nil, timeout.DefaultPolicy is used.
	TimeoutPolicy timeout.Policy

	// Handlers allows custom handler chains to be invoked when
	// designated events occur during execution of a request plan. If
	// nil, no custom handlers run.
	Handlers *HandlerGroup
}

// Do executes an HTTP request plan and returns the results, following
// the timeout and retry policies set on Client and the low-level
// policy set on the underlying HTTPDoer.
//
// The result returned is the result of the final request attempt made
// during the plan execution, as determined by the retry policy: the
// client itself never wraps or replaces the last outcome, so whatever
// the final attempt produced, response or error, is what the caller
// observes.
//
// An error is returned only if the final attempt resulted in an error,
// whether from failure to speak HTTP, from policy in this client
// (attempt timeout), or from policy on the HTTPDoer. A non-2XX status
// code in the final attempt does not result in an error.
//
// The returned Execution is never nil. If the returned error is nil,
// the Execution contains a non-nil Response and a non-nil Body
// (possibly of zero length); otherwise Execution.Err references the
// same error. Any returned error is of type *url.Error, and its
// Timeout method reports whether the final attempt timed out or the
// whole plan timed out.
//
// For simple use cases, Get, Head, Post, and PostForm may prove easier
// to use than Do.
func (c *Client) Do(p *request.Plan) (*request.Execution, error) {
	e := request.Execution{
		Plan: p,
	}

	doer := c.doer()

	timeoutPolicy := c.TimeoutPolicy
	if timeoutPolicy == nil {
		timeoutPolicy = timeout.DefaultPolicy
	}

	retryPolicy := c.RetryPolicy
	if retryPolicy == nil {
		retryPolicy = retry.DefaultPolicy
	}

	handlers := c.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}
	handlers.run(BeforeExecutionStart, &e)
	e.Start = time.Now()

RetryLoop:
	for {
		sendAndReceive(p, &e, doer, handlers, timeoutPolicy)
		if e.Timeout() {
			e.AttemptTimeouts++
			handlers.run(AfterAttemptTimeout, &e)
		}
		handlers.run(AfterAttempt, &e)
		planCtxErr := p.Context().Err()
		if planCtxErr == context.DeadlineExceeded {
			handlers.run(AfterPlanTimeout, &e)
			break
		} else if planCtxErr != nil {
			e.Err = planCtxErr
			break
		} else if retryPolicy.Decide(&e) {
			wait := retryPolicy.Wait(&e)
			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
			case <-p.Context().Done():
				timer.Stop()
				err := p.Context().Err()
				e.Err = urlErrorWrap(p, err)
				if err == context.DeadlineExceeded {
					handlers.run(AfterPlanTimeout, &e)
				}
				break RetryLoop
			}
			e.Response = nil
			e.Err = nil
			e.Body = nil
			e.Attempt++
		} else {
			break
		}
	}

	e.End = time.Now()
	handlers.run(AfterExecutionEnd, &e)
	return &e, e.Err
}

func sendAndReceive(p *request.Plan, e *request.Execution, doer HTTPDoer, handlers *HandlerGroup, timeoutPolicy timeout.Policy) {
	ctx, cancel := context.WithTimeout(p.Context(), timeoutPolicy.Timeout(e))
	defer cancel()
	e.Request = p.ToRequest(ctx)
	handlers.run(BeforeAttempt, e)
	var err error
	e.Response, err = doer.Do(e.Request)
	if err != nil {
		e.Err = urlErrorWrap(p, err)
	} else {
		readBody(p, e, handlers)
	}
}

func readBody(p *request.Plan, e *request.Execution, handlers *HandlerGroup) {
	defer func() {
		_ = e.Response.Body.Close()
	}()
	handlers.run(BeforeReadBody, e)
	var err error
	e.Body, err = io.ReadAll(e.Response.Body)
	if err != nil {
		e.Err = urlErrorWrap(p, err)
	}
}

// Get issues a GET to the specified URL, using the same policies
// followed by Do.
//
// To make a request plan with custom headers, use request.NewPlan and
// Client.Do.
func (c *Client) Get(url string) (*request.Execution, error) {
	return Get(c, url)
}

// Head issues a HEAD to the specified URL, using the same policies
// followed by Do.
func (c *Client) Head(url string) (*request.Execution, error) {
	return Head(c, url)
}

// Post issues a POST to the specified URL, using the same policies
// followed by Do.
//
// The body parameter may be nil for an empty body, or may be any of
// the types supported by request.BodyBytes: string, []byte, io.Reader,
// or io.ReadCloser.
func (c *Client) Post(url, contentType string, body interface{}) (*request.Execution, error) {
	return Post(c, url, contentType, body)
}

// PostForm issues a POST to the specified URL, with data's keys and
// values URL-encoded as the request body.
//
// The Content-Type header is set to application/x-www-form-urlencoded.
// To set other headers, use request.NewPlan and Client.Do.
func (c *Client) PostForm(url string, data url.Values) (*request.Execution, error) {
	return PostForm(c, url, data)
}

// CloseIdleConnections invokes the same method on the client's
// underlying HTTPDoer, if the HTTPDoer has one; otherwise it does
// nothing.
func (c *Client) CloseIdleConnections() {
	doer := c.doer()
	if ic, ok := doer.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (c *Client) doer() HTTPDoer {
	if c.HTTPDoer == nil {
		return http.DefaultClient
	}

	return c.HTTPDoer
}

func urlErrorWrap(p *request.Plan, err error) error {
	if _, ok := err.(*url.Error); ok {
		return err
	}

	return &url.Error{
		Op:  urlErrorOp(p.Method),
		URL: p.URL.String(),
		Err: err,
	}
}

// urlErrorOp matches the Op format used by net/http/client.go.
func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}
