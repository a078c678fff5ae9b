// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package httpr provides a robust HTTP client that retries transient
failures (rate limiting, server errors, network errors, and timeouts)
behind a simple and familiar interface.

Create a Client to begin making requests.

	client := &httpr.Client{}
	ex, err := client.Get("https://www.example.com")
	...
	ex, err := client.Post("https://www.example.com/upload",
		"application/json", &buf)

The zero-value client retries 429, 500, 502, 503, 504, network errors,
and timeouts with exponential backoff. For control over which outcomes
are retried and how long to wait, build a policy with package retry:

	policy, err := retry.NewTransientPolicy(
		retry.WithMaxAttempts(5),
		retry.WithWaitMax(30*time.Second))
	...
	client := &httpr.Client{RetryPolicy: policy}

Rate-limited and server error responses honor the server's Retry-After
header when one is present, so a 503 carrying "Retry-After: 5" sleeps
five seconds rather than the backoff wait.

For control over how the client sends HTTP requests and receives HTTP
responses, use a custom HTTPDoer, for example a Go standard HTTP
client:

	doer := &http.Client{
		..., // See package "net/http" for detailed documentation
	}
	client := &httpr.Client{
		HTTPDoer: doer,
	}

For control over individual attempt timeouts, set a timeout policy
from package timeout:

	client := &httpr.Client{
		TimeoutPolicy: timeout.Fixed(10 * time.Second),
	}

To hook into the fine-grained details of the request execution logic,
install handlers into the appropriate handler chain. The built-in
LogAttempts handler, for example, logs every attempt outcome:

	handlers := &httpr.HandlerGroup{}
	handlers.PushBack(httpr.AfterAttempt, httpr.LogAttempts(slog.Default()))
	client := &httpr.Client{
		Handlers: handlers,
	}

Package httpr provides basic interfaces for each method of the robust
client (Doer, Getter, Header, Poster, FormPoster, and IdleCloser); a
combined interface that composes all the basic methods (Executor); and
utility functions for working with a Doer (Inflate, Get, Head, Post,
and PostForm).
*/
package httpr
