// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"net/url"
	"testing"
	"time"

	"github.com/retryware/httpr/request"
	"github.com/stretchr/testify/assert"
)

type timeoutErr struct{}

func (timeoutErr) Error() string { return "timeout" }

func (timeoutErr) Timeout() bool { return true }

func timedOut(n int) *request.Execution {
	return &request.Execution{
		Err:             &url.Error{Op: "Get", URL: "http://test", Err: timeoutErr{}},
		AttemptTimeouts: n,
	}
}

func TestFixed(t *testing.T) {
	p := Fixed(30 * time.Second)
	assert.Equal(t, 30*time.Second, p.Timeout(&request.Execution{}))
	assert.Equal(t, 30*time.Second, p.Timeout(timedOut(3)))
}

func TestDefaultPolicy(t *testing.T) {
	assert.Equal(t, 5*time.Second, DefaultPolicy.Timeout(&request.Execution{}))
}

func TestInfinite(t *testing.T) {
	assert.Equal(t, time.Duration(1<<63-1), Infinite.Timeout(&request.Execution{}))
}

func TestAdaptive(t *testing.T) {
	p := Adaptive(200*time.Millisecond, time.Second, 10*time.Second)

	t.Run("usual", func(t *testing.T) {
		assert.Equal(t, 200*time.Millisecond, p.Timeout(&request.Execution{}))
		// A previous non-timeout error still gets the usual timeout.
		e := &request.Execution{Err: &url.Error{Op: "Get", URL: "http://test", Err: assert.AnError}}
		assert.Equal(t, 200*time.Millisecond, p.Timeout(e))
	})
	t.Run("after first timeout", func(t *testing.T) {
		assert.Equal(t, time.Second, p.Timeout(timedOut(1)))
	})
	t.Run("after further timeouts", func(t *testing.T) {
		assert.Equal(t, 10*time.Second, p.Timeout(timedOut(2)))
		assert.Equal(t, 10*time.Second, p.Timeout(timedOut(7)))
	})
	t.Run("no after values", func(t *testing.T) {
		q := Adaptive(time.Second)
		assert.Equal(t, time.Second, q.Timeout(timedOut(4)))
	})
}
