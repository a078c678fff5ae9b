// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"net/http"
	"testing"
	"time"

	"github.com/retryware/httpr/request"
	"github.com/retryware/httpr/retryafter"
	"github.com/stretchr/testify/assert"
)

func decline() ConditionalWaiter {
	return ConditionalWaiterFunc(func(*request.Execution) (time.Duration, bool) {
		return 0, false
	})
}

func opinion(d time.Duration) ConditionalWaiter {
	return ConditionalWaiterFunc(func(*request.Execution) (time.Duration, bool) {
		return d, true
	})
}

func TestWithFallback(t *testing.T) {
	fallback := NewFixedWaiter(7 * time.Second)
	e := &request.Execution{}

	t.Run("primary has opinion", func(t *testing.T) {
		assert.Equal(t, 3*time.Second, WithFallback(opinion(3*time.Second), fallback).Wait(e))
	})
	t.Run("primary declines", func(t *testing.T) {
		w := WithFallback(decline(), fallback)
		assert.Equal(t, fallback.Wait(e), w.Wait(e))
	})
	t.Run("deliberate zero is not declining", func(t *testing.T) {
		w := WithFallback(opinion(0), fallback)
		assert.Equal(t, time.Duration(0), w.Wait(e))
	})
	t.Run("nil arguments", func(t *testing.T) {
		assert.Panics(t, func() { WithFallback(nil, fallback) })
		assert.Panics(t, func() { WithFallback(decline(), nil) })
	})
}

func TestNewHeaderWaiter(t *testing.T) {
	w := NewHeaderWaiter("Retry-After", retryafter.DefaultMax)

	t.Run("integer seconds", func(t *testing.T) {
		e := responseExecution(503, http.Header{"Retry-After": []string{"5"}})
		d, ok := w.WaitIf(e)
		assert.True(t, ok)
		assert.Equal(t, 5*time.Second, d)
	})
	t.Run("clamped", func(t *testing.T) {
		e := responseExecution(429, http.Header{"Retry-After": []string{"500"}})
		d, ok := w.WaitIf(e)
		assert.True(t, ok)
		assert.Equal(t, retryafter.DefaultMax, d)
	})
	t.Run("past date", func(t *testing.T) {
		value := time.Now().Add(-time.Hour).UTC().Format(http.TimeFormat)
		e := responseExecution(429, http.Header{"Retry-After": []string{value}})
		d, ok := w.WaitIf(e)
		assert.True(t, ok)
		assert.Equal(t, time.Duration(0), d)
	})
	t.Run("header absent", func(t *testing.T) {
		_, ok := w.WaitIf(responseExecution(503, nil))
		assert.False(t, ok)
	})
	t.Run("malformed header", func(t *testing.T) {
		e := responseExecution(503, http.Header{"Retry-After": []string{"soon"}})
		_, ok := w.WaitIf(e)
		assert.False(t, ok)
	})
	t.Run("no response", func(t *testing.T) {
		_, ok := w.WaitIf(&request.Execution{})
		assert.False(t, ok)
	})
	t.Run("invalid arguments", func(t *testing.T) {
		assert.Panics(t, func() { NewHeaderWaiter("", time.Second) })
		assert.Panics(t, func() { NewHeaderWaiter("Retry-After", 0) })
	})
}

func TestNewRetryAfterWaiter(t *testing.T) {
	w := NewRetryAfterWaiter(NewFixedWaiter(9 * time.Second))
	withHeader := responseExecution(429, http.Header{"Retry-After": []string{"2"}})
	assert.Equal(t, 2*time.Second, w.Wait(withHeader))
	assert.Equal(t, 9*time.Second, w.Wait(responseExecution(429, nil)))
}
