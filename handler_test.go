// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpr

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/retryware/httpr/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerGroupPushBack(t *testing.T) {
	t.Run("NilHandlerPanics", func(t *testing.T) {
		g := &HandlerGroup{}
		assert.Panics(t, func() { g.PushBack(BeforeAttempt, nil) })
	})
	t.Run("ChainOrder", func(t *testing.T) {
		g := &HandlerGroup{}
		var order []int
		for i := 0; i < 3; i++ {
			i := i
			g.PushBack(AfterAttempt, HandlerFunc(func(Event, *request.Execution) {
				order = append(order, i)
			}))
		}
		g.run(AfterAttempt, &request.Execution{})
		assert.Equal(t, []int{0, 1, 2}, order)
	})
	t.Run("EmptyGroupRuns", func(t *testing.T) {
		g := &HandlerGroup{}
		assert.NotPanics(t, func() { g.run(AfterExecutionEnd, &request.Execution{}) })
	})
}

func TestHandlerEventSequence(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(503)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	var events []Event
	handlers := &HandlerGroup{}
	for _, evt := range Events() {
		evt := evt
		handlers.PushBack(evt, HandlerFunc(func(Event, *request.Execution) {
			events = append(events, evt)
		}))
	}

	client := &Client{RetryPolicy: fastPolicy(t), Handlers: handlers}
	e, err := client.Get(server.URL)
	require.NoError(t, err)
	require.Equal(t, 200, e.StatusCode())

	assert.Equal(t, []Event{
		BeforeExecutionStart,
		BeforeAttempt, BeforeReadBody, AfterAttempt,
		BeforeAttempt, BeforeReadBody, AfterAttempt,
		AfterExecutionEnd,
	}, events)
}

func TestHandlerModifiesRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.Header.Get("X-Attempt")))
	}))
	defer server.Close()

	handlers := &HandlerGroup{}
	handlers.PushBack(BeforeAttempt, HandlerFunc(func(_ Event, e *request.Execution) {
		h := e.Request.Header.Clone()
		h.Set("X-Attempt", "stamped")
		e.Request.Header = h
	}))

	client := &Client{RetryPolicy: fastPolicy(t), Handlers: handlers}
	e, err := client.Get(server.URL)
	require.NoError(t, err)
	assert.Equal(t, []byte("stamped"), e.Body)
}
