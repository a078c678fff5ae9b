// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpr

import (
	"net/url"
	"testing"

	"github.com/retryware/httpr/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDoer records the plans it is asked to execute.
type fakeDoer struct {
	plans  []*request.Plan
	closed int
}

func (d *fakeDoer) Do(p *request.Plan) (*request.Execution, error) {
	d.plans = append(d.plans, p)
	return &request.Execution{Plan: p}, nil
}

func (d *fakeDoer) CloseIdleConnections() {
	d.closed++
}

func TestInflate(t *testing.T) {
	t.Run("NilPanics", func(t *testing.T) {
		assert.Panics(t, func() { Inflate(nil) })
	})
	t.Run("ExecutorPassesThrough", func(t *testing.T) {
		client := &Client{}
		assert.Same(t, client, Inflate(client))
	})
	t.Run("DoerInflates", func(t *testing.T) {
		doer := &fakeDoer{}
		executor := Inflate(doer)

		e, err := executor.Get("http://test.invalid/a")
		require.NoError(t, err)
		assert.Equal(t, "GET", e.Plan.Method)

		e, err = executor.Head("http://test.invalid/b")
		require.NoError(t, err)
		assert.Equal(t, "HEAD", e.Plan.Method)

		e, err = executor.Post("http://test.invalid/c", "text/plain", "body")
		require.NoError(t, err)
		assert.Equal(t, "POST", e.Plan.Method)
		assert.Equal(t, "text/plain", e.Plan.Header.Get("Content-Type"))
		assert.Equal(t, []byte("body"), e.Plan.Body)

		e, err = executor.PostForm("http://test.invalid/d", url.Values{"k": {"v"}})
		require.NoError(t, err)
		assert.Equal(t, "application/x-www-form-urlencoded", e.Plan.Header.Get("Content-Type"))
		assert.Equal(t, []byte("k=v"), e.Plan.Body)

		p, err := request.NewPlan("DELETE", "http://test.invalid/e", nil)
		require.NoError(t, err)
		_, err = executor.Do(p)
		require.NoError(t, err)

		assert.Len(t, doer.plans, 5)

		executor.CloseIdleConnections()
		assert.Equal(t, 1, doer.closed)
	})
	t.Run("BadURL", func(t *testing.T) {
		_, err := Get(&fakeDoer{}, "::no-scheme")
		assert.Error(t, err)
	})
	t.Run("BadBody", func(t *testing.T) {
		_, err := Post(&fakeDoer{}, "http://test.invalid", "text/plain", 42)
		assert.Error(t, err)
	})
}
