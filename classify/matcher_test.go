// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package classify

import (
	"context"
	"errors"
	"io"
	"net"
	"net/url"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectError(t *testing.T) {
	assert.True(t, ConnectError(&net.OpError{Op: "dial", Err: errors.New("x")}))
	assert.True(t, ConnectError(syscall.ECONNREFUSED))
	assert.True(t, ConnectError(syscall.ECONNRESET))
	assert.True(t, ConnectError(&url.Error{Err: wrapper{syscall.ECONNREFUSED}}))
	assert.False(t, ConnectError(&net.OpError{Op: "read", Err: errors.New("x")}))
	assert.False(t, ConnectError(errors.New("foo")))
	assert.False(t, ConnectError(nil))
}

func TestReadError(t *testing.T) {
	assert.True(t, ReadError(&net.OpError{Op: "read", Err: errors.New("x")}))
	assert.True(t, ReadError(&url.Error{Err: &net.OpError{Op: "read", Err: errors.New("x")}}))
	assert.False(t, ReadError(&net.OpError{Op: "dial", Err: errors.New("x")}))
	assert.False(t, ReadError(io.ErrUnexpectedEOF))
}

func TestWriteError(t *testing.T) {
	assert.True(t, WriteError(&net.OpError{Op: "write", Err: errors.New("x")}))
	assert.True(t, WriteError(syscall.EPIPE))
	assert.True(t, WriteError(wrapper{syscall.EPIPE}))
	assert.False(t, WriteError(&net.OpError{Op: "read", Err: errors.New("x")}))
}

func TestUnexpectedEOF(t *testing.T) {
	assert.True(t, UnexpectedEOF(io.ErrUnexpectedEOF))
	assert.True(t, UnexpectedEOF(wrapper{io.ErrUnexpectedEOF}))
	assert.False(t, UnexpectedEOF(io.EOF))
	assert.False(t, UnexpectedEOF(nil))
}

func TestTimeoutError(t *testing.T) {
	assert.True(t, TimeoutError(timeoutErr{}))
	assert.True(t, TimeoutError(&url.Error{Err: timeoutErr{}}))
	assert.True(t, TimeoutError(context.DeadlineExceeded))
	assert.True(t, TimeoutError(os.ErrDeadlineExceeded))
	assert.True(t, TimeoutError(syscall.ETIMEDOUT))
	assert.False(t, TimeoutError(context.Canceled))
	assert.False(t, TimeoutError(errors.New("slow")))
	assert.False(t, TimeoutError(nil))
}
