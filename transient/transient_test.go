// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transient

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	assert.Equal(t, Not, Categorize(nil))
	assert.Equal(t, Not, Categorize(errors.New("foo")))
	assert.Equal(t, Not, Categorize(wrapper{errors.New("bar")}))

	assert.Equal(t, Canceled, Categorize(context.Canceled))
	assert.Equal(t, Canceled, Categorize(&url.Error{Err: context.Canceled}))

	assert.Equal(t, Timeout, Categorize(syscall.ETIMEDOUT))
	assert.Equal(t, Timeout, Categorize(context.DeadlineExceeded))
	assert.Equal(t, Timeout, Categorize(timeout{}))
	assert.Equal(t, Timeout, Categorize(&url.Error{Err: timeout{}}))
	assert.Equal(t, Timeout, Categorize(wrapper{wrapper{timeout{}}}))
	assert.Equal(t, Timeout, Categorize(timeoutWrapper{true, syscall.ECONNRESET}))

	assert.Equal(t, ConnReset, Categorize(syscall.ECONNRESET))
	assert.Equal(t, ConnReset, Categorize(timeoutWrapper{false, syscall.ECONNRESET}))
	assert.Equal(t, ConnRefused, Categorize(syscall.ECONNREFUSED))
	assert.Equal(t, ConnRefused, Categorize(&url.Error{Err: wrapper{syscall.ECONNREFUSED}}))

	for _, code := range []int{429, 502, 503, 504} {
		assert.Equal(t, Status, Categorize(status(code)), fmt.Sprintf("status %d", code))
		assert.Equal(t, Status, Categorize(wrapper{status(code)}))
	}
	for _, code := range []int{200, 400, 404, 500} {
		assert.Equal(t, Not, Categorize(status(code)), fmt.Sprintf("status %d", code))
	}
}

func TestCategory(t *testing.T) {
	assert.False(t, Not.Transient())
	assert.False(t, Canceled.Transient())
	assert.True(t, Timeout.Transient())
	assert.True(t, ConnRefused.Transient())
	assert.True(t, ConnReset.Transient())
	assert.True(t, Status.Transient())

	assert.Equal(t, "Not", Not.String())
	assert.Equal(t, "Status", Status.String())
	assert.Equal(t, "Category(?)", Category(99).String())
	assert.Equal(t, "Category(?)", Category(-1).String())
}

type timeout struct{}

func (err timeout) Error() string {
	return "timeout"
}

func (timeout) Timeout() bool {
	return true
}

type wrapper struct {
	wrappedError error
}

func (err wrapper) Error() string {
	return fmt.Sprintf("wrapper - wraps %v", err.wrappedError)
}

func (err wrapper) Unwrap() error {
	return err.wrappedError
}

type timeoutWrapper struct {
	timeout      bool
	wrappedError error
}

func (err timeoutWrapper) Error() string {
	return fmt.Sprintf("timeoutWrapper - timeout %t, wraps %v", err.timeout, err.wrappedError)
}

func (err timeoutWrapper) Timeout() bool {
	return err.timeout
}

func (err timeoutWrapper) Unwrap() error {
	return err.wrappedError
}

type status int

func (s status) Error() string {
	return fmt.Sprintf("status %d", int(s))
}

func (s status) StatusCode() int {
	return int(s)
}
