// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transient

import (
	"context"
	"errors"
	"syscall"
)

// A Category is the transience category of an error, as reported by
// Categorize.
//
// Not and Canceled are the only non-transient categories. Every other
// category means a later, identical request has some prospect of
// success.
type Category int

const (
	// Not indicates a nil error or any error not covered by another
	// category.
	Not Category = iota
	// Canceled indicates the caller cancelled the request through its
	// context. It is not transient: the caller asked for the failure.
	Canceled
	// Timeout indicates a client-side timeout, including a context
	// deadline. Categorize returns Timeout if the error or any of its
	// wrapped causes has a Timeout method that reports true.
	Timeout
	// ConnRefused indicates the remote host refused the connection
	// (syscall.ECONNREFUSED), for example while its service restarts.
	ConnRefused
	// ConnReset indicates the remote host reset an active connection
	// (syscall.ECONNRESET).
	ConnReset
	// Status indicates a complete HTTP response whose status code
	// signals a temporary condition: 429, 502, 503 or 504.
	Status
)

var categoryNames = []string{
	"Not",
	"Canceled",
	"Timeout",
	"ConnRefused",
	"ConnReset",
	"Status",
}

// String returns the name of the category.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Category(?)"
	}

	return categoryNames[c]
}

// Transient reports whether c is a transient category.
func (c Category) Transient() bool {
	return c != Not && c != Canceled
}

// Categorize returns the transience category of err. Categorize looks
// at the causes wrapped within err, not just err itself.
//
// An error reports an HTTP status by having a StatusCode method; the
// restful HTTPStatusError type has one.
func Categorize(err error) Category {
	if err == nil {
		return Not
	}

	if errors.Is(err, context.Canceled) {
		return Canceled
	}

	var hasTimeout hasTimeout
	if errors.As(err, &hasTimeout) && hasTimeout.Timeout() {
		return Timeout
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		if errno == syscall.ECONNRESET {
			return ConnReset
		} else if errno == syscall.ECONNREFUSED {
			return ConnRefused
		}
	}

	var hasStatus hasStatusCode
	if errors.As(err, &hasStatus) {
		switch hasStatus.StatusCode() {
		case 429, 502, 503, 504:
			return Status
		}
	}

	return Not
}

type hasTimeout interface {
	Timeout() bool
}

type hasStatusCode interface {
	StatusCode() int
}
