// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restful

import (
	"context"

	"github.com/gogama/restful/query"
	"github.com/gogama/restful/request"
)

// Requester is the interface that wraps the basic Request method.
//
// Request runs a request descriptor through the handler pipeline and
// returns the final result (and error, if any). Node implements the
// Requester interface, and Client implements it on behalf of its root
// node.
type Requester interface {
	Request(ctx context.Context, d request.Descriptor) (*request.Result, error)
}

// Getter is the interface that wraps the basic Get method.
type Getter interface {
	Get(ctx context.Context, url string, params query.Params) (*request.Result, error)
}

// Poster is the interface that wraps the basic Post method.
//
// The body may be nil, a string, []byte, io.Reader, url.Values,
// *request.Form, or any value the request handlers know how to encode
// (by default, as JSON).
type Poster interface {
	Post(ctx context.Context, url string, body interface{}, params query.Params) (*request.Result, error)
}

// Putter is the interface that wraps the basic Put method. See Poster
// for the accepted bodies.
type Putter interface {
	Put(ctx context.Context, url string, body interface{}, params query.Params) (*request.Result, error)
}

// Patcher is the interface that wraps the basic Patch method. See
// Poster for the accepted bodies.
type Patcher interface {
	Patch(ctx context.Context, url string, body interface{}, params query.Params) (*request.Result, error)
}

// Deleter is the interface that wraps the basic Delete and Remove
// methods, which are equivalent.
type Deleter interface {
	Delete(ctx context.Context, url string, params query.Params) (*request.Result, error)
	Remove(ctx context.Context, url string, params query.Params) (*request.Result, error)
}

// Caller is the interface that wraps the basic Call method.
//
// Call invokes a verb of the client's verb registry by name, which
// allows verbs beyond the built-in ones to be called.
type Caller interface {
	Call(ctx context.Context, verb string, args ...interface{}) (*request.Result, error)
}

// Modeler is the interface that wraps the basic Model and MustModel
// methods.
type Modeler interface {
	Model(parts ...string) (*Node, error)
	MustModel(parts ...string) *Node
}

// IdleCloser is the interface that wraps the basic CloseIdleConnections
// method.
//
// If the underlying implementation supports it, CloseIdleConnections
// closes any idle which were previously connected from previous
// requests but are now sitting idle in a "keep-alive" state. It does
// not interrupt any connections currently in use.
type IdleCloser interface {
	CloseIdleConnections()
}

// Resource is the interface that groups the request methods shared by
// Client and Node.
type Resource interface {
	Requester
	Getter
	Poster
	Putter
	Patcher
	Deleter
	Caller
	Modeler
}

var (
	_ Resource   = (*Client)(nil)
	_ Resource   = (*Node)(nil)
	_ IdleCloser = (*Client)(nil)
)
