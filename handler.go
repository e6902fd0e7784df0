// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restful

import (
	"github.com/gogama/restful/request"
)

// A PreHandler transforms a request before it is sent.
//
// HandleRequest receives the current request descriptor r, as left by
// the handlers before it in the chain, and orig, the descriptor as it
// entered the chain. Both must be treated as read-only. To change the
// request, return a patch; return a nil patch for no change. Returning
// an error aborts the chain.
type PreHandler interface {
	HandleRequest(r, orig request.Descriptor) (*request.Patch, error)
}

// The PreHandlerFunc type is an adapter to allow the use of ordinary
// functions as request handlers.
type PreHandlerFunc func(r, orig request.Descriptor) (*request.Patch, error)

// HandleRequest calls f(r, orig).
func (f PreHandlerFunc) HandleRequest(r, orig request.Descriptor) (*request.Patch, error) {
	return f(r, orig)
}

// A PostHandler transforms a response after it is received.
//
// HandleResponse receives the current result and the request that
// produced it. To change the result, return a patch; return a nil
// patch for no change. Returning an error aborts the chain.
type PostHandler interface {
	HandleResponse(res request.Result, req request.Descriptor) (*request.ResultPatch, error)
}

// The PostHandlerFunc type is an adapter to allow the use of ordinary
// functions as response handlers.
type PostHandlerFunc func(res request.Result, req request.Descriptor) (*request.ResultPatch, error)

// HandleResponse calls f(res, req).
func (f PostHandlerFunc) HandleResponse(res request.Result, req request.Descriptor) (*request.ResultPatch, error) {
	return f(res, req)
}

// An ErrHandler reacts to a failed request.
//
// HandleError receives the current error and the request descriptor
// as far as it was built when the failure happened. It may:
//
// • return a non-nil error, which ends the chain and is returned to the
// caller (the default handler Reraise returns err itself);
//
// • return a non-nil result, which ends the chain and recovers the
// call: the caller receives the result and no error; or
//
// • return nil, nil to pass err on to the next handler.
//
// If every handler passes, the caller receives the original error.
type ErrHandler interface {
	HandleError(err error, req request.Descriptor) (*request.Result, error)
}

// The ErrHandlerFunc type is an adapter to allow the use of ordinary
// functions as error handlers.
type ErrHandlerFunc func(err error, req request.Descriptor) (*request.Result, error)

// HandleError calls f(err, req).
func (f ErrHandlerFunc) HandleError(err error, req request.Descriptor) (*request.Result, error) {
	return f(err, req)
}

// Chains groups a request handler chain, a response handler chain and
// an error handler chain.
//
// A Client owns the global Chains every request runs through. A Node
// owns local Chains whose request and response handlers run around
// the global ones. A Node may also carry override Chains: each chain
// kind that has been set in the override replaces the client's global
// chain of that kind for the node's requests, while kinds that were
// never set fall back to the client's.
//
// Install handlers before issuing requests. Chains must not be changed
// while requests using them are in flight.
type Chains struct {
	pre  []PreHandler
	post []PostHandler
	err  []ErrHandler

	preSet, postSet, errSet bool
}

// PushPre adds a request handler to the back of the request chain.
func (c *Chains) PushPre(h PreHandler) {
	if h == nil {
		panic("restful: nil handler")
	}

	c.pre = append(c.pre, h)
	c.preSet = true
}

// PushPost adds a response handler to the back of the response chain.
func (c *Chains) PushPost(h PostHandler) {
	if h == nil {
		panic("restful: nil handler")
	}

	c.post = append(c.post, h)
	c.postSet = true
}

// PushErr adds an error handler to the back of the error chain.
func (c *Chains) PushErr(h ErrHandler) {
	if h == nil {
		panic("restful: nil handler")
	}

	c.err = append(c.err, h)
	c.errSet = true
}

// SetPre replaces the request chain. Calling SetPre with no handlers
// sets an empty chain, which is different from an unset chain when the
// Chains is used as an override.
func (c *Chains) SetPre(hs ...PreHandler) {
	for _, h := range hs {
		if h == nil {
			panic("restful: nil handler")
		}
	}

	c.pre = append([]PreHandler(nil), hs...)
	c.preSet = true
}

// SetPost replaces the response chain. See SetPre.
func (c *Chains) SetPost(hs ...PostHandler) {
	for _, h := range hs {
		if h == nil {
			panic("restful: nil handler")
		}
	}

	c.post = append([]PostHandler(nil), hs...)
	c.postSet = true
}

// SetErr replaces the error chain. See SetPre.
func (c *Chains) SetErr(hs ...ErrHandler) {
	for _, h := range hs {
		if h == nil {
			panic("restful: nil handler")
		}
	}

	c.err = append([]ErrHandler(nil), hs...)
	c.errSet = true
}

// Len returns the number of request, response and error handlers.
func (c *Chains) Len() (pre, post, err int) {
	return len(c.pre), len(c.post), len(c.err)
}

func (c *Chains) preChain(fallback *Chains) []PreHandler {
	if c != nil && c.preSet {
		return c.pre
	}
	return fallback.pre
}

func (c *Chains) postChain(fallback *Chains) []PostHandler {
	if c != nil && c.postSet {
		return c.post
	}
	return fallback.post
}

func (c *Chains) errChain(fallback *Chains) []ErrHandler {
	if c != nil && c.errSet {
		return c.err
	}
	return fallback.err
}
