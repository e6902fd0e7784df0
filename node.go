// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restful

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/gogama/restful/pattern"
	"github.com/gogama/restful/query"
	"github.com/gogama/restful/request"
)

var absoluteURL = regexp.MustCompile(`^[\w-]+:`)

// A Node is one point of a client's resource tree. Its path is built
// from the path of the node it was modeled from and may contain
// placeholders, written ":name". A node with unresolved placeholders is
// abstract and cannot issue requests until it is filled:
//
//	users := client.MustModel("users", ":id")
//	res, err := users.Fill(map[string]interface{}{"id": 42}).Get(ctx, "", nil)
//
// Nodes are immutable. Model, Fill and WithOverrides return new nodes.
//
// A node owns local request and response handlers (see Handlers) which
// run around the client's global chains: local request handlers first,
// global request handlers, the transport, global response handlers,
// then local response handlers.
type Node struct {
	client    *Client
	tmpl      pattern.Template
	local     *Chains
	overrides *Chains
}

func newNode(c *Client, t pattern.Template) *Node {
	return &Node{
		client: c,
		tmpl:   t,
		local:  &Chains{},
	}
}

// Client returns the client the node belongs to.
func (n *Node) Client() *Client {
	return n.client
}

// Path returns the node path, for example "/users/:id", or "" for the
// root node.
func (n *Node) Path() string {
	return n.tmpl.String()
}

// Params returns the names of the unresolved placeholders of the node
// path, in path order.
func (n *Node) Params() []string {
	return n.tmpl.Params()
}

// Abstract reports whether the node path has unresolved placeholders.
func (n *Node) Abstract() bool {
	return n.tmpl.Abstract()
}

// URL returns the client root URL followed by the node path.
func (n *Node) URL() string {
	return n.client.root + n.tmpl.String()
}

// Handlers returns the node's local chains. Only the request and
// response chains are used. Local chains are shared with every node
// filled from this one, and with the node it was filled from.
func (n *Node) Handlers() *Chains {
	return n.local
}

// Overrides returns the node's override chains, or nil if none are
// set.
func (n *Node) Overrides() *Chains {
	return n.overrides
}

// WithOverrides returns a copy of n whose requests run through the
// chain kinds set in o in place of the client's global chains. Kinds
// never set in o fall back to the client's. A nil o removes the
// overrides.
func (n *Node) WithOverrides(o *Chains) *Node {
	m := *n
	m.overrides = o
	return &m
}

// Model returns a child node whose path is n's path followed by the
// non-empty parts. The child has fresh local chains and no overrides.
//
// Model fails with an error matching pattern.ErrInvalidPath if the
// resulting path declares the same placeholder twice or contains a
// placeholder without a name.
func (n *Node) Model(parts ...string) (*Node, error) {
	t, err := n.tmpl.Join(parts...)
	if err != nil {
		return nil, err
	}
	return newNode(n.client, t), nil
}

// MustModel is like Model but panics if the path is invalid.
func (n *Node) MustModel(parts ...string) *Node {
	m, err := n.Model(parts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Fill returns a node whose placeholders are replaced by the escaped
// values found in data. Placeholders whose value is missing or nil are
// left in place, so the returned node is still abstract for them.
//
// The returned node shares n's local chains. It does not carry n's
// overrides.
func (n *Node) Fill(data map[string]interface{}) *Node {
	return &Node{
		client: n.client,
		tmpl:   n.tmpl.Fill(data),
		local:  n.local,
	}
}

// Call invokes the verb registered under name, packing args according
// to the verb's argument order. Nil arguments are skipped.
func (n *Node) Call(ctx context.Context, verb string, args ...interface{}) (*request.Result, error) {
	m, ok := n.client.methods[verb]
	if !ok {
		return nil, fmt.Errorf("restful: unknown verb %q", verb)
	}

	d, err := m.pack(verb, args)
	if err != nil {
		return nil, err
	}
	return n.Request(ctx, d)
}

// Get issues a GET to url, relative to the node unless absolute.
func (n *Node) Get(ctx context.Context, url string, params query.Params) (*request.Result, error) {
	return n.do(ctx, "GET", url, nil, params)
}

// Post issues a POST of body to url.
func (n *Node) Post(ctx context.Context, url string, body interface{}, params query.Params) (*request.Result, error) {
	return n.do(ctx, "POST", url, body, params)
}

// Put issues a PUT of body to url.
func (n *Node) Put(ctx context.Context, url string, body interface{}, params query.Params) (*request.Result, error) {
	return n.do(ctx, "PUT", url, body, params)
}

// Patch issues a PATCH of body to url.
func (n *Node) Patch(ctx context.Context, url string, body interface{}, params query.Params) (*request.Result, error) {
	return n.do(ctx, "PATCH", url, body, params)
}

// Delete issues a DELETE to url.
func (n *Node) Delete(ctx context.Context, url string, params query.Params) (*request.Result, error) {
	return n.do(ctx, "DELETE", url, nil, params)
}

// Remove is an alias of Delete.
func (n *Node) Remove(ctx context.Context, url string, params query.Params) (*request.Result, error) {
	return n.Delete(ctx, url, params)
}

func (n *Node) do(ctx context.Context, method, url string, body interface{}, params query.Params) (*request.Result, error) {
	return n.Request(ctx, request.Descriptor{
		Method: method,
		URL:    url,
		Body:   body,
		Params: params,
	})
}

// Request issues the request described by d under this node.
//
// The local request handlers run first, each patch replacing whole
// fields of d (headers included). The URL is then resolved: a URL with
// a scheme is used as is, anything else is taken relative to the node
// and recorded in the descriptor's Relative field. The client runs its
// part of the pipeline, with the node's overrides if any, and finally
// the local response handlers run over the result.
//
// Request fails with an *AbstractNodeError if the node is abstract.
func (n *Node) Request(ctx context.Context, d request.Descriptor) (*request.Result, error) {
	if n.Abstract() {
		return nil, &AbstractNodeError{Path: n.Path(), Params: n.Params()}
	}
	if ctx == nil {
		ctx = d.Context()
	}

	d, err := runPre(n.local.pre, d.WithContext(ctx), request.Descriptor.Replace)
	if err != nil {
		n.client.logger.Debug("request failed", "stage", LocalRequest, "method", d.Method, "error", err)
		return nil, err
	}
	d = n.resolve(d)

	res, err := n.client.execute(d, n.overrides)
	if err != nil {
		return nil, err
	}

	r, err := runPost(n.local.post, *res, res.Request)
	if err != nil {
		n.client.logger.Debug("request failed", "stage", LocalResponse, "method", d.Method, "url", d.URL, "error", err)
		return nil, err
	}
	return &r, nil
}

func (n *Node) resolve(d request.Descriptor) request.Descriptor {
	if absoluteURL.MatchString(d.URL) {
		d.Relative = ""
		return d
	}

	u := d.URL
	if u != "" && !strings.HasPrefix(u, "/") {
		u = "/" + u
	}
	d.Relative = u
	d.URL = n.URL() + u
	return d
}
