// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restful

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"dario.cat/mergo"
	"github.com/gogama/restful/pattern"
	"github.com/gogama/restful/query"
	"github.com/gogama/restful/request"
	"github.com/gogama/restful/transient"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/net/http/httpguts"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package. It is the
// transport every request is finally handed to.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	Do(r *http.Request) (*http.Response, error)
}

// TransportConfig holds transport-level defaults applied to every
// request the client sends. A value set on the request itself (for
// example a User-Agent header) takes precedence.
type TransportConfig struct {
	// Host optionally overrides the Host header to send.
	Host string
	// Close stipulates whether to close the connection after each
	// request, preventing connection re-use.
	Close bool
	// TransferEncoding lists the transfer encodings from outermost to
	// innermost.
	TransferEncoding []string
	// UserAgent is sent as the User-Agent header unless the request
	// sets its own.
	UserAgent string
	// Username and Password, if Username is not empty, are sent using
	// HTTP Basic Authentication unless the request sets its own
	// Authorization header.
	Username string
	Password string
}

// Options configure a Client. The zero value is a valid configuration.
type Options struct {
	// Root is the base URL every relative request URL is resolved
	// against, for example "https://api.example.com/v1". A trailing
	// slash is removed.
	Root string
	// Config holds transport-level defaults.
	Config TransportConfig
	// Header holds default header fields. Header fields given on a
	// request are set over them.
	Header http.Header
	// Methods adds verbs to, or replaces verbs of, the default verb
	// registry (see DefaultMethods).
	Methods map[string]Method
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses. If nil, http.DefaultClient is used.
	HTTPDoer HTTPDoer
	// Logger receives debug logs of request dispatch and failures. If
	// nil, nothing is logged.
	Logger hclog.Logger
}

// A Client is a declarative REST client. It holds the configuration
// shared by a tree of resource nodes, owns the root node of that tree,
// and runs the request pipeline for every node:
//
//	prepare: client default headers, then the request handler chain;
//	send:    the HTTPDoer call, with the query string built from Params;
//	receive: the response handler chain;
//	recover: the error handler chain, if any of the above fails.
//
// A new Client carries the default handlers (see DefaultChains). Add
// handlers through Handlers before issuing requests.
//
// Create a Client with New. A Client is safe for concurrent use by
// multiple goroutines once its handlers are installed.
type Client struct {
	root     string
	header   http.Header
	config   TransportConfig
	methods  map[string]Method
	handlers *Chains
	doer     HTTPDoer
	logger   hclog.Logger
	node     *Node
}

// New returns a Client configured by opts. It fails if a verb in
// opts.Methods is invalid or a default header field is malformed.
func New(opts Options) (*Client, error) {
	c := &Client{
		root:     strings.TrimSuffix(opts.Root, "/"),
		header:   make(http.Header, len(opts.Header)),
		config:   opts.Config,
		methods:  DefaultMethods(),
		handlers: DefaultChains(),
		doer:     opts.HTTPDoer,
		logger:   opts.Logger,
	}

	for name, values := range opts.Header {
		if !httpguts.ValidHeaderFieldName(name) {
			return nil, fmt.Errorf("restful: invalid header name %q", name)
		}
		for _, v := range values {
			if !httpguts.ValidHeaderFieldValue(v) {
				return nil, fmt.Errorf("restful: invalid value for header %q", name)
			}
		}
		c.header[http.CanonicalHeaderKey(name)] = append([]string(nil), values...)
	}

	for verb, m := range opts.Methods {
		if err := m.validate(verb); err != nil {
			return nil, err
		}
		m.Args = append([]Arg(nil), m.Args...)
		c.methods[verb] = m
	}

	if c.doer == nil {
		c.doer = http.DefaultClient
	}
	if c.logger == nil {
		c.logger = hclog.NewNullLogger()
	}

	c.node = newNode(c, pattern.Template{})
	return c, nil
}

// Handlers returns the client's global handler chains.
func (c *Client) Handlers() *Chains {
	return c.handlers
}

// Root returns the root node, whose path is empty.
func (c *Client) Root() *Node {
	return c.node
}

// RootURL returns the base URL, without trailing slash.
func (c *Client) RootURL() string {
	return c.root
}

// Methods returns a copy of the verb registry.
func (c *Client) Methods() map[string]Method {
	m := make(map[string]Method, len(c.methods))
	for verb, method := range c.methods {
		m[verb] = method
	}
	return m
}

// Model returns the child of the root node at the path formed by the
// non-empty parts. See Node.Model.
func (c *Client) Model(parts ...string) (*Node, error) {
	return c.node.Model(parts...)
}

// MustModel is like Model but panics if the path is invalid.
func (c *Client) MustModel(parts ...string) *Node {
	return c.node.MustModel(parts...)
}

// Request issues a request on the root node. See Node.Request.
func (c *Client) Request(ctx context.Context, d request.Descriptor) (*request.Result, error) {
	return c.node.Request(ctx, d)
}

// Call invokes a registered verb on the root node. See Node.Call.
func (c *Client) Call(ctx context.Context, verb string, args ...interface{}) (*request.Result, error) {
	return c.node.Call(ctx, verb, args...)
}

// Get issues a GET on the root node.
func (c *Client) Get(ctx context.Context, url string, params query.Params) (*request.Result, error) {
	return c.node.Get(ctx, url, params)
}

// Post issues a POST on the root node.
func (c *Client) Post(ctx context.Context, url string, body interface{}, params query.Params) (*request.Result, error) {
	return c.node.Post(ctx, url, body, params)
}

// Put issues a PUT on the root node.
func (c *Client) Put(ctx context.Context, url string, body interface{}, params query.Params) (*request.Result, error) {
	return c.node.Put(ctx, url, body, params)
}

// Patch issues a PATCH on the root node.
func (c *Client) Patch(ctx context.Context, url string, body interface{}, params query.Params) (*request.Result, error) {
	return c.node.Patch(ctx, url, body, params)
}

// Delete issues a DELETE on the root node.
func (c *Client) Delete(ctx context.Context, url string, params query.Params) (*request.Result, error) {
	return c.node.Delete(ctx, url, params)
}

// Remove is an alias of Delete.
func (c *Client) Remove(ctx context.Context, url string, params query.Params) (*request.Result, error) {
	return c.node.Remove(ctx, url, params)
}

// CloseIdleConnections invokes the same method on the client's
// underlying HTTPDoer.
//
// If the HTTPDoer has no CloseIdleConnections method, this method does
// nothing.
func (c *Client) CloseIdleConnections() {
	if ic, ok := c.doer.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

// execute runs the client part of the pipeline for a descriptor whose
// URL a node has already resolved. Chain kinds set in overrides replace
// the client's own.
func (c *Client) execute(d request.Descriptor, overrides *Chains) (*request.Result, error) {
	req, err := c.prepare(d, overrides)
	if err != nil {
		return c.recover(Request, err, d, overrides)
	}

	resp, err := c.fetch(req)
	if err != nil {
		return c.recover(Send, err, req, overrides)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	c.logger.Debug("received response", "method", req.Method, "url", req.URL, "status", resp.StatusCode)
	res, err := runPost(overrides.postChain(c.handlers), request.Result{Request: req, Response: resp}, req)
	if err != nil {
		return c.recover(Response, err, req, overrides)
	}
	return &res, nil
}

// prepare builds the canonical descriptor, with the client's default
// header fields beneath the request's own, and runs the request chain
// with the headers-aware merge.
func (c *Client) prepare(d request.Descriptor, overrides *Chains) (request.Descriptor, error) {
	h := c.header.Clone()
	for name, values := range d.Header {
		h[http.CanonicalHeaderKey(name)] = values
	}

	req := request.Descriptor{
		Method:     d.Method,
		URL:        d.URL,
		Relative:   d.Relative,
		Params:     d.Params,
		Body:       d.Body,
		Header:     h,
		OnProgress: d.OnProgress,
	}.WithContext(d.Context())

	return runPre(overrides.preChain(c.handlers), req, request.Descriptor.Merge)
}

// fetch sends the prepared request through the HTTPDoer. Errors from
// the transport are returned as *url.Error.
func (c *Client) fetch(d request.Descriptor) (*http.Response, error) {
	r, err := d.ToRequest()
	if err != nil {
		return nil, urlErrorWrap(d, err)
	}

	init := TransportConfig{UserAgent: r.Header.Get("User-Agent")}
	if err = mergo.Merge(&init, c.config); err != nil {
		return nil, err
	}
	if init.Host != "" {
		r.Host = init.Host
	}
	r.Close = init.Close
	r.TransferEncoding = init.TransferEncoding
	if init.UserAgent != "" {
		r.Header.Set("User-Agent", init.UserAgent)
	}
	if init.Username != "" && r.Header.Get("Authorization") == "" {
		r.SetBasicAuth(init.Username, init.Password)
	}

	c.logger.Debug("sending request", "method", r.Method, "url", r.URL.String())
	resp, err := c.doer.Do(r)
	if err != nil {
		return nil, urlErrorWrap(d, err)
	}
	return resp, nil
}

// recover runs the error chain over a failure from stage.
func (c *Client) recover(stage Stage, err error, d request.Descriptor, overrides *Chains) (*request.Result, error) {
	c.logger.Debug("request failed", "stage", stage, "method", d.Method, "url", d.URL,
		"category", transient.Categorize(err), "error", err)
	res, err := runErr(overrides.errChain(c.handlers), err, d)
	if err == nil {
		c.logger.Debug("request recovered", "stage", Failure, "method", d.Method, "url", d.URL)
	}
	return res, err
}
