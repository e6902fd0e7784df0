// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	urlpkg "net/url"
	"strings"

	"github.com/gogama/restful/query"
	"github.com/gogama/restful/stream"
	"golang.org/x/net/http/httpguts"
)

const (
	nilCtxMsg = "restful/request: nil context"
)

// A Descriptor describes one logical HTTP request as it travels
// through the handler pipeline.
//
// Handlers receive Descriptor values and must treat them, including the
// Header and Params maps, as read-only. To change a request, a handler
// returns a Patch.
type Descriptor struct {
	// Method specifies the HTTP method (GET, POST, PUT, etc.).
	// An empty string means GET.
	Method string

	// URL is the request URL. Before a resource node resolves it, URL
	// is relative to the node (or absolute, if it has a scheme). After
	// resolution it is the complete URL, without query string.
	URL string

	// Relative is the node-relative URL fragment recorded during
	// resolution. It is empty if URL was absolute.
	Relative string

	// Params are encoded into the query string when the request is
	// sent.
	Params query.Params

	// Body is the request payload. It may be nil, a string, []byte,
	// io.Reader, url.Values, *Form, or any value the default request
	// handler serializes as JSON.
	Body interface{}

	// Header contains the request header fields to be sent.
	Header http.Header

	// OnProgress, if not nil, is called as a streamed response body is
	// received.
	OnProgress stream.ProgressFunc

	// ctx cancels the request. It should only be modified by copying
	// the whole Descriptor using WithContext.
	ctx context.Context
}

// Context returns the descriptor's context. The returned context is
// always non-nil; it defaults to the background context.
func (d *Descriptor) Context() context.Context {
	if d.ctx != nil {
		return d.ctx
	}

	return context.Background()
}

// WithContext returns a copy of d with its context changed to ctx,
// which must be non-nil.
func (d Descriptor) WithContext(ctx context.Context) Descriptor {
	if ctx == nil {
		panic(nilCtxMsg)
	}

	d.ctx = ctx
	return d
}

// Clone returns a copy of d whose Header and Params maps may be
// changed without affecting d.
func (d Descriptor) Clone() Descriptor {
	d.Header = d.Header.Clone()
	if d.Params != nil {
		p := make(query.Params, len(d.Params))
		for k, v := range d.Params {
			p[k] = v
		}
		d.Params = p
	}
	return d
}

// SetBasicAuth sets the descriptor's Authorization header to use HTTP
// Basic Authentication with the provided username and password.
//
// With HTTP Basic Authentication the provided username and password
// are not encrypted.
func (d *Descriptor) SetBasicAuth(username, password string) {
	if d.Header == nil {
		d.Header = make(http.Header)
	}
	d.Header.Set("Authorization", "Basic "+basicAuth(username, password))
}

// ToRequest creates the HTTP request corresponding to d. The URL is
// completed with the query string built from d.Params, the body is
// encoded with Encode, and the context of the new request is d's
// context.
//
// If encoding the body implies a content type (forms) and d has no
// Content-Type header, the implied content type is set.
func (d *Descriptor) ToRequest() (*http.Request, error) {
	method := d.Method
	if method == "" {
		method = "GET"
	}
	if !ValidMethod(method) {
		return nil, fmt.Errorf("restful/request: invalid method %q", method)
	}

	u, err := urlpkg.Parse(query.Append(d.URL, d.Params))
	if err != nil {
		return nil, err
	}
	u.Host = removeEmptyPort(u.Host)

	body, contentType, err := Encode(d.Body)
	if err != nil {
		return nil, err
	}

	r, err := http.NewRequestWithContext(d.Context(), method, u.String(), body)
	if err != nil {
		return nil, err
	}
	r.Header = d.Header.Clone()
	if r.Header == nil {
		r.Header = make(http.Header)
	}
	for name, values := range r.Header {
		if !httpguts.ValidHeaderFieldName(name) {
			return nil, fmt.Errorf("restful/request: invalid header name %q", name)
		}
		for _, v := range values {
			if !httpguts.ValidHeaderFieldValue(v) {
				return nil, fmt.Errorf("restful/request: invalid value for header %q", name)
			}
		}
	}
	if contentType != "" && r.Header.Get("Content-Type") == "" {
		r.Header.Set("Content-Type", contentType)
	}
	return r, nil
}

// ValidMethod reports whether method is a valid HTTP method token.
func ValidMethod(method string) bool {
	return method != "" && strings.IndexFunc(method, isNotToken) == -1
}

func isNotToken(r rune) bool {
	return !httpguts.IsTokenRune(r)
}

// basicAuth is lifted verbatim from net/http/client.go.
//
// See 2 (end of page 4) https://www.ietf.org/rfc/rfc2617.txt
// "To receive authorization, the client sends the userid and password,
// separated by a single colon (":") character, within a base64
// encoded string in the credentials."
// It is not meant to be urlencoded.
func basicAuth(username, password string) string {
	auth := username + ":" + password
	return base64.StdEncoding.EncodeToString([]byte(auth))
}

// hasPort is lifted verbatim from net/http/http.go
//
// Given a string of the form "host", "host:port", or "[ipv6::address]:port",
// return true if the string includes a port.
func hasPort(s string) bool { return strings.LastIndex(s, ":") > strings.LastIndex(s, "]") }

// removeEmptyPort is lifted verbatim from net/http/http.go
//
// removeEmptyPort strips the empty port in ":port" to ""
// as mandated by RFC 3986 Section 6.2.3.
func removeEmptyPort(host string) string {
	if hasPort(host) {
		return strings.TrimSuffix(host, ":")
	}
	return host
}
