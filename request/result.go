// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/http"

	"github.com/mitchellh/mapstructure"
)

// A Result represents a received HTTP response as it travels through
// the response handler pipeline, and is the value returned to callers.
//
// The default response handlers fill Data with the decoded body: a
// map or slice for JSON, a string for text, a []byte for any other
// content, and an empty map for 204 No Content. By the time a Result
// reaches a caller the response body has been consumed and closed.
type Result struct {
	// Request is the descriptor of the request that was sent.
	Request Descriptor

	// Response is the HTTP response received. Its Body has already
	// been read.
	Response *http.Response

	// Data is the decoded response body.
	Data interface{}
}

// StatusCode returns the status code of the HTTP response. If there is
// no HTTP response, 0 is returned.
func (r *Result) StatusCode() int {
	if r.Response == nil {
		return 0
	}

	return r.Response.StatusCode
}

// Header returns the HTTP response headers. If there is no HTTP
// response, the nil header is returned.
//
// Note that a nil return value is always safe for read-only operations,
// since http.Header is a map type.
func (r *Result) Header() http.Header {
	if r.Response == nil {
		var nilHeader http.Header
		return nilHeader
	}

	return r.Response.Header
}

// Decode copies Data into out, which must be a pointer. Struct fields
// are matched against JSON object keys by their `json` tag, and scalar
// values are converted between compatible kinds (for example a JSON
// number into an int field).
func (r *Result) Decode(out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}

	return dec.Decode(r.Data)
}
