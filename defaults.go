// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restful

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/gogama/restful/request"
	"github.com/gogama/restful/stream"
	"golang.org/x/net/html/charset"
)

// EncodeBody is the default request handler. A body which is not
// already wire-ready (see request.IsRaw) is serialized as JSON and the
// Content-Type header is set to application/json. Strings, byte
// slices, readers and forms are left untouched.
var EncodeBody PreHandler = PreHandlerFunc(encodeBody)

// DecodeBody is the first default response handler. It reads and
// closes the response body and stores the decoded data in the result:
//
// • status 204 yields an empty map, whatever the content type;
//
// • a JSON content type yields the parsed value;
//
// • a text/* content type yields a string, decoded from the charset
// named in the content type;
//
// • application/octet-stream with a known length is read in chunks
// with package stream, reporting progress to the request's OnProgress;
//
// • anything else yields the raw bytes.
//
// Errors reading or parsing the body are returned as *url.Error.
var DecodeBody PostHandler = PostHandlerFunc(decodeBody)

// CheckStatus is the second default response handler. It passes
// results whose status code is in [200, 300) and fails all others with
// an *HTTPStatusError carrying the status and the decoded data.
var CheckStatus PostHandler = PostHandlerFunc(checkStatus)

// Reraise is the default error handler. It returns the error it is
// given, so failures reach the caller unchanged.
var Reraise ErrHandler = ErrHandlerFunc(reraise)

// DefaultChains returns a new Chains holding the default handlers:
// EncodeBody; DecodeBody and CheckStatus; Reraise.
func DefaultChains() *Chains {
	c := &Chains{}
	c.SetPre(EncodeBody)
	c.SetPost(DecodeBody, CheckStatus)
	c.SetErr(Reraise)
	return c
}

func encodeBody(r, _ request.Descriptor) (*request.Patch, error) {
	if request.IsRaw(r.Body) {
		return nil, nil
	}

	b, err := json.Marshal(r.Body)
	if err != nil {
		return nil, err
	}
	p := request.HeaderPatch("Content-Type", "application/json")
	p.Body = b
	return p, nil
}

func decodeBody(res request.Result, req request.Descriptor) (*request.ResultPatch, error) {
	resp := res.Response
	if resp == nil || resp.Body == nil {
		return nil, nil
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := decode(resp, req)
	if err != nil {
		return nil, urlErrorWrap(req, err)
	}
	return request.DataPatch(data), nil
}

func decode(resp *http.Response, req request.Descriptor) (interface{}, error) {
	if resp.StatusCode == http.StatusNoContent {
		return map[string]interface{}{}, nil
	}

	contentType := resp.Header.Get("Content-Type")
	switch {
	case strings.Contains(contentType, "application/json"):
		var v interface{}
		if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	case strings.Contains(contentType, "text/"):
		b, err := io.ReadAll(textReader(resp.Body, contentType))
		if err != nil {
			return nil, err
		}
		return string(b), nil
	case strings.Contains(contentType, "application/octet-stream"):
		if total, ok := contentLength(resp); ok {
			return stream.DecodeBody(req.Context(), resp.Body, total, req.OnProgress)
		}
	}

	return io.ReadAll(resp.Body)
}

// textReader decodes r from the charset named in contentType. Without
// a known charset, r is read as UTF-8.
func textReader(r io.Reader, contentType string) io.Reader {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil || params["charset"] == "" {
		return r
	}
	e, _ := charset.Lookup(params["charset"])
	if e == nil {
		return r
	}
	return e.NewDecoder().Reader(r)
}

func contentLength(resp *http.Response) (int64, bool) {
	if s := resp.Header.Get("Content-Length"); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		return n, err == nil && n >= 0
	}
	if resp.ContentLength > 0 {
		return resp.ContentLength, true
	}
	return 0, false
}

func checkStatus(res request.Result, _ request.Descriptor) (*request.ResultPatch, error) {
	status := res.StatusCode()
	if status >= 200 && status < 300 {
		return nil, nil
	}

	return nil, &HTTPStatusError{Status: status, Data: res.Data}
}

func reraise(err error, _ request.Descriptor) (*request.Result, error) {
	return nil, err
}
