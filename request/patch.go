// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"net/http"

	"github.com/gogama/restful/query"
	"github.com/gogama/restful/stream"
)

// A Patch is a partial Descriptor returned by a request handler. Zero
// fields leave the corresponding Descriptor field unchanged.
//
// To remove the body of a request, set Body to http.NoBody.
type Patch struct {
	Method     string
	URL        string
	Params     query.Params
	Body       interface{}
	Header     http.Header
	OnProgress stream.ProgressFunc
	Context    context.Context
}

// HeaderPatch returns a patch which sets a single header field.
func HeaderPatch(key, value string) *Patch {
	h := make(http.Header, 1)
	h.Set(key, value)
	return &Patch{Header: h}
}

// Merge returns d with p folded in. Header fields in p are set one by
// one over d's header, so fields p does not mention survive. Every
// other non-zero field of p replaces the field in d.
//
// Merge never modifies d's header map. A nil p returns d unchanged.
func (d Descriptor) Merge(p *Patch) Descriptor {
	if p == nil {
		return d
	}

	d = d.assign(p)
	if len(p.Header) > 0 {
		h := d.Header.Clone()
		if h == nil {
			h = make(http.Header, len(p.Header))
		}
		for k, vs := range p.Header {
			h[http.CanonicalHeaderKey(k)] = append([]string(nil), vs...)
		}
		d.Header = h
	}
	return d
}

// Replace returns d with every non-zero field of p, including Header,
// replacing the corresponding field in d. A nil p returns d unchanged.
func (d Descriptor) Replace(p *Patch) Descriptor {
	if p == nil {
		return d
	}

	d = d.assign(p)
	if p.Header != nil {
		d.Header = p.Header.Clone()
	}
	return d
}

func (d Descriptor) assign(p *Patch) Descriptor {
	if p.Method != "" {
		d.Method = p.Method
	}
	if p.URL != "" {
		d.URL = p.URL
	}
	if p.Params != nil {
		d.Params = p.Params
	}
	if p.Body == http.NoBody {
		d.Body = nil
	} else if p.Body != nil {
		d.Body = p.Body
	}
	if p.OnProgress != nil {
		d.OnProgress = p.OnProgress
	}
	if p.Context != nil {
		d.ctx = p.Context
	}
	return d
}

// A ResultPatch is a partial Result returned by a response handler.
// Nil fields leave the corresponding Result field unchanged.
type ResultPatch struct {
	Data     interface{}
	Response *http.Response
}

// DataPatch returns a patch which replaces the decoded data.
func DataPatch(data interface{}) *ResultPatch {
	return &ResultPatch{Data: data}
}

// Merge returns r with the non-nil fields of p replacing its own. A nil
// p returns r unchanged.
func (r Result) Merge(p *ResultPatch) Result {
	if p == nil {
		return r
	}

	if p.Data != nil {
		r.Data = p.Data
	}
	if p.Response != nil {
		r.Response = p.Response
	}
	return r
}
