// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"net/http"
	"testing"

	"github.com/gogama/restful/query"
	"github.com/stretchr/testify/assert"
)

func TestDescriptor_Merge(t *testing.T) {
	base := Descriptor{
		Method: "GET",
		URL:    "/a",
		Params: query.Params{"p": 1},
		Body:   "body",
		Header: http.Header{"Accept": {"text/plain"}, "X-Keep": {"1"}},
	}
	t.Run("nil patch", func(t *testing.T) {
		assert.Equal(t, base, base.Merge(nil))
	})
	t.Run("headers merge key by key", func(t *testing.T) {
		d := base.Merge(&Patch{Header: http.Header{"accept": {"application/json"}, "X-New": {"2"}}})
		assert.Equal(t, http.Header{
			"Accept": {"application/json"},
			"X-Keep": {"1"},
			"X-New":  {"2"},
		}, d.Header)
		assert.Equal(t, "text/plain", base.Header.Get("Accept"), "input header must not change")
	})
	t.Run("other fields replace", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		var called bool
		d := base.Merge(&Patch{
			Method:     "POST",
			URL:        "/b",
			Params:     query.Params{"q": 2},
			Body:       []byte("x"),
			Context:    ctx,
			OnProgress: func(_, _ int64) { called = true },
		})
		assert.Equal(t, "POST", d.Method)
		assert.Equal(t, "/b", d.URL)
		assert.Equal(t, query.Params{"q": 2}, d.Params)
		assert.Equal(t, []byte("x"), d.Body)
		assert.Same(t, ctx, d.Context())
		d.OnProgress(1, 1)
		assert.True(t, called)
	})
	t.Run("clear body", func(t *testing.T) {
		d := base.Merge(&Patch{Body: http.NoBody})
		assert.Nil(t, d.Body)
	})
	t.Run("nil base header", func(t *testing.T) {
		d := Descriptor{}.Merge(HeaderPatch("X-A", "b"))
		assert.Equal(t, http.Header{"X-A": {"b"}}, d.Header)
	})
}

func TestDescriptor_Replace(t *testing.T) {
	base := Descriptor{
		URL:    "/a",
		Header: http.Header{"Accept": {"text/plain"}, "X-Keep": {"1"}},
	}
	t.Run("nil patch", func(t *testing.T) {
		assert.Equal(t, base, base.Replace(nil))
	})
	t.Run("header replaced wholesale", func(t *testing.T) {
		d := base.Replace(HeaderPatch("X-New", "2"))
		assert.Equal(t, http.Header{"X-New": {"2"}}, d.Header)
		assert.Equal(t, "/a", d.URL)
	})
	t.Run("no header leaves header", func(t *testing.T) {
		d := base.Replace(&Patch{URL: "/c"})
		assert.Equal(t, base.Header, d.Header)
		assert.Equal(t, "/c", d.URL)
	})
}

func TestResult_Merge(t *testing.T) {
	resp := &http.Response{StatusCode: 200}
	r := Result{Response: resp, Data: "old"}
	assert.Equal(t, r, r.Merge(nil))
	assert.Equal(t, "new", r.Merge(DataPatch("new")).Data)
	assert.Same(t, resp, r.Merge(DataPatch("new")).Response)
	resp2 := &http.Response{StatusCode: 201}
	r2 := r.Merge(&ResultPatch{Response: resp2})
	assert.Same(t, resp2, r2.Response)
	assert.Equal(t, "old", r2.Data)
}
