// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/gogama/restful/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptor_Context(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		d := Descriptor{}
		assert.Same(t, context.Background(), d.Context())
	})
	t.Run("WithContext", func(t *testing.T) {
		type foo struct{}
		ctx := context.WithValue(context.Background(), foo{}, "bar")
		d := Descriptor{URL: "x"}
		d2 := d.WithContext(ctx)
		assert.Same(t, ctx, d2.Context())
		assert.Same(t, context.Background(), d.Context())
		assert.Equal(t, "x", d2.URL)
	})
	t.Run("nil context", func(t *testing.T) {
		assert.PanicsWithValue(t, nilCtxMsg, func() {
			//nolint:staticcheck
			_ = Descriptor{}.WithContext(nil)
		})
	})
}

func TestDescriptor_Clone(t *testing.T) {
	d := Descriptor{
		Header: http.Header{"Foo": {"bar"}},
		Params: query.Params{"a": 1},
	}
	c := d.Clone()
	c.Header.Set("Foo", "baz")
	c.Params["a"] = 2
	assert.Equal(t, "bar", d.Header.Get("Foo"))
	assert.Equal(t, 1, d.Params["a"])

	empty := Descriptor{}.Clone()
	assert.Nil(t, empty.Header)
	assert.Nil(t, empty.Params)
}

func TestDescriptor_SetBasicAuth(t *testing.T) {
	d := Descriptor{}
	d.SetBasicAuth("Aladdin", "open sesame")
	assert.Equal(t, "Basic QWxhZGRpbjpvcGVuIHNlc2FtZQ==", d.Header.Get("Authorization"))
}

func TestDescriptor_ToRequest(t *testing.T) {
	t.Run("empty method means GET", func(t *testing.T) {
		d := Descriptor{URL: "https://foo.com/a"}
		r, err := d.ToRequest()
		require.NoError(t, err)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "https://foo.com/a", r.URL.String())
		assert.NotNil(t, r.Header)
		assert.Same(t, context.Background(), r.Context())
	})
	t.Run("query string", func(t *testing.T) {
		d := Descriptor{Method: "GET", URL: "http://x/a", Params: query.Params{"q": "v w", "n": 1}}
		r, err := d.ToRequest()
		require.NoError(t, err)
		assert.Equal(t, "http://x/a?n=1&q=v+w", r.URL.String())
	})
	t.Run("remove empty port", func(t *testing.T) {
		d := Descriptor{URL: "http://ham:/x"}
		r, err := d.ToRequest()
		require.NoError(t, err)
		assert.Equal(t, "ham", r.URL.Host)
	})
	t.Run("body and header", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		d := Descriptor{
			Method: "POST",
			URL:    "http://x",
			Body:   `{"a":1}`,
			Header: http.Header{"Content-Type": {"application/json"}},
		}.WithContext(ctx)
		r, err := d.ToRequest()
		require.NoError(t, err)
		assert.Same(t, ctx, r.Context())
		assert.Equal(t, int64(7), r.ContentLength)
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(b))
		r.Header.Set("X-Other", "1")
		assert.Empty(t, d.Header.Get("X-Other"))
	})
	t.Run("form sets content type", func(t *testing.T) {
		d := Descriptor{Method: "POST", URL: "http://x", Body: url.Values{"k": {"v"}}}
		r, err := d.ToRequest()
		require.NoError(t, err)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
	})
	t.Run("explicit content type wins", func(t *testing.T) {
		d := Descriptor{
			Method: "POST",
			URL:    "http://x",
			Body:   url.Values{"k": {"v"}},
			Header: http.Header{"Content-Type": {"text/plain"}},
		}
		r, err := d.ToRequest()
		require.NoError(t, err)
		assert.Equal(t, "text/plain", r.Header.Get("Content-Type"))
	})
	t.Run("invalid method", func(t *testing.T) {
		d := Descriptor{Method: "\tGET", URL: "http://x"}
		_, err := d.ToRequest()
		assert.EqualError(t, err, `restful/request: invalid method "\tGET"`)
	})
	t.Run("invalid URL", func(t *testing.T) {
		d := Descriptor{URL: ":::"}
		_, err := d.ToRequest()
		assert.Error(t, err)
	})
	t.Run("invalid header", func(t *testing.T) {
		d := Descriptor{URL: "http://x", Header: http.Header{"Bad Name": {"v"}}}
		_, err := d.ToRequest()
		assert.EqualError(t, err, `restful/request: invalid header name "Bad Name"`)
		d = Descriptor{URL: "http://x", Header: http.Header{"Good": {"a\nb"}}}
		_, err = d.ToRequest()
		assert.EqualError(t, err, `restful/request: invalid value for header "Good"`)
	})
	t.Run("invalid body", func(t *testing.T) {
		d := Descriptor{URL: "http://x", Body: map[string]int{}}
		_, err := d.ToRequest()
		require.Error(t, err)
		assert.True(t, strings.HasPrefix(err.Error(), "restful/request: invalid type map[string]int"))
	})
}

func TestValidMethod(t *testing.T) {
	assert.True(t, ValidMethod("GET"))
	assert.True(t, ValidMethod("Fake"))
	assert.True(t, ValidMethod("M-SEARCH"))
	assert.False(t, ValidMethod(""))
	assert.False(t, ValidMethod("\tGET"))
	assert.False(t, ValidMethod("GE T"))
	assert.False(t, ValidMethod("G(ET"))
}
