// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restful

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gogama/restful/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChains(t *testing.T) {
	pre := PreHandlerFunc(func(_, _ request.Descriptor) (*request.Patch, error) { return nil, nil })
	post := PostHandlerFunc(func(request.Result, request.Descriptor) (*request.ResultPatch, error) { return nil, nil })
	errh := ErrHandlerFunc(func(error, request.Descriptor) (*request.Result, error) { return nil, nil })

	t.Run("Push", func(t *testing.T) {
		c := &Chains{}
		assert.Panics(t, func() { c.PushPre(nil) })
		assert.Panics(t, func() { c.PushPost(nil) })
		assert.Panics(t, func() { c.PushErr(nil) })
		c.PushPre(pre)
		c.PushPre(pre)
		c.PushPost(post)
		c.PushErr(errh)
		p, q, e := c.Len()
		assert.Equal(t, 2, p)
		assert.Equal(t, 1, q)
		assert.Equal(t, 1, e)
	})
	t.Run("Set", func(t *testing.T) {
		c := &Chains{}
		assert.Panics(t, func() { c.SetPre(pre, nil) })
		assert.Panics(t, func() { c.SetPost(nil) })
		assert.Panics(t, func() { c.SetErr(errh, nil) })
		c.PushPre(pre)
		c.SetPre()
		p, _, _ := c.Len()
		assert.Equal(t, 0, p)
		assert.True(t, c.preSet)
		assert.False(t, c.postSet)
	})
	t.Run("fallback", func(t *testing.T) {
		global := DefaultChains()
		var nilChains *Chains
		assert.Equal(t, global.pre, nilChains.preChain(global))
		assert.Equal(t, global.post, nilChains.postChain(global))
		assert.Equal(t, global.err, nilChains.errChain(global))

		o := &Chains{}
		o.SetPost()
		o.PushErr(errh)
		assert.Equal(t, global.pre, o.preChain(global))
		assert.Empty(t, o.postChain(global))
		require.Len(t, o.errChain(global), 1)
	})
}

func TestHandlerFuncs(t *testing.T) {
	t.Run("PreHandlerFunc", func(t *testing.T) {
		var _r, _orig request.Descriptor
		h := PreHandlerFunc(func(r, orig request.Descriptor) (*request.Patch, error) {
			_r, _orig = r, orig
			return request.HeaderPatch("X-Seen", "1"), nil
		})
		p, err := h.HandleRequest(request.Descriptor{URL: "a"}, request.Descriptor{URL: "b"})
		require.NoError(t, err)
		assert.Equal(t, "a", _r.URL)
		assert.Equal(t, "b", _orig.URL)
		assert.Equal(t, http.Header{"X-Seen": {"1"}}, p.Header)
	})
	t.Run("PostHandlerFunc", func(t *testing.T) {
		var _req request.Descriptor
		h := PostHandlerFunc(func(res request.Result, req request.Descriptor) (*request.ResultPatch, error) {
			_req = req
			return request.DataPatch(res.Data), nil
		})
		p, err := h.HandleResponse(request.Result{Data: 1}, request.Descriptor{Method: "PUT"})
		require.NoError(t, err)
		assert.Equal(t, "PUT", _req.Method)
		assert.Equal(t, 1, p.Data)
	})
	t.Run("ErrHandlerFunc", func(t *testing.T) {
		boom := errors.New("boom")
		var _err error
		h := ErrHandlerFunc(func(err error, _ request.Descriptor) (*request.Result, error) {
			_err = err
			return nil, err
		})
		res, err := h.HandleError(boom, request.Descriptor{})
		assert.Nil(t, res)
		assert.Same(t, boom, err)
		assert.Same(t, boom, _err)
	})
}
