// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restful

import (
	"github.com/gogama/restful/request"
)

// process folds n handler steps over seed in order. Each step sees the
// value left by the previous one; a non-nil patch is merged into the
// running value. The first error stops the fold and is returned along
// with the value reached so far.
func process[V, P any](n int, seed V, step func(i int, v V) (*P, error), merge func(V, *P) V) (V, error) {
	v := seed
	for i := 0; i < n; i++ {
		p, err := step(i, v)
		if err != nil {
			return v, err
		}
		if p != nil {
			v = merge(v, p)
		}
	}
	return v, nil
}

func runPre(chain []PreHandler, d request.Descriptor, merge func(request.Descriptor, *request.Patch) request.Descriptor) (request.Descriptor, error) {
	orig := d
	return process(len(chain), d, func(i int, v request.Descriptor) (*request.Patch, error) {
		return chain[i].HandleRequest(v, orig)
	}, merge)
}

func runPost(chain []PostHandler, res request.Result, req request.Descriptor) (request.Result, error) {
	return process(len(chain), res, func(i int, v request.Result) (*request.ResultPatch, error) {
		return chain[i].HandleResponse(v, req)
	}, request.Result.Merge)
}

func runErr(chain []ErrHandler, err error, req request.Descriptor) (*request.Result, error) {
	for _, h := range chain {
		res, herr := h.HandleError(err, req)
		if herr != nil {
			return nil, herr
		}
		if res != nil {
			return res, nil
		}
	}
	return nil, err
}
