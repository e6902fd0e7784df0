// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package query builds URL query strings from request parameters.
//
// Parameters are held in a Params map of names to scalar values. Use
// From to convert other shapes (url.Values, plain maps, or structs
// tagged with `url`) into Params, and Encode to render them:
//
//	p, _ := query.From(struct {
//		Page  int    `url:"page"`
//		Order string `url:"order"`
//	}{2, "asc"})
//	s := query.Encode(p) // "?order=asc&page=2"
package query
