// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package pattern parses resource path templates and fills their named
placeholders.

A template is a slash-separated path in which a component starting
with a colon names a parameter:

	t, err := pattern.Parse("/users/:user/posts/:post")
	...
	t.Params()                            // ["user" "post"]
	t = t.Fill(map[string]interface{}{"user": "ann"})
	t.String()                            // "/users/ann/posts/:post"
	t.Abstract()                          // true, "post" is unresolved

Parameter names must be unique within one template.
*/
package pattern
