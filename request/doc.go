// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the values which flow through a restful
handler pipeline: Descriptor (describes a request about to be sent),
Result (describes a received response and its decoded data), and the
typed patches handlers return to change them.

A Descriptor looks like a stripped-down http.Request whose body is an
arbitrary Go value and whose URL is a string that is resolved against
a resource node before it is sent. Like an http.Request, a Descriptor
has a context which cancels the request when done:

	d := request.Descriptor{Method: "GET", URL: "users"}
	d = d.WithContext(ctx)

Handlers never modify a Descriptor or Result directly. A request
handler returns a *Patch, and a response handler returns a
*ResultPatch; a nil patch means "no change". The pipeline folds each
patch into the running value with one of the explicit merge functions:

	d.Merge(p)   // headers merge key by key, other fields replace
	d.Replace(p) // every set field replaces, including Header
	r.Merge(rp)

Bodies are encoded for the wire by Encode, which understands strings,
byte slices, readers, url.Values and multipart Form values.
*/
package request
