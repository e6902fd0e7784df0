// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package restful provides a declarative REST client built as a tree of
resource nodes over a pluggable handler pipeline.

Create a Client to begin making requests.

	client, err := restful.New(restful.Options{
		Root: "https://api.example.com/v1",
	})
	...
	res, err := client.Get(ctx, "/status", nil)

Model the API as a tree of nodes. Path components starting with a
colon are placeholders, and a node with placeholders must be filled
before it can issue requests:

	users := client.MustModel("users")
	user := users.MustModel(":id")
	res, err := user.Fill(map[string]interface{}{"id": 42}).Get(ctx, "", nil)
	...
	res, err := users.Post(ctx, "", map[string]string{"name": "ada"}, nil)

Every request passes through three handler chains. Request handlers
patch the request descriptor before it is sent; response handlers patch
the result after it is received; error handlers see every failure and
may recover from it. The client's global chains start with the default
handlers, which encode JSON bodies, decode response bodies, and fail on
a status outside [200, 300):

	client.Handlers().PushPre(restful.PreHandlerFunc(
		func(r, _ request.Descriptor) (*request.Patch, error) {
			return request.HeaderPatch("Authorization", "Bearer "+token), nil
		}),
	)

Nodes carry their own local chains, which run around the global ones,
and may replace the global chains with overrides (see Node.WithOverrides).

For control over how the client sends HTTP requests and receives HTTP
responses, use a custom HTTPDoer. For example, use a GoLang standard
HTTP client:

	doer := &http.Client{
		..., // See package "net/http" for detailed documentation
	}
	client, err := restful.New(restful.Options{
		Root:     root,
		HTTPDoer: doer,
	})

Package restful provides basic interfaces for each method shared by
clients and nodes (Requester, Getter, Poster, Putter, Patcher, Deleter,
Caller, and Modeler) and a combined interface that composes them all
(Resource).
*/
package restful
