// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restful

import (
	"fmt"
	"reflect"

	"github.com/gogama/restful/query"
	"github.com/gogama/restful/request"
)

// An Arg names a positional argument of a verb.
type Arg string

const (
	// ArgURL is the node-relative (or absolute) URL. Its value must be
	// a string.
	ArgURL Arg = "url"
	// ArgBody is the request body.
	ArgBody Arg = "body"
	// ArgParams are the query parameters. Any value accepted by
	// query.From may be passed.
	ArgParams Arg = "params"
)

var (
	// ArgsWithoutBody is the argument order of verbs without a body:
	// (url, params).
	ArgsWithoutBody = []Arg{ArgURL, ArgParams}
	// ArgsWithBody is the argument order of verbs with a body:
	// (url, body, params).
	ArgsWithBody = []Arg{ArgURL, ArgBody, ArgParams}
)

// A Method is an entry of the verb registry. It names the HTTP method a
// verb sends and the order in which the verb takes its arguments.
type Method struct {
	// HTTP is the HTTP method, for example "GET".
	HTTP string
	// Args is the positional argument order.
	Args []Arg
}

// DefaultMethods returns a new copy of the default verb registry: get,
// post, put, patch, delete, and remove (an alias of delete).
func DefaultMethods() map[string]Method {
	return map[string]Method{
		"get":    {HTTP: "GET", Args: ArgsWithoutBody},
		"post":   {HTTP: "POST", Args: ArgsWithBody},
		"put":    {HTTP: "PUT", Args: ArgsWithBody},
		"patch":  {HTTP: "PATCH", Args: ArgsWithBody},
		"delete": {HTTP: "DELETE", Args: ArgsWithoutBody},
		"remove": {HTTP: "DELETE", Args: ArgsWithoutBody},
	}
}

func (m Method) validate(verb string) error {
	if verb == "" {
		return fmt.Errorf("restful: empty verb name")
	}
	if !request.ValidMethod(m.HTTP) {
		return fmt.Errorf("restful: verb %q has invalid HTTP method %q", verb, m.HTTP)
	}
	seen := make(map[Arg]bool, len(m.Args))
	for _, a := range m.Args {
		switch a {
		case ArgURL, ArgBody, ArgParams:
		default:
			return fmt.Errorf("restful: verb %q has unknown argument %q", verb, a)
		}
		if seen[a] {
			return fmt.Errorf("restful: verb %q repeats argument %q", verb, a)
		}
		seen[a] = true
	}
	return nil
}

// pack builds the request descriptor for a call of verb with the
// positional arguments args. Nil arguments are skipped.
func (m Method) pack(verb string, args []interface{}) (request.Descriptor, error) {
	d := request.Descriptor{Method: m.HTTP}
	if len(args) > len(m.Args) {
		return d, fmt.Errorf("restful: verb %q takes at most %d arguments, got %d", verb, len(m.Args), len(args))
	}

	for i, arg := range args {
		if isNil(arg) {
			continue
		}
		switch m.Args[i] {
		case ArgURL:
			s, ok := arg.(string)
			if !ok {
				return d, fmt.Errorf("restful: verb %q url argument must be a string, got %T", verb, arg)
			}
			d.URL = s
		case ArgBody:
			d.Body = arg
		case ArgParams:
			p, err := query.From(arg)
			if err != nil {
				return d, err
			}
			d.Params = p
		}
	}
	return d, nil
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
