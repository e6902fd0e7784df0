// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pattern

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Marker is the first character of a placeholder component.
const Marker = ':'

// ErrInvalidPath is matched, via errors.Is, by every error returned
// from Parse and Template.Join.
var ErrInvalidPath = errors.New("invalid path")

// An Error describes why a path could not be parsed.
type Error struct {
	// Path is the path as given to the parser.
	Path string
	// Err holds the individual problems found in Path.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("restful/pattern: invalid path %q: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidPath.
func (e *Error) Is(target error) bool {
	return target == ErrInvalidPath
}

// A Template is a normalized resource path such as "/users/:id/posts".
// Components starting with Marker are placeholders whose names are
// reported by Params. The zero value is the empty path.
//
// Templates are immutable values and safe for concurrent use.
type Template struct {
	path   string
	params []string
}

// Parse normalizes s into a Template. Leading and trailing slashes are
// stripped and empty components are dropped, so "a//b/" and "/a/b"
// parse to the same template.
//
// Parse fails if a placeholder has no name or if the same placeholder
// name appears more than once.
func Parse(s string) (Template, error) {
	var (
		comps  []string
		params []string
		seen   map[string]bool
		merr   *multierror.Error
	)

	for _, comp := range strings.Split(strings.Trim(s, "/"), "/") {
		if comp == "" {
			continue
		}
		if comp[0] == Marker {
			name := comp[1:]
			switch {
			case name == "":
				merr = multierror.Append(merr, fmt.Errorf("component %d: empty parameter name", len(comps)))
			case seen[name]:
				merr = multierror.Append(merr, fmt.Errorf("parameter %q already exists", name))
			default:
				if seen == nil {
					seen = make(map[string]bool)
				}
				seen[name] = true
				params = append(params, name)
			}
		}
		comps = append(comps, comp)
	}

	if err := merr.ErrorOrNil(); err != nil {
		if len(merr.Errors) == 1 {
			err = merr.Errors[0]
		}
		return Template{}, &Error{Path: s, Err: err}
	}

	t := Template{params: params}
	if len(comps) > 0 {
		t.path = "/" + strings.Join(comps, "/")
	}
	return t, nil
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) Template {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the normalized path. It is empty for the empty
// template and otherwise starts with a slash.
func (t Template) String() string {
	return t.path
}

// Params returns the names of the unresolved placeholders in path
// order. The caller must not modify the returned slice.
func (t Template) Params() []string {
	return t.params
}

// Abstract reports whether t still contains placeholders.
func (t Template) Abstract() bool {
	return len(t.params) > 0
}

// Join returns the template formed by appending the non-empty parts,
// separated by slashes, to t. Join fails under the same conditions as
// Parse, notably if a part repeats a parameter name already in t.
func (t Template) Join(parts ...string) (Template, error) {
	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	if len(nonEmpty) == 0 {
		return t, nil
	}

	return Parse(t.path + "/" + strings.Join(nonEmpty, "/"))
}

// Fill substitutes placeholders with values looked up by name in data.
// Each value is formatted with the default format of package fmt and
// path-escaped, so "/:id" filled with {"id": "a b"} becomes "/a%20b".
//
// Placeholders whose name is absent from data, or maps to nil, are left
// in place: the result is then still abstract and can be filled again
// later. Partial filling is never an error.
func (t Template) Fill(data map[string]interface{}) Template {
	if !t.Abstract() || len(data) == 0 {
		return t
	}

	comps := strings.Split(strings.TrimPrefix(t.path, "/"), "/")
	for i, comp := range comps {
		if comp[0] != Marker {
			continue
		}
		v, ok := data[comp[1:]]
		if !ok || v == nil {
			continue
		}
		comps[i] = escape(fmt.Sprint(v))
	}

	// The filled path can only lose placeholders, so it always parses.
	return MustParse(strings.Join(comps, "/"))
}

func escape(s string) string {
	e := url.PathEscape(s)
	if e != "" && e[0] == Marker {
		e = "%3A" + e[1:]
	}
	return e
}
