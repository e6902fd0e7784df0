// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package query

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag consulted by From when converting a struct
// into Params.
const TagName = "url"

// Params maps query parameter names to scalar values. A slice or array
// value produces one query pair per element. A nil value is skipped.
type Params map[string]interface{}

// Encode renders p as a query string. The result is empty if p has no
// encodable values, and otherwise starts with "?". Keys are sorted.
func Encode(p Params) string {
	v := Values(p)
	if len(v) == 0 {
		return ""
	}

	return "?" + v.Encode()
}

// Append adds the query string for p to rawURL. If rawURL already
// carries a query, the parameters are joined to it with "&".
func Append(rawURL string, p Params) string {
	s := Encode(p)
	if s == "" {
		return rawURL
	}

	if strings.Contains(rawURL, "?") {
		if strings.HasSuffix(rawURL, "?") || strings.HasSuffix(rawURL, "&") {
			return rawURL + s[1:]
		}
		return rawURL + "&" + s[1:]
	}

	return rawURL + s
}

// Values converts p into url.Values, formatting each scalar with the
// default format of package fmt.
func Values(p Params) url.Values {
	v := make(url.Values, len(p))
	for key, val := range p {
		for _, s := range format(val) {
			v.Add(key, s)
		}
	}
	return v
}

// From converts v into Params. It accepts nil, Params, a map with
// string keys, url.Values, or a struct (or pointer to struct) whose
// fields are named by their `url` tag.
func From(v interface{}) (Params, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case Params:
		return x, nil
	case map[string]interface{}:
		return Params(x), nil
	case map[string]string:
		p := make(Params, len(x))
		for k, s := range x {
			p[k] = s
		}
		return p, nil
	case url.Values:
		p := make(Params, len(x))
		for k, ss := range x {
			if len(ss) == 1 {
				p[k] = ss[0]
			} else {
				p[k] = ss
			}
		}
		return p, nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("restful/query: cannot use %T as query params", v)
	}

	var p Params
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: TagName,
		Result:  &p,
	})
	if err != nil {
		return nil, err
	}
	if err = dec.Decode(rv.Interface()); err != nil {
		return nil, fmt.Errorf("restful/query: %w", err)
	}
	return p, nil
}

func format(val interface{}) []string {
	if val == nil {
		return nil
	}

	switch x := val.(type) {
	case string:
		return []string{x}
	case []string:
		return x
	case fmt.Stringer:
		return []string{x.String()}
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return format(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return []string{string(rv.Bytes())}
		}
		ss := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			ss = append(ss, format(rv.Index(i).Interface())...)
		}
		return ss
	default:
		return []string{fmt.Sprint(val)}
	}
}
