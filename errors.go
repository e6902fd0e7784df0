// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restful

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gogama/restful/request"
)

// ErrAbstractNode is matched, via errors.Is, by the error returned when
// a request is issued on a node with unresolved placeholders.
var ErrAbstractNode = errors.New("restful: abstract node cannot be requested")

// An AbstractNodeError is returned when a request is issued on a node
// whose path still contains placeholders. Fill the node first.
type AbstractNodeError struct {
	// Path is the node path.
	Path string
	// Params are the unresolved placeholder names.
	Params []string
}

func (e *AbstractNodeError) Error() string {
	return fmt.Sprintf("restful: abstract node %q cannot be requested (unresolved: %s)",
		e.Path, strings.Join(e.Params, ", "))
}

// Is reports whether target is ErrAbstractNode.
func (e *AbstractNodeError) Is(target error) bool {
	return target == ErrAbstractNode
}

// An HTTPStatusError is raised by the default response handler
// CheckStatus when a response status is outside [200, 300).
type HTTPStatusError struct {
	// Status is the HTTP response status code.
	Status int
	// Data is the decoded response body.
	Data interface{}
}

func (e *HTTPStatusError) Error() string {
	if text := http.StatusText(e.Status); text != "" {
		return fmt.Sprintf("restful: HTTP status %d (%s)", e.Status, text)
	}
	return fmt.Sprintf("restful: HTTP status %d", e.Status)
}

// StatusCode returns the HTTP response status code.
func (e *HTTPStatusError) StatusCode() int {
	return e.Status
}

func urlErrorWrap(d request.Descriptor, err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return err
	}

	return &url.Error{
		Op:  urlErrorOp(d.Method),
		URL: d.URL,
		Err: err,
	}
}

// urlErrorOp is lifted verbatim from net/http/client.go
func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}
