// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"strings"
)

const badBodyTypeMsg = "restful/request: invalid type %T (for body use nil, " +
	"string, []byte, io.Reader, url.Values or *Form; serialize other " +
	"values in a request handler)"

// A Form is a multipart/form-data request body.
//
// Form bodies are never serialized as JSON by the default request
// handler. When the request is sent, the form is encoded and the
// Content-Type header is set with the multipart boundary.
type Form struct {
	// Fields are simple key-value form fields.
	Fields url.Values
	// Files are file upload fields.
	Files []File
}

// A File is a file upload field in a Form.
type File struct {
	// Field is the form field name.
	Field string
	// Name is the file name sent to the server.
	Name string
	// ContentType is the MIME type of the file. If empty,
	// application/octet-stream is used.
	ContentType string
	// Data is the file content. Used if Reader is nil.
	Data []byte
	// Reader is an alternative to Data for large files.
	Reader io.Reader
}

// IsForm reports whether body is a form payload (url.Values or *Form),
// which is sent with a form content type rather than serialized.
func IsForm(body interface{}) bool {
	switch body.(type) {
	case url.Values, *Form:
		return true
	default:
		return false
	}
}

// IsRaw reports whether body is already in a wire-ready form: nil, a
// string, a []byte, an io.Reader, or a form.
func IsRaw(body interface{}) bool {
	switch body.(type) {
	case nil, string, []byte, io.Reader:
		return true
	default:
		return IsForm(body)
	}
}

// Encode converts a request body into a reader suitable for an
// http.Request, together with the content type the encoding implies.
// The implied content type is empty except for forms.
//
// The conversion logic is:
//
// • nil produces a nil reader.
//
// • A string or []byte is sent as is.
//
// • An io.Reader is sent as is (it is not buffered).
//
// • url.Values are URL-encoded, implying
// application/x-www-form-urlencoded.
//
// • A *Form is multipart-encoded, implying multipart/form-data with
// the generated boundary.
//
// • Any other type is an error: structured values must be serialized
// by a request handler before the request is sent.
func Encode(body interface{}) (io.Reader, string, error) {
	switch x := body.(type) {
	case nil:
		return nil, "", nil
	case string:
		return strings.NewReader(x), "", nil
	case []byte:
		return bytes.NewReader(x), "", nil
	case url.Values:
		return strings.NewReader(x.Encode()), "application/x-www-form-urlencoded", nil
	case *Form:
		return x.encode()
	case io.Reader:
		return x, "", nil
	default:
		return nil, "", fmt.Errorf(badBodyTypeMsg, body)
	}
}

func (f *Form) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, vs := range f.Fields {
		for _, v := range vs {
			if err := w.WriteField(k, v); err != nil {
				return nil, "", err
			}
		}
	}

	for _, file := range f.Files {
		var part io.Writer
		var err error
		if file.ContentType != "" {
			h := make(textproto.MIMEHeader)
			h.Set("Content-Disposition",
				`form-data; name="`+escapeQuotes(file.Field)+`"; filename="`+escapeQuotes(file.Name)+`"`)
			h.Set("Content-Type", file.ContentType)
			part, err = w.CreatePart(h)
		} else {
			part, err = w.CreateFormFile(file.Field, file.Name)
		}
		if err != nil {
			return nil, "", err
		}

		if file.Reader != nil {
			_, err = io.Copy(part, file.Reader)
		} else {
			_, err = part.Write(file.Data)
		}
		if err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
