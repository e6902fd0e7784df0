// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package stream

import (
	"context"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ChunkSize is the size of the buffer Decode reads into.
const ChunkSize = 32 << 10

// A ProgressFunc receives the cumulative number of bytes received so
// far and the total expected, after each chunk.
type ProgressFunc func(received, total int64)

// A Chunk is one push-delivered piece of a body. A Chunk with a non-nil
// Err ends the stream in error.
type Chunk struct {
	Data []byte
	Err  error
}

// An Emitter is a body which pushes its content as chunks rather than
// being read. The channel is closed when the body is complete.
type Emitter interface {
	Chunks() <-chan Chunk
}

// DecodeBody decodes body with DecodeChunks if it is an Emitter, and
// with Decode otherwise.
func DecodeBody(ctx context.Context, body io.Reader, total int64, onProgress ProgressFunc) (string, error) {
	if em, ok := body.(Emitter); ok {
		return DecodeChunks(ctx, em.Chunks(), total, onProgress)
	}

	return Decode(ctx, body, total, onProgress)
}

// Decode reads r to EOF and returns its content as text. After each
// successful read, onProgress (if not nil) is called with the running
// byte count and total.
//
// The first read error other than io.EOF is returned immediately, as
// is the context error if ctx is done between reads.
func Decode(ctx context.Context, r io.Reader, total int64, onProgress ProgressFunc) (string, error) {
	d := newDecoder(total, onProgress)
	buf := make([]byte, ChunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		n, err := r.Read(buf)
		if n > 0 {
			if werr := d.write(buf[:n]); werr != nil {
				return "", werr
			}
		}
		if err == io.EOF {
			return d.result()
		} else if err != nil {
			return "", err
		}
	}
}

// DecodeChunks receives chunks from ch until it is closed and returns
// their content as text. onProgress (if not nil) is called after each
// chunk.
//
// A chunk carrying an error ends decoding with that error. If ctx is
// done first, the context error is returned.
func DecodeChunks(ctx context.Context, ch <-chan Chunk, total int64, onProgress ProgressFunc) (string, error) {
	d := newDecoder(total, onProgress)
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case c, ok := <-ch:
			if !ok {
				return d.result()
			}
			if c.Err != nil {
				return "", c.Err
			}
			if err := d.write(c.Data); err != nil {
				return "", err
			}
		}
	}
}

type decoder struct {
	sb         strings.Builder
	w          io.WriteCloser
	received   int64
	total      int64
	onProgress ProgressFunc
}

func newDecoder(total int64, onProgress ProgressFunc) *decoder {
	d := &decoder{total: total, onProgress: onProgress}
	d.w = transform.NewWriter(&d.sb, unicode.UTF8.NewDecoder())
	return d
}

func (d *decoder) write(p []byte) error {
	d.received += int64(len(p))
	if d.onProgress != nil {
		d.onProgress(d.received, d.total)
	}
	_, err := d.w.Write(p)
	return err
}

func (d *decoder) result() (string, error) {
	if err := d.w.Close(); err != nil {
		return "", err
	}
	return d.sb.String(), nil
}
