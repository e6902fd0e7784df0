// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package stream materializes response bodies incrementally, reporting
// progress after every chunk.
//
// Bodies are consumed either by pulling from an io.Reader (Decode) or
// by receiving chunks pushed on a channel (DecodeChunks). DecodeBody
// picks the push form when the body implements Emitter.
//
// Bytes are decoded as UTF-8. Invalid sequences become U+FFFD, and a
// rune split across two chunks is decoded correctly.
package stream
