// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transient classifies errors surfacing from a restful request
// pipeline as transient or non-transient. Error handlers use it to
// decide whether a failure is worth reporting as temporary, and the
// client uses it to label failures in its logs.
//
// Package transient depends only on the standard library, so it can be
// imported on its own without pulling in the rest of restful.
package transient
