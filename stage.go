// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restful

// A Stage identifies a step of the request pipeline. Stages label the
// client's log entries, so a failure can be traced to the step that
// produced it.
type Stage int

const (
	// LocalRequest is the node's own request handler chain.
	LocalRequest Stage = iota
	// Request is the client's (or override) request handler chain.
	Request
	// Send is the transport call.
	Send
	// Response is the client's (or override) response handler chain.
	Response
	// LocalResponse is the node's own response handler chain.
	LocalResponse
	// Failure is the error handler chain.
	Failure
	// stageSentinel provides the total number of stages typed as a
	// Stage.
	stageSentinel

	// numStages provides the total number of stages as an int.
	numStages = int(stageSentinel)
)

var stageNames = []string{
	"LocalRequest",
	"Request",
	"Send",
	"Response",
	"LocalResponse",
	"Failure",
}

// Stages returns all stages in the order a request passes through
// them.
func Stages() []Stage {
	return []Stage{
		LocalRequest,
		Request,
		Send,
		Response,
		LocalResponse,
		Failure,
	}
}

// Name returns the name of the stage.
func (s Stage) Name() string {
	return stageNames[int(s)]
}

// String returns the name of the stage.
func (s Stage) String() string {
	return s.Name()
}
