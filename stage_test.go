// Copyright 2021 The restful Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restful

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStages(t *testing.T) {
	assert.Len(t, stageNames, numStages)
	assert.Len(t, Stages(), numStages)
	stages := Stages()
	assert.Equal(t, LocalRequest, stages[LocalRequest])
	assert.Equal(t, Request, stages[Request])
	assert.Equal(t, Send, stages[Send])
	assert.Equal(t, Response, stages[Response])
	assert.Equal(t, LocalResponse, stages[LocalResponse])
	assert.Equal(t, Failure, stages[Failure])
}

func TestStage_Name(t *testing.T) {
	assert.Equal(t, "LocalRequest", LocalRequest.Name())
	assert.Equal(t, "Request", Request.Name())
	assert.Equal(t, "Send", Send.Name())
	assert.Equal(t, "Response", Response.Name())
	assert.Equal(t, "LocalResponse", LocalResponse.Name())
	assert.Equal(t, "Failure", Failure.String())
}
