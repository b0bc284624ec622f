package suftree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvariantErrorMessage(t *testing.T) {
	err := &InvariantError{
		Builder: "naive",
		Reason:  "duplicate child key on leaf insert",
		Detail:  "start=3 depth=2",
	}
	msg := err.Error()
	assert.Contains(t, msg, "naive")
	assert.Contains(t, msg, "duplicate child key on leaf insert")
	assert.Contains(t, msg, "start=3 depth=2")
}

func TestInvariantErrorWithoutDetail(t *testing.T) {
	err := &InvariantError{Builder: "mccreight", Reason: "oops"}
	assert.Equal(t, "suftree: invariant violated in mccreight builder: oops", err.Error())
}
