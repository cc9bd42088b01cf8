package handler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "bad_request", KindBadRequest.String())
	assert.Equal(t, "internal", KindInternal.String())
}

func TestErrorConstructors(t *testing.T) {
	bad := BadRequest("Could not parse answer UUID: x")
	assert.Equal(t, KindBadRequest, bad.Kind)
	assert.Equal(t, "bad_request: Could not parse answer UUID: x", bad.Error())

	internal := InternalError()
	assert.Equal(t, KindInternal, internal.Kind)
	assert.Equal(t, "Something went wrong! Please try again.", internal.Message)
}

func TestAsErrorUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("delete answer: %w", BadRequest("nope"))

	hErr, ok := AsError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "nope", hErr.Message)
	assert.True(t, IsBadRequest(wrapped))

	_, ok = AsError(fmt.Errorf("plain"))
	assert.False(t, ok)
	assert.False(t, IsInternal(nil))
}
