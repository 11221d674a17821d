package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSample = errors.New("sample")

func TestWrapErrorKeepsChain(t *testing.T) {
	err := WrapError(errSample, EMISSING, "font not found: %s", "xano")
	assert.True(t, errors.Is(err, errSample), "wrapped error should be reachable")
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, "font not found: xano", UserMessage(err))
	assert.Contains(t, err.Error(), "[122]")
}

func TestCodeOfForeignError(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errSample))
	assert.Equal(t, "internal error", UserMessage(errSample))
	assert.Equal(t, "", UserMessage(nil))
}

func TestErrorWithoutCause(t *testing.T) {
	err := Error(ENOGLYPHS, "nothing to draw")
	assert.Equal(t, ENOGLYPHS, Code(err))
	assert.Equal(t, "nothing to draw", UserMessage(err))
	err = WrapError(nil, EINVALID, "")
	assert.Equal(t, "invalid", UserMessage(err))
}
