package helpers

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNil(t *testing.T) {
	var err error
	assert.True(t, IsNil(err))

	var traceableErr Error = NilError
	assert.True(t, IsNil(traceableErr))

	assert.False(t, IsNil(Errorf("bad %v", 1)))
}

func TestWrapNil(t *testing.T) {
	assert.True(t, IsNil(Wrap(nil)))
	assert.False(t, IsNil(Wrap(errors.New("boom"))))
}

func TestJoin(t *testing.T) {
	assert.True(t, IsNil(Join(NilError, NilError)))

	a := Errorf("first")
	b := Errorf("second")
	assert.Equal(t, 1, Join(NilError, a).NumErrors())

	joined := Join(a, NilError, b)
	assert.Equal(t, 2, joined.NumErrors())
	assert.True(t, strings.Contains(joined.Error(), "first"))
	assert.True(t, strings.Contains(joined.Error(), "second"))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", NilError.Message())
	assert.Equal(t, "invalid player 'x'", Errorf("invalid player '%v'", "x").Message())
}
