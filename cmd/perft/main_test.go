package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/cricklet/bitchess/internal/game"
	. "github.com/cricklet/bitchess/internal/helpers"
)

func TestPerftOptionsFromArgs(t *testing.T) {
	options, err := perftOptionsFromArgs([]string{})
	require.True(t, IsNil(err), err)
	assert.Equal(t, perftOptions{fen: StartFen, depth: 3, workers: 1}, options)

	options, err = perftOptionsFromArgs([]string{"depth=2", "workers=4", "divide", "fen=8/8/8/8/8/8/8/K6k w - - 0 1"})
	require.True(t, IsNil(err), err)
	assert.Equal(t, 2, options.depth)
	assert.Equal(t, 4, options.workers)
	assert.True(t, options.divide)
	assert.Equal(t, "8/8/8/8/8/8/8/K6k w - - 0 1", options.fen)

	for _, args := range [][]string{{"depth=0"}, {"workers=x"}, {"speed=3"}} {
		_, err := perftOptionsFromArgs(args)
		assert.False(t, IsNil(err), args)
	}
}

func TestRunExpectations(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	err := runExpectations(2)
	assert.True(t, IsNil(err), err)
}
