package search

import (
	"testing"

	. "github.com/cricklet/bitchess/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func TestSearchOptionsFromArgs(t *testing.T) {
	options, err := SearchOptionsFromArgs()
	assert.True(t, IsNil(err), err)
	assert.Equal(t, DefaultSearchOptions, options)

	options, err = SearchOptionsFromArgs("depth=4", "workers=8", "debug")
	assert.True(t, IsNil(err), err)
	assert.Equal(t, SearchOptions{Depth: 4, Workers: 8, Debug: true}, options)

	roundTrip, err := SearchOptionsFromArgs(options.Args()...)
	assert.True(t, IsNil(err), err)
	assert.Equal(t, options, roundTrip)

	for _, args := range [][]string{
		{"depth"},
		{"depth=x"},
		{"depth=0"},
		{"workers=0"},
		{"quiescence"},
	} {
		_, err := SearchOptionsFromArgs(args...)
		assert.False(t, IsNil(err), args)
	}
}
