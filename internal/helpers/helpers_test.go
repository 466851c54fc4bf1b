package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice(t *testing.T) {
	a := make([]int, 0, 5)
	b := append(a[:0], 1, 2, 3, 4)
	c := append(a[:0], 4, 5, 6)

	assert.Equal(t, []int{}, a)
	assert.Equal(t, []int{4, 5, 6, 4}, b)
	assert.Equal(t, []int{4, 5, 6}, c)
}

func TestSliceHelpers(t *testing.T) {
	xs := []int{1, 2, 3, 4}
	assert.Equal(t, []int{2, 4, 6, 8}, MapSlice(xs, func(x int) int { return x * 2 }))
	assert.Equal(t, []int{2, 4}, FilterSlice(xs, func(x int) bool { return x%2 == 0 }))
	assert.Equal(t, 10, ReduceSlice(xs, 0, func(sum int, x int) int { return sum + x }))
	assert.True(t, Contains(xs, 3))
	assert.False(t, Contains(xs, 5))

	found := FindInSlice(xs, func(x int) bool { return x > 2 })
	assert.True(t, found.HasValue())
	assert.Equal(t, 3, found.Value())
	assert.True(t, FindInSlice(xs, func(x int) bool { return x > 9 }).IsEmpty())
}

func TestReverseBits(t *testing.T) {
	assert.Equal(t, uint8(0b10000000), ReverseBits(0b00000001))
	assert.Equal(t, uint8(0b00001101), ReverseBits(0b10110000))
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "- a\n- b", Indent("a\nb", "- "))
	assert.Equal(t, "- a\n", Indent("a\n", "- "))
}

func TestOptional(t *testing.T) {
	assert.Equal(t, 3, Empty[int]().ValueOr(3))
	assert.Equal(t, 5, Some(5).ValueOr(3))
}
