package bitboards

import (
	"testing"

	. "github.com/cricklet/bitchess/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func TestBitboardFromStrings(t *testing.T) {
	b := BitboardFromStrings([8]string{
		"10000001",
		"00000000",
		"00000000",
		"00000000",
		"00000000",
		"00000000",
		"11111111",
		"10000001",
	})

	assert.Equal(t, Bitboard(0x810000000000FF81), b)
	assert.Equal(t, ""+
		"10000001\n"+
		"00000000\n"+
		"00000000\n"+
		"00000000\n"+
		"00000000\n"+
		"00000000\n"+
		"11111111\n"+
		"10000001", b.String())
}

func TestIndices(t *testing.T) {
	b := BitboardWithAllLocationsSet([]string{"a1", "e4", "h8"})
	assert.Equal(t, []int{0, 28, 63}, b.Indices())
	assert.Equal(t, 3, b.OnesCount())
	assert.Equal(t, 0, b.FirstIndexOfOne())
	assert.Equal(t, 64, AllZeros.FirstIndexOfOne())

	index, rest := b.NextIndexOfOne()
	assert.Equal(t, 0, index)
	assert.Equal(t, []int{28, 63}, rest.Indices())
}

func TestStepFrom(t *testing.T) {
	_, ok := StepFrom(BoardIndexFromString("h4"), E)
	assert.False(t, ok)
	_, ok = StepFrom(BoardIndexFromString("a8"), N)
	assert.False(t, ok)
	_, ok = StepFrom(BoardIndexFromString("b1"), WSW)
	assert.False(t, ok)

	next, ok := StepFrom(BoardIndexFromString("e4"), NE)
	assert.True(t, ok)
	assert.Equal(t, "f5", StringFromBoardIndex(next))

	next, ok = StepFrom(BoardIndexFromString("g1"), NNW)
	assert.True(t, ok)
	assert.Equal(t, "f3", StringFromBoardIndex(next))
}

func TestAttackMasks(t *testing.T) {
	assert.Equal(t,
		BitboardWithAllLocationsSet([]string{"b3", "c2"}),
		KnightAttackMasks[BoardIndexFromString("a1")])
	assert.Equal(t, 8, KnightAttackMasks[BoardIndexFromString("d4")].OnesCount())
	assert.Equal(t,
		BitboardWithAllLocationsSet([]string{"g8", "g7", "h7"}),
		KingAttackMasks[BoardIndexFromString("h8")])
	assert.Equal(t, 8, KingAttackMasks[BoardIndexFromString("e5")].OnesCount())
}

func TestPromotionRanks(t *testing.T) {
	assert.True(t, IsPromotionIndex(BoardIndexFromString("a8"), White))
	assert.False(t, IsPromotionIndex(BoardIndexFromString("a1"), White))
	assert.True(t, IsPromotionIndex(BoardIndexFromString("h1"), Black))
	assert.True(t, PawnStartingRanks[White].IsSet(BoardIndexFromString("c2")))
	assert.True(t, PawnStartingRanks[Black].IsSet(BoardIndexFromString("c7")))
}
