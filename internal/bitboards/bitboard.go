package bitboards

import (
	"fmt"
	"math/bits"
	"strings"

	. "github.com/cricklet/bitchess/internal/helpers"
)

// Bitboard has bit i set when square i (rank*8 + file) is occupied.
type Bitboard uint64

var AllZeros Bitboard = Bitboard(0)
var AllOnes Bitboard = ^AllZeros

var SingleBitboards [64]Bitboard = func() [64]Bitboard {
	result := [64]Bitboard{}
	for i := 0; i < 64; i++ {
		result[i] = ShiftTowardsIndex64(1, i)
	}
	return result
}()

func SingleBitboard(index int) Bitboard {
	return SingleBitboards[index]
}

func (b Bitboard) IsSet(index int) bool {
	return b&SingleBitboard(index) != 0
}

func (b Bitboard) OnesCount() int {
	return bits.OnesCount64(uint64(b))
}

func (b Bitboard) LeastSignificantOne() Bitboard {
	return b & -b
}

// FirstIndexOfOne returns 64 for an empty bitboard.
func (b Bitboard) FirstIndexOfOne() int {
	return bits.TrailingZeros64(uint64(b))
}

// NextIndexOfOne pops the lowest set bit, returning its index and the
// remaining bits.
func (b Bitboard) NextIndexOfOne() (int, Bitboard) {
	ls1 := b.LeastSignificantOne()
	index := bits.OnesCount64(uint64(ls1 - 1))
	b = b ^ ls1

	return index, b
}

func (b Bitboard) EachIndexOfOneCallback(callback func(int)) {
	temp := b
	for temp != 0 {
		var index int
		index, temp = temp.NextIndexOfOne()
		callback(index)
	}
}

func (b Bitboard) Indices() []int {
	result := make([]int, 0, b.OnesCount())
	b.EachIndexOfOneCallback(func(index int) {
		result = append(result, index)
	})
	return result
}

func ShiftTowardIndex0(b Bitboard, n int) Bitboard {
	return b >> n
}

func ShiftTowardsIndex64(b Bitboard, n int) Bitboard {
	return b << n
}

func BitboardWithAllLocationsSet(locations []string) Bitboard {
	return ReduceSlice(
		MapSlice(locations, BoardIndexFromString),
		0,
		func(result Bitboard, index int) Bitboard {
			return result | SingleBitboard(index)
		},
	)
}

func (b Bitboard) String() string {
	ranks := [8]string{}
	for rank := 0; rank < 8; rank++ {
		bitsBefore := rank * 8
		bitsAfter := 64 - bitsBefore - 8

		r := b

		// clip everything above this rank
		r = ShiftTowardsIndex64(r, bitsAfter)
		// clip everything before this rank
		r = ShiftTowardIndex0(r, bitsBefore+bitsAfter)

		// mirror the bits so we're printing in a natural order
		// (10000000 for the top left / lowest index instead of 00000001)
		ranks[7-rank] = fmt.Sprintf("%08b", ReverseBits(uint8(r)))
	}

	return strings.Join(ranks[0:], "\n")
}

// BitboardFromStrings reads eight rows of '0'/'1', top row = rank 8.
func BitboardFromStrings(strings [8]string) Bitboard {
	b := Bitboard(0)
	for inverseRank, line := range strings {
		for file, c := range line {
			if c == '1' {
				index := IndexFromFileRank(FileRank{File: File(file), Rank: Rank(7 - inverseRank)})
				b |= SingleBitboard(index)
			}
		}
	}
	return b
}
