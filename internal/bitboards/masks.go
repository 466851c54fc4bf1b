package bitboards

import (
	. "github.com/cricklet/bitchess/internal/helpers"
)

type Dir int

const (
	N Dir = iota
	S
	E
	W

	NE
	NW
	SE
	SW

	NNE
	NNW
	SSE
	SSW
	ENE
	ESE
	WNW
	WSW

	NumDirs
)

func (d Dir) IsDiagonal() bool {
	return d >= NE && d <= SW
}

var KnightDirs = []Dir{
	NNE,
	NNW,
	SSE,
	SSW,
	ENE,
	ESE,
	WNW,
	WSW,
}

var RookDirs = []Dir{
	N,
	S,
	E,
	W,
}

var BishopDirs = []Dir{
	NE,
	NW,
	SE,
	SW,
}

var KingDirs = []Dir{
	N,
	S,
	E,
	W,
	NE,
	NW,
	SE,
	SW,
}

const (
	OffsetN int = 8
	OffsetS int = -8
	OffsetE int = 1
	OffsetW int = -1
)

var Offsets = [NumDirs]int{
	OffsetN,
	OffsetS,
	OffsetE,
	OffsetW,

	OffsetN + OffsetE,
	OffsetN + OffsetW,
	OffsetS + OffsetE,
	OffsetS + OffsetW,

	OffsetN + OffsetN + OffsetE,
	OffsetN + OffsetN + OffsetW,
	OffsetS + OffsetS + OffsetE,
	OffsetS + OffsetS + OffsetW,
	OffsetE + OffsetN + OffsetE,
	OffsetE + OffsetS + OffsetE,
	OffsetW + OffsetN + OffsetW,
	OffsetW + OffsetS + OffsetW,
}

var PawnPushDirs = [2]Dir{N, S}

var PawnCaptureDirs = [2][2]Dir{
	{NE, NW}, // white
	{SE, SW},
}

var Zeros = []int{0, 0, 0, 0, 0, 0, 0, 0}
var Ones = []int{1, 1, 1, 1, 1, 1, 1, 1}
var Sixes = []int{6, 6, 6, 6, 6, 6, 6, 6}
var Sevens = []int{7, 7, 7, 7, 7, 7, 7, 7}
var ZeroToSeven = []int{0, 1, 2, 3, 4, 5, 6, 7}

func ZerosForRange(fs []int, rs []int) Bitboard {
	if len(fs) != len(rs) {
		panic("slices have different length")
	}

	result := AllOnes
	for i := 0; i < len(fs); i++ {
		result &= ^SingleBitboard(IndexFromFileRank(FileRank{File: File(fs[i]), Rank: Rank(rs[i])}))
	}
	return result
}

var (
	MaskN Bitboard = ZerosForRange(ZeroToSeven, Sevens)
	MaskS Bitboard = ZerosForRange(ZeroToSeven, Zeros)
	MaskE Bitboard = ZerosForRange(Sevens, ZeroToSeven)
	MaskW Bitboard = ZerosForRange(Zeros, ZeroToSeven)

	MaskNN Bitboard = ZerosForRange(ZeroToSeven, Sixes)
	MaskSS Bitboard = ZerosForRange(ZeroToSeven, Ones)
	MaskEE Bitboard = ZerosForRange(Sixes, ZeroToSeven)
	MaskWW Bitboard = ZerosForRange(Ones, ZeroToSeven)
)

// PreMoveMasks[dir] has a one on every square from which a single step in dir
// stays on the board.
var PreMoveMasks = [NumDirs]Bitboard{
	MaskN,
	MaskS,
	MaskE,
	MaskW,

	MaskN & MaskE,
	MaskN & MaskW,
	MaskS & MaskE,
	MaskS & MaskW,

	MaskNN & MaskN & MaskE,
	MaskNN & MaskN & MaskW,
	MaskSS & MaskS & MaskE,
	MaskSS & MaskS & MaskW,
	MaskEE & MaskN & MaskE,
	MaskEE & MaskS & MaskE,
	MaskWW & MaskN & MaskW,
	MaskWW & MaskS & MaskW,
}

// StepFrom returns the square one step from index in dir, or false when that
// step would leave the board.
func StepFrom(index int, dir Dir) (int, bool) {
	if SingleBitboard(index)&PreMoveMasks[dir] == 0 {
		return 0, false
	}
	return index + Offsets[dir], true
}

func attackMasksFor(dirs []Dir) [64]Bitboard {
	result := [64]Bitboard{}

	for i := 0; i < 64; i++ {
		for _, dir := range dirs {
			if target, ok := StepFrom(i, dir); ok {
				result[i] |= SingleBitboard(target)
			}
		}
	}
	return result
}

var KnightAttackMasks [64]Bitboard = attackMasksFor(KnightDirs)

var KingAttackMasks [64]Bitboard = attackMasksFor(KingDirs)

var RankMasks = func() [8]Bitboard {
	result := [8]Bitboard{}
	for rank := 0; rank < 8; rank++ {
		result[rank] = Bitboard(0xFF) << (8 * rank)
	}
	return result
}()

// PawnStartingRanks are the only ranks a pawn may double push from.
var PawnStartingRanks = [2]Bitboard{
	RankMasks[1],
	RankMasks[6],
}

var PawnPromotionRanks = [2]Bitboard{
	RankMasks[7],
	RankMasks[0],
}

func IsPromotionIndex(index int, player Player) bool {
	return PawnPromotionRanks[player].IsSet(index)
}
