package game

import (
	. "github.com/cricklet/bitchess/internal/bitboards"
	. "github.com/cricklet/bitchess/internal/helpers"
)

// Move is one ply. Start and End each have exactly one bit set. Two moves are
// the same move when all fields are equal.
type Move struct {
	Piece     Piece
	Start     Bitboard
	End       Bitboard
	Promotion bool
}

func NewMove(piece Piece, startIndex int, endIndex int, promotion bool) Move {
	return Move{
		Piece:     piece,
		Start:     SingleBitboard(startIndex),
		End:       SingleBitboard(endIndex),
		Promotion: promotion,
	}
}

func (m Move) StartIndex() int {
	return m.Start.FirstIndexOfOne()
}

func (m Move) EndIndex() int {
	return m.End.FirstIndexOfOne()
}

func (m Move) IsCastling() bool {
	_, ok := CastlingForKingMove(m)
	return ok
}

// String renders long algebraic notation, eg e2e4 or a7a8q.
func (m Move) String() string {
	result := StringFromBoardIndex(m.StartIndex()) + StringFromBoardIndex(m.EndIndex())
	if m.Promotion {
		result += Queen.String()
	}
	return result
}

// ParseSquares splits long algebraic notation into start and end indices. A
// trailing promotion letter is accepted; promotion is always to a queen.
func ParseSquares(s string) (int, int, Error) {
	if len(s) != 4 && len(s) != 5 {
		return 0, 0, Errorf("invalid move '%v'", s)
	}
	start, err := FileRankFromString(s[0:2])
	if !IsNil(err) {
		return 0, 0, Errorf("invalid move '%v': %w", s, err)
	}
	end, err := FileRankFromString(s[2:4])
	if !IsNil(err) {
		return 0, 0, Errorf("invalid move '%v': %w", s, err)
	}
	return IndexFromFileRank(start), IndexFromFileRank(end), NilError
}
