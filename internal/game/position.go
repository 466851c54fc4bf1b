package game

import (
	. "github.com/cricklet/bitchess/internal/bitboards"
	. "github.com/cricklet/bitchess/internal/helpers"
)

type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastlingRights  CastlingRights = 0
	AllCastlingRights CastlingRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

var CastlingRightsForPlayer = [2]CastlingRights{
	WhiteKingside | WhiteQueenside,
	BlackKingside | BlackQueenside,
}

func (c CastlingRights) Has(rights CastlingRights) bool {
	return c&rights == rights
}

// Position is a value type: copying it forks the game state, which is how
// hypothetical moves are explored.
type Position struct {
	Pieces   [NumPieces]Bitboard // indexed via Piece
	Player   Player
	Castling CastlingRights
}

func EmptyPosition() *Position {
	return &Position{Player: White, Castling: NoCastlingRights}
}

func NewPosition() *Position {
	p, err := PositionFromFen(StartFen)
	if !IsNil(err) {
		panic(err)
	}
	return p
}

func (p *Position) Fork() *Position {
	child := *p
	return &child
}

func (p *Position) OccupiedBy(player Player) Bitboard {
	offset := PieceForPlayer(player, Pawn)
	result := Bitboard(0)
	for _, pieceType := range AllPieceTypes {
		result |= p.Pieces[offset+Piece(pieceType)]
	}
	return result
}

func (p *Position) Occupied() Bitboard {
	return p.OccupiedBy(White) | p.OccupiedBy(Black)
}

func (p *Position) Empty() Bitboard {
	return ^p.Occupied()
}

func (p *Position) PieceAt(index int) Piece {
	square := SingleBitboard(index)
	for piece := WP; piece < XX; piece++ {
		if p.Pieces[piece]&square != 0 {
			return piece
		}
	}
	return XX
}

func (p *Position) KingIndex(player Player) (int, bool) {
	king := p.Pieces[PieceForPlayer(player, King)]
	if king == 0 {
		return 0, false
	}
	return king.FirstIndexOfOne(), true
}

func (p *Position) Board() BoardArray {
	b := BoardArray{}
	for i := range b {
		b[i] = p.PieceAt(i)
	}
	return b
}

// Disjoint reports whether every square is held by at most one piece.
func (p *Position) Disjoint() bool {
	seen := Bitboard(0)
	for _, mask := range p.Pieces {
		if seen&mask != 0 {
			return false
		}
		seen |= mask
	}
	return true
}
