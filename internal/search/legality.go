package search

import (
	. "github.com/cricklet/bitchess/internal/game"
	. "github.com/cricklet/bitchess/internal/helpers"
)

// LegalMoves filters the pseudo-legal moves by playing each one on a fork of
// the position and discarding those that leave the mover's king attacked.
func LegalMoves(p *Position, player Player) []Move {
	return FilterSlice(PseudoLegalMoves(p, player), func(move Move) bool {
		next := p.Fork()
		next.Apply(move)
		return !next.KingInCheck(player)
	})
}

func NoLegalMoves(p *Position) bool {
	for _, move := range PseudoLegalMoves(p, p.Player) {
		next := p.Fork()
		next.Apply(move)
		if !next.KingInCheck(p.Player) {
			return false
		}
	}
	return true
}

func IsCheckmate(p *Position) bool {
	return p.KingInCheck(p.Player) && NoLegalMoves(p)
}

func IsStalemate(p *Position) bool {
	return !p.KingInCheck(p.Player) && NoLegalMoves(p)
}

// MovesFrom lists the legal moves of the piece on index, if it belongs to the
// side to move.
func MovesFrom(p *Position, index int) []Move {
	return FilterSlice(LegalMoves(p, p.Player), func(move Move) bool {
		return move.StartIndex() == index
	})
}

// FindLegalMove resolves a source and destination into the generated move
// that connects them.
func FindLegalMove(p *Position, start int, end int) (Move, Error) {
	move := FindInSlice(LegalMoves(p, p.Player), func(move Move) bool {
		return move.StartIndex() == start && move.EndIndex() == end
	})
	if move.IsEmpty() {
		return Move{}, Errorf("%v%v is not legal in '%v'",
			StringFromBoardIndex(start), StringFromBoardIndex(end), p.Fen())
	}
	return move.Value(), NilError
}

// FindLegalMoveFromString parses long algebraic notation and resolves it
// against the legal moves.
func FindLegalMoveFromString(p *Position, s string) (Move, Error) {
	start, end, err := ParseSquares(s)
	if !IsNil(err) {
		return Move{}, err
	}
	return FindLegalMove(p, start, end)
}

type GameStatus int

const (
	InProgress GameStatus = iota
	Checkmate
	Stalemate
)

func (s GameStatus) String() string {
	return [...]string{"in progress", "checkmate", "stalemate"}[s]
}

func StatusOf(p *Position) GameStatus {
	if !NoLegalMoves(p) {
		return InProgress
	}
	if p.KingInCheck(p.Player) {
		return Checkmate
	}
	return Stalemate
}
