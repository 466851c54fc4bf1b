package game

import (
	. "github.com/cricklet/bitchess/internal/helpers"
)

// Apply performs move in place. The move is trusted: it must come from the
// move generator for this position, otherwise the position is corrupted.
func (p *Position) Apply(move Move) {
	player := move.Piece.Player()

	if move.Piece.PieceType() == King {
		if c, ok := CastlingForKingMove(move); ok {
			rook := PieceForPlayer(player, Rook)
			p.Pieces[rook] &^= c.RookStart
			p.Pieces[rook] |= c.RookEnd
		}
		p.Castling &^= CastlingRightsForPlayer[player]
	}

	if move.Piece.PieceType() == Rook {
		for _, c := range AllCastlingRequirements[player] {
			if move.Start == c.RookStart {
				p.Castling &^= c.Right
			}
		}
	}

	// covers rooks captured while their corner still had rights
	for _, requirements := range AllCastlingRequirements {
		for _, c := range requirements {
			if move.End == c.RookStart {
				p.Castling &^= c.Right
			}
		}
	}

	p.Pieces[move.Piece] &^= move.Start

	for i := range p.Pieces {
		p.Pieces[i] &^= move.End
	}

	if move.Promotion {
		p.Pieces[PieceForPlayer(player, Queen)] |= move.End
	} else {
		p.Pieces[move.Piece] |= move.End
	}

	p.Player = p.Player.Other()
}
