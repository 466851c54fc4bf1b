package game

import (
	. "github.com/cricklet/bitchess/internal/bitboards"
	. "github.com/cricklet/bitchess/internal/helpers"
)

// IsSquareAttacked reports whether any piece of player by attacks index in
// the position as it stands.
func (p *Position) IsSquareAttacked(index int, by Player) bool {
	// a pawn of by attacks index from one rank behind it, ie from the
	// squares a pawn of the other player on index would capture onto
	pawns := p.Pieces[PieceForPlayer(by, Pawn)]
	for _, dir := range PawnCaptureDirs[by.Other()] {
		if from, ok := StepFrom(index, dir); ok && pawns.IsSet(from) {
			return true
		}
	}

	if KnightAttackMasks[index]&p.Pieces[PieceForPlayer(by, Knight)] != 0 {
		return true
	}

	occupied := p.Occupied()
	queens := p.Pieces[PieceForPlayer(by, Queen)]
	rooks := p.Pieces[PieceForPlayer(by, Rook)]
	bishops := p.Pieces[PieceForPlayer(by, Bishop)]
	king := p.Pieces[PieceForPlayer(by, King)]

	for _, dir := range KingDirs {
		current := index
		for distance := 1; ; distance++ {
			next, ok := StepFrom(current, dir)
			if !ok {
				break
			}
			current = next

			square := SingleBitboard(current)
			if square&occupied == 0 {
				continue
			}

			if square&queens != 0 ||
				(!dir.IsDiagonal() && square&rooks != 0) ||
				(dir.IsDiagonal() && square&bishops != 0) ||
				(distance == 1 && square&king != 0) {
				return true
			}
			// the first piece in this direction blocks whatever lies behind it
			break
		}
	}

	return false
}

// KingInCheck is false for a player without a king.
func (p *Position) KingInCheck(player Player) bool {
	index, ok := p.KingIndex(player)
	if !ok {
		return false
	}
	return p.IsSquareAttacked(index, player.Other())
}
