package search

import (
	. "github.com/cricklet/bitchess/internal/game"
	. "github.com/cricklet/bitchess/internal/helpers"
)

var PieceValues = [NumPieceTypes]int{
	Pawn:   1,
	Knight: 3,
	Bishop: 3,
	Rook:   5,
	Queen:  9,
	King:   100,
}

func materialFor(p *Position, player Player) int {
	result := 0
	for _, pieceType := range AllPieceTypes {
		result += PieceValues[pieceType] * p.Pieces[PieceForPlayer(player, pieceType)].OnesCount()
	}
	return result
}

// MaterialScore is player's material minus the other player's.
func MaterialScore(p *Position, player Player) int {
	return materialFor(p, player) - materialFor(p, player.Other())
}
