package search

import (
	. "github.com/cricklet/bitchess/internal/bitboards"
	. "github.com/cricklet/bitchess/internal/game"
	. "github.com/cricklet/bitchess/internal/helpers"
)

// Every generator takes the moving player, the empty squares and the
// squares held by the other player, and returns pseudo-legal moves: the
// mover's king may be left attacked.

func PawnMoves(p *Position, player Player, empty Bitboard, enemy Bitboard) []Move {
	piece := PieceForPlayer(player, Pawn)
	pushDir := PawnPushDirs[player]

	result := []Move{}
	add := func(start int, end int) {
		result = append(result, NewMove(piece, start, end, IsPromotionIndex(end, player)))
	}

	p.Pieces[piece].EachIndexOfOneCallback(func(start int) {
		if single, ok := StepFrom(start, pushDir); ok && empty.IsSet(single) {
			add(start, single)

			if PawnStartingRanks[player].IsSet(start) {
				if double, ok := StepFrom(single, pushDir); ok && empty.IsSet(double) {
					add(start, double)
				}
			}
		}

		for _, dir := range PawnCaptureDirs[player] {
			if capture, ok := StepFrom(start, dir); ok && enemy.IsSet(capture) {
				add(start, capture)
			}
		}
	})

	return result
}

func jumpMoves(piece Piece, pieces Bitboard, attackMasks *[64]Bitboard, empty Bitboard, enemy Bitboard) []Move {
	result := []Move{}
	pieces.EachIndexOfOneCallback(func(start int) {
		targets := attackMasks[start] & (empty | enemy)
		targets.EachIndexOfOneCallback(func(end int) {
			result = append(result, NewMove(piece, start, end, false))
		})
	})
	return result
}

func rayMoves(piece Piece, pieces Bitboard, dirs []Dir, empty Bitboard, enemy Bitboard) []Move {
	result := []Move{}
	pieces.EachIndexOfOneCallback(func(start int) {
		for _, dir := range dirs {
			current := start
			for {
				next, ok := StepFrom(current, dir)
				if !ok {
					break
				}
				current = next

				if empty.IsSet(current) {
					result = append(result, NewMove(piece, start, current, false))
					continue
				}
				if enemy.IsSet(current) {
					result = append(result, NewMove(piece, start, current, false))
				}
				break
			}
		}
	})
	return result
}

func KnightMoves(p *Position, player Player, empty Bitboard, enemy Bitboard) []Move {
	piece := PieceForPlayer(player, Knight)
	return jumpMoves(piece, p.Pieces[piece], &KnightAttackMasks, empty, enemy)
}

// BishopMoves walks the diagonals of the player's bishops, or of the
// player's queens when queen is set.
func BishopMoves(p *Position, player Player, empty Bitboard, enemy Bitboard, queen bool) []Move {
	piece := PieceForPlayer(player, Bishop)
	if queen {
		piece = PieceForPlayer(player, Queen)
	}
	return rayMoves(piece, p.Pieces[piece], BishopDirs, empty, enemy)
}

// RookMoves walks the ranks and files of the player's rooks, or of the
// player's queens when queen is set.
func RookMoves(p *Position, player Player, empty Bitboard, enemy Bitboard, queen bool) []Move {
	piece := PieceForPlayer(player, Rook)
	if queen {
		piece = PieceForPlayer(player, Queen)
	}
	return rayMoves(piece, p.Pieces[piece], RookDirs, empty, enemy)
}

func QueenMoves(p *Position, player Player, empty Bitboard, enemy Bitboard) []Move {
	return append(
		BishopMoves(p, player, empty, enemy, true),
		RookMoves(p, player, empty, enemy, true)...)
}

func KingMoves(p *Position, player Player, empty Bitboard, enemy Bitboard) []Move {
	piece := PieceForPlayer(player, King)
	result := jumpMoves(piece, p.Pieces[piece], &KingAttackMasks, empty, enemy)

	if p.KingInCheck(player) {
		return result
	}

	for _, side := range AllCastlingSides {
		if c := AllCastlingRequirements[player][side]; canCastle(p, player, c, empty) {
			result = append(result, Move{Piece: piece, Start: c.KingStart, End: c.KingEnd})
		}
	}

	return result
}

func canCastle(p *Position, player Player, c CastlingRequirements, empty Bitboard) bool {
	if !p.Castling.Has(c.Right) {
		return false
	}
	if p.Pieces[PieceForPlayer(player, King)]&c.KingStart == 0 ||
		p.Pieces[PieceForPlayer(player, Rook)]&c.RookStart == 0 {
		return false
	}
	if c.Between&empty != c.Between {
		return false
	}
	for _, index := range c.Safe {
		if p.IsSquareAttacked(index, player.Other()) {
			return false
		}
	}
	return true
}

// PseudoLegalMoves is the union of every family, generated in the order
// pawn, knight, bishop, rook, queen, king.
func PseudoLegalMoves(p *Position, player Player) []Move {
	empty := p.Empty()
	enemy := p.OccupiedBy(player.Other())

	result := PawnMoves(p, player, empty, enemy)
	result = append(result, KnightMoves(p, player, empty, enemy)...)
	result = append(result, BishopMoves(p, player, empty, enemy, false)...)
	result = append(result, RookMoves(p, player, empty, enemy, false)...)
	result = append(result, QueenMoves(p, player, empty, enemy)...)
	result = append(result, KingMoves(p, player, empty, enemy)...)
	return result
}
