package game

import (
	. "github.com/cricklet/bitchess/internal/bitboards"
	. "github.com/cricklet/bitchess/internal/helpers"
)

type CastlingRequirements struct {
	Right     CastlingRights
	KingStart Bitboard
	KingEnd   Bitboard
	RookStart Bitboard
	RookEnd   Bitboard
	// Between holds the squares strictly between king and rook.
	Between Bitboard
	// Safe holds the king's start, transit and destination squares.
	Safe []int
}

var AllCastlingRequirements = func() [2][2]CastlingRequirements {
	result := [2][2]CastlingRequirements{}
	result[White][Kingside] = CastlingRequirements{
		Right:     WhiteKingside,
		KingStart: BitboardWithAllLocationsSet([]string{"e1"}),
		KingEnd:   BitboardWithAllLocationsSet([]string{"g1"}),
		RookStart: BitboardWithAllLocationsSet([]string{"h1"}),
		RookEnd:   BitboardWithAllLocationsSet([]string{"f1"}),
		Between:   BitboardWithAllLocationsSet([]string{"f1", "g1"}),
		Safe:      MapSlice([]string{"e1", "f1", "g1"}, BoardIndexFromString),
	}
	result[White][Queenside] = CastlingRequirements{
		Right:     WhiteQueenside,
		KingStart: BitboardWithAllLocationsSet([]string{"e1"}),
		KingEnd:   BitboardWithAllLocationsSet([]string{"c1"}),
		RookStart: BitboardWithAllLocationsSet([]string{"a1"}),
		RookEnd:   BitboardWithAllLocationsSet([]string{"d1"}),
		Between:   BitboardWithAllLocationsSet([]string{"b1", "c1", "d1"}),
		Safe:      MapSlice([]string{"e1", "d1", "c1"}, BoardIndexFromString),
	}
	result[Black][Kingside] = CastlingRequirements{
		Right:     BlackKingside,
		KingStart: BitboardWithAllLocationsSet([]string{"e8"}),
		KingEnd:   BitboardWithAllLocationsSet([]string{"g8"}),
		RookStart: BitboardWithAllLocationsSet([]string{"h8"}),
		RookEnd:   BitboardWithAllLocationsSet([]string{"f8"}),
		Between:   BitboardWithAllLocationsSet([]string{"f8", "g8"}),
		Safe:      MapSlice([]string{"e8", "f8", "g8"}, BoardIndexFromString),
	}
	result[Black][Queenside] = CastlingRequirements{
		Right:     BlackQueenside,
		KingStart: BitboardWithAllLocationsSet([]string{"e8"}),
		KingEnd:   BitboardWithAllLocationsSet([]string{"c8"}),
		RookStart: BitboardWithAllLocationsSet([]string{"a8"}),
		RookEnd:   BitboardWithAllLocationsSet([]string{"d8"}),
		Between:   BitboardWithAllLocationsSet([]string{"b8", "c8", "d8"}),
		Safe:      MapSlice([]string{"e8", "d8", "c8"}, BoardIndexFromString),
	}
	return result
}()

// CastlingForKingMove matches a king move against the four canonical
// castling (start, end) pairs of the mover's color.
func CastlingForKingMove(move Move) (CastlingRequirements, bool) {
	if move.Piece.PieceType() != King {
		return CastlingRequirements{}, false
	}
	for _, side := range AllCastlingSides {
		c := AllCastlingRequirements[move.Piece.Player()][side]
		if move.Start == c.KingStart && move.End == c.KingEnd {
			return c, true
		}
	}
	return CastlingRequirements{}, false
}
