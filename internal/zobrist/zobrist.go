package zobrist

import (
	"math/rand"

	. "github.com/cricklet/bitchess/internal/game"
	. "github.com/cricklet/bitchess/internal/helpers"
)

var ZobristPieceAtSquare [NumPieces][64]uint64
var ZobristSideToMove uint64

// indexed by castling bit: K, Q, k, q
var ZobristCastlingRights [4]uint64

func init() {
	r := rand.New(rand.NewSource(32879419))
	ZobristSideToMove = r.Uint64()
	for i := 0; i < 4; i++ {
		ZobristCastlingRights[i] = r.Uint64()
	}
	for piece := 0; piece < int(NumPieces); piece++ {
		for index := 0; index < 64; index++ {
			ZobristPieceAtSquare[piece][index] = r.Uint64()
		}
	}
}

// Hash identifies a position by its placement, side to move and castling
// rights.
func Hash(p *Position) uint64 {
	hash := uint64(0)
	for piece := 0; piece < int(NumPieces); piece++ {
		p.Pieces[piece].EachIndexOfOneCallback(func(index int) {
			hash ^= ZobristPieceAtSquare[piece][index]
		})
	}
	if p.Player == Black {
		hash ^= ZobristSideToMove
	}
	for i := 0; i < 4; i++ {
		if p.Castling.Has(CastlingRights(1 << i)) {
			hash ^= ZobristCastlingRights[i]
		}
	}
	return hash
}
