package game

import (
	"testing"

	. "github.com/cricklet/bitchess/internal/bitboards"
	. "github.com/cricklet/bitchess/internal/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyMoves(t *testing.T, fen string, moves ...Move) *Position {
	p, err := PositionFromFen(fen)
	require.True(t, IsNil(err), err)
	for _, move := range moves {
		p.Apply(move)
		require.True(t, p.Disjoint(), p.Fen())
	}
	return p
}

func moveOf(piece Piece, s string) Move {
	start, end, err := ParseSquares(s)
	if !IsNil(err) {
		panic(err)
	}
	return NewMove(piece, start, end, len(s) == 5)
}

func TestApplyQuietMove(t *testing.T) {
	p := applyMoves(t, StartFen, moveOf(WP, "e2e4"))
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1", p.Fen())

	p = applyMoves(t, StartFen, moveOf(WP, "e2e4"), moveOf(BP, "d7d5"), moveOf(WP, "e4d5"))
	assert.Equal(t, "rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1", p.Fen())
	assert.Equal(t, 7, p.Pieces[BP].OnesCount())
}

func TestApplyCastling(t *testing.T) {
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"

	p := applyMoves(t, fen, moveOf(WK, "e1g1"))
	assert.Equal(t, "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 0 1", p.Fen())

	p = applyMoves(t, fen, moveOf(WK, "e1c1"))
	assert.Equal(t, "r3k2r/8/8/8/8/8/8/2KR3R b kq - 0 1", p.Fen())

	p = applyMoves(t, fen, moveOf(WK, "e1g1"), moveOf(BK, "e8c8"))
	assert.Equal(t, "2kr3r/8/8/8/8/8/8/R4RK1 w - - 0 1", p.Fen())

	p = applyMoves(t, fen, moveOf(WK, "e1f1"), moveOf(BK, "e8g8"))
	assert.Equal(t, "r4rk1/8/8/8/8/8/8/R4K1R w - - 0 1", p.Fen())
}

func TestApplyClearsCastlingRights(t *testing.T) {
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"

	p := applyMoves(t, fen, moveOf(WR, "a1a2"))
	assert.Equal(t, WhiteKingside|BlackKingside|BlackQueenside, p.Castling)

	p = applyMoves(t, fen, moveOf(WR, "a1a2"), moveOf(BR, "h8h7"))
	assert.Equal(t, WhiteKingside|BlackQueenside, p.Castling)

	p = applyMoves(t, fen, moveOf(WK, "e1e2"))
	assert.Equal(t, BlackKingside|BlackQueenside, p.Castling)

	// h1 leaves its corner and h8 is captured on its corner
	p = applyMoves(t, fen, moveOf(WR, "h1h8"))
	assert.Equal(t, WhiteQueenside|BlackQueenside, p.Castling)
	assert.Equal(t, "r3k2R/8/8/8/8/8/8/R3K3 b Qq - 0 1", p.Fen())

	p = applyMoves(t, fen, moveOf(WR, "a1a8"))
	assert.Equal(t, WhiteKingside|BlackKingside, p.Castling)
}

func TestApplyPromotion(t *testing.T) {
	p := applyMoves(t, "1n6/P7/8/8/8/8/8/8 w - - 0 1", moveOf(WP, "a7a8q"))
	assert.Equal(t, "Qn6/8/8/8/8/8/8/8 b - - 0 1", p.Fen())
	assert.Equal(t, Bitboard(0), p.Pieces[WP])

	p = applyMoves(t, "1n6/P7/8/8/8/8/8/8 w - - 0 1", moveOf(WP, "a7b8q"))
	assert.Equal(t, "1Q6/8/8/8/8/8/8/8 b - - 0 1", p.Fen())
	assert.Equal(t, Bitboard(0), p.Pieces[BN])

	p = applyMoves(t, "8/8/8/8/8/8/p7/1R6 b - - 0 1", moveOf(BP, "a2b1q"))
	assert.Equal(t, "8/8/8/8/8/8/8/1q6 w - - 0 1", p.Fen())
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "e2e4", moveOf(WP, "e2e4").String())
	assert.Equal(t, "a7a8q", moveOf(WP, "a7a8q").String())
	assert.True(t, moveOf(WK, "e1g1").IsCastling())
	assert.False(t, moveOf(BK, "e1g1").IsCastling())
	assert.False(t, moveOf(WK, "e1f1").IsCastling())

	_, _, err := ParseSquares("e2")
	assert.False(t, IsNil(err))
	_, _, err = ParseSquares("z2e4")
	assert.False(t, IsNil(err))
}
