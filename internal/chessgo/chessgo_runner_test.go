package chessgo

import (
	"testing"

	. "github.com/cricklet/bitchess/internal/game"
	. "github.com/cricklet/bitchess/internal/helpers"
	"github.com/cricklet/bitchess/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunner(depth int) ChessGoRunner {
	options := search.DefaultSearchOptions
	options.Depth = depth
	return NewChessGoRunner(ChessGoOptions{SearchOptions: Some(options)})
}

func TestPerformMoves(t *testing.T) {
	r := newRunner(1)
	assert.True(t, r.IsNew())

	err := r.SetupPosition(Setup{Fen: StartFen})
	require.True(t, IsNil(err), err)
	assert.False(t, r.IsNew())
	assert.Equal(t, StartFen, r.FenString())

	for _, m := range []string{"e2e4", "e7e5", "g1f3"} {
		err := r.PerformMoveFromString(m)
		require.True(t, IsNil(err), err)
	}

	assert.Equal(t, []string{"e2e4", "e7e5", "g1f3"}, r.MoveHistory())
	assert.Equal(t, "1. e2e4 e7e5 2. g1f3 ", r.PgnFromMoveHistory())
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 0 1", r.FenString())
	assert.Equal(t, Black, r.Player())
	assert.Equal(t, "g1f3", r.LastMove().Value().String())
}

func TestIllegalMoveIsRejected(t *testing.T) {
	r := newRunner(1)
	err := r.SetupPosition(Setup{Fen: StartFen})
	require.True(t, IsNil(err), err)

	for _, m := range []string{"e2e5", "e7e5", "e1g1", "zz", "a1a2"} {
		err = r.PerformMoveFromString(m)
		assert.False(t, IsNil(err), m)
	}
	assert.Equal(t, []string{}, r.MoveHistory())
	assert.Equal(t, StartFen, r.FenString())

	err = r.SetupPosition(Setup{Fen: StartFen, Moves: []string{"e2e4", "e2e4"}})
	assert.False(t, IsNil(err))
	assert.True(t, r.IsNew())

	err = r.SetupPosition(Setup{Fen: "not a fen"})
	assert.False(t, IsNil(err))
	assert.True(t, r.IsNew())
}

func TestRewind(t *testing.T) {
	r := newRunner(1)
	err := r.SetupPosition(Setup{Fen: StartFen, Moves: []string{"e2e4", "e7e5"}})
	require.True(t, IsNil(err), err)

	err = r.Rewind(1)
	require.True(t, IsNil(err), err)
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1", r.FenString())

	err = r.Rewind(5)
	require.True(t, IsNil(err), err)
	assert.Equal(t, StartFen, r.FenString())
	assert.Equal(t, 0, len(r.MoveHistory()))
	assert.False(t, r.LastMove().HasValue())
}

func TestPerformMovesOnlyPlaysTheDifference(t *testing.T) {
	r := newRunner(1)
	err := r.SetupPosition(Setup{Fen: StartFen})
	require.True(t, IsNil(err), err)

	err = r.PerformMoves(StartFen, []string{"e2e4", "e7e5"})
	require.True(t, IsNil(err), err)

	err = r.PerformMoves(StartFen, []string{"e2e4", "c7c5", "g1f3"})
	require.True(t, IsNil(err), err)
	assert.Equal(t, []string{"e2e4", "c7c5", "g1f3"}, r.MoveHistory())
	assert.Equal(t, "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 0 1", r.FenString())

	err = r.PerformMoves("8/8/8/8/8/8/8/8 w - - 0 1", []string{})
	assert.False(t, IsNil(err))
}

func TestCastledKingMoves(t *testing.T) {
	fen := "rn1qk2r/ppp3pp/3b1n2/3ppb2/8/2NPBNP1/PPP2PBP/R2QK2R b KQkq - 15 8"
	moves := []string{
		"e8g8",
		"d3d4",
	}

	r := newRunner(1)
	err := r.SetupPosition(Setup{Fen: fen, Moves: moves})
	require.True(t, IsNil(err), err)

	kingMoves, err := r.MovesForSelection("g8")
	require.True(t, IsNil(err), err)
	assert.NotContains(t, kingMoves, "g8f8")
	assert.Contains(t, kingMoves, "g8h8")

	assert.Equal(t, "rn1q1rk1/ppp3pp/3b1n2/3ppb2/3P4/2N1BNP1/PPP2PBP/R2QK2R b KQ - 0 1", r.FenString())
}

func TestMovesForSelection(t *testing.T) {
	r := newRunner(1)
	_, err := r.MovesForSelection("e2")
	assert.False(t, IsNil(err))

	err = r.SetupPosition(Setup{Fen: StartFen})
	require.True(t, IsNil(err), err)

	moves, err := r.MovesForSelection("e2")
	require.True(t, IsNil(err), err)
	assert.Equal(t, []string{"e2e3", "e2e4"}, moves)

	moves, err = r.MovesForSelection("e7")
	require.True(t, IsNil(err), err)
	assert.Equal(t, []string{}, moves)

	_, err = r.MovesForSelection("z9")
	assert.False(t, IsNil(err))
}

func TestSearch(t *testing.T) {
	r := newRunner(2)
	_, err := r.Search()
	assert.False(t, IsNil(err))

	err = r.SetupPosition(Setup{Fen: "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"})
	require.True(t, IsNil(err), err)

	result, err := r.Search()
	require.True(t, IsNil(err), err)
	require.True(t, result.HasValue())
	assert.Equal(t, "a1a8", result.Value().Move)
	assert.Equal(t, search.MateScore, result.Value().Score)
	assert.Equal(t, 2, result.Value().Depth)

	err = r.PerformMoveFromString(result.Value().Move)
	require.True(t, IsNil(err), err)
	assert.Equal(t, search.Checkmate, r.Status())
	assert.True(t, r.PlayerIsInCheck())

	result, err = r.Search()
	assert.True(t, IsNil(err), err)
	assert.False(t, result.HasValue())
}

func TestPgnFromBlack(t *testing.T) {
	r := newRunner(1)
	err := r.SetupPosition(Setup{
		Fen:   "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
		Moves: []string{"e7e5", "g1f3", "b8c6"},
	})
	require.True(t, IsNil(err), err)
	assert.Equal(t, "1... e7e5 2. g1f3 b8c6 ", r.PgnFromMoveHistory())
}
