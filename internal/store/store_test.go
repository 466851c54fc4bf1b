package store

import (
	"testing"
	"time"

	. "github.com/cricklet/bitchess/internal/game"
	. "github.com/cricklet/bitchess/internal/helpers"
	"github.com/cricklet/bitchess/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	s, err := Open(t.TempDir())
	require.True(t, IsNil(err), err)
	t.Cleanup(func() {
		assert.True(t, IsNil(s.Close()))
	})
	return s
}

func TestPreferences(t *testing.T) {
	s := openTestStore(t)

	prefs, err := s.LoadPreferences()
	require.True(t, IsNil(err), err)
	assert.Equal(t, DefaultPreferences().Depth, prefs.Depth)
	assert.Equal(t, search.DefaultSearchOptions, prefs.SearchOptions())

	prefs.Depth = 4
	prefs.Workers = 2
	prefs.BlackPlayer = "user"
	err = s.SavePreferences(prefs)
	require.True(t, IsNil(err), err)

	loaded, err := s.LoadPreferences()
	require.True(t, IsNil(err), err)
	assert.Equal(t, 4, loaded.Depth)
	assert.Equal(t, "user", loaded.BlackPlayer)
	assert.Equal(t, search.SearchOptions{Depth: 4, Workers: 2}, loaded.SearchOptions())
	assert.False(t, loaded.LastPlayed.IsZero())
}

func TestSaveAndListGames(t *testing.T) {
	s := openTestStore(t)

	first, err := s.SaveGame(GameRecord{StartFen: StartFen, Moves: []string{"e2e4"}, Started: time.Now()})
	require.True(t, IsNil(err), err)
	second, err := s.SaveGame(GameRecord{StartFen: StartFen})
	require.True(t, IsNil(err), err)

	assert.Equal(t, "00000001", first.ID)
	assert.Equal(t, "00000002", second.ID)
	assert.Equal(t, ResultOngoing, first.Result)

	first.Moves = append(first.Moves, "e7e5")
	_, err = s.SaveGame(first)
	require.True(t, IsNil(err), err)

	loaded, err := s.LoadGame(first.ID)
	require.True(t, IsNil(err), err)
	assert.Equal(t, []string{"e2e4", "e7e5"}, loaded.Moves)

	games, err := s.ListGames()
	require.True(t, IsNil(err), err)
	require.Equal(t, 2, len(games))
	assert.Equal(t, first.ID, games[0].ID)
	assert.Equal(t, second.ID, games[1].ID)

	err = s.DeleteGame(second.ID)
	require.True(t, IsNil(err), err)
	_, err = s.LoadGame(second.ID)
	assert.False(t, IsNil(err))

	games, err = s.ListGames()
	require.True(t, IsNil(err), err)
	assert.Equal(t, 1, len(games))
}

func TestRecordResult(t *testing.T) {
	s, err := Open("")
	require.True(t, IsNil(err), err)
	defer s.Close()

	_, err = s.RecordResult(GameRecord{StartFen: StartFen, Result: ResultOngoing})
	assert.False(t, IsNil(err))

	record, err := s.RecordResult(GameRecord{
		StartFen: "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1",
		Moves:    []string{"a1a8"},
		White:    "engine",
		Black:    "user",
		Result:   ResultWhiteWins,
	})
	require.True(t, IsNil(err), err)
	assert.False(t, record.Finished.IsZero())

	_, err = s.RecordResult(GameRecord{StartFen: StartFen, Moves: []string{"e2e4", "e7e5", "d1h5"}, Result: ResultDraw})
	require.True(t, IsNil(err), err)

	stats, err := s.LoadStats()
	require.True(t, IsNil(err), err)
	assert.Equal(t, 2, stats.GamesPlayed)
	assert.Equal(t, 1, stats.WhiteWins)
	assert.Equal(t, 1, stats.Draws)
	assert.Equal(t, 1, stats.WinsBy["engine"])
	assert.Equal(t, 2.0, stats.AveragePlies())
}

func TestResultFromStatus(t *testing.T) {
	assert.Equal(t, ResultBlackWins, ResultFromStatus(search.Checkmate, White))
	assert.Equal(t, ResultWhiteWins, ResultFromStatus(search.Checkmate, Black))
	assert.Equal(t, ResultDraw, ResultFromStatus(search.Stalemate, Black))
	assert.Equal(t, ResultOngoing, ResultFromStatus(search.InProgress, White))

	mated, err := PositionFromFen("R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	require.True(t, IsNil(err), err)
	assert.Equal(t, ResultWhiteWins, ResultFromStatus(search.StatusOf(mated), mated.Player))
}

func TestRecordResultReplacesEarlierResult(t *testing.T) {
	s := openTestStore(t)

	record, err := s.RecordResult(GameRecord{
		StartFen: "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1",
		Moves:    []string{"a1a8"},
		White:    "engine",
		Black:    "user",
		Result:   ResultWhiteWins,
	})
	require.True(t, IsNil(err), err)

	// the same game finished again with another result
	record.Result = ResultDraw
	record, err = s.RecordResult(record)
	require.True(t, IsNil(err), err)

	stats, err := s.LoadStats()
	require.True(t, IsNil(err), err)
	assert.Equal(t, 1, stats.GamesPlayed)
	assert.Equal(t, 0, stats.WhiteWins)
	assert.Equal(t, 1, stats.Draws)
	assert.Equal(t, 0, stats.WinsBy["engine"])

	// and then rewound
	record.Moves = []string{}
	record.Result = ResultOngoing
	_, err = s.SaveGame(record)
	require.True(t, IsNil(err), err)

	stats, err = s.LoadStats()
	require.True(t, IsNil(err), err)
	assert.Equal(t, 0, stats.GamesPlayed)
	assert.Equal(t, 0, stats.Draws)
	assert.Equal(t, 0, stats.TotalPlies)

	games, err := s.ListGames()
	require.True(t, IsNil(err), err)
	assert.Equal(t, 1, len(games))
}
