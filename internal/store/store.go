package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"

	. "github.com/cricklet/bitchess/internal/helpers"
	"github.com/cricklet/bitchess/internal/search"
)

const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	keyGameCounter = "game_counter"
	gamePrefix     = "game/"
)

const (
	ResultWhiteWins = "1-0"
	ResultBlackWins = "0-1"
	ResultDraw      = "1/2-1/2"
	ResultOngoing   = "*"
)

// ResultFromStatus reads a game result off the status of the final position
// and the side to move in it.
func ResultFromStatus(status search.GameStatus, toMove Player) string {
	switch status {
	case search.Checkmate:
		if toMove == White {
			return ResultBlackWins
		}
		return ResultWhiteWins
	case search.Stalemate:
		return ResultDraw
	}
	return ResultOngoing
}

type GameRecord struct {
	ID       string    `json:"id"`
	StartFen string    `json:"start_fen"`
	Moves    []string  `json:"moves"`
	White    string    `json:"white"`
	Black    string    `json:"black"`
	Result   string    `json:"result"`
	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`
}

func (g GameRecord) IsFinished() bool {
	return g.Result != ResultOngoing && g.Result != ""
}

type Preferences struct {
	Depth       int       `json:"depth"`
	Workers     int       `json:"workers"`
	WhitePlayer string    `json:"white_player"`
	BlackPlayer string    `json:"black_player"`
	LastPlayed  time.Time `json:"last_played"`
}

func DefaultPreferences() *Preferences {
	return &Preferences{
		Depth:       search.DefaultSearchOptions.Depth,
		Workers:     search.DefaultSearchOptions.Workers,
		WhitePlayer: "user",
		BlackPlayer: "engine",
	}
}

// SearchOptions applies the stored depth and workers over the defaults.
func (p *Preferences) SearchOptions() search.SearchOptions {
	options := search.DefaultSearchOptions
	if p.Depth > 0 {
		options.Depth = p.Depth
	}
	if p.Workers > 0 {
		options.Workers = p.Workers
	}
	return options
}

type Stats struct {
	GamesPlayed int            `json:"games_played"`
	WhiteWins   int            `json:"white_wins"`
	BlackWins   int            `json:"black_wins"`
	Draws       int            `json:"draws"`
	WinsBy      map[string]int `json:"wins_by"`
	TotalPlies  int            `json:"total_plies"`
}

func NewStats() *Stats {
	return &Stats{
		WinsBy: make(map[string]int),
	}
}

type Store struct {
	db *badger.DB
}

// Open opens the database in dir. An empty dir keeps everything in memory.
func Open(dir string) (*Store, Error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, Wrap(err)
	}

	return &Store{db: db}, NilError
}

func OpenDefault() (*Store, Error) {
	dir, err := DatabaseDir()
	if !IsNil(err) {
		return nil, err
	}
	return Open(dir)
}

func (s *Store) Close() Error {
	if s.db != nil {
		return Wrap(s.db.Close())
	}
	return NilError
}

func (s *Store) set(key string, value any) Error {
	data, err := json.Marshal(value)
	if err != nil {
		return Wrap(err)
	}

	return Wrap(s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	}))
}

// get leaves value untouched when key is missing.
func (s *Store) get(key string, value any) (bool, Error) {
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, value)
		})
	})
	return found, Wrap(err)
}

func (s *Store) SavePreferences(prefs *Preferences) Error {
	prefs.LastPlayed = time.Now()
	return s.set(keyPreferences, prefs)
}

// LoadPreferences returns the defaults until preferences are saved.
func (s *Store) LoadPreferences() (*Preferences, Error) {
	prefs := DefaultPreferences()
	_, err := s.get(keyPreferences, prefs)
	return prefs, err
}

func (s *Store) LoadStats() (*Stats, Error) {
	stats := NewStats()
	_, err := s.get(keyStats, stats)
	if stats.WinsBy == nil {
		stats.WinsBy = make(map[string]int)
	}
	return stats, err
}

func gameKey(id string) string {
	return gamePrefix + id
}

func (s *Store) nextGameID() (string, Error) {
	var id uint64
	err := s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyGameCounter))
		if err == nil {
			err = item.Value(func(val []byte) error {
				id, err = strconv.ParseUint(string(val), 10, 64)
				return err
			})
		}
		if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		id++
		return txn.Set([]byte(keyGameCounter), []byte(strconv.FormatUint(id, 10)))
	})
	if err != nil {
		return "", Wrap(err)
	}
	// zero padded so keys iterate in creation order
	return fmt.Sprintf("%08d", id), NilError
}

// saveGame writes the record, assigning a fresh ID when it has none, and
// returns what was stored under its ID before.
func (s *Store) saveGame(record GameRecord) (GameRecord, GameRecord, Error) {
	previous := GameRecord{}
	if record.ID == "" {
		id, err := s.nextGameID()
		if !IsNil(err) {
			return record, previous, err
		}
		record.ID = id
	} else {
		_, err := s.get(gameKey(record.ID), &previous)
		if !IsNil(err) {
			return record, previous, err
		}
	}
	if record.Result == "" {
		record.Result = ResultOngoing
	}
	return record, previous, s.set(gameKey(record.ID), record)
}

// SaveGame writes the record, assigning a fresh ID when it has none. A
// recorded game saved again unfinished, because it was rewound, is taken back
// out of the stats.
func (s *Store) SaveGame(record GameRecord) (GameRecord, Error) {
	record, previous, err := s.saveGame(record)
	if !IsNil(err) {
		return record, err
	}
	if !previous.IsFinished() || record.IsFinished() {
		return record, NilError
	}

	stats, err := s.LoadStats()
	if !IsNil(err) {
		return record, err
	}
	stats.count(previous, -1)
	return record, s.set(keyStats, stats)
}

func (s *Store) LoadGame(id string) (GameRecord, Error) {
	record := GameRecord{}
	found, err := s.get(gameKey(id), &record)
	if !IsNil(err) {
		return record, err
	}
	if !found {
		return record, Errorf("no game with id '%v'", id)
	}
	return record, NilError
}

func (s *Store) ListGames() ([]GameRecord, Error) {
	result := []GameRecord{}

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(gamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			record := GameRecord{}
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			})
			if err != nil {
				return err
			}
			result = append(result, record)
		}
		return nil
	})

	return result, Wrap(err)
}

func (s *Store) DeleteGame(id string) Error {
	return Wrap(s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(gameKey(id)))
	}))
}

// count adds (sign 1) or removes (sign -1) a finished game from the stats.
func (s *Stats) count(record GameRecord, sign int) {
	s.GamesPlayed += sign
	s.TotalPlies += sign * len(record.Moves)

	switch record.Result {
	case ResultWhiteWins:
		s.WhiteWins += sign
		s.WinsBy[record.White] += sign
	case ResultBlackWins:
		s.BlackWins += sign
		s.WinsBy[record.Black] += sign
	default:
		s.Draws += sign
	}
}

// RecordResult saves a finished game and folds it into the stats. A game that
// was already recorded, then rewound and finished again, replaces its earlier
// result instead of counting twice.
func (s *Store) RecordResult(record GameRecord) (GameRecord, Error) {
	if !record.IsFinished() {
		return record, Errorf("game %v is not finished", record.ID)
	}
	if record.Finished.IsZero() {
		record.Finished = time.Now()
	}

	record, previous, err := s.saveGame(record)
	if !IsNil(err) {
		return record, err
	}

	stats, err := s.LoadStats()
	if !IsNil(err) {
		return record, err
	}

	if previous.IsFinished() {
		stats.count(previous, -1)
	}
	stats.count(record, 1)

	return record, s.set(keyStats, stats)
}

func (s *Stats) AveragePlies() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.TotalPlies) / float64(s.GamesPlayed)
}
