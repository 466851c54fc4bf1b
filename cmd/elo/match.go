package main

import (
	"fmt"
	"time"

	"github.com/cricklet/bitchess/internal/chessgo"
	. "github.com/cricklet/bitchess/internal/helpers"
	"github.com/cricklet/bitchess/internal/search"
	"github.com/cricklet/bitchess/internal/store"
	"github.com/cricklet/bitchess/internal/zobrist"
)

const _footerProgress = 0
const _footerGame = 1
const _footerSearch = 2
const _footerBoard = 3

type Engine struct {
	Name    string
	Options search.SearchOptions
}

func (e Engine) String() string {
	return fmt.Sprintf("%v %v", e.Name, e.Options.Args())
}

type MatchOptions struct {
	Games    int
	MaxPlies int
	StartFen string
}

// PlayGame plays one game between two engines. The engine knows no draw
// rules, so the game is adjudicated a draw on the third occurrence of a
// position or once it reaches maxPlies.
func PlayGame(white, black Engine, startFen string, maxPlies int, logger Logger, onMove func(*chessgo.ChessGoRunner)) (store.GameRecord, Error) {
	record := store.GameRecord{
		StartFen: startFen,
		Moves:    []string{},
		White:    white.Name,
		Black:    black.Name,
		Result:   store.ResultOngoing,
		Started:  time.Now(),
	}

	runners := [2]*chessgo.ChessGoRunner{}
	for i, engine := range []Engine{white, black} {
		runner := chessgo.NewChessGoRunner(chessgo.ChessGoOptions{
			SearchOptions: Some(engine.Options),
			Logger:        Some(logger),
		})
		err := runner.SetupPosition(Setup{Fen: startFen})
		if !IsNil(err) {
			return record, err
		}
		runners[i] = &runner
	}

	repetitions := zobrist.NewRepetitionTable()
	repetitions.Add(runners[White].Position())

	for {
		toMove := runners[White].Player()
		status := runners[White].Status()
		if status != search.InProgress {
			record.Result = store.ResultFromStatus(status, toMove)
			break
		}
		if len(record.Moves) >= maxPlies || repetitions.Count(runners[White].Position()) >= 3 {
			record.Result = store.ResultDraw
			break
		}

		result, err := runners[toMove].Search()
		if !IsNil(err) {
			return record, err
		}
		if result.IsEmpty() {
			return record, Errorf("no move found in %v", runners[toMove].FenString())
		}

		move := result.Value().Move
		for _, runner := range runners {
			err = runner.PerformMoveFromString(move)
			if !IsNil(err) {
				return record, err
			}
		}
		record.Moves = append(record.Moves, move)
		repetitions.Add(runners[White].Position())

		if onMove != nil {
			onMove(runners[White])
		}
	}

	record.Finished = time.Now()
	return record, NilError
}

// scoreFor is the score of the engine that played white (or black) in a
// game with the given result.
func scoreFor(result string, playedWhite bool) float64 {
	switch result {
	case store.ResultWhiteWins:
		if playedWhite {
			return 1
		}
		return 0
	case store.ResultBlackWins:
		if playedWhite {
			return 0
		}
		return 1
	}
	return 0.5
}

// PlayMatch plays a against b, alternating colors, and returns the tally for
// a. Finished games are recorded when db is non-nil.
func PlayMatch(a, b Engine, options MatchOptions, logger *LiveLogger, db *store.Store) (Tally, Error) {
	tally := NewTally()

	for i := 0; i < options.Games; i++ {
		aIsWhite := i%2 == 0
		white, black := a, b
		if !aIsWhite {
			white, black = b, a
		}

		logger.SetFooter(fmt.Sprintf("game %d/%d, %v: %v, elo %v",
			i+1, options.Games, a.Name, tally, tally.EloString()), _footerProgress)

		record, err := PlayGame(white, black, options.StartFen, options.MaxPlies, NewFooterLogger(logger, _footerSearch), func(r *chessgo.ChessGoRunner) {
			logger.SetFooter(fmt.Sprintf("%v (white) vs %v (black), ply %d", white.Name, black.Name, len(r.MoveHistory())), _footerGame)
			logger.SetFooter(r.Board().Unicode(), _footerBoard)
		})
		if !IsNil(err) {
			return tally, err
		}

		tally.Add(scoreFor(record.Result, aIsWhite))
		logger.Printf("%v (white) vs %v (black): %v in %d plies\n", white.Name, black.Name, record.Result, len(record.Moves))

		if db != nil {
			_, err = db.RecordResult(record)
			if !IsNil(err) {
				return tally, err
			}
		}
	}

	logger.SetFooter("", _footerGame)
	logger.SetFooter("", _footerSearch)
	logger.SetFooter("", _footerBoard)
	logger.SetFooter(fmt.Sprintf("%v vs %v: %v, elo %v", a.Name, b.Name, tally, tally.EloString()), _footerProgress)
	logger.FlushFooter()

	return tally, NilError
}
