package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cricklet/bitchess/internal/chessgo"
	. "github.com/cricklet/bitchess/internal/helpers"
	"github.com/cricklet/bitchess/internal/search"
	"github.com/cricklet/bitchess/internal/store"
)

type UpdateToWeb struct {
	FenString     string   `json:"fenString"`
	LastMove      string   `json:"lastMove"`
	Selection     string   `json:"selection"`
	PossibleMoves []string `json:"possibleMoves"`
	Player        string   `json:"player"`
	Status        string   `json:"status"`
	Result        string   `json:"result"`
}

func (u UpdateToWeb) String() string {
	return fmt.Sprint("UpdateToWeb: ", u.FenString, ", ", u.LastMove, ", ", u.Selection, ", ", u.PossibleMoves, ", ", u.Status)
}

type MessageFromWeb struct {
	NewFen      *string `json:"newFen"`
	WhitePlayer *string `json:"whitePlayer"`
	BlackPlayer *string `json:"blackPlayer"`
	Selection   *string `json:"selection"`
	Move        *string `json:"move"`
	Ready       *bool   `json:"ready"`
	Rewind      *int    `json:"rewind"`
}

func (u MessageFromWeb) String() string {
	if u.NewFen != nil {
		return fmt.Sprint("MessageFromWeb NewFen: ", *u.NewFen)
	}
	if u.WhitePlayer != nil {
		return fmt.Sprint("MessageFromWeb WhitePlayer: ", *u.WhitePlayer)
	}
	if u.BlackPlayer != nil {
		return fmt.Sprint("MessageFromWeb BlackPlayer: ", *u.BlackPlayer)
	}
	if u.Selection != nil {
		return fmt.Sprint("MessageFromWeb Selection: ", *u.Selection)
	}
	if u.Move != nil {
		return fmt.Sprint("MessageFromWeb Move: ", *u.Move)
	}
	if u.Ready != nil {
		return fmt.Sprint("MessageFromWeb Ready: ", *u.Ready)
	}
	if u.Rewind != nil {
		return fmt.Sprint("MessageFromWeb Rewind: ", *u.Rewind)
	}
	return "MessageFromWeb unknown"
}

type LogForwarding struct {
	writeCallback func(message string)
}

func (l *LogForwarding) Println(v ...any) {
	l.writeCallback(fmt.Sprintln(v...))
}
func (l *LogForwarding) Printf(format string, v ...any) {
	l.writeCallback(fmt.Sprintf(format, v...))
}
func (l *LogForwarding) Print(v ...any) {
	l.writeCallback(fmt.Sprint(v...))
}

type PlayerType int

const (
	User PlayerType = iota
	Engine
	Unknown
)

func (t PlayerType) String() string {
	switch t {
	case User:
		return "user"
	case Engine:
		return "engine"
	default:
		return "unknown"
	}
}

func PlayerTypeFromString(s string) PlayerType {
	switch s {
	case "user":
		return User
	case "engine", "chessgo":
		return Engine
	}
	return Unknown
}

// session is one browser connection playing one game at a time.
type session struct {
	logger      Logger
	runner      chessgo.ChessGoRunner
	playerTypes [2]PlayerType
	ready       bool

	// nil when games are not persisted
	store  *store.Store
	record store.GameRecord

	send func(bytes []byte)
}

func newSession(options search.SearchOptions, playerTypes [2]PlayerType, s *store.Store, send func([]byte)) *session {
	result := &session{
		playerTypes: playerTypes,
		store:       s,
		send:        send,
	}

	result.logger = &LogForwarding{
		writeCallback: func(message string) {
			result.log(fmt.Sprintf("server: %v", message))
		},
	}
	result.runner = chessgo.NewChessGoRunner(chessgo.ChessGoOptions{
		SearchOptions: Some(options),
		Logger: Some[Logger](&LogForwarding{
			writeCallback: func(message string) {
				result.log(fmt.Sprintf("engine: %v", message))
			},
		}),
	})

	return result
}

// log lines travel to the browser as a one element JSON array.
func (s *session) log(message string) {
	bytes, err := json.Marshal([]string{message})
	if err != nil {
		return
	}
	s.send(bytes)
}

func (s *session) setup(fen string) Error {
	err := s.runner.SetupPosition(Setup{Fen: fen, Moves: []string{}})
	if !IsNil(err) {
		return err
	}

	s.record = store.GameRecord{
		StartFen: fen,
		White:    s.playerTypes[White].String(),
		Black:    s.playerTypes[Black].String(),
		Result:   store.ResultOngoing,
		Started:  time.Now(),
	}
	return NilError
}

// save stores the game so far and records its result once finished.
func (s *session) save() {
	if s.store == nil || s.runner.IsNew() {
		return
	}

	s.record.Moves = s.runner.MoveHistory()
	s.record.Result = store.ResultFromStatus(s.runner.Status(), s.runner.Player())
	if !s.record.IsFinished() {
		s.record.Finished = time.Time{}
	}

	var err Error
	if s.record.IsFinished() {
		s.record, err = s.store.RecordResult(s.record)
	} else {
		s.record, err = s.store.SaveGame(s.record)
	}
	if !IsNil(err) {
		s.logger.Println("store: ", err)
	}
}

// savePlayerTypes makes the current player types the default for the next
// connection.
func (s *session) savePlayerTypes() {
	if s.store == nil {
		return
	}
	prefs, err := s.store.LoadPreferences()
	if !IsNil(err) {
		s.logger.Println("preferences: ", err)
		return
	}
	prefs.WhitePlayer = s.playerTypes[White].String()
	prefs.BlackPlayer = s.playerTypes[Black].String()
	err = s.store.SavePreferences(prefs)
	if !IsNil(err) {
		s.logger.Println("preferences: ", err)
	}
}

func (s *session) sendUpdate(update UpdateToWeb) {
	if s.runner.IsNew() {
		return
	}

	update.FenString = s.runner.FenString()
	update.Player = s.runner.Player().String()
	update.Status = s.runner.Status().String()
	update.Result = store.ResultFromStatus(s.runner.Status(), s.runner.Player())
	if lastMove := s.runner.LastMove(); lastMove.HasValue() {
		update.LastMove = lastMove.Value().String()
	}

	s.logger.Println("sending", update)
	bytes, err := json.Marshal(update)
	if err != nil {
		s.logger.Println("update: json marshal: ", err)
		return
	}
	s.send(bytes)
}

// performEngineMove plays one move when the side to move belongs to the
// engine, and reports whether it did.
func (s *session) performEngineMove() bool {
	if !s.ready || s.runner.IsNew() {
		return false
	}
	if s.playerTypes[s.runner.Player()] != Engine {
		return false
	}

	result, err := s.runner.Search()
	if !IsNil(err) {
		s.logger.Println("search: ", err)
		return false
	}
	if result.IsEmpty() {
		s.logger.Println("no move found")
		return false
	}

	s.logger.Println("search: ", result.Value().Move, result.Value().Score)
	err = s.runner.PerformMoveFromString(result.Value().Move)
	if !IsNil(err) {
		s.logger.Println("perform: ", result.Value().Move, err)
		return false
	}

	return true
}

func (s *session) handleMessage(bytes []byte) {
	var message MessageFromWeb
	err := json.Unmarshal(bytes, &message)
	if err != nil {
		s.logger.Println("handleMessage: json unmarshal: ", err)
		return
	}
	s.logger.Println("received", message)

	var update UpdateToWeb
	shouldUpdate := false
	// the game changed and needs saving
	moved := false

	if message.NewFen != nil {
		err := s.setup(*message.NewFen)
		if !IsNil(err) {
			s.logger.Println("setup: ", err)
		}
		shouldUpdate = true
	} else if message.WhitePlayer != nil {
		s.playerTypes[White] = PlayerTypeFromString(*message.WhitePlayer)
		s.record.White = s.playerTypes[White].String()
		s.savePlayerTypes()
	} else if message.BlackPlayer != nil {
		s.playerTypes[Black] = PlayerTypeFromString(*message.BlackPlayer)
		s.record.Black = s.playerTypes[Black].String()
		s.savePlayerTypes()
	} else if message.Selection != nil {
		if *message.Selection != "" {
			update.Selection = *message.Selection
			result, err := s.runner.MovesForSelection(*message.Selection)
			if !IsNil(err) {
				s.logger.Println("moves for: ", *message.Selection, err)
			}
			update.PossibleMoves = result
		}
		shouldUpdate = true
	} else if message.Move != nil {
		err := s.runner.PerformMoveFromString(*message.Move)
		if !IsNil(err) {
			s.logger.Println("perform: ", *message.Move, err)
		} else {
			moved = true
		}
		shouldUpdate = true
	} else if message.Rewind != nil {
		err := s.runner.Rewind(*message.Rewind)
		if !IsNil(err) {
			s.logger.Println("rewind: ", *message.Rewind, err)
		} else {
			moved = true
		}
		shouldUpdate = true
	} else if message.Ready != nil {
		s.ready = *message.Ready
		shouldUpdate = true
	}

	if shouldUpdate {
		s.sendUpdate(update)
	}

	// one engine move per message; engine against engine games advance on
	// each ready message
	if s.performEngineMove() {
		moved = true
		s.sendUpdate(UpdateToWeb{})
	}

	if moved {
		s.save()
	}
}
