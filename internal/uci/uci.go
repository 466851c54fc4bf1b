package uci

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/cricklet/bitchess/internal/game"
	. "github.com/cricklet/bitchess/internal/helpers"
)

type UciRunner struct {
	Runner Runner
}

func NewUciRunner(runner Runner) UciRunner {
	return UciRunner{runner}
}

// Runners that can change their search depth between searches accept
// "go depth N". The depth only applies to that search.
type depthSetter interface {
	Depth() int
	SetDepth(depth int) Error
}

type fenStringer interface {
	FenString() string
	Board() BoardArray
}

func parseFen(input string) (string, Error) {
	s := strings.TrimPrefix(input, "position ")

	if strings.HasPrefix(s, "fen ") {
		s = strings.TrimPrefix(s, "fen ")
		return strings.TrimSpace(strings.Split(s, " moves")[0]), NilError
	} else if strings.HasPrefix(s, "startpos") {
		return StartFen, NilError
	}

	return "", Errorf("couldn't parse '%v'", s)
}

func parseMoves(input string) []string {
	result := []string{}
	if strings.Contains(input, " moves ") {
		fields := strings.Fields(strings.SplitN(input, " moves ", 2)[1])
		result = append(result, fields...)
	}
	return result
}

func parseSetup(input string) (Setup, Error) {
	fen, err := parseFen(input)
	if !IsNil(err) {
		return Setup{}, err
	}
	return Setup{Fen: fen, Moves: parseMoves(input)}, NilError
}

func parseDepth(input string) (Optional[int], Error) {
	fields := strings.Fields(input)
	for i, field := range fields {
		if field == "depth" {
			if i+1 >= len(fields) {
				return Empty[int](), Errorf("missing depth in '%v'", input)
			}
			depth, err := strconv.Atoi(fields[i+1])
			if err != nil {
				return Empty[int](), Wrap(err)
			}
			return Some(depth), NilError
		}
	}
	return Empty[int](), NilError
}

func (u *UciRunner) HandleInput(input string) ([]string, Error) {
	input = strings.TrimSpace(input)
	command := ""
	if fields := strings.Fields(input); len(fields) > 0 {
		command = fields[0]
	}
	result := []string{}
	if input == "uci" {
		result = append(result, "id name bitchess 1")
		result = append(result, "id author Kenrick Rilee")
		result = append(result, "uciok")
	} else if input == "ucinewgame" {
		u.Runner.Reset()
	} else if input == "isready" {
		result = append(result, "readyok")
	} else if input == "d" {
		if r, ok := u.Runner.(fenStringer); ok && !u.Runner.IsNew() {
			result = append(result, strings.Split(r.Board().String(), "\n")...)
			result = append(result, "Fen: "+r.FenString())
		}
	} else if strings.HasPrefix(input, "position ") {
		setup, err := parseSetup(input)
		if !IsNil(err) {
			return result, err
		}
		if u.Runner.IsNew() {
			err = u.Runner.SetupPosition(setup)
		} else {
			err = u.Runner.PerformMoves(setup.Fen, setup.Moves)
			if !IsNil(err) {
				// a different game, start over
				err = u.Runner.SetupPosition(setup)
			}
		}
		if !IsNil(err) {
			return result, err
		}
	} else if command == "go" {
		depth, err := parseDepth(input)
		if !IsNil(err) {
			return result, err
		}
		if depth.HasValue() {
			setter, ok := u.Runner.(depthSetter)
			if !ok {
				return result, Errorf("runner does not support 'go depth'")
			}
			previous := setter.Depth()
			err = setter.SetDepth(depth.Value())
			if !IsNil(err) {
				return result, err
			}
			defer setter.SetDepth(previous)
		}

		search, err := u.Runner.Search()
		if !IsNil(err) {
			return result, err
		}

		if search.IsEmpty() {
			return result, Errorf("no legal moves")
		}

		s := search.Value()
		result = append(result, fmt.Sprintf("info depth %v score cp %v nodes %v pv %v", s.Depth, s.Score*100, s.Nodes, s.Move))
		result = append(result, fmt.Sprintf("bestmove %v", s.Move))
	}
	return result, NilError
}
