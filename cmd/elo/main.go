package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/profile"

	. "github.com/cricklet/bitchess/internal/game"
	. "github.com/cricklet/bitchess/internal/helpers"
	"github.com/cricklet/bitchess/internal/search"
	"github.com/cricklet/bitchess/internal/store"
)

type eloOptions struct {
	a       Engine
	b       Engine
	match   MatchOptions
	dbDir   Optional[string]
	noDb    bool
	profile bool
}

func engineFromArg(name string, value string) (Engine, Error) {
	args := FilterSlice(strings.Split(value, ","), func(s string) bool { return s != "" })
	options, err := search.SearchOptionsFromArgs(args...)
	if !IsNil(err) {
		return Engine{}, Errorf("engine %v: %w", name, err)
	}
	return Engine{Name: name, Options: options}, NilError
}

// eloOptionsFromArgs reads eg "games=20 plies=200 a=depth=2 b=depth=3,workers=4".
func eloOptionsFromArgs(args []string) (eloOptions, Error) {
	options := eloOptions{
		a: Engine{Name: "a", Options: search.DefaultSearchOptions},
		b: Engine{Name: "b", Options: search.DefaultSearchOptions},
		match: MatchOptions{
			Games:    10,
			MaxPlies: 200,
			StartFen: StartFen,
		},
	}

	for _, arg := range args {
		key, value, _ := strings.Cut(arg, "=")

		var err Error
		switch key {
		case "a":
			options.a, err = engineFromArg("a", value)
		case "b":
			options.b, err = engineFromArg("b", value)
		case "games", "plies":
			n, parseErr := strconv.Atoi(value)
			if parseErr != nil {
				return options, Wrap(parseErr)
			}
			if n < 1 {
				return options, Errorf("%v must be at least 1, got %v", key, n)
			}
			if key == "games" {
				options.match.Games = n
			} else {
				options.match.MaxPlies = n
			}
		case "fen":
			_, err = PositionFromFen(value)
			options.match.StartFen = value
		case "db":
			options.dbDir = Some(value)
		case "nodb":
			options.noDb = true
		case "profile":
			options.profile = true
		default:
			return options, Errorf("unknown argument: %v", arg)
		}
		if !IsNil(err) {
			return options, err
		}
	}

	return options, NilError
}

func openStore(options eloOptions) (*store.Store, Error) {
	if options.noDb {
		return nil, NilError
	}
	if options.dbDir.HasValue() {
		return store.Open(options.dbDir.Value())
	}
	return store.OpenDefault()
}

func main() {
	options, err := eloOptionsFromArgs(os.Args[1:])
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if options.profile {
		defer profile.Start(profile.ProfilePath(RootDir() + "/data/CmdEloMain")).Stop()
	}

	db, err := openStore(options)
	if !IsNil(err) {
		panic(err)
	}
	if db != nil {
		defer db.Close()
	}

	logger := NewLiveLogger()
	logger.Println("a:", options.a)
	logger.Println("b:", options.b)

	tally, err := PlayMatch(options.a, options.b, options.match, logger, db)
	if !IsNil(err) {
		panic(err)
	}

	if db != nil {
		stats, err := db.LoadStats()
		if !IsNil(err) {
			panic(err)
		}
		logger.Printf("recorded %d games, %.1f plies on average\n", stats.GamesPlayed, stats.AveragePlies())
	}

	logger.Printf("a scored %.1f%% over %d games, ratings %v\n", tally.Score()*100, tally.Games(), tally.EloString())
}
