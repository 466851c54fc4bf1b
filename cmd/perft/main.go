package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/profile"

	. "github.com/cricklet/bitchess/internal/game"
	. "github.com/cricklet/bitchess/internal/helpers"
	"github.com/cricklet/bitchess/internal/perft"
)

type perftOptions struct {
	fen     string
	depth   int
	workers int
	divide  bool
	check   bool
	profile bool
}

// perftOptionsFromArgs reads eg "depth=4 workers=8 divide fen=<fen>".
func perftOptionsFromArgs(args []string) (perftOptions, Error) {
	options := perftOptions{
		fen:     StartFen,
		depth:   3,
		workers: 1,
	}

	for _, arg := range args {
		key, value, _ := strings.Cut(arg, "=")
		switch key {
		case "depth", "workers":
			n, err := strconv.Atoi(value)
			if err != nil {
				return options, Wrap(err)
			}
			if n < 1 {
				return options, Errorf("%v must be at least 1, got %v", key, n)
			}
			if key == "depth" {
				options.depth = n
			} else {
				options.workers = n
			}
		case "fen":
			options.fen = value
		case "divide":
			options.divide = true
		case "check":
			options.check = true
		case "profile":
			options.profile = true
		default:
			return options, Errorf("unknown argument: %v", arg)
		}
	}

	return options, NilError
}

// runExpectations counts every known position and reports mismatches.
func runExpectations(workers int) Error {
	failures := 0
	for _, expectation := range perft.Expectations {
		p, err := PositionFromFen(expectation.Fen)
		if !IsNil(err) {
			return err
		}
		result, err := perft.Run(p, expectation.Depth, perft.Options{Workers: workers})
		if !IsNil(err) {
			return err
		}
		status := "ok"
		if result.Leaves != expectation.Leaves {
			status = fmt.Sprintf("FAILED, expected %d", expectation.Leaves)
			failures++
		}
		fmt.Printf("%v depth %d: %d %v\n", expectation.Fen, expectation.Depth, result.Leaves, status)
	}
	if failures > 0 {
		return Errorf("%d perft counts did not match", failures)
	}
	return NilError
}

func main() {
	options, err := perftOptionsFromArgs(os.Args[1:])
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if options.profile {
		defer profile.Start(profile.ProfilePath(RootDir() + "/data/CmdPerftMain")).Stop()
	}

	if options.check {
		err = runExpectations(options.workers)
		if !IsNil(err) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	p, err := PositionFromFen(options.fen)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(p.Board().String())

	result, err := perft.Run(p, options.depth, perft.Options{
		Workers:  options.workers,
		Progress: os.Stderr,
	})
	if !IsNil(err) {
		panic(err)
	}

	if options.divide {
		fmt.Println(result.DivideString())
	}
	fmt.Println(result.String())
}
