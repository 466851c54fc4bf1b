package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"

	"github.com/cricklet/bitchess/internal/chessgo"
	. "github.com/cricklet/bitchess/internal/helpers"
	"github.com/cricklet/bitchess/internal/search"
	"github.com/cricklet/bitchess/internal/uci"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "recover()", r)
		}
	}()

	args := os.Args[1:]

	if Contains(args, "profile") {
		profilePath := RootDir() + "/data/CmdUciMain"
		p := profile.Start(profile.ProfilePath(profilePath))
		defer p.Stop()
	}
	args = FilterSlice(args, func(arg string) bool {
		return arg != "profile"
	})

	if len(args) > 0 && args[0] == "options" {
		for _, option := range search.AllSearchOptions {
			fmt.Println(option)
		}
		return
	}

	searchOptions, err := search.SearchOptionsFromArgs(args...)
	if !IsNil(err) {
		panic(err)
	}

	runner := chessgo.NewChessGoRunner(chessgo.ChessGoOptions{
		SearchOptions: Some(searchOptions),
		Logger: Some(FuncLogger(func(s string) {
			fmt.Fprint(os.Stderr, s)
		})),
	})
	r := uci.NewUciRunner(&runner)

	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		input := scanner.Text()
		if input == "quit" {
			break
		}
		result, err := r.HandleInput(input)
		if !IsNil(err) {
			fmt.Fprintln(os.Stderr, "error:", err)
			time.Sleep(200 * time.Millisecond)
			break
		}
		for _, v := range result {
			fmt.Println(v)
		}
	}
}
