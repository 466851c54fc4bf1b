package search

import (
	"strconv"
	"strings"

	. "github.com/cricklet/bitchess/internal/helpers"
)

type SearchOptions struct {
	Depth int
	// Workers bounds how many root moves are scored at once.
	Workers int
	Debug   bool
}

var DefaultSearchOptions = SearchOptions{
	Depth:   3,
	Workers: 1,
	Debug:   false,
}

var AllSearchOptions = []string{
	"depth",
	"workers",
	"debug",
}

func parseIntOption(arg string) (int, Error) {
	_, value, found := strings.Cut(arg, "=")
	if !found {
		return 0, Errorf("option '%s' needs a value", arg)
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, Wrap(err)
	}
	return int(n), NilError
}

// SearchOptionsFromArgs reads key=value args on top of the defaults, eg
// "depth=4 workers=8 debug".
func SearchOptionsFromArgs(args ...string) (SearchOptions, Error) {
	options := DefaultSearchOptions

	for _, arg := range args {
		var err Error
		if strings.HasPrefix(arg, "depth") {
			options.Depth, err = parseIntOption(arg)
		} else if strings.HasPrefix(arg, "workers") {
			options.Workers, err = parseIntOption(arg)
		} else if strings.HasPrefix(arg, "debug") {
			options.Debug = true
		} else {
			return options, Errorf("unknown option: %s", arg)
		}
		if !IsNil(err) {
			return options, err
		}
	}

	if options.Depth < 1 {
		return options, Errorf("depth must be at least 1, got %v", options.Depth)
	}
	if options.Workers < 1 {
		return options, Errorf("workers must be at least 1, got %v", options.Workers)
	}

	return options, NilError
}

func (o SearchOptions) Args() []string {
	args := []string{
		"depth=" + strconv.Itoa(o.Depth),
		"workers=" + strconv.Itoa(o.Workers),
	}
	if o.Debug {
		args = append(args, "debug")
	}
	return args
}
