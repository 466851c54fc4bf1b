package perft

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	. "github.com/cricklet/bitchess/internal/game"
	. "github.com/cricklet/bitchess/internal/helpers"
	"github.com/cricklet/bitchess/internal/search"
)

// Count returns the number of leaves of the legal move tree below p.
func Count(p *Position, depth int) int {
	if depth == 0 {
		return 1
	}
	result := 0
	for _, move := range search.LegalMoves(p, p.Player) {
		next := p.Fork()
		next.Apply(move)
		result += Count(next, depth-1)
	}
	return result
}

type Options struct {
	Workers int
	// Progress receives a progress bar, one tick per root move. Nil hides it.
	Progress io.Writer
}

type Result struct {
	Depth   int
	Leaves  int
	Divide  map[string]int
	Elapsed time.Duration
}

// Run counts leaves per root move, spreading root moves over workers.
func Run(p *Position, depth int, options Options) (Result, Error) {
	if depth < 1 {
		return Result{}, Errorf("perft depth must be at least 1, got %v", depth)
	}

	startTime := time.Now()
	moves := search.LegalMoves(p, p.Player)

	var bar *progressbar.ProgressBar
	if options.Progress != nil {
		bar = progressbar.NewOptions(len(moves),
			progressbar.OptionSetWriter(options.Progress),
			progressbar.OptionSetDescription(fmt.Sprint("depth ", depth)),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40))
	}

	result := Result{
		Depth:  depth,
		Divide: make(map[string]int, len(moves)),
	}
	lock := sync.Mutex{}

	group := errgroup.Group{}
	group.SetLimit(MaxInt(options.Workers, 1))
	for _, move := range moves {
		group.Go(func() error {
			next := p.Fork()
			next.Apply(move)
			leaves := Count(next, depth-1)

			lock.Lock()
			result.Divide[move.String()] = leaves
			result.Leaves += leaves
			lock.Unlock()

			if bar != nil {
				return bar.Add(1)
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return result, Wrap(err)
	}
	if bar != nil {
		if err := bar.Finish(); err != nil {
			return result, Wrap(err)
		}
	}

	result.Elapsed = time.Since(startTime)
	return result, NilError
}

func (r Result) LeavesPerSecond() int {
	if r.Elapsed <= 0 {
		return 0
	}
	return int(float64(r.Leaves) / r.Elapsed.Seconds())
}

// DivideString lists each root move with its leaf count, sorted by move.
func (r Result) DivideString() string {
	moves := make([]string, 0, len(r.Divide))
	for move := range r.Divide {
		moves = append(moves, move)
	}
	slices.Sort(moves)

	lines := MapSlice(moves, func(move string) string {
		return fmt.Sprintf("%v: %v", move, r.Divide[move])
	})
	return strings.Join(lines, "\n")
}

func (r Result) String() string {
	return fmt.Sprintf("depth %v: %v leaves in %v (%v/s)",
		r.Depth,
		humanize.Comma(int64(r.Leaves)),
		r.Elapsed.Round(time.Millisecond),
		humanize.Comma(int64(r.LeavesPerSecond())))
}

// Expectation is a known leaf count for a position at a depth.
type Expectation struct {
	Fen    string
	Depth  int
	Leaves int
}

// Expectations are positions without en passant or under-promotion anywhere
// in their trees up to the listed depth, so this engine matches the
// published counts.
var Expectations = []Expectation{
	{StartFen, 1, 20},
	{StartFen, 2, 400},
	{StartFen, 3, 8902},
	{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 1, 48},
	{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", 1, 26},
	{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", 2, 568},
}
