package search

import (
	"math"
	"strconv"
	"strings"
	"sync/atomic"

	. "github.com/cricklet/bitchess/internal/game"
	. "github.com/cricklet/bitchess/internal/helpers"
	"golang.org/x/sync/errgroup"
)

// MateScore is what a checkmated side to move scores. Stalemate scores 0.
const MateScore = 10000

func ScoreString(score int) string {
	if score <= -MateScore+100 {
		return "mated"
	}
	if score >= MateScore-100 {
		return "mates"
	}
	return strconv.Itoa(score)
}

// Negamax scores p from the side to move's point of view, exhaustively to
// depth plies with no pruning.
func Negamax(p *Position, depth int) int {
	return negamax(p, depth, nil)
}

func negamax(p *Position, depth int, nodes *atomic.Int64) int {
	if nodes != nil {
		nodes.Add(1)
	}

	if depth == 0 {
		return MaterialScore(p, p.Player)
	}

	moves := LegalMoves(p, p.Player)
	if len(moves) == 0 {
		if p.KingInCheck(p.Player) {
			return -MateScore
		}
		return 0
	}

	best := math.MinInt
	for _, move := range moves {
		next := p.Fork()
		next.Apply(move)
		if score := -negamax(next, depth-1, nodes); score > best {
			best = score
		}
	}
	return best
}

type Result struct {
	Move  Move
	Score int
	Depth int
	Nodes int
}

func (r Result) String() string {
	return r.Move.String() + " " + ScoreString(r.Score)
}

type Searcher struct {
	Logger Logger

	options SearchOptions
}

func NewSearcher(logger Logger, options SearchOptions) Searcher {
	return Searcher{
		Logger:  logger,
		options: options,
	}
}

func (s *Searcher) Options() SearchOptions {
	return s.options
}

// Evaluate scores every legal root move and returns the best one. Ties go to
// the move generated first, also when the root moves are scored in parallel.
func (s *Searcher) Evaluate(p *Position) (Result, Error) {
	depth := s.options.Depth
	if depth < 1 {
		return Result{}, Errorf("search depth must be at least 1, got %v", depth)
	}

	moves := LegalMoves(p, p.Player)
	if len(moves) == 0 {
		return Result{}, Errorf("no legal moves for %v in '%v'", p.Player, p.Fen())
	}

	scores := make([]int, len(moves))
	nodes := atomic.Int64{}

	group := errgroup.Group{}
	group.SetLimit(MaxInt(s.options.Workers, 1))
	for i, move := range moves {
		group.Go(func() error {
			next := p.Fork()
			next.Apply(move)
			scores[i] = -negamax(next, depth-1, &nodes)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Result{}, Wrap(err)
	}

	best := 0
	for i := range scores {
		if scores[i] > scores[best] {
			best = i
		}
	}

	result := Result{
		Move:  moves[best],
		Score: scores[best],
		Depth: depth,
		Nodes: int(nodes.Load()),
	}

	if s.options.Debug {
		s.Logger.Println(strings.Join(MapSlice(moves, func(m Move) string {
			return m.String()
		}), " "))
		s.Logger.Println(strings.Join(MapSlice(scores, strconv.Itoa), " "))
	}
	s.Logger.Println("evaluated",
		"to depth", depth,
		"- nodes", result.Nodes,
		"- best move", result.Move.String(),
		"- score", ScoreString(result.Score))

	return result, NilError
}

func (s *Searcher) Search(p *Position) (Move, Error) {
	result, err := s.Evaluate(p)
	return result.Move, err
}

// Search picks a move for the side to move at a fixed depth. It fails when
// that side has no legal moves.
func Search(p *Position, depth int) (Move, Error) {
	options := DefaultSearchOptions
	options.Depth = depth
	searcher := NewSearcher(&SilentLogger, options)
	return searcher.Search(p)
}
