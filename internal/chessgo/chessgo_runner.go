package chessgo

import (
	"fmt"

	. "github.com/cricklet/bitchess/internal/game"
	. "github.com/cricklet/bitchess/internal/helpers"
	"github.com/cricklet/bitchess/internal/search"
)

type ChessGoRunner struct {
	Logger Logger

	p        *Position
	searcher search.Searcher

	StartFen string
	history  []HistoryValue
}

var _ Runner = (*ChessGoRunner)(nil)

type ChessGoOptions struct {
	SearchOptions Optional[search.SearchOptions]
	Logger        Optional[Logger]
}

func NewChessGoRunner(opts ChessGoOptions) ChessGoRunner {
	r := ChessGoRunner{}
	if opts.Logger.HasValue() {
		r.Logger = opts.Logger.Value()
	} else {
		r.Logger = &SilentLogger
	}
	r.searcher = search.NewSearcher(r.Logger, opts.SearchOptions.ValueOr(search.DefaultSearchOptions))
	return r
}

// HistoryValue keeps the position from before the move, so rewinding is
// restoring a copy rather than undoing.
type HistoryValue struct {
	move   Move
	before Position
}

func (r *ChessGoRunner) SearchOptions() search.SearchOptions {
	return r.searcher.Options()
}

func (r *ChessGoRunner) Depth() int {
	return r.searcher.Options().Depth
}

func (r *ChessGoRunner) SetDepth(depth int) Error {
	if depth < 1 {
		return Errorf("depth must be at least 1, got %v", depth)
	}
	options := r.searcher.Options()
	options.Depth = depth
	r.searcher = search.NewSearcher(r.Logger, options)
	return NilError
}

func (r *ChessGoRunner) Reset() {
	r.p = nil
	r.StartFen = ""
	r.history = []HistoryValue{}
}

func (r *ChessGoRunner) IsNew() bool {
	return r.p == nil
}

func (r *ChessGoRunner) LastMove() Optional[Move] {
	if len(r.history) > 0 {
		return Some(r.history[len(r.history)-1].move)
	}
	return Empty[Move]()
}

func (r *ChessGoRunner) Rewind(num int) Error {
	if r.IsNew() {
		return Errorf("position not setup")
	}
	for i := 0; i < num && len(r.history) > 0; i++ {
		h := r.history[len(r.history)-1]
		*r.p = h.before
		r.history = r.history[:len(r.history)-1]
	}
	return NilError
}

func (r *ChessGoRunner) PerformMove(move Move) {
	r.history = append(r.history, HistoryValue{move: move, before: *r.p})
	r.p.Apply(move)
}

func (r *ChessGoRunner) PerformMoveFromString(s string) Error {
	if r.IsNew() {
		return Errorf("position not setup")
	}
	move, err := search.FindLegalMoveFromString(r.p, s)
	if !IsNil(err) {
		return Errorf("PerformMoveFromString: %w", err)
	}
	r.PerformMove(move)
	return NilError
}

func firstIndexNotMatching[A any, B any](a []A, b []B, matches func(A, B) bool) int {
	for i := 0; i < MinInt(len(a), len(b)); i++ {
		if !matches(a[i], b[i]) {
			return i
		}
	}
	return MinInt(len(a), len(b))
}

// PerformMoves brings the game to startFen followed by moves, only playing
// what the current history does not already share with moves.
func (r *ChessGoRunner) PerformMoves(startFen string, moves []string) Error {
	if r.StartFen != startFen {
		return Errorf("positions don't match: %v != %v", r.StartFen, startFen)
	}

	startIndex := firstIndexNotMatching(r.history, moves, func(a HistoryValue, b string) bool {
		return a.move.String() == b
	})

	err := r.Rewind(len(r.history) - startIndex)
	if !IsNil(err) {
		return err
	}

	for i := startIndex; i < len(moves); i++ {
		err := r.PerformMoveFromString(moves[i])
		if !IsNil(err) {
			return err
		}
	}

	return NilError
}

func (r *ChessGoRunner) SetupPosition(setup Setup) Error {
	if !r.IsNew() {
		r.Reset()
	}

	p, err := PositionFromFen(setup.Fen)
	if !IsNil(err) {
		return Errorf("couldn't create game from %v, %w", setup, err)
	}
	r.p = p
	r.StartFen = setup.Fen

	for _, m := range setup.Moves {
		err := r.PerformMoveFromString(m)
		if !IsNil(err) {
			r.Reset()
			return err
		}
	}

	return NilError
}

func (r *ChessGoRunner) MovesForSelection(selection string) ([]string, Error) {
	if r.IsNew() {
		return nil, Errorf("position not setup")
	}
	selectionFileRank, err := FileRankFromString(selection)
	if !IsNil(err) {
		return nil, Errorf("failed to parse selection %w", err)
	}

	moves := search.MovesFrom(r.p, IndexFromFileRank(selectionFileRank))
	return MapSlice(moves, func(m Move) string {
		return m.String()
	}), NilError
}

func (r *ChessGoRunner) FenString() string {
	return r.p.Fen()
}

func (r *ChessGoRunner) MoveHistory() []string {
	return MapSlice(r.history, func(h HistoryValue) string {
		return h.move.String()
	})
}

func (r *ChessGoRunner) PgnFromMoveHistory() string {
	result := ""
	fullMove := 1
	halfMove := 0
	if len(r.history) > 0 && r.history[0].before.Player == Black {
		result += "1... "
		halfMove = 1
	}
	for _, h := range r.history {
		if halfMove == 0 {
			result += fmt.Sprintf("%v. ", fullMove)
		}

		result += fmt.Sprintf("%v ", h.move.String())

		halfMove += 1
		if halfMove == 2 {
			halfMove = 0
			fullMove += 1
		}
	}
	return result
}

func (r *ChessGoRunner) Player() Player {
	return r.p.Player
}

func (r *ChessGoRunner) Position() *Position {
	return r.p
}

func (r *ChessGoRunner) Board() BoardArray {
	return r.p.Board()
}

func (r *ChessGoRunner) Status() search.GameStatus {
	return search.StatusOf(r.p)
}

func (r *ChessGoRunner) PlayerIsInCheck() bool {
	return r.p.KingInCheck(r.p.Player)
}

func (r *ChessGoRunner) Evaluate(player Player) int {
	return search.MaterialScore(r.p, player)
}

// Search is empty once the side to move has no legal moves.
func (r *ChessGoRunner) Search() (Optional[SearchResult], Error) {
	if r.IsNew() {
		return Empty[SearchResult](), Errorf("position not setup")
	}
	if r.Status() != search.InProgress {
		return Empty[SearchResult](), NilError
	}

	result, err := r.searcher.Evaluate(r.p)
	if !IsNil(err) {
		return Empty[SearchResult](), err
	}

	return Some(SearchResult{
		Move:  result.Move.String(),
		Score: result.Score,
		Depth: result.Depth,
		Nodes: result.Nodes,
	}), NilError
}
