package helpers

// Setup is a starting position plus the long-algebraic moves played from it.
type Setup struct {
	Fen   string
	Moves []string
}

type SearchResult struct {
	Move  string
	Score int
	Depth int
	Nodes int
}

type Runner interface {
	PerformMoveFromString(s string) Error
	SetupPosition(setup Setup) Error
	PerformMoves(startFen string, moves []string) Error
	MovesForSelection(s string) ([]string, Error)
	Rewind(num int) Error
	Reset()
	Search() (Optional[SearchResult], Error)
	IsNew() bool
}
