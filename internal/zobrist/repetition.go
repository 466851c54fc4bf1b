package zobrist

import (
	. "github.com/cricklet/bitchess/internal/game"
)

// RepetitionTable counts how often each position has occurred in a game.
type RepetitionTable struct {
	counts map[uint64]int
	Max    int
}

func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[uint64]int)}
}

// Add records an occurrence of p and returns how many times it has now
// been seen.
func (t *RepetitionTable) Add(p *Position) int {
	hash := Hash(p)
	t.counts[hash]++
	count := t.counts[hash]
	if count > t.Max {
		t.Max = count
	}
	return count
}

func (t *RepetitionTable) Count(p *Position) int {
	return t.counts[Hash(p)]
}
