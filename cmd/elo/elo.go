package main

import (
	"fmt"

	"github.com/kortemy/elo-go"
)

const startingRating = 1500

// Tally counts results from the point of view of engine a, and carries
// running ratings for both engines.
type Tally struct {
	Wins   int
	Losses int
	Draws  int

	RatingA int
	RatingB int
}

func NewTally() Tally {
	return Tally{RatingA: startingRating, RatingB: startingRating}
}

func (t Tally) Games() int {
	return t.Wins + t.Losses + t.Draws
}

// Score is the fraction of points a won, draws counting half.
func (t Tally) Score() float64 {
	if t.Games() == 0 {
		return 0.5
	}
	return (float64(t.Wins) + float64(t.Draws)/2) / float64(t.Games())
}

// Add folds one game into the counts and the ratings. score is a's result:
// 1 for a win, 0.5 for a draw, 0 for a loss.
func (t *Tally) Add(score float64) {
	switch score {
	case 1:
		t.Wins++
	case 0:
		t.Losses++
	default:
		t.Draws++
	}

	e := elo.NewElo()
	outcomeA, outcomeB := e.Outcome(t.RatingA, t.RatingB, score)
	t.RatingA = outcomeA.Rating
	t.RatingB = outcomeB.Rating
}

// RatingGap is a's rating minus b's.
func (t Tally) RatingGap() int {
	return t.RatingA - t.RatingB
}

func (t Tally) EloString() string {
	return fmt.Sprintf("%v vs %v (%+d)", t.RatingA, t.RatingB, t.RatingGap())
}

func (t Tally) String() string {
	return fmt.Sprintf("+%d -%d =%d (%.1f%%)", t.Wins, t.Losses, t.Draws, t.Score()*100)
}
