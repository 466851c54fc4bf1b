package game

import (
	"fmt"
	"strings"

	. "github.com/cricklet/bitchess/internal/bitboards"
	. "github.com/cricklet/bitchess/internal/helpers"
)

const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Written after the castling field in place of en-passant and move clocks,
// which are never tracked.
const fenTrailingFields = "- 0 1"

func FenStringForPlayer(p Player) string {
	if p == White {
		return "w"
	} else {
		return "b"
	}
}

var fenStringForCastling = [4]struct {
	right CastlingRights
	s     string
}{
	{WhiteKingside, "K"},
	{WhiteQueenside, "Q"},
	{BlackKingside, "k"},
	{BlackQueenside, "q"},
}

func fenStringForCastlingRights(c CastlingRights) string {
	s := ""
	for _, v := range fenStringForCastling {
		if c.Has(v.right) {
			s += v.s
		}
	}
	if len(s) == 0 {
		s += "-"
	}
	return s
}

func castlingRightsFromFenString(s string) (CastlingRights, Error) {
	result := NoCastlingRights
	for _, c := range s {
		switch c {
		case '-':
			continue
		case 'K':
			result |= WhiteKingside
		case 'Q':
			result |= WhiteQueenside
		case 'k':
			result |= BlackKingside
		case 'q':
			result |= BlackQueenside
		default:
			return NoCastlingRights, Errorf("invalid castling rights '%v'", s)
		}
	}
	return result, NilError
}

func (p *Position) FenStringForBoard() string {
	s := ""
	for rank := 7; rank >= 0; rank-- {
		numSpaces := 0
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(IndexFromFileRank(FileRank{File: File(file), Rank: Rank(rank)}))
			if piece == XX {
				numSpaces++
				continue
			}
			if numSpaces > 0 {
				s += fmt.Sprint(numSpaces)
				numSpaces = 0
			}
			s += piece.String()
		}
		if numSpaces > 0 {
			s += fmt.Sprint(numSpaces)
		}
		if rank != 0 {
			s += "/"
		}
	}
	return s
}

func (p *Position) Fen() string {
	return fmt.Sprintf("%v %v %v %v",
		p.FenStringForBoard(),
		FenStringForPlayer(p.Player),
		fenStringForCastlingRights(p.Castling),
		fenTrailingFields)
}

func (p *Position) String() string {
	return p.Fen()
}

// PositionFromFen reads placement, side to move and castling rights. Any
// further fields are required to exist but are discarded. On error the
// returned position is a fresh empty one, never a partial parse.
func PositionFromFen(s string) (*Position, Error) {
	ss := strings.Fields(s)
	if len(ss) < 4 {
		return EmptyPosition(), Errorf("wrong num %v of fields in '%v'", len(ss), s)
	}

	p, err := parsePlacement(ss[0])
	if !IsNil(err) {
		return EmptyPosition(), Errorf("invalid placement in '%v': %w", s, err)
	}

	p.Player, err = PlayerFromString(ss[1])
	if !IsNil(err) {
		return EmptyPosition(), Errorf("invalid player '%v' in '%v'", ss[1], s)
	}

	p.Castling, err = castlingRightsFromFenString(ss[2])
	if !IsNil(err) {
		return EmptyPosition(), Errorf("%w in '%v'", err, s)
	}

	return p, NilError
}

func parsePlacement(placement string) (*Position, Error) {
	p := EmptyPosition()

	var rankIndex = 7
	var fileIndex = 0
	for _, c := range placement {
		if c == '/' {
			if fileIndex != 8 {
				return nil, Errorf("%v squares in rank %v", fileIndex, Rank(rankIndex))
			}
			if rankIndex == 0 {
				return nil, Errorf("more than 8 ranks")
			}
			rankIndex--
			fileIndex = 0
		} else if c >= '1' && c <= '8' {
			fileIndex += int(c - '0')
		} else if piece, err := PieceFromRune(c); IsNil(err) {
			if fileIndex >= 8 {
				return nil, Errorf("too many squares in rank %v", Rank(rankIndex))
			}
			p.Pieces[piece] |= SingleBitboard(IndexFromFileRank(FileRank{File: File(fileIndex), Rank: Rank(rankIndex)}))
			fileIndex++
		} else {
			return nil, Errorf("unknown character '%c'", c)
		}
	}

	if fileIndex != 8 {
		return nil, Errorf("%v squares in rank %v", fileIndex, Rank(rankIndex))
	}
	if rankIndex != 0 {
		return nil, Errorf("only %v ranks", 8-rankIndex)
	}

	return p, NilError
}
