package helpers

type File uint
type Rank uint

type FileRank struct {
	File File
	Rank Rank
}

type Player uint8

const (
	White Player = iota
	Black
)

var _playerStrings = [2]string{
	"white", "black",
}

func (p Player) String() string {
	return _playerStrings[p]
}

func (p Player) Other() Player {
	return 1 - p
}

type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	InvalidPiece
)

const NumPieceTypes = 6

var AllPieceTypes = [NumPieceTypes]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

func (p PieceType) String() string {
	return [7]string{
		"p", "n", "b", "r", "q", "k", "?",
	}[p]
}

// Piece is one of the twelve (player, piece type) identities. XX is the
// empty square.
type Piece uint8

const (
	WP Piece = iota
	WN
	WB
	WR
	WQ
	WK
	BP
	BN
	BB
	BR
	BQ
	BK
	XX
)

const NumPieces = 12

func (p Piece) PieceType() PieceType {
	if p == XX {
		return InvalidPiece
	}
	return PieceType(p % NumPieceTypes)
}

func (p Piece) Player() Player {
	if p < BP {
		return White
	}
	return Black
}

func (p Piece) IsWhite() bool {
	return p <= WK
}

func PieceForPlayer(player Player, pieceType PieceType) Piece {
	return Piece(uint8(player)*NumPieceTypes + uint8(pieceType))
}

func PieceFromRune(c rune) (Piece, Error) {
	switch c {
	case 'P':
		return WP, NilError
	case 'N':
		return WN, NilError
	case 'B':
		return WB, NilError
	case 'R':
		return WR, NilError
	case 'Q':
		return WQ, NilError
	case 'K':
		return WK, NilError
	case 'p':
		return BP, NilError
	case 'n':
		return BN, NilError
	case 'b':
		return BB, NilError
	case 'r':
		return BR, NilError
	case 'q':
		return BQ, NilError
	case 'k':
		return BK, NilError
	default:
		return XX, Errorf("invalid piece %q", c)
	}
}

func (p Piece) String() string {
	return [13]string{
		"P", "N", "B", "R", "Q", "K",
		"p", "n", "b", "r", "q", "k",
		" ",
	}[p]
}

func (p PieceType) Unicode() string {
	return [7]string{
		"♟", "♞", "♝", "♜", "♛", "♚", " ",
	}[p]
}

func PlayerFromString(c string) (Player, Error) {
	switch c {
	case "b":
		return Black, NilError
	case "w":
		return White, NilError
	default:
		return White, Errorf("invalid player char %v", c)
	}
}

func (f File) String() string {
	return [8]string{
		"a", "b", "c", "d", "e", "f", "g", "h",
	}[f]
}
func (r Rank) String() string {
	return [8]string{
		"1", "2", "3", "4", "5", "6", "7", "8",
	}[r]
}

func RankFromChar(c byte) (Rank, Error) {
	rank := int(c) - '1'
	if rank < 0 || rank >= 8 {
		return 0, Errorf("rank invalid %q", c)
	}
	return Rank(rank), NilError
}

func FileFromChar(c byte) (File, Error) {
	file := int(c) - 'a'
	if file < 0 || file >= 8 {
		return 0, Errorf("file invalid %q", c)
	}
	return File(file), NilError
}

func (v FileRank) String() string {
	return v.File.String() + v.Rank.String()
}

func FileRankFromString(s string) (FileRank, Error) {
	if len(s) != 2 {
		return FileRank{}, Errorf("invalid location %v", s)
	}

	file, fileErr := FileFromChar(s[0])
	rank, rankErr := RankFromChar(s[1])

	if !IsNil(fileErr) || !IsNil(rankErr) {
		return FileRank{}, Errorf("invalid location %v", s)
	}

	return FileRank{file, rank}, NilError
}

func IndexFromFileRank(location FileRank) int {
	return int(location.Rank)*8 + int(location.File)
}

func FileRankFromIndex(index int) FileRank {
	f := File(index & 0b111)
	r := Rank(index >> 3)
	return FileRank{f, r}
}

func StringFromBoardIndex(index int) string {
	return FileRankFromIndex(index).String()
}

// BoardIndexFromString panics on malformed input; use it for constants only.
func BoardIndexFromString(s string) int {
	location, err := FileRankFromString(s)
	if !IsNil(err) {
		panic(err)
	}
	return IndexFromFileRank(location)
}

type CastlingSide int

const (
	Kingside CastlingSide = iota
	Queenside
)

var AllCastlingSides = [2]CastlingSide{Kingside, Queenside}

func (s CastlingSide) String() string {
	if s == Kingside {
		return "kingside"
	}
	return "queenside"
}

// BoardArray is a mailbox view of a position, indexed rank*8+file.
type BoardArray [64]Piece

func (b BoardArray) String() string {
	result := ""
	for rank := 7; rank >= 0; rank-- {
		row := b[rank*8 : (rank+1)*8]
		for _, p := range row {
			if p == XX {
				result += "."
			} else {
				result += p.String()
			}
		}
		if rank != 0 {
			result += "\n"
		}
	}
	return result
}

const _hintForeground = "\033[38;5;244m"
const _whiteForeground = "\033[38;5;255m"
const _blackForeground = "\033[38;5;232m"
const _whiteBackground = "\033[48;5;244m"
const _blackBackground = "\033[48;5;243m"
const _resetColors = "\x1b[0m"

func (b BoardArray) Unicode() string {
	result := ""
	result += "  "
	for file := 0; file < 8; file++ {
		result += _hintForeground + " " + File(file).String() + " " + _resetColors
	}
	result += "\n"

	for rank := 7; rank >= 0; rank-- {
		result += _hintForeground + Rank(rank).String() + " " + _resetColors
		for file := 0; file < 8; file++ {
			squareColor := (file%2 + rank%2) % 2
			piece := b[IndexFromFileRank(FileRank{File(file), Rank(rank)})]

			if squareColor == int(White) {
				result += _whiteBackground
			} else {
				result += _blackBackground
			}
			if piece.IsWhite() {
				result += _whiteForeground
			} else {
				result += _blackForeground
			}

			result += " " + piece.PieceType().Unicode() + " "
			result += _resetColors
		}
		result += "\n"
	}

	return result
}
