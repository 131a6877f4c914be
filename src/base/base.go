package base

import "fmt"

// Forsyth–Edwards Notation
const FEN_START_GAME string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ---- Sides ----

type Side uint8

const (
	SideA Side = iota // USA, moves first, atlas row 0
	SideB             // EU, atlas row 1
)

func (s Side) Opponent() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

func (s Side) String() string {
	switch s {
	case SideA:
		return "USA"
	case SideB:
		return "EU"
	default:
	}
	return "?"
}

// ---- Pieces ----

// Kind values follow the atlas column order, starting at 1 so the zero value means "none".
type Kind uint8

const (
	NoKind Kind = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// Kinds in sprite atlas column order.
var Kinds = []Kind{King, Queen, Rook, Bishop, Knight, Pawn}

// AtlasColumn returns the column of the kind in the 6x2 sprite atlas, -1 for NoKind.
func (k Kind) AtlasColumn() int {
	return int(k) - 1
}

func (k Kind) Rune() rune {
	switch k {
	case King:
		return 'K'
	case Queen:
		return 'Q'
	case Rook:
		return 'R'
	case Bishop:
		return 'B'
	case Knight:
		return 'N'
	case Pawn:
		return 'P'
	default:
	}
	return '.'
}

func (k Kind) String() string {
	switch k {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Pawn:
		return "pawn"
	default:
	}
	return "none"
}

type Piece struct {
	Kind Kind
	Side Side
}

// Key is the short sprite key of the piece ("wK", "bP").
func (p Piece) Key() string {
	prefix := 'w'
	if p.Side == SideB {
		prefix = 'b'
	}
	return string([]rune{prefix, p.Kind.Rune()})
}

// ---- Squares ----

// Square is the mailbox index file+8*rank, a1 == 0, h8 == 63.
type Square int8

const NoSquare Square = -1

type Mailbox [64]Piece

func NewSquare(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return Square(rank*8 + file)
}

// SquareAt converts screen coordinates (row 0 is the top, rank 8) to a square.
func SquareAt(row, col int) Square {
	return NewSquare(col, 7-row)
}

// PointToSquare maps a pixel inside a board drawn at the origin with the given square size.
func PointToSquare(x, y, size int) (Square, bool) {
	if size <= 0 || x < 0 || y < 0 || x >= size*8 || y >= size*8 {
		return NoSquare, false
	}
	return SquareAt(y/size, x/size), true
}

func (s Square) File() int { return int(s) % 8 }
func (s Square) Rank() int { return int(s) / 8 }
func (s Square) Row() int  { return 7 - s.Rank() }
func (s Square) Col() int  { return s.File() }

func (s Square) Valid() bool {
	return s >= 0 && s < 64
}

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]rune{rune(s.File() + 'a'), rune(s.Rank() + '1')})
}

func SquareFromAlgebraic(pos string) (Square, error) {
	// 'a' ~ 'h' to number
	// '1' ~ '8' to 0-7
	if len(pos) != 2 || pos[0] < 'a' || pos[0] > 'h' || pos[1] < '1' || pos[1] > '8' {
		return NoSquare, fmt.Errorf("invalid position %q", pos)
	}
	return Square(int(pos[1]-'1')*8 + int(pos[0]-'a')), nil
}

// ---- Moves ----

type Move struct {
	From  Square
	To    Square
	Promo Kind
}

// String returns the move in UCI form (e2e4, e7e8q).
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promo != NoKind {
		s += string(m.Promo.Rune() + ('a' - 'A'))
	}
	return s
}

// ---- Game end ----

type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonCheckmate
	ReasonStalemate
	ReasonInsufficientMaterial
	ReasonMoveLimit
	ReasonRepetition
	ReasonTimeExpired
)

func (r Reason) String() string {
	switch r {
	case ReasonCheckmate:
		return "checkmate"
	case ReasonStalemate:
		return "stalemate"
	case ReasonInsufficientMaterial:
		return "insufficient material"
	case ReasonMoveLimit:
		return "move limit"
	case ReasonRepetition:
		return "repetition"
	case ReasonTimeExpired:
		return "time expired"
	default:
	}
	return "none"
}

// IsDraw reports whether a board reaching this reason ends drawn.
func (r Reason) IsDraw() bool {
	switch r {
	case ReasonStalemate, ReasonInsufficientMaterial, ReasonMoveLimit, ReasonRepetition:
		return true
	default:
	}
	return false
}

type ResultKind uint8

const (
	ResultGameOver ResultKind = iota
	ResultSideAWins
	ResultSideBWins
	ResultDraw
)

type Result struct {
	Kind   ResultKind
	Reason Reason
}

func WinFor(s Side, r Reason) Result {
	if s == SideA {
		return Result{Kind: ResultSideAWins, Reason: r}
	}
	return Result{Kind: ResultSideBWins, Reason: r}
}

// ResultFor maps an end reason to the recorded outcome; toMove is the side
// that has the move when the game stops. Anything that is neither mate nor
// a draw, a flagged clock included, is a plain Game Over.
func ResultFor(r Reason, toMove Side) Result {
	switch {
	case r == ReasonCheckmate:
		return WinFor(toMove.Opponent(), r)
	case r.IsDraw():
		return Result{Kind: ResultDraw, Reason: r}
	default:
	}
	return Result{Kind: ResultGameOver, Reason: r}
}

func (r Result) String() string {
	switch r.Kind {
	case ResultSideAWins:
		return fmt.Sprintf("%v Wins! (%s)", SideA, capitalize(r.Reason.String()))
	case ResultSideBWins:
		return fmt.Sprintf("%v Wins! (%s)", SideB, capitalize(r.Reason.String()))
	case ResultDraw:
		return fmt.Sprintf("Draw (%s)", r.Reason)
	default:
	}
	return "Game Over"
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-('a'-'A')) + s[1:]
}
