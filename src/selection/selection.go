// Package selection turns board clicks into piece selections and moves.
package selection

import "politicalchess/src/base"

// Board is the part of the board adapter the selection machine needs.
type Board interface {
	Turn() base.Side
	PieceAt(sq base.Square) (base.Piece, bool)
	LegalMovesFrom(sq base.Square) []base.Move
	Apply(m base.Move) bool
}

type State uint8

const (
	Idle State = iota
	PieceSelected
)

func (s State) String() string {
	if s == PieceSelected {
		return "piece-selected"
	}
	return "idle"
}

// Action reports what a click did.
type Action uint8

const (
	Ignored Action = iota
	Selected
	Deselected
	Reselected
	Moved
	Rejected
)

func (a Action) String() string {
	switch a {
	case Selected:
		return "selected"
	case Deselected:
		return "deselected"
	case Reselected:
		return "reselected"
	case Moved:
		return "moved"
	case Rejected:
		return "rejected"
	default:
	}
	return "ignored"
}

type Machine struct {
	board      Board
	selected   base.Square
	candidates []base.Move
}

func NewMachine(b Board) *Machine {
	return &Machine{board: b, selected: base.NoSquare}
}

func (m *Machine) State() State {
	if m.selected == base.NoSquare {
		return Idle
	}
	return PieceSelected
}

// Selected returns the selected square, NoSquare when idle.
func (m *Machine) Selected() base.Square {
	return m.selected
}

func (m *Machine) Candidates() []base.Move {
	return append([]base.Move(nil), m.candidates...)
}

// IsCandidateTarget reports whether some candidate move lands on sq.
func (m *Machine) IsCandidateTarget(sq base.Square) bool {
	for _, c := range m.candidates {
		if c.To == sq {
			return true
		}
	}
	return false
}

func (m *Machine) Reset() {
	m.selected = base.NoSquare
	m.candidates = nil
}

// Click advances the machine for a click on sq. The returned move is only
// meaningful for Moved.
func (m *Machine) Click(sq base.Square) (Action, base.Move) {
	own := m.isOwnPiece(sq)

	if m.State() == Idle {
		if !own {
			return Ignored, base.Move{}
		}
		m.selectSquare(sq)
		return Selected, base.Move{}
	}

	if sq == m.selected {
		m.Reset()
		return Deselected, base.Move{}
	}
	if own {
		m.selectSquare(sq)
		return Reselected, base.Move{}
	}

	mv, ok := m.candidateTo(sq)
	m.Reset()
	if !ok || !m.board.Apply(mv) {
		return Rejected, base.Move{}
	}
	return Moved, mv
}

func (m *Machine) selectSquare(sq base.Square) {
	m.selected = sq
	m.candidates = m.board.LegalMovesFrom(sq)
}

func (m *Machine) isOwnPiece(sq base.Square) bool {
	if !sq.Valid() {
		return false
	}
	p, ok := m.board.PieceAt(sq)
	return ok && p.Side == m.board.Turn()
}

// candidateTo picks the candidate landing on sq, preferring a queen promotion.
func (m *Machine) candidateTo(sq base.Square) (base.Move, bool) {
	var found base.Move
	ok := false
	for _, c := range m.candidates {
		if c.To != sq {
			continue
		}
		if c.Promo == base.NoKind || c.Promo == base.Queen {
			return c, true
		}
		if !ok {
			found, ok = c, true
		}
	}
	return found, ok
}
