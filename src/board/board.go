package board

import (
	"politicalchess/src/base"
	"politicalchess/src/logx"
)

// Board adapts a Rules engine for the game loop and keeps the applied move history.
type Board struct {
	rules   Rules
	history []base.Move
	logger  logx.Logger
}

func NewBoard(r Rules, logger logx.Logger) *Board {
	return &Board{rules: r, logger: logger}
}

// NewClassicBoard returns a board at the standard starting position.
func NewClassicBoard(logger logx.Logger) *Board {
	return NewBoard(NewChessRules(), logger)
}

func (b *Board) Turn() base.Side {
	return b.rules.Turn()
}

func (b *Board) PieceAt(sq base.Square) (base.Piece, bool) {
	return b.rules.PieceAt(sq)
}

func (b *Board) LegalMoves() []base.Move {
	return b.rules.LegalMoves()
}

// LegalMovesFrom keeps the engine order of the legal moves starting on sq.
func (b *Board) LegalMovesFrom(sq base.Square) []base.Move {
	var moves []base.Move
	for _, m := range b.rules.LegalMoves() {
		if m.From == sq {
			moves = append(moves, m)
		}
	}
	return moves
}

// Apply plays m only if the engine currently lists it as legal.
func (b *Board) Apply(m base.Move) bool {
	legal := false
	for _, lm := range b.rules.LegalMoves() {
		if lm == m {
			legal = true
			break
		}
	}
	if !legal {
		b.logger.Debugf("ignore move not in legal set: %v", m)
		return false
	}
	if err := b.rules.Push(m); err != nil {
		b.logger.Errorf("engine rejected legal move %v: %v", m, err)
		return false
	}
	b.history = append(b.history, m)
	b.logger.Infof("move %v", m)
	return true
}

func (b *Board) UndoLast() bool {
	if len(b.history) == 0 {
		return false
	}
	if err := b.rules.Pop(); err != nil {
		b.logger.Errorf("undo failed: %v", err)
		return false
	}
	last := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	b.logger.Infof("undo %v", last)
	return true
}

func (b *Board) History() []base.Move {
	return append([]base.Move(nil), b.history...)
}

func (b *Board) FEN() string {
	return b.rules.FEN()
}

func (b *Board) IsTerminal() bool {
	return b.TerminalReason() != base.ReasonNone
}

// TerminalReason checks checkmate before any draw condition.
func (b *Board) TerminalReason() base.Reason {
	switch {
	case b.rules.IsCheckmate():
		return base.ReasonCheckmate
	case b.rules.IsStalemate():
		return base.ReasonStalemate
	case b.rules.IsInsufficientMaterial():
		return base.ReasonInsufficientMaterial
	case b.rules.IsMoveLimitDraw():
		return base.ReasonMoveLimit
	case b.rules.IsRepetitionDraw():
		return base.ReasonRepetition
	default:
	}
	return base.ReasonNone
}

type Snapshot struct {
	Mailbox base.Mailbox
	Turn    base.Side
}

// Snapshot captures piece placement and side to move.
func (b *Board) Snapshot() Snapshot {
	var s Snapshot
	for sq := base.Square(0); sq < 64; sq++ {
		if p, ok := b.rules.PieceAt(sq); ok {
			s.Mailbox[sq] = p
		}
	}
	s.Turn = b.rules.Turn()
	return s
}
