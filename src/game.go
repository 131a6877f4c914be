package src

import (
	"fmt"
	"politicalchess/src/base"
	"politicalchess/src/board"
	"politicalchess/src/clock"
	"politicalchess/src/logx"
	"politicalchess/src/material"
	"politicalchess/src/opponent"
	"politicalchess/src/selection"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultClock         = 10 * time.Minute
	DefaultOpponentDelay = 500 * time.Millisecond
)

type Mode uint8

const (
	ModeTwoPlayer Mode = iota
	ModeVersusComputer
)

func (m Mode) String() string {
	if m == ModeVersusComputer {
		return "Player vs Computer"
	}
	return "Multiplayer (1vs1)"
}

type SessionOptions struct {
	Mode          Mode
	Clock         time.Duration // per side, DefaultClock when zero
	OpponentDelay time.Duration // negative means DefaultOpponentDelay
	Opponent      opponent.Player
	Seed          int64  // used when Opponent is nil
	FEN           string // empty for the standard start
	Now           time.Time
	Logger        logx.Logger
}

// Session owns everything that changes during one game.
type Session struct {
	id           string
	mode         Mode
	board        *board.Board
	sel          *selection.Machine
	clocks       *clock.Pair
	opp          opponent.Player
	oppSide      base.Side
	delay        time.Duration
	lastTick     time.Time
	pendingSince time.Time
	result       *base.Result
	logger       logx.Logger
}

func NewSession(opts SessionOptions) (*Session, error) {
	id := uuid.NewString()
	logger := opts.Logger
	if logger == nil {
		logger = logx.NewNop()
	}
	logger = logger.With("session", id)

	var b *board.Board
	if opts.FEN == "" {
		b = board.NewClassicBoard(logger)
	} else {
		rules, err := board.NewChessRulesFromFEN(opts.FEN)
		if err != nil {
			return nil, fmt.Errorf("new session: %w", err)
		}
		b = board.NewBoard(rules, logger)
	}

	start := opts.Clock
	if start <= 0 {
		start = DefaultClock
	}
	delay := opts.OpponentDelay
	if delay < 0 {
		delay = DefaultOpponentDelay
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	s := &Session{
		id:       id,
		mode:     opts.Mode,
		board:    b,
		sel:      selection.NewMachine(b),
		clocks:   clock.NewPair(start),
		oppSide:  base.SideB,
		delay:    delay,
		lastTick: now,
		logger:   logger,
	}
	if opts.Mode == ModeVersusComputer {
		s.opp = opts.Opponent
		if s.opp == nil {
			s.opp = opponent.NewRandom(opts.Seed)
		}
	}
	logger.Infof("new session: mode=%v clock=%v", opts.Mode, start)
	return s, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Mode() Mode {
	return s.mode
}

func (s *Session) Board() *board.Board {
	return s.board
}

func (s *Session) Turn() base.Side {
	return s.board.Turn()
}

func (s *Session) PieceAt(sq base.Square) (base.Piece, bool) {
	return s.board.PieceAt(sq)
}

func (s *Session) Selected() base.Square {
	return s.sel.Selected()
}

func (s *Session) IsCandidateTarget(sq base.Square) bool {
	return s.sel.IsCandidateTarget(sq)
}

func (s *Session) Remaining(side base.Side) time.Duration {
	return s.clocks.Remaining(side)
}

// Captured returns the opponent pieces side has taken.
func (s *Session) Captured(side base.Side) material.Tally {
	return material.CapturedBy(s.board, side)
}

// humanToMove is false while the automated side is to move.
func (s *Session) humanToMove() bool {
	return s.mode != ModeVersusComputer || s.board.Turn() != s.oppSide
}

// Click feeds a board click to the selection machine.
func (s *Session) Click(sq base.Square) selection.Action {
	if s.Over() || !s.humanToMove() {
		return selection.Ignored
	}
	act, mv := s.sel.Click(sq)
	if act == selection.Moved {
		s.pendingSince = time.Time{}
		s.logger.Debugf("player move %v", mv)
	}
	return act
}

// ClickPoint maps a pixel inside the board to its square; clicks outside are ignored.
func (s *Session) ClickPoint(x, y, size int) selection.Action {
	sq, ok := base.PointToSquare(x, y, size)
	if !ok {
		return selection.Ignored
	}
	return s.Click(sq)
}

// Undo takes back the last ply and clears any selection.
func (s *Session) Undo() bool {
	if s.result != nil {
		return false
	}
	s.sel.Reset()
	s.pendingSince = time.Time{}
	return s.board.UndoLast()
}

// Tick charges the time since the previous tick to the side to move.
func (s *Session) Tick(now time.Time) {
	elapsed := now.Sub(s.lastTick)
	s.lastTick = now
	if s.Over() {
		return
	}
	s.clocks.Debit(s.board.Turn(), elapsed)
}

func (s *Session) OpponentPending() bool {
	return s.opp != nil && !s.Over() && s.board.Turn() == s.oppSide
}

// StepOpponent plays the automated move once the delay since its turn began has passed.
func (s *Session) StepOpponent(now time.Time) bool {
	if !s.OpponentPending() {
		return false
	}
	if s.pendingSince.IsZero() {
		s.pendingSince = now
	}
	if now.Sub(s.pendingSince) < s.delay {
		return false
	}
	s.pendingSince = time.Time{}
	mv, ok := s.opp.Choose(s.board.LegalMoves())
	if !ok {
		return false
	}
	if !s.board.Apply(mv) {
		return false
	}
	s.sel.Reset()
	s.logger.Debugf("opponent move %v", mv)
	return true
}

// Over latches the result the first time the game is found finished.
func (s *Session) Over() bool {
	if s.result != nil {
		return true
	}
	res, done := s.evaluate()
	if !done {
		return false
	}
	s.result = &res
	s.logger.Infof("game over: %v", res)
	return true
}

// Result is only meaningful once Over reports true.
func (s *Session) Result() base.Result {
	if s.Over() {
		return *s.result
	}
	return base.Result{Kind: base.ResultGameOver}
}

func (s *Session) evaluate() (base.Result, bool) {
	if reason := s.board.TerminalReason(); reason != base.ReasonNone {
		return base.ResultFor(reason, s.board.Turn()), true
	}
	if side, flagged := s.clocks.Flagged(); flagged {
		return base.ResultFor(base.ReasonTimeExpired, side), true
	}
	return base.Result{}, false
}
