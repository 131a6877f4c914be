package board

import (
	"politicalchess/src/base"
	"politicalchess/src/logx"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sq(t *testing.T, s string) base.Square {
	t.Helper()
	v, err := base.SquareFromAlgebraic(s)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func mv(t *testing.T, from, to string) base.Move {
	t.Helper()
	return base.Move{From: sq(t, from), To: sq(t, to)}
}

func newFENBoard(t *testing.T, fen string) *Board {
	t.Helper()
	r, err := NewChessRulesFromFEN(fen)
	if err != nil {
		t.Fatalf("NewChessRulesFromFEN: %v", err)
	}
	return NewBoard(r, logx.NewNop())
}

func TestStartingPosition(t *testing.T) {
	b := NewClassicBoard(logx.NewNop())
	if b.Turn() != base.SideA {
		t.Fatalf("turn = %v, want USA", b.Turn())
	}
	p, ok := b.PieceAt(sq(t, "e1"))
	if !ok || p != (base.Piece{Kind: base.King, Side: base.SideA}) {
		t.Errorf("e1 = %v %v", p, ok)
	}
	p, ok = b.PieceAt(sq(t, "d8"))
	if !ok || p != (base.Piece{Kind: base.Queen, Side: base.SideB}) {
		t.Errorf("d8 = %v %v", p, ok)
	}
	if _, ok := b.PieceAt(sq(t, "e4")); ok {
		t.Error("e4 should be empty")
	}
	if n := len(b.LegalMoves()); n != 20 {
		t.Errorf("legal moves = %d, want 20", n)
	}
	if b.IsTerminal() {
		t.Error("start position reported terminal")
	}
}

func TestLegalMovesFromMatchesFilteredSet(t *testing.T) {
	b := NewClassicBoard(logx.NewNop())
	for s := base.Square(0); s < 64; s++ {
		var want []base.Move
		for _, m := range b.LegalMoves() {
			if m.From == s {
				want = append(want, m)
			}
		}
		if diff := cmp.Diff(want, b.LegalMovesFrom(s)); diff != "" {
			t.Errorf("LegalMovesFrom(%v) mismatch (-want +got):\n%s", s, diff)
		}
	}
	if got := b.LegalMovesFrom(sq(t, "e4")); len(got) != 0 {
		t.Errorf("empty square has moves: %v", got)
	}
	if got := b.LegalMovesFrom(sq(t, "g1")); len(got) != 2 {
		t.Errorf("knight g1 moves = %v", got)
	}
}

func TestApplyRejectsIllegalMove(t *testing.T) {
	b := NewClassicBoard(logx.NewNop())
	before := b.Snapshot()
	if b.Apply(mv(t, "e2", "e5")) {
		t.Fatal("e2e5 accepted")
	}
	if b.Apply(mv(t, "e7", "e5")) {
		t.Fatal("side B moved out of turn")
	}
	if diff := cmp.Diff(before, b.Snapshot()); diff != "" {
		t.Errorf("board changed (-want +got):\n%s", diff)
	}
	if len(b.History()) != 0 {
		t.Errorf("history = %v", b.History())
	}
}

func TestApplyAndUndoAreInverse(t *testing.T) {
	b := NewClassicBoard(logx.NewNop())
	for _, m := range []base.Move{mv(t, "e2", "e4"), mv(t, "e7", "e5"), mv(t, "g1", "f3")} {
		if !b.Apply(m) {
			t.Fatalf("apply %v failed", m)
		}
	}
	before := b.Snapshot()
	last := mv(t, "b8", "c6")
	if !b.Apply(last) {
		t.Fatal("apply b8c6 failed")
	}
	if len(b.History()) != 4 {
		t.Fatalf("history len = %d", len(b.History()))
	}
	if !b.UndoLast() {
		t.Fatal("undo failed")
	}
	if diff := cmp.Diff(before, b.Snapshot()); diff != "" {
		t.Errorf("undo is not inverse (-want +got):\n%s", diff)
	}
	if b.Turn() != base.SideB {
		t.Errorf("turn after undo = %v", b.Turn())
	}

	after := b.Snapshot()
	if !b.Apply(last) || !b.UndoLast() {
		t.Fatal("redo/undo failed")
	}
	if diff := cmp.Diff(after, b.Snapshot()); diff != "" {
		t.Errorf("redo then undo drifted (-want +got):\n%s", diff)
	}
}

func TestUndoOnEmptyHistoryIsNoop(t *testing.T) {
	b := NewClassicBoard(logx.NewNop())
	before := b.Snapshot()
	if b.UndoLast() {
		t.Fatal("undo on empty history returned true")
	}
	if diff := cmp.Diff(before, b.Snapshot()); diff != "" {
		t.Errorf("board changed (-want +got):\n%s", diff)
	}
}

func TestUndoFromFENPosition(t *testing.T) {
	const fen = "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1"
	b := newFENBoard(t, fen)
	before := b.FEN()
	if !b.Apply(mv(t, "e2", "e4")) {
		t.Fatal("e2e4 failed")
	}
	if !b.UndoLast() {
		t.Fatal("undo failed")
	}
	if b.FEN() != before {
		t.Errorf("FEN after undo = %q, want %q", b.FEN(), before)
	}
}

func TestFoolsMateIsCheckmate(t *testing.T) {
	b := NewClassicBoard(logx.NewNop())
	for _, m := range []base.Move{mv(t, "f2", "f3"), mv(t, "e7", "e5"), mv(t, "g2", "g4"), mv(t, "d8", "h4")} {
		if !b.Apply(m) {
			t.Fatalf("apply %v failed", m)
		}
	}
	if got := b.TerminalReason(); got != base.ReasonCheckmate {
		t.Fatalf("reason = %v, want checkmate", got)
	}
	if b.Turn() != base.SideA {
		t.Errorf("mated side = %v, want USA", b.Turn())
	}
	if len(b.LegalMoves()) != 0 {
		t.Errorf("mated side has moves: %v", b.LegalMoves())
	}
}

func TestStalemate(t *testing.T) {
	b := newFENBoard(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if got := b.TerminalReason(); got != base.ReasonStalemate {
		t.Fatalf("reason = %v, want stalemate", got)
	}
	if !b.IsTerminal() {
		t.Error("stalemate not terminal")
	}
}

func TestInsufficientMaterialAfterCapture(t *testing.T) {
	b := newFENBoard(t, "8/8/8/4k3/8/8/3q4/3K4 w - - 0 1")
	if b.IsTerminal() {
		t.Fatal("terminal before capture")
	}
	if !b.Apply(mv(t, "d1", "d2")) {
		t.Fatal("Kxd2 failed")
	}
	if got := b.TerminalReason(); got != base.ReasonInsufficientMaterial {
		t.Fatalf("reason = %v, want insufficient material", got)
	}
}

func TestPinnedPieceHasNoCandidates(t *testing.T) {
	b := newFENBoard(t, "4k3/4n3/8/8/8/8/8/4R2K b - - 0 1")
	if got := b.LegalMovesFrom(sq(t, "e7")); len(got) != 0 {
		t.Errorf("pinned knight moves = %v", got)
	}
	if got := b.LegalMovesFrom(sq(t, "e8")); len(got) == 0 {
		t.Error("king has no moves")
	}
}

func TestPromotionMovesListed(t *testing.T) {
	b := newFENBoard(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	moves := b.LegalMovesFrom(sq(t, "a7"))
	promos := map[base.Kind]bool{}
	for _, m := range moves {
		promos[m.Promo] = true
	}
	for _, k := range []base.Kind{base.Queen, base.Rook, base.Bishop, base.Knight} {
		if !promos[k] {
			t.Errorf("missing promotion to %v in %v", k, moves)
		}
	}
	if !b.Apply(base.Move{From: sq(t, "a7"), To: sq(t, "a8"), Promo: base.Queen}) {
		t.Fatal("promotion failed")
	}
	p, _ := b.PieceAt(sq(t, "a8"))
	if p.Kind != base.Queen {
		t.Errorf("a8 = %v", p)
	}
}

type stubRules struct {
	mate, stale, insufficient, moveLimit, repetition bool
}

func (s stubRules) Turn() base.Side                         { return base.SideA }
func (s stubRules) PieceAt(base.Square) (base.Piece, bool) { return base.Piece{}, false }
func (s stubRules) LegalMoves() []base.Move                 { return nil }
func (s stubRules) Push(base.Move) error                    { return ErrIllegalMove }
func (s stubRules) Pop() error                              { return ErrNoMoves }
func (s stubRules) FEN() string                             { return "" }
func (s stubRules) IsCheckmate() bool                       { return s.mate }
func (s stubRules) IsStalemate() bool                       { return s.stale }
func (s stubRules) IsInsufficientMaterial() bool            { return s.insufficient }
func (s stubRules) IsMoveLimitDraw() bool                   { return s.moveLimit }
func (s stubRules) IsRepetitionDraw() bool                  { return s.repetition }

func TestTerminalReasonPrecedence(t *testing.T) {
	cases := []struct {
		name  string
		rules stubRules
		want  base.Reason
	}{
		{"none", stubRules{}, base.ReasonNone},
		{"mate beats draws", stubRules{mate: true, stale: true, repetition: true}, base.ReasonCheckmate},
		{"stalemate beats material", stubRules{stale: true, insufficient: true}, base.ReasonStalemate},
		{"material beats move limit", stubRules{insufficient: true, moveLimit: true}, base.ReasonInsufficientMaterial},
		{"move limit beats repetition", stubRules{moveLimit: true, repetition: true}, base.ReasonMoveLimit},
		{"repetition", stubRules{repetition: true}, base.ReasonRepetition},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBoard(tc.rules, logx.NewNop())
			if got := b.TerminalReason(); got != tc.want {
				t.Errorf("TerminalReason() = %v, want %v", got, tc.want)
			}
			if b.IsTerminal() != (tc.want != base.ReasonNone) {
				t.Errorf("IsTerminal() = %v", b.IsTerminal())
			}
		})
	}
}

func TestApplyThroughStubNeverPushesUnlisted(t *testing.T) {
	b := NewBoard(stubRules{}, logx.NewNop())
	if b.Apply(base.Move{From: 12, To: 28}) {
		t.Error("move accepted with empty legal set")
	}
}
