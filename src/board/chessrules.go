package board

import (
	"errors"
	"fmt"
	"politicalchess/src/base"

	"github.com/corentings/chess/v2"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrNoMoves     = errors.New("no moves to undo")
)

// ChessRules implements Rules on top of corentings/chess.
type ChessRules struct {
	fen   string // empty for the standard start
	game  *chess.Game
	moves []base.Move
}

func NewChessRules() *ChessRules {
	return &ChessRules{game: chess.NewGame()}
}

func NewChessRulesFromFEN(fen string) (*ChessRules, error) {
	game, err := newGame(fen)
	if err != nil {
		return nil, err
	}
	return &ChessRules{fen: fen, game: game}, nil
}

func newGame(fen string) (*chess.Game, error) {
	if fen == "" {
		return chess.NewGame(), nil
	}
	option, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parse fen %q: %w", fen, err)
	}
	return chess.NewGame(option), nil
}

func (r *ChessRules) Turn() base.Side {
	return sideFrom(r.game.Position().Turn())
}

func (r *ChessRules) PieceAt(sq base.Square) (base.Piece, bool) {
	if !sq.Valid() {
		return base.Piece{}, false
	}
	p := r.game.Position().Board().Piece(chess.Square(sq))
	if p == chess.NoPiece {
		return base.Piece{}, false
	}
	return base.Piece{Kind: kindFrom(p.Type()), Side: sideFrom(p.Color())}, true
}

func (r *ChessRules) LegalMoves() []base.Move {
	valid := r.game.ValidMoves()
	moves := make([]base.Move, 0, len(valid))
	for _, mv := range valid {
		moves = append(moves, base.Move{
			From:  base.Square(mv.S1()),
			To:    base.Square(mv.S2()),
			Promo: kindFrom(mv.Promo()),
		})
	}
	return moves
}

func (r *ChessRules) Push(m base.Move) error {
	for _, mv := range r.game.ValidMoves() {
		if base.Square(mv.S1()) != m.From || base.Square(mv.S2()) != m.To || kindFrom(mv.Promo()) != m.Promo {
			continue
		}
		if err := r.game.Move(&mv, nil); err != nil {
			return fmt.Errorf("apply %s: %w", m, err)
		}
		r.moves = append(r.moves, m)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrIllegalMove, m)
}

// Pop rebuilds the game from its starting position without the last move.
func (r *ChessRules) Pop() error {
	if len(r.moves) == 0 {
		return ErrNoMoves
	}
	game, err := newGame(r.fen)
	if err != nil {
		return err
	}
	keep := r.moves[:len(r.moves)-1]
	for _, m := range keep {
		if err := game.PushNotationMove(m.String(), chess.UCINotation{}, nil); err != nil {
			return fmt.Errorf("replay %s: %w", m, err)
		}
	}
	r.game = game
	r.moves = append([]base.Move(nil), keep...)
	return nil
}

func (r *ChessRules) FEN() string {
	return r.game.FEN()
}

func (r *ChessRules) IsCheckmate() bool {
	return r.game.Method() == chess.Checkmate || r.game.Position().Status() == chess.Checkmate
}

func (r *ChessRules) IsStalemate() bool {
	return r.game.Method() == chess.Stalemate || r.game.Position().Status() == chess.Stalemate
}

func (r *ChessRules) IsInsufficientMaterial() bool {
	return r.game.Method() == chess.InsufficientMaterial
}

func (r *ChessRules) IsMoveLimitDraw() bool {
	m := r.game.Method()
	return m == chess.SeventyFiveMoveRule || m == chess.FiftyMoveRule
}

func (r *ChessRules) IsRepetitionDraw() bool {
	m := r.game.Method()
	return m == chess.FivefoldRepetition || m == chess.ThreefoldRepetition
}

func sideFrom(c chess.Color) base.Side {
	if c == chess.Black {
		return base.SideB
	}
	return base.SideA
}

func kindFrom(pt chess.PieceType) base.Kind {
	switch pt {
	case chess.King:
		return base.King
	case chess.Queen:
		return base.Queen
	case chess.Rook:
		return base.Rook
	case chess.Bishop:
		return base.Bishop
	case chess.Knight:
		return base.Knight
	case chess.Pawn:
		return base.Pawn
	default:
	}
	return base.NoKind
}
