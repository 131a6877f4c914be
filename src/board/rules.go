package board

import "politicalchess/src/base"

// Rules is the boundary to the chess rules engine. The adapter never checks
// legality itself; whatever Rules reports is authoritative.
type Rules interface {
	Turn() base.Side
	PieceAt(sq base.Square) (base.Piece, bool)
	LegalMoves() []base.Move
	Push(m base.Move) error
	Pop() error
	FEN() string

	IsCheckmate() bool
	IsStalemate() bool
	IsInsufficientMaterial() bool
	IsMoveLimitDraw() bool
	IsRepetitionDraw() bool
}
