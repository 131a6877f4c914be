package ui

import "politicalchess/src/base"

// mailboxLookup serves piece queries from a board snapshot.
type mailboxLookup base.Mailbox

func (m mailboxLookup) PieceAt(sq base.Square) (base.Piece, bool) {
	if !sq.Valid() || m[sq].Kind == base.NoKind {
		return base.Piece{}, false
	}
	return m[sq], true
}
