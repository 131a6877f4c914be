// Package material derives captured-piece tallies from the pieces left on the board.
package material

import "politicalchess/src/base"

type PieceLookup interface {
	PieceAt(sq base.Square) (base.Piece, bool)
}

var startCounts = map[base.Kind]int{
	base.Pawn:   8,
	base.Knight: 2,
	base.Bishop: 2,
	base.Rook:   2,
	base.Queen:  1,
}

// Order is the display order of a tally.
var Order = []base.Kind{base.Pawn, base.Knight, base.Bishop, base.Rook, base.Queen}

type Tally map[base.Kind]int

func StartCount(k base.Kind) int {
	return startCounts[k]
}

// CapturedBy counts the opponent pieces missing from the board, per kind.
// Promotions can push a kind above its starting count; such kinds count as zero.
func CapturedBy(b PieceLookup, captor base.Side) Tally {
	victim := captor.Opponent()
	present := map[base.Kind]int{}
	for sq := base.Square(0); sq < 64; sq++ {
		if p, ok := b.PieceAt(sq); ok && p.Side == victim {
			present[p.Kind]++
		}
	}
	t := Tally{}
	for k, start := range startCounts {
		missing := start - present[k]
		if missing > 0 {
			t[k] = missing
		}
	}
	return t
}

func (t Tally) Total() int {
	n := 0
	for _, v := range t {
		n += v
	}
	return n
}

// Glyphs expands the tally into one kind per captured piece in display order.
func (t Tally) Glyphs() []base.Kind {
	var out []base.Kind
	for _, k := range Order {
		for i := 0; i < t[k]; i++ {
			out = append(out, k)
		}
	}
	return out
}
