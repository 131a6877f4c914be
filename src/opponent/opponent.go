// Package opponent chooses moves for the computer side.
package opponent

import (
	"math/rand"
	"politicalchess/src/base"
)

type Player interface {
	Choose(legal []base.Move) (base.Move, bool)
}

// Random picks uniformly among the legal moves.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Choose(legal []base.Move) (base.Move, bool) {
	if len(legal) == 0 {
		return base.Move{}, false
	}
	return legal[r.rng.Intn(len(legal))], true
}
