// Package clock keeps the two countdown clocks of a game.
package clock

import (
	"fmt"
	"politicalchess/src/base"
	"time"
)

type Pair struct {
	remaining [2]time.Duration
}

func NewPair(start time.Duration) *Pair {
	return &Pair{remaining: [2]time.Duration{start, start}}
}

func (p *Pair) Remaining(s base.Side) time.Duration {
	return p.remaining[s]
}

// Debit subtracts elapsed time from side s, stopping at zero.
func (p *Pair) Debit(s base.Side, elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}
	p.remaining[s] -= elapsed
	if p.remaining[s] < 0 {
		p.remaining[s] = 0
	}
}

func (p *Pair) Expired(s base.Side) bool {
	return p.remaining[s] <= 0
}

// Flagged returns the side whose time ran out first, if any.
func (p *Pair) Flagged() (base.Side, bool) {
	switch {
	case p.Expired(base.SideA):
		return base.SideA, true
	case p.Expired(base.SideB):
		return base.SideB, true
	default:
	}
	return base.SideA, false
}

// Format renders d as MM:SS, dropping fractions of a second.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
