package src

import (
	"context"
	"fmt"
	"politicalchess/src/base"
	"politicalchess/src/board"
	"politicalchess/src/logx"
	"politicalchess/src/opponent"
	"politicalchess/src/stats"
)

// MaxSimulatedPlies bounds a single simulated game; the engine's own
// seventy-five move and fivefold repetition rules normally end it first.
const MaxSimulatedPlies = 2000

type SimulateOptions struct {
	Games     int
	Seed      int64
	StatsPath string
	Logger    logx.Logger
}

type SimulateReport struct {
	Results []base.Result
	Stats   stats.Record
	Last    board.Snapshot
}

// Simulate plays automated games on both sides and records every result.
func Simulate(ctx context.Context, opts SimulateOptions) (SimulateReport, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logx.NewNop()
	}
	store := stats.NewStore(opts.StatsPath, logger)
	players := [2]opponent.Player{
		opponent.NewRandom(opts.Seed),
		opponent.NewRandom(opts.Seed + 1),
	}

	var report SimulateReport
	report.Stats = store.Load()
	for i := 0; i < opts.Games; i++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		b := board.NewClassicBoard(logger.With("game", i+1))
		res := playOut(b, players)
		rec, err := store.Record(res)
		if err != nil {
			return report, fmt.Errorf("game %d: %w", i+1, err)
		}
		report.Results = append(report.Results, res)
		report.Stats = rec
		report.Last = b.Snapshot()
		logger.Infof("simulated game %d: %v after %d plies", i+1, res, len(b.History()))
	}
	return report, nil
}

func playOut(b *board.Board, players [2]opponent.Player) base.Result {
	for ply := 0; ply < MaxSimulatedPlies; ply++ {
		if reason := b.TerminalReason(); reason != base.ReasonNone {
			return base.ResultFor(reason, b.Turn())
		}
		mv, ok := players[b.Turn()].Choose(b.LegalMoves())
		if !ok || !b.Apply(mv) {
			break
		}
	}
	if reason := b.TerminalReason(); reason != base.ReasonNone {
		return base.ResultFor(reason, b.Turn())
	}
	return base.Result{Kind: base.ResultDraw, Reason: base.ReasonMoveLimit}
}
