package src

import (
	"context"
	"path/filepath"
	"politicalchess/src/base"
	"politicalchess/src/logx"
	"politicalchess/src/stats"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSimulateCountsEveryGame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_stats.json")
	report, err := Simulate(context.Background(), SimulateOptions{Games: 3, Seed: 11, StatsPath: path})
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if len(report.Results) != 3 {
		t.Fatalf("results = %d", len(report.Results))
	}
	if report.Stats.Total() != 3 {
		t.Errorf("stats total = %d, want 3", report.Stats.Total())
	}
	for i, r := range report.Results {
		if r.Kind == base.ResultGameOver {
			t.Errorf("game %d ended without a winner or draw: %v", i, r)
		}
	}
	persisted := stats.NewStore(path, logx.NewNop()).Load()
	if diff := cmp.Diff(report.Stats, persisted); diff != "" {
		t.Errorf("persisted (-want +got):\n%s", diff)
	}

	again, err := Simulate(context.Background(), SimulateOptions{Games: 2, Seed: 12, StatsPath: path})
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if again.Stats.Total() != 5 {
		t.Errorf("cumulative total = %d, want 5", again.Stats.Total())
	}
}

func TestSimulateIsReproducible(t *testing.T) {
	dir := t.TempDir()
	a, err := Simulate(context.Background(), SimulateOptions{Games: 2, Seed: 5, StatsPath: filepath.Join(dir, "a.json")})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Simulate(context.Background(), SimulateOptions{Games: 2, Seed: 5, StatsPath: filepath.Join(dir, "b.json")})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a.Results, b.Results); diff != "" {
		t.Errorf("results differ (-a +b):\n%s", diff)
	}
	if diff := cmp.Diff(a.Last, b.Last); diff != "" {
		t.Errorf("final boards differ (-a +b):\n%s", diff)
	}
}

func TestSimulateHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report, err := Simulate(ctx, SimulateOptions{Games: 4, StatsPath: filepath.Join(t.TempDir(), "s.json")})
	if err == nil {
		t.Fatal("expected context error")
	}
	if len(report.Results) != 0 {
		t.Errorf("played %d games after cancel", len(report.Results))
	}
}
