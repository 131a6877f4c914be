package stats

import (
	"os"
	"path/filepath"
	"politicalchess/src/base"
	"politicalchess/src/logx"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "game_stats.json"), logx.NewNop())
}

func TestLoadMissingFileIsZero(t *testing.T) {
	s := newStore(t)
	if diff := cmp.Diff(Record{}, s.Load()); diff != "" {
		t.Errorf("record (-want +got):\n%s", diff)
	}
}

func TestLoadCorruptFileIsZero(t *testing.T) {
	s := newStore(t)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Record{}, s.Load()); diff != "" {
		t.Errorf("record (-want +got):\n%s", diff)
	}
	r, err := s.Record(base.Result{Kind: base.ResultDraw, Reason: base.ReasonStalemate})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Record{Draws: 1}, r); diff != "" {
		t.Errorf("after record (-want +got):\n%s", diff)
	}
}

func TestRecordIncrementsExactlyOneCounter(t *testing.T) {
	s := newStore(t)
	steps := []struct {
		res  base.Result
		want Record
	}{
		{base.WinFor(base.SideA, base.ReasonCheckmate), Record{USAWins: 1}},
		{base.WinFor(base.SideB, base.ReasonCheckmate), Record{USAWins: 1, EUWins: 1}},
		{base.Result{Kind: base.ResultDraw, Reason: base.ReasonRepetition}, Record{USAWins: 1, EUWins: 1, Draws: 1}},
		{base.WinFor(base.SideB, base.ReasonCheckmate), Record{USAWins: 1, EUWins: 2, Draws: 1}},
		{base.Result{Kind: base.ResultGameOver}, Record{USAWins: 1, EUWins: 2, Draws: 1}},
		{base.Result{Kind: base.ResultGameOver, Reason: base.ReasonTimeExpired}, Record{USAWins: 1, EUWins: 2, Draws: 1}},
	}
	for i, st := range steps {
		got, err := s.Record(st.res)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if diff := cmp.Diff(st.want, got); diff != "" {
			t.Errorf("step %d returned (-want +got):\n%s", i, diff)
		}
		if diff := cmp.Diff(st.want, s.Load()); diff != "" {
			t.Errorf("step %d persisted (-want +got):\n%s", i, diff)
		}
	}
}

func TestFileKeysRoundTrip(t *testing.T) {
	s := newStore(t)
	if err := os.WriteFile(s.Path(), []byte(`{"usa_wins": 4, "eu_wins": 7, "draws": 2}`), 0o644); err != nil {
		t.Fatal(err)
	}
	want := Record{USAWins: 4, EUWins: 7, Draws: 2}
	if diff := cmp.Diff(want, s.Load()); diff != "" {
		t.Errorf("record (-want +got):\n%s", diff)
	}
	if want.Total() != 13 {
		t.Errorf("Total() = %d", want.Total())
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	s := newStore(t)
	if err := s.Save(Record{USAWins: 1}); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "game_stats.json" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory contents = %v", names)
	}
}

func TestNegativeCountersStartFresh(t *testing.T) {
	s := newStore(t)
	if err := os.WriteFile(s.Path(), []byte(`{"usa_wins": -1, "eu_wins": 0, "draws": 0}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Record{}, s.Load()); diff != "" {
		t.Errorf("record (-want +got):\n%s", diff)
	}
}
