package gconf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "politicalchess.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMissingFileGivesDefaults(t *testing.T) {
	c, err := NewGUIConfig(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(defaultConfig(), *c); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
	if c.Clock() != 10*time.Minute || c.OpponentDelay() != 500*time.Millisecond {
		t.Errorf("durations = %v %v", c.Clock(), c.OpponentDelay())
	}
	if c.BoardSize() != 560 {
		t.Errorf("board size = %d", c.BoardSize())
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	c, err := NewGUIConfig(writeConfig(t, `{"clock_minutes": 3, "end_timeout_sec": 15}`))
	if err != nil {
		t.Fatal(err)
	}
	want := defaultConfig()
	want.ClockMinutes = 3
	want.EndTimeoutSec = 15
	if diff := cmp.Diff(want, *c); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestOutOfRangeValuesCorrected(t *testing.T) {
	c, err := NewGUIConfig(writeConfig(t, `{
		"theme": "neon",
		"window_w": 100,
		"window_h": 100,
		"square_size": 70,
		"clock_minutes": -2,
		"opponent_delay_ms": -1,
		"end_timeout_sec": -5,
		"sprite_path": "",
		"stats_path": ""
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(defaultConfig(), *c); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestDecodeError(t *testing.T) {
	if _, err := NewGUIConfig(writeConfig(t, `{"theme":`)); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	c := Default()
	c.Theme = "light"
	c.OpponentDelayMs = 0
	if err := c.Save(path); err != nil {
		t.Fatal(err)
	}
	got, err := NewGUIConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(c, got); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}
