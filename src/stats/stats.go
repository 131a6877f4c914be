// Package stats persists the cumulative USA/EU/draw counters.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"politicalchess/src/base"
	"politicalchess/src/logx"
)

const DefaultFile = "game_stats.json"

type Record struct {
	USAWins int `json:"usa_wins"`
	EUWins  int `json:"eu_wins"`
	Draws   int `json:"draws"`
}

func (r Record) Total() int {
	return r.USAWins + r.EUWins + r.Draws
}

func (r Record) String() string {
	return fmt.Sprintf("USA %d - EU %d - Draws %d", r.USAWins, r.EUWins, r.Draws)
}

// Add bumps the counter matching res. Results without a winner or draw leave r untouched.
func (r *Record) Add(res base.Result) bool {
	switch res.Kind {
	case base.ResultSideAWins:
		r.USAWins++
	case base.ResultSideBWins:
		r.EUWins++
	case base.ResultDraw:
		r.Draws++
	default:
		return false
	}
	return true
}

type Store struct {
	path   string
	logger logx.Logger
}

func NewStore(path string, logger logx.Logger) *Store {
	if path == "" {
		path = DefaultFile
	}
	return &Store{path: path, logger: logger}
}

func (s *Store) Path() string {
	return s.path
}

// Load never fails: a missing or unreadable file is a fresh record.
func (s *Store) Load() Record {
	var r Record
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warnf("read stats %s: %v", s.path, err)
		}
		return Record{}
	}
	if err := json.Unmarshal(data, &r); err != nil {
		s.logger.Warnf("decode stats %s, starting fresh: %v", s.path, err)
		return Record{}
	}
	if r.USAWins < 0 || r.EUWins < 0 || r.Draws < 0 {
		s.logger.Warnf("negative counters in %s, starting fresh", s.path)
		return Record{}
	}
	return r
}

// Record loads the stored counters, adds res and writes them back.
func (s *Store) Record(res base.Result) (Record, error) {
	r := s.Load()
	if !r.Add(res) {
		return r, nil
	}
	if err := s.Save(r); err != nil {
		return r, err
	}
	s.logger.Infof("stats updated: %v", r)
	return r, nil
}

// Save writes r to a temporary file next to the target and renames it into place.
func (s *Store) Save(r Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp stats file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write stats: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync stats: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close stats: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace stats: %w", err)
	}
	return nil
}
