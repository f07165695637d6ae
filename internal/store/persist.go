package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sandeepkv93/habitd/internal/model"
)

// The snapshot is a single JSON object keyed by habit id.
type habitRecord struct {
	Name        string         `json:"name"`
	Frequency   string         `json:"frequency"`
	TargetCount int            `json:"target_count"`
	CreatedAt   time.Time      `json:"created_at"`
	ProgressLog map[string]int `json:"progress_log"`
}

// Load reads the persistence file. A missing or empty file initializes an
// empty collection. Malformed content fails with ErrCorruptData and leaves
// the in-memory collection untouched.
func (s *Store) Load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.habits = nil
			return nil
		}
		return fmt.Errorf("store: read data file: %w", err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		s.habits = nil
		return nil
	}

	var records map[string]habitRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptData, err)
	}

	loaded := make([]model.Habit, 0, len(records))
	for id, rec := range records {
		habit := model.Habit{
			ID:          id,
			Name:        rec.Name,
			Frequency:   model.Frequency(rec.Frequency),
			TargetCount: rec.TargetCount,
			ProgressLog: rec.ProgressLog,
			CreatedAt:   rec.CreatedAt,
		}
		if habit.ProgressLog == nil {
			habit.ProgressLog = make(map[string]int)
		}
		if err := habit.Validate(); err != nil {
			return fmt.Errorf("%w: habit %s: %v", ErrCorruptData, id, err)
		}
		loaded = append(loaded, habit)
	}

	s.habits = loaded
	s.sortHabits()
	s.logger.Info("habits loaded", zap.Int("count", len(loaded)), zap.String("path", s.path))
	return nil
}

// persist writes the full snapshot to a temporary file in the same
// directory and renames it over the data file, so a crash mid-write leaves
// the previous snapshot intact.
func (s *Store) persist() error {
	tmpPath, err := s.encodeToTemp()
	if err != nil {
		return err
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("store: replace snapshot: %w", err)
	}
	return nil
}

// encodeToTemp writes the current snapshot to a temporary file in the data
// directory and returns its path. The caller renames it into place.
func (s *Store) encodeToTemp() (string, error) {
	records := make(map[string]habitRecord, len(s.habits))
	for _, h := range s.habits {
		records[h.ID] = habitRecord{
			Name:        h.Name,
			Frequency:   string(h.Frequency),
			TargetCount: h.TargetCount,
			CreatedAt:   h.CreatedAt,
			ProgressLog: h.ProgressLog,
		}
	}

	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("store: encode snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".habits-*.tmp")
	if err != nil {
		return "", fmt.Errorf("store: create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(append(payload, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("store: write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("store: close temp file: %w", err)
	}
	return tmpPath, nil
}

// DiscardCorrupt moves an unreadable data file aside and re-initializes an
// empty collection. Only called after the user confirmed the discard; the
// quarantined file is kept for manual recovery.
func (s *Store) DiscardCorrupt() (string, error) {
	quarantine := s.path + ".corrupt"
	if err := os.Rename(s.path, quarantine); err != nil {
		return "", fmt.Errorf("store: quarantine data file: %w", err)
	}
	s.habits = nil
	if err := s.persist(); err != nil {
		return "", err
	}
	s.logger.Warn("corrupt data file quarantined", zap.String("moved_to", quarantine))
	return quarantine, nil
}
