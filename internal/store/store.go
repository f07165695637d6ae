package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sandeepkv93/habitd/internal/model"
)

// Store is the sole owner of habit data and the only component that reads
// or writes the persistence file. Every mutating operation persists the
// full snapshot atomically before returning.
type Store struct {
	path   string
	lock   *flock.Flock
	logger *zap.Logger
	habits []model.Habit
	now    func() time.Time
}

type Option func(*Store)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source, used by tests to pin "today".
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Open prepares the store for the data file at path and takes the sidecar
// instance lock. It does not read the file; call Load.
func Open(path string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("store: empty data file path")
	}
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: create data dir: %w", err)
		}
	}

	s := &Store{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	acquired, err := s.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("store: acquire lock: %w", err)
	}
	if !acquired {
		return nil, ErrLocked
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.lock.Unlock()
}

func (s *Store) Path() string { return s.path }

func (s *Store) Len() int { return len(s.habits) }

// List returns habits ordered by creation time (id tie-break). Returned
// habits are clones; callers cannot mutate the store through them.
func (s *Store) List() []model.Habit {
	out := make([]model.Habit, 0, len(s.habits))
	for _, h := range s.habits {
		out = append(out, h.Clone())
	}
	return out
}

func (s *Store) Get(id string) (model.Habit, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Habit{}, ErrNotFound
	}
	return s.habits[idx].Clone(), nil
}

func (s *Store) Add(name string, frequency model.Frequency, targetCount int) (model.Habit, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return model.Habit{}, invalidField("name", "must not be empty")
	}
	if !frequency.IsValid() {
		return model.Habit{}, invalidField("frequency", fmt.Sprintf("unknown frequency %q", frequency))
	}
	if targetCount <= 0 {
		return model.Habit{}, invalidField("target", "must be a positive number")
	}

	habit := model.Habit{
		ID:          uuid.NewString(),
		Name:        trimmed,
		Frequency:   frequency,
		TargetCount: targetCount,
		ProgressLog: make(map[string]int),
		CreatedAt:   s.now().UTC(),
	}
	s.habits = append(s.habits, habit)
	s.sortHabits()
	if err := s.persist(); err != nil {
		s.removeAt(s.indexOf(habit.ID))
		return model.Habit{}, err
	}
	s.logger.Info("habit added", zap.String("id", habit.ID), zap.String("name", habit.Name))
	return habit.Clone(), nil
}

// Changes carries the editable habit fields; nil means leave unchanged.
type Changes struct {
	Name        *string
	Frequency   *model.Frequency
	TargetCount *int
}

func (s *Store) Edit(id string, changes Changes) (model.Habit, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Habit{}, ErrNotFound
	}

	updated := s.habits[idx].Clone()
	if changes.Name != nil {
		trimmed := strings.TrimSpace(*changes.Name)
		if trimmed == "" {
			return model.Habit{}, invalidField("name", "must not be empty")
		}
		updated.Name = trimmed
	}
	if changes.Frequency != nil {
		if !changes.Frequency.IsValid() {
			return model.Habit{}, invalidField("frequency", fmt.Sprintf("unknown frequency %q", *changes.Frequency))
		}
		updated.Frequency = *changes.Frequency
	}
	if changes.TargetCount != nil {
		if *changes.TargetCount <= 0 {
			return model.Habit{}, invalidField("target", "must be a positive number")
		}
		updated.TargetCount = *changes.TargetCount
	}

	previous := s.habits[idx]
	s.habits[idx] = updated
	if err := s.persist(); err != nil {
		s.habits[idx] = previous
		return model.Habit{}, err
	}
	s.logger.Info("habit edited", zap.String("id", id))
	return updated.Clone(), nil
}

func (s *Store) Delete(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}
	removed := s.habits[idx]
	s.removeAt(idx)
	if err := s.persist(); err != nil {
		s.habits = append(s.habits, removed)
		s.sortHabits()
		return err
	}
	s.logger.Info("habit deleted", zap.String("id", id), zap.String("name", removed.Name))
	return nil
}

// MarkProgress upserts the progress entry for date. A count of zero removes
// the entry, undoing a check-off. Repeated calls on the same date overwrite.
func (s *Store) MarkProgress(id, date string, count int) (model.Habit, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Habit{}, ErrNotFound
	}
	if _, err := model.ParseDate(date); err != nil {
		return model.Habit{}, invalidField("date", fmt.Sprintf("%q is not a valid YYYY-MM-DD date", date))
	}
	if count < 0 {
		return model.Habit{}, invalidField("count", "must not be negative")
	}

	updated := s.habits[idx].Clone()
	if count == 0 {
		delete(updated.ProgressLog, date)
	} else {
		updated.ProgressLog[date] = count
	}

	previous := s.habits[idx]
	s.habits[idx] = updated
	if err := s.persist(); err != nil {
		s.habits[idx] = previous
		return model.Habit{}, err
	}
	return updated.Clone(), nil
}

// CheckOff increments the count for date by one.
func (s *Store) CheckOff(id, date string) (model.Habit, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Habit{}, ErrNotFound
	}
	return s.MarkProgress(id, date, s.habits[idx].CountOn(date)+1)
}

// Undo decrements the count for date by one, dropping the entry at zero.
func (s *Store) Undo(id, date string) (model.Habit, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Habit{}, ErrNotFound
	}
	count := s.habits[idx].CountOn(date) - 1
	if count < 0 {
		count = 0
	}
	return s.MarkProgress(id, date, count)
}

// Reset deletes every habit. The previous snapshot is kept next to the data
// file as a .bak so the operation is confirmable but never silent. The empty
// snapshot is staged before the old file moves aside, so a failure at any
// step leaves the data at its canonical path.
func (s *Store) Reset() error {
	previous := s.habits
	s.habits = nil
	tmpPath, err := s.encodeToTemp()
	if err != nil {
		s.habits = previous
		return err
	}
	if _, err := os.Stat(s.path); err == nil {
		if err := os.Rename(s.path, s.path+".bak"); err != nil {
			os.Remove(tmpPath)
			s.habits = previous
			return fmt.Errorf("store: back up snapshot: %w", err)
		}
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Rename(s.path+".bak", s.path)
		os.Remove(tmpPath)
		s.habits = previous
		return fmt.Errorf("store: replace snapshot: %w", err)
	}
	s.logger.Warn("all habits reset", zap.Int("removed", len(previous)))
	return nil
}

func (s *Store) Today() string {
	return model.FormatDate(s.now())
}

func (s *Store) Now() time.Time {
	return s.now()
}

func (s *Store) indexOf(id string) int {
	for i, h := range s.habits {
		if h.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) removeAt(idx int) {
	if idx < 0 || idx >= len(s.habits) {
		return
	}
	s.habits = append(s.habits[:idx], s.habits[idx+1:]...)
}

func (s *Store) sortHabits() {
	sort.SliceStable(s.habits, func(i, j int) bool {
		if s.habits[i].CreatedAt.Equal(s.habits[j].CreatedAt) {
			return s.habits[i].ID < s.habits[j].ID
		}
		return s.habits[i].CreatedAt.Before(s.habits[j].CreatedAt)
	})
}
