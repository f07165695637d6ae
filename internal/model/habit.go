package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidFrequency = errors.New("model: invalid habit frequency")
	ErrInvalidTarget    = errors.New("model: invalid habit target")
)

type Frequency string

const (
	FrequencyDaily   Frequency = "Daily"
	FrequencyWeekly  Frequency = "Weekly"
	FrequencyMonthly Frequency = "Monthly"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	default:
		return false
	}
}

func ParseFrequency(raw string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "daily", "day":
		return FrequencyDaily, nil
	case "weekly", "week":
		return FrequencyWeekly, nil
	case "monthly", "month":
		return FrequencyMonthly, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFrequency, raw)
	}
}

type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

type Habit struct {
	ID          string
	Name        string
	Frequency   Frequency
	TargetCount int
	ProgressLog map[string]int
	CreatedAt   time.Time
}

func (h Habit) Validate() error {
	if strings.TrimSpace(h.ID) == "" {
		return errors.New("model: habit id is required")
	}
	if strings.TrimSpace(h.Name) == "" {
		return errors.New("model: habit name is required")
	}
	if !h.Frequency.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidFrequency, h.Frequency)
	}
	if h.TargetCount <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTarget, h.TargetCount)
	}
	if h.CreatedAt.IsZero() {
		return errors.New("model: habit created_at is required")
	}
	for date, count := range h.ProgressLog {
		if _, err := ParseDate(date); err != nil {
			return err
		}
		if count < 0 {
			return fmt.Errorf("model: negative progress count on %s: %d", date, count)
		}
	}
	return nil
}

func (h Habit) CountOn(date string) int {
	if h.ProgressLog == nil {
		return 0
	}
	return h.ProgressLog[date]
}

// DoneOn reports whether the habit was checked off at least once on date.
// TargetCount is a per-day goal only; a single check-off counts as done.
func (h Habit) DoneOn(date string) bool {
	return h.CountOn(date) >= 1
}

func (h Habit) DoneDays() int {
	done := 0
	for _, count := range h.ProgressLog {
		if count >= 1 {
			done++
		}
	}
	return done
}

// DaysTracked is the number of calendar days since creation, inclusive of
// the creation day, never less than one.
func (h Habit) DaysTracked(now time.Time) int {
	start := DateOf(h.CreatedAt)
	end := DateOf(now)
	if end.Before(start) {
		return 1
	}
	return int(end.Sub(start).Hours()/24) + 1
}

func (h Habit) CompletionRatio(now time.Time) float64 {
	tracked := h.DaysTracked(now)
	if tracked <= 0 {
		return 0
	}
	ratio := float64(h.DoneDays()) / float64(tracked)
	if ratio > 1 {
		ratio = 1
	}
	return ratio
}

func (h Habit) StatusOn(today string) Status {
	if h.DoneOn(today) {
		return StatusCompleted
	}
	if h.DoneDays() > 0 {
		return StatusInProgress
	}
	return StatusNotStarted
}

// Clone returns a deep copy so callers cannot mutate the owner's log map.
func (h Habit) Clone() Habit {
	out := h
	out.ProgressLog = make(map[string]int, len(h.ProgressLog))
	for date, count := range h.ProgressLog {
		out.ProgressLog[date] = count
	}
	return out
}
