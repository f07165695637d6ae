package model

import (
	"errors"
	"testing"
	"time"
)

func validHabit() Habit {
	return Habit{
		ID:          "habit-1",
		Name:        "Drink Water",
		Frequency:   FrequencyDaily,
		TargetCount: 8,
		ProgressLog: map[string]int{},
		CreatedAt:   time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestHabitValidate(t *testing.T) {
	h := validHabit()
	if err := h.Validate(); err != nil {
		t.Fatalf("valid habit rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Habit)
	}{
		{"empty id", func(h *Habit) { h.ID = " " }},
		{"empty name", func(h *Habit) { h.Name = "" }},
		{"bad frequency", func(h *Habit) { h.Frequency = "Hourly" }},
		{"zero target", func(h *Habit) { h.TargetCount = 0 }},
		{"negative target", func(h *Habit) { h.TargetCount = -3 }},
		{"zero created_at", func(h *Habit) { h.CreatedAt = time.Time{} }},
		{"bad log date", func(h *Habit) { h.ProgressLog = map[string]int{"01-02-2024": 1} }},
		{"negative log count", func(h *Habit) { h.ProgressLog = map[string]int{"2024-01-02": -1} }},
	}
	for _, tc := range cases {
		broken := validHabit()
		tc.mutate(&broken)
		if err := broken.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestParseFrequency(t *testing.T) {
	cases := []struct {
		in   string
		want Frequency
	}{
		{"daily", FrequencyDaily},
		{"Day", FrequencyDaily},
		{" weekly ", FrequencyWeekly},
		{"month", FrequencyMonthly},
	}
	for _, tc := range cases {
		got, err := ParseFrequency(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parse %q = %q, want %q", tc.in, got, tc.want)
		}
	}

	if _, err := ParseFrequency("fortnightly"); !errors.Is(err, ErrInvalidFrequency) {
		t.Fatalf("expected ErrInvalidFrequency, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2024-02-29"); err != nil {
		t.Fatalf("leap day rejected: %v", err)
	}
	for _, raw := range []string{"2024-13-01", "2024-02-30", "yesterday", ""} {
		if _, err := ParseDate(raw); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("parse %q: expected ErrInvalidDate, got %v", raw, err)
		}
	}
}

func TestDoneOnAndDoneDays(t *testing.T) {
	h := validHabit()
	h.ProgressLog = map[string]int{
		"2024-01-01": 2,
		"2024-01-02": 0,
		"2024-01-03": 1,
	}
	if !h.DoneOn("2024-01-01") || !h.DoneOn("2024-01-03") {
		t.Fatal("expected days with counts >= 1 to be done")
	}
	if h.DoneOn("2024-01-02") || h.DoneOn("2024-01-04") {
		t.Fatal("expected zero-count and absent days to not be done")
	}
	if got := h.DoneDays(); got != 2 {
		t.Fatalf("DoneDays = %d, want 2", got)
	}
}

func TestCompletionRatio(t *testing.T) {
	h := validHabit()
	h.ProgressLog = map[string]int{
		"2024-01-01": 1,
		"2024-01-02": 3,
	}
	now := time.Date(2024, 1, 4, 18, 0, 0, 0, time.UTC)
	if got := h.DaysTracked(now); got != 4 {
		t.Fatalf("DaysTracked = %d, want 4", got)
	}
	if got := h.CompletionRatio(now); got != 0.5 {
		t.Fatalf("CompletionRatio = %v, want 0.5", got)
	}

	// Creation day itself counts as one tracked day.
	sameDay := time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)
	if got := h.DaysTracked(sameDay); got != 1 {
		t.Fatalf("DaysTracked on creation day = %d, want 1", got)
	}
}

func TestStatusOn(t *testing.T) {
	h := validHabit()
	if got := h.StatusOn("2024-01-05"); got != StatusNotStarted {
		t.Fatalf("empty log status = %q, want %q", got, StatusNotStarted)
	}
	h.ProgressLog = map[string]int{"2024-01-04": 1}
	if got := h.StatusOn("2024-01-05"); got != StatusInProgress {
		t.Fatalf("status = %q, want %q", got, StatusInProgress)
	}
	h.ProgressLog["2024-01-05"] = 1
	if got := h.StatusOn("2024-01-05"); got != StatusCompleted {
		t.Fatalf("status = %q, want %q", got, StatusCompleted)
	}
}

func TestCloneIsolatesProgressLog(t *testing.T) {
	h := validHabit()
	h.ProgressLog["2024-01-01"] = 1
	clone := h.Clone()
	clone.ProgressLog["2024-01-02"] = 5
	if _, ok := h.ProgressLog["2024-01-02"]; ok {
		t.Fatal("mutating a clone leaked into the original log")
	}
}
