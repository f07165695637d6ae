package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sandeepkv93/habitd/internal/model"
)

func TestExportTextDeterministic(t *testing.T) {
	s := openStore(t, WithClock(fixedClock(t, "2024-01-02T07:00:00Z")))

	water, err := s.Add("Drink Water", model.FrequencyDaily, 8)
	require.NoError(t, err)
	_, err = s.MarkProgress(water.ID, "2024-01-02", 5)
	require.NoError(t, err)
	_, err = s.MarkProgress(water.ID, "2024-01-01", 8)
	require.NoError(t, err)

	first := s.ExportText()
	second := s.ExportText()
	require.Equal(t, first, second)
}

func TestExportTextContent(t *testing.T) {
	s := openStore(t, WithClock(fixedClock(t, "2024-01-02T07:00:00Z")))

	h, err := s.Add("Read", model.FrequencyWeekly, 2)
	require.NoError(t, err)
	_, err = s.MarkProgress(h.ID, "2024-01-02", 1)
	require.NoError(t, err)
	_, err = s.MarkProgress(h.ID, "2024-01-01", 2)
	require.NoError(t, err)

	out := s.ExportText()
	require.True(t, strings.HasPrefix(out, "HABIT TRACKER EXPORT\n"))
	require.Contains(t, out, "1. Read")
	require.Contains(t, out, "Frequency: Weekly")
	require.Contains(t, out, "Target: 2/day")
	require.Contains(t, out, "Days completed: 2")

	// Log dates render ascending regardless of insertion order.
	require.Less(t, strings.Index(out, "2024-01-01: 2"), strings.Index(out, "2024-01-02: 1"))
}

func TestExportTextEmptyStore(t *testing.T) {
	s := openStore(t)
	out := s.ExportText()
	require.Contains(t, out, "Habits: 0")
}
