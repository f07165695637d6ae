package store

import (
	"fmt"
	"sort"
	"strings"
)

// ExportText renders every habit and its log as plain text. The output is a
// pure function of the current state: habits in store order, log dates
// ascending, no wall-clock timestamps, so re-exporting unchanged state
// yields the identical string. Writing it anywhere is the caller's job.
func (s *Store) ExportText() string {
	var b strings.Builder
	b.WriteString("HABIT TRACKER EXPORT\n")
	b.WriteString(fmt.Sprintf("Habits: %d\n", len(s.habits)))

	for i, h := range s.habits {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, h.Name))
		b.WriteString(fmt.Sprintf("   Frequency: %s\n", h.Frequency))
		b.WriteString(fmt.Sprintf("   Target: %d/day\n", h.TargetCount))
		b.WriteString(fmt.Sprintf("   Created: %s\n", h.CreatedAt.UTC().Format("2006-01-02 15:04")))
		b.WriteString(fmt.Sprintf("   Days completed: %d\n", h.DoneDays()))

		if len(h.ProgressLog) == 0 {
			b.WriteString("   Log: (empty)\n")
			continue
		}
		dates := make([]string, 0, len(h.ProgressLog))
		for date := range h.ProgressLog {
			dates = append(dates, date)
		}
		sort.Strings(dates)
		b.WriteString("   Log:\n")
		for _, date := range dates {
			b.WriteString(fmt.Sprintf("     %s: %d\n", date, h.ProgressLog[date]))
		}
	}
	return b.String()
}
