package store

import "github.com/sandeepkv93/habitd/internal/model"

type HabitStats struct {
	ID          string
	Name        string
	Status      model.Status
	TodayCount  int
	TargetCount int
	DoneDays    int
	DaysTracked int
	Ratio       float64
}

type Stats struct {
	Total          int
	CompletedToday int
	InProgress     int
	Habits         []HabitStats
}

// Stats reports how many habits were checked off today ("completed today")
// versus not ("in progress"), plus the per-habit completion ratio used for
// progress bars. The ratio is done days over days since creation; the
// per-day target does not enter the ratio.
func (s *Store) Stats() Stats {
	today := s.Today()
	now := s.now()

	out := Stats{Total: len(s.habits)}
	for _, h := range s.habits {
		if h.DoneOn(today) {
			out.CompletedToday++
		} else {
			out.InProgress++
		}
		out.Habits = append(out.Habits, HabitStats{
			ID:          h.ID,
			Name:        h.Name,
			Status:      h.StatusOn(today),
			TodayCount:  h.CountOn(today),
			TargetCount: h.TargetCount,
			DoneDays:    h.DoneDays(),
			DaysTracked: h.DaysTracked(now),
			Ratio:       h.CompletionRatio(now),
		})
	}
	return out
}
