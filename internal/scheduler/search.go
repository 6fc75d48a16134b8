package scheduler

import (
	"sort"
	"time"
)

// Slot search grid. Candidates start on quarter-hour boundaries inside the
// business-hours window; the coarse fixed grid keeps enumeration over small
// calendars cheap and the ranking tie-break stable.
const (
	SearchDayStartHour = 8
	SearchDayEndHour   = 17 // inclusive
	SlotStepMinutes    = 15
	MaxSlots           = 10
)

// Slot is a ranked candidate interval for a new meeting.
type Slot struct {
	Start        time.Time
	End          time.Time
	QualityScore float64
	Reason       string
}

// CalendarSource combines the lookups slot search needs.
type CalendarSource interface {
	MeetingSource
	UserSource
}

// FindOptimalSlots enumerates candidate start times on the search grid for
// every day of the inclusive range, discards candidates that collide with any
// participant's existing meetings, scores the rest and returns at most the
// MaxSlots best, ordered by non-increasing score. Equal scores keep
// enumeration order.
func FindOptimalSlots(source CalendarSource, participants []string, duration time.Duration, rangeStart, rangeEnd time.Time) []Slot {
	var slots []Slot

	for day := rangeStart; !day.After(rangeEnd); day = day.AddDate(0, 0, 1) {
		for hour := SearchDayStartHour; hour <= SearchDayEndHour; hour++ {
			for minute := 0; minute < 60; minute += SlotStepMinutes {
				start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
				end := start.Add(duration)

				if len(SlotConflicts(source, participants, start, end)) > 0 {
					continue
				}

				score := ScoreSlot(source, participants, start)
				slots = append(slots, Slot{
					Start:        start,
					End:          end,
					QualityScore: score,
					Reason:       RecommendationReason(score),
				})
			}
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].QualityScore > slots[j].QualityScore
	})
	if len(slots) > MaxSlots {
		slots = slots[:MaxSlots]
	}
	return slots
}
