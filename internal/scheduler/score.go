package scheduler

import (
	"time"

	"github.com/example/meeting-assistant/internal/calendar"
)

// Scoring weights. Per-participant contributions accumulate into a raw total
// that is floored at zero and averaged over the requested participant count.
const (
	// WorkHoursBonus rewards a slot starting inside a participant's
	// working window for that weekday.
	WorkHoursBonus = 2.0
	// OutsideWorkHoursPenalty applies when the weekday has a window but
	// the slot starts outside it. Days without a window contribute nothing.
	OutsideWorkHoursPenalty = 1.0
	// PreferredTimeBonus rewards a start hour within one hour of the
	// participant's preferred meeting time.
	PreferredTimeBonus = 1.0
	// NoMeetingPenalty applies per configured no-meeting window containing
	// the slot's start time-of-day.
	NoMeetingPenalty = 2.0
	// MidWeekBonus applies once per slot on Tuesday through Thursday.
	MidWeekBonus = 0.5
	// PrimeHourBonus applies once per slot starting mid-morning or early
	// afternoon.
	PrimeHourBonus = 0.5
)

// UserSource resolves participant ids to directory entries.
type UserSource interface {
	User(id string) (calendar.User, bool)
}

// ScoreSlot computes the quality of a candidate slot for the given
// participants. Unknown participant ids contribute nothing to the raw total
// but still count toward the divisor, so adding unresolvable attendees
// dilutes the score rather than failing. The result is never negative.
func ScoreSlot(directory UserSource, participants []string, start time.Time) float64 {
	if len(participants) == 0 {
		return 0
	}

	score := 0.0
	for _, participantID := range participants {
		user, ok := directory.User(participantID)
		if !ok {
			continue
		}

		if window, ok := user.WorkWindowOn(start); ok {
			if window.Contains(start) {
				score += WorkHoursBonus
			} else {
				score -= OutsideWorkHoursPenalty
			}
		}

		if preferredHour, ok := user.Preferences.PreferredHour(); ok {
			delta := start.Hour() - preferredHour
			if delta < 0 {
				delta = -delta
			}
			if delta <= 1 {
				score += PreferredTimeBonus
			}
		}

		for _, window := range user.Preferences.NoMeetingWindows() {
			if window.Contains(start) {
				score -= NoMeetingPenalty
			}
		}
	}

	switch start.Weekday() {
	case time.Tuesday, time.Wednesday, time.Thursday:
		score += MidWeekBonus
	}
	switch start.Hour() {
	case 10, 11, 14, 15:
		score += PrimeHourBonus
	}

	if score < 0 {
		return 0
	}
	return score / float64(len(participants))
}

// Recommendation tier boundaries applied to slot quality scores.
const (
	ExcellentScoreThreshold  = 2.0
	GoodScoreThreshold       = 1.5
	AcceptableScoreThreshold = 1.0
)

// RecommendationReason translates a quality score into the four-tier
// human-readable explanation attached to each candidate slot.
func RecommendationReason(score float64) string {
	switch {
	case score >= ExcellentScoreThreshold:
		return "Excellent time - within all participants' work hours and preferred times"
	case score >= GoodScoreThreshold:
		return "Good time - works well for most participants"
	case score >= AcceptableScoreThreshold:
		return "Acceptable time - some minor conflicts with preferences"
	default:
		return "Available time - may not be optimal for all participants"
	}
}
