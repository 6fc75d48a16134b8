// Package analysis computes descriptive statistics and heuristic
// recommendations over meeting histories. All functions are pure; callers
// fetch the relevant meetings from the calendar store and pass them in.
package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/example/meeting-assistant/internal/calendar"
)

// Period selects the trailing analysis window.
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
)

// Window returns the trailing duration covered by the period. Unrecognised
// periods fall back to the month window.
func (p Period) Window() time.Duration {
	switch p {
	case PeriodWeek:
		return 7 * 24 * time.Hour
	case PeriodQuarter:
		return 90 * 24 * time.Hour
	default:
		return 30 * 24 * time.Hour
	}
}

// Pattern recommendation thresholds.
const (
	// MaxAvgDailyMeetings is the per-active-day load above which the
	// excessive-load recommendation fires.
	MaxAvgDailyMeetings = 6.0
	// LowEffectivenessThreshold flags a mean effectiveness below average.
	LowEffectivenessThreshold = 3.0
	// LongMeetingDuration marks a meeting as long.
	LongMeetingDuration = 90 * time.Minute
	// LongMeetingRatio is the share of long meetings that triggers the
	// reduction recommendation.
	LongMeetingRatio = 0.3
	// BackToBackRatio is the share of gap-less adjacent pairs, relative to
	// the meeting count, that triggers the buffer-time recommendation.
	BackToBackRatio = 0.2
)

// PatternStats summarises a user's meeting behaviour over one period.
type PatternStats struct {
	Period                 Period
	TotalMeetings          int
	TotalHours             float64
	AverageDurationMinutes float64
	// EffectivenessScore is the mean over rated meetings only; zero when no
	// meeting in the window carries a score.
	EffectivenessScore float64
	MeetingTypes       map[string]int
	DailyDistribution  map[string]int
	// PeakMeetingHour is the hour-of-day with the most meeting starts.
	// Ties resolve to the lowest hour so repeated runs agree.
	PeakMeetingHour int
	Recommendations []string
}

// AnalyzePatterns computes period statistics for a non-empty meeting list.
func AnalyzePatterns(meetings []calendar.Meeting, period Period) PatternStats {
	totalHours := 0.0
	types := make(map[string]int)
	daily := make(map[string]int)
	var hourly [24]int

	for _, meeting := range meetings {
		totalHours += meeting.Duration().Hours()
		types[string(meeting.Type)]++
		daily[meeting.Start.Weekday().String()]++
		hourly[meeting.Start.Hour()]++
	}

	peakHour := 0
	for hour, count := range hourly {
		if count > hourly[peakHour] {
			peakHour = hour
		}
	}

	effectiveness := 0.0
	rated := 0
	for _, meeting := range meetings {
		if meeting.Effectiveness != nil {
			effectiveness += *meeting.Effectiveness
			rated++
		}
	}
	if rated > 0 {
		effectiveness /= float64(rated)
	}

	avgDurationMinutes := 0.0
	if len(meetings) > 0 {
		avgDurationMinutes = totalHours / float64(len(meetings)) * 60
	}

	return PatternStats{
		Period:                 period,
		TotalMeetings:          len(meetings),
		TotalHours:             round2(totalHours),
		AverageDurationMinutes: round2(avgDurationMinutes),
		EffectivenessScore:     round2(effectiveness),
		MeetingTypes:           types,
		DailyDistribution:      daily,
		PeakMeetingHour:        peakHour,
		Recommendations:        PatternRecommendations(meetings),
	}
}

// PatternRecommendations evaluates the four load heuristics in fixed order;
// any subset may fire.
func PatternRecommendations(meetings []calendar.Meeting) []string {
	if len(meetings) == 0 {
		return nil
	}

	var recommendations []string

	activeDays := make(map[string]int)
	for _, meeting := range meetings {
		activeDays[meeting.Start.UTC().Format("2006-01-02")]++
	}
	if float64(len(meetings))/float64(len(activeDays)) > MaxAvgDailyMeetings {
		recommendations = append(recommendations, "Consider reducing daily meeting load - current average is high")
	}

	effectiveness := 0.0
	rated := 0
	for _, meeting := range meetings {
		if meeting.Effectiveness != nil {
			effectiveness += *meeting.Effectiveness
			rated++
		}
	}
	if rated > 0 && effectiveness/float64(rated) < LowEffectivenessThreshold {
		recommendations = append(recommendations, "Focus on improving meeting effectiveness - current score is below average")
	}

	long := 0
	for _, meeting := range meetings {
		if meeting.Duration() > LongMeetingDuration {
			long++
		}
	}
	if float64(long) > float64(len(meetings))*LongMeetingRatio {
		recommendations = append(recommendations, "Consider breaking down long meetings into shorter, focused sessions")
	}

	sorted := make([]calendar.Meeting, len(meetings))
	copy(sorted, meetings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})
	gapless := 0
	for i := 0; i+1 < len(sorted); i++ {
		if !sorted[i].End.Before(sorted[i+1].Start) {
			gapless++
		}
	}
	if float64(gapless) > float64(len(meetings))*BackToBackRatio {
		recommendations = append(recommendations, "Schedule buffer time between meetings to avoid fatigue")
	}

	return recommendations
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
