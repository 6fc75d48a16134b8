package analysis

import (
	"sort"
	"time"

	"github.com/example/meeting-assistant/internal/calendar"
)

// Optimizer thresholds.
const (
	// FocusBlockMinGap is the gap between consecutive meetings that counts
	// as a focus block.
	FocusBlockMinGap = 2 * time.Hour
	// MinFocusBlocks is the number of focus blocks expected across the
	// window before the focus-time recommendation fires.
	MinFocusBlocks = 3
	// ScatteredDaySpan marks a day as scattered when its meetings span
	// more than this from first start to last end.
	ScatteredDaySpan = 6 * time.Hour
	// ScatteredDayMeetings is the minimum meetings for a day to qualify.
	ScatteredDayMeetings = 2
	// ScatteredDaysRatio is the share of active days that must be
	// scattered before the clustering recommendation fires.
	ScatteredDaysRatio = 0.3
	// MaxRecurringMeetings is the recurring-meeting count beyond which the
	// recurrence review fires.
	MaxRecurringMeetings = 5
)

// Recommendation priorities and their score penalties. The aggregate score
// starts at 100 and each recommendation subtracts its priority's penalty.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"

	HighPriorityPenalty   = 25
	MediumPriorityPenalty = 15
	LowPriorityPenalty    = 10
	BaseOptimizationScore = 100
)

// OptimizationRecommendation is one prioritised schedule improvement.
type OptimizationRecommendation struct {
	Type           string
	Priority       string
	Recommendation string
	Impact         string
}

// FocusBlock is an uninterrupted gap between two meetings on one day.
type FocusBlock struct {
	Date          string
	Start         time.Time
	End           time.Time
	DurationHours float64
}

// ScheduleStats summarises the analysed window.
type ScheduleStats struct {
	MeetingsPerWeek int
	HoursPerWeek    float64
	FocusBlocks     int
}

// OptimizationReport is the optimizer's full result for one user.
type OptimizationReport struct {
	UserID          string
	UserName        string
	Score           int
	Recommendations []OptimizationRecommendation
	Stats           ScheduleStats
}

// OptimizeSchedule runs the four schedule checks over the user's recent
// meetings and aggregates them into a prioritised recommendation list.
func OptimizeSchedule(user calendar.User, meetings []calendar.Meeting) OptimizationReport {
	var recommendations []OptimizationRecommendation

	blocks := FocusBlocks(meetings)
	if len(blocks) < MinFocusBlocks {
		recommendations = append(recommendations, OptimizationRecommendation{
			Type:           "focus_time",
			Priority:       PriorityHigh,
			Recommendation: "Schedule 2-3 blocks of uninterrupted focus time daily",
			Impact:         "Increases productivity by 25-40%",
		})
	}

	if scatteredSchedule(meetings) {
		recommendations = append(recommendations, OptimizationRecommendation{
			Type:           "clustering",
			Priority:       PriorityMedium,
			Recommendation: "Group meetings together to create longer focus periods",
			Impact:         "Reduces context switching overhead",
		})
	}

	if len(SuboptimalMeetingTimes(user, meetings)) > 0 {
		recommendations = append(recommendations, OptimizationRecommendation{
			Type:           "timing",
			Priority:       PriorityMedium,
			Recommendation: "Move meetings to more optimal times based on your preferences",
			Impact:         "Improves meeting engagement and effectiveness",
		})
	}

	recurring := 0
	for _, meeting := range meetings {
		if meeting.Recurring {
			recurring++
		}
	}
	if recurring > MaxRecurringMeetings {
		recommendations = append(recommendations, OptimizationRecommendation{
			Type:           "recurring",
			Priority:       PriorityLow,
			Recommendation: "Review necessity of recurring meetings - cancel or reduce frequency",
			Impact:         "Frees up 2-5 hours per week",
		})
	}

	totalHours := 0.0
	for _, meeting := range meetings {
		totalHours += meeting.Duration().Hours()
	}

	return OptimizationReport{
		UserID:          user.ID,
		UserName:        user.Name,
		Score:           OptimizationScore(recommendations),
		Recommendations: recommendations,
		Stats: ScheduleStats{
			MeetingsPerWeek: len(meetings),
			HoursPerWeek:    totalHours,
			FocusBlocks:     len(blocks),
		},
	}
}

// FocusBlocks finds gaps of at least FocusBlockMinGap between consecutive
// meetings on the same day.
func FocusBlocks(meetings []calendar.Meeting) []FocusBlock {
	var blocks []FocusBlock
	for _, day := range meetingsByDay(meetings) {
		for i := 0; i+1 < len(day.meetings); i++ {
			gapStart := day.meetings[i].End
			gapEnd := day.meetings[i+1].Start
			gap := gapEnd.Sub(gapStart)
			if gap >= FocusBlockMinGap {
				blocks = append(blocks, FocusBlock{
					Date:          day.date,
					Start:         gapStart,
					End:           gapEnd,
					DurationHours: gap.Hours(),
				})
			}
		}
	}
	return blocks
}

// SuboptimalMeetingTimes lists the titles of meetings starting outside the
// user's working window for that weekday.
func SuboptimalMeetingTimes(user calendar.User, meetings []calendar.Meeting) []string {
	var titles []string
	for _, meeting := range meetings {
		window, ok := user.WorkWindowOn(meeting.Start)
		if !ok {
			continue
		}
		if !window.Contains(meeting.Start) {
			titles = append(titles, meeting.Title)
		}
	}
	return titles
}

// OptimizationScore aggregates recommendation priorities into the 0-100
// schedule health score.
func OptimizationScore(recommendations []OptimizationRecommendation) int {
	score := BaseOptimizationScore
	for _, rec := range recommendations {
		switch rec.Priority {
		case PriorityHigh:
			score -= HighPriorityPenalty
		case PriorityMedium:
			score -= MediumPriorityPenalty
		case PriorityLow:
			score -= LowPriorityPenalty
		}
	}
	if score < 0 {
		score = 0
	}
	return score
}

// scatteredSchedule reports whether scattered days exceed the configured
// share of active days. A day is scattered when it holds more than
// ScatteredDayMeetings meetings spanning more than ScatteredDaySpan.
func scatteredSchedule(meetings []calendar.Meeting) bool {
	days := meetingsByDay(meetings)
	if len(days) == 0 {
		return false
	}
	scattered := 0
	for _, day := range days {
		if len(day.meetings) <= ScatteredDayMeetings {
			continue
		}
		span := day.meetings[len(day.meetings)-1].End.Sub(day.meetings[0].Start)
		if span > ScatteredDaySpan {
			scattered++
		}
	}
	return float64(scattered) > float64(len(days))*ScatteredDaysRatio
}

type daySchedule struct {
	date     string
	meetings []calendar.Meeting
}

// meetingsByDay partitions meetings by UTC calendar day, each day's meetings
// sorted by start time, days in date order.
func meetingsByDay(meetings []calendar.Meeting) []daySchedule {
	grouped := make(map[string][]calendar.Meeting)
	for _, meeting := range meetings {
		day := meeting.Start.UTC().Format("2006-01-02")
		grouped[day] = append(grouped[day], meeting)
	}

	days := make([]daySchedule, 0, len(grouped))
	for date, dayMeetings := range grouped {
		sort.SliceStable(dayMeetings, func(i, j int) bool {
			return dayMeetings[i].Start.Before(dayMeetings[j].Start)
		})
		days = append(days, daySchedule{date: date, meetings: dayMeetings})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].date < days[j].date })
	return days
}
