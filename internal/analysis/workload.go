package analysis

import (
	"fmt"
	"strings"
	"time"

	"github.com/example/meeting-assistant/internal/calendar"
)

// WorkloadWindowDays is the trailing window examined by the balancer.
const WorkloadWindowDays = 14

// Workload tier boundaries. Daily averages divide by the full window length,
// so the tiers grade utilisation, not per-active-day burden.
const (
	HighDailyHours      = 4.0
	HighDailyMeetings   = 6.0
	MediumDailyHours    = 2.0
	MediumDailyMeetings = 4.0
)

// Variance bands mapping workload variance to the 0-10 balance score.
const (
	VarianceBandTight    = 1.0
	VarianceBandModerate = 4.0
	VarianceBandWide     = 9.0
)

// ImbalanceHoursGap is the max-minus-min spread of total hours beyond which
// the significant-imbalance recommendation fires.
const ImbalanceHoursGap = 10.0

// WorkloadLevel classifies a member's average daily meeting burden.
type WorkloadLevel string

const (
	WorkloadHigh   WorkloadLevel = "High"
	WorkloadMedium WorkloadLevel = "Medium"
	WorkloadLow    WorkloadLevel = "Low"
)

// MemberWorkload summarises one member's meeting load over the window.
type MemberWorkload struct {
	UserID            string
	UserName          string
	TotalMeetingHours float64
	TotalMeetings     int
	DailyAvgHours     float64
	DailyAvgMeetings  float64
	Level             WorkloadLevel
}

// WorkloadReport aggregates the team view.
type WorkloadReport struct {
	Members          []MemberWorkload
	TeamAverageHours float64
	WorkloadVariance float64
	BalanceScore     float64
	Recommendations  []string
}

// MemberWorkloadFor computes one member's workload from their meetings in the
// trailing window.
func MemberWorkloadFor(user calendar.User, meetings []calendar.Meeting) MemberWorkload {
	totalHours := 0.0
	for _, meeting := range meetings {
		totalHours += meeting.Duration().Hours()
	}
	dailyHours := totalHours / WorkloadWindowDays
	dailyMeetings := float64(len(meetings)) / WorkloadWindowDays

	return MemberWorkload{
		UserID:            user.ID,
		UserName:          user.Name,
		TotalMeetingHours: round2(totalHours),
		TotalMeetings:     len(meetings),
		DailyAvgHours:     round2(dailyHours),
		DailyAvgMeetings:  round2(dailyMeetings),
		Level:             CategorizeWorkload(dailyHours, dailyMeetings),
	}
}

// CategorizeWorkload grades average daily burden into the three tiers.
func CategorizeWorkload(dailyHours, dailyMeetings float64) WorkloadLevel {
	switch {
	case dailyHours > HighDailyHours || dailyMeetings > HighDailyMeetings:
		return WorkloadHigh
	case dailyHours > MediumDailyHours || dailyMeetings > MediumDailyMeetings:
		return WorkloadMedium
	default:
		return WorkloadLow
	}
}

// BuildWorkloadReport assembles the team report from per-member workloads.
// Callers must pass at least one member.
func BuildWorkloadReport(members []MemberWorkload) WorkloadReport {
	hours := make([]float64, len(members))
	for i, member := range members {
		hours[i] = member.TotalMeetingHours
	}
	variance := populationVariance(hours)

	return WorkloadReport{
		Members:          members,
		TeamAverageHours: round2(mean(hours)),
		WorkloadVariance: round2(variance),
		BalanceScore:     BalanceScore(variance),
		Recommendations:  WorkloadRecommendations(members),
	}
}

// BalanceScore maps workload variance to the 0-10 team balance metric.
// Lower variance means better balance.
func BalanceScore(variance float64) float64 {
	switch {
	case variance == 0:
		return 10.0
	case variance < VarianceBandTight:
		return 8.0
	case variance < VarianceBandModerate:
		return 6.0
	case variance < VarianceBandWide:
		return 4.0
	default:
		return 2.0
	}
}

// WorkloadRecommendations derives redistribution advice from tier membership
// and the total-hours spread.
func WorkloadRecommendations(members []MemberWorkload) []string {
	var high, low []string
	for _, member := range members {
		switch member.Level {
		case WorkloadHigh:
			high = append(high, member.UserName)
		case WorkloadLow:
			low = append(low, member.UserID)
		}
	}

	var recommendations []string
	if len(high) > 0 {
		recommendations = append(recommendations, fmt.Sprintf("Consider redistributing meetings from high-workload members: %s", strings.Join(high, ", ")))
	}
	if len(high) > 0 && len(low) > 0 {
		recommendations = append(recommendations, "Balance workload by involving low-workload members in more meetings")
	}

	if len(members) > 0 {
		min, max := members[0].TotalMeetingHours, members[0].TotalMeetingHours
		for _, member := range members[1:] {
			if member.TotalMeetingHours < min {
				min = member.TotalMeetingHours
			}
			if member.TotalMeetingHours > max {
				max = member.TotalMeetingHours
			}
		}
		if max-min > ImbalanceHoursGap {
			recommendations = append(recommendations, "Significant workload imbalance detected - consider restructuring meeting assignments")
		}
	}

	return recommendations
}

// WorkloadWindow returns the trailing window bounds ending at now.
func WorkloadWindow(now time.Time) (time.Time, time.Time) {
	return now.Add(-WorkloadWindowDays * 24 * time.Hour), now
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// populationVariance treats the members as the whole population; a single
// sample yields zero rather than an undefined sample variance.
func populationVariance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	avg := mean(values)
	sum := 0.0
	for _, v := range values {
		delta := v - avg
		sum += delta * delta
	}
	return sum / float64(len(values))
}
