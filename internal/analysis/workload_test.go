package analysis

import (
	"testing"
	"time"

	"github.com/example/meeting-assistant/internal/calendar"
)

func TestMemberWorkloadFor_DividesByFullWindow(t *testing.T) {
	t.Parallel()

	user := calendar.User{ID: "user_1", Name: "Alice Johnson"}
	day := time.Date(2024, time.January, 8, 9, 0, 0, 0, time.UTC)
	meetings := []calendar.Meeting{
		timedMeeting(day, 7*time.Hour),
		timedMeeting(day.AddDate(0, 0, 1), 7*time.Hour),
	}

	workload := MemberWorkloadFor(user, meetings)
	if workload.UserID != "user_1" || workload.UserName != "Alice Johnson" {
		t.Fatalf("unexpected identity: %+v", workload)
	}
	if workload.TotalMeetingHours != 14.0 || workload.TotalMeetings != 2 {
		t.Fatalf("unexpected totals: %+v", workload)
	}
	if workload.DailyAvgHours != 1.0 {
		t.Fatalf("DailyAvgHours = %v, want 1.0", workload.DailyAvgHours)
	}
	if workload.DailyAvgMeetings != 0.14 {
		t.Fatalf("DailyAvgMeetings = %v, want 0.14", workload.DailyAvgMeetings)
	}
	if workload.Level != WorkloadLow {
		t.Fatalf("Level = %q, want Low", workload.Level)
	}
}

func TestCategorizeWorkload_Tiers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		dailyHours    float64
		dailyMeetings float64
		want          WorkloadLevel
	}{
		{name: "heavy hours", dailyHours: 4.5, dailyMeetings: 1, want: WorkloadHigh},
		{name: "heavy count", dailyHours: 1, dailyMeetings: 6.5, want: WorkloadHigh},
		{name: "moderate hours", dailyHours: 2.5, dailyMeetings: 1, want: WorkloadMedium},
		{name: "moderate count", dailyHours: 1, dailyMeetings: 4.5, want: WorkloadMedium},
		{name: "light", dailyHours: 2.0, dailyMeetings: 4.0, want: WorkloadLow},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := CategorizeWorkload(tc.dailyHours, tc.dailyMeetings); got != tc.want {
				t.Fatalf("CategorizeWorkload(%v, %v) = %q, want %q", tc.dailyHours, tc.dailyMeetings, got, tc.want)
			}
		})
	}
}

func TestBalanceScore_VarianceBands(t *testing.T) {
	t.Parallel()

	cases := []struct {
		variance float64
		want     float64
	}{
		{variance: 0, want: 10.0},
		{variance: 0.5, want: 8.0},
		{variance: 2.0, want: 6.0},
		{variance: 5.0, want: 4.0},
		{variance: 12.0, want: 2.0},
	}
	for _, tc := range cases {
		if got := BalanceScore(tc.variance); got != tc.want {
			t.Fatalf("BalanceScore(%v) = %v, want %v", tc.variance, got, tc.want)
		}
	}
}

func TestBuildWorkloadReport_IdenticalHoursArePerfectlyBalanced(t *testing.T) {
	t.Parallel()

	members := []MemberWorkload{
		{UserID: "user_1", TotalMeetingHours: 5.0, Level: WorkloadLow},
		{UserID: "user_2", TotalMeetingHours: 5.0, Level: WorkloadLow},
		{UserID: "user_3", TotalMeetingHours: 5.0, Level: WorkloadLow},
	}

	report := BuildWorkloadReport(members)
	if report.WorkloadVariance != 0 {
		t.Fatalf("WorkloadVariance = %v, want 0", report.WorkloadVariance)
	}
	if report.BalanceScore != 10.0 {
		t.Fatalf("BalanceScore = %v, want 10.0", report.BalanceScore)
	}
	if report.TeamAverageHours != 5.0 {
		t.Fatalf("TeamAverageHours = %v, want 5.0", report.TeamAverageHours)
	}
	if len(report.Recommendations) != 0 {
		t.Fatalf("expected no recommendations, got %v", report.Recommendations)
	}
}

func TestBuildWorkloadReport_SingleMemberHasZeroVariance(t *testing.T) {
	t.Parallel()

	report := BuildWorkloadReport([]MemberWorkload{{UserID: "user_1", TotalMeetingHours: 8.0}})
	if report.WorkloadVariance != 0 || report.BalanceScore != 10.0 {
		t.Fatalf("expected zero variance for one member, got %+v", report)
	}
}

func TestBuildWorkloadReport_PopulationVariance(t *testing.T) {
	t.Parallel()

	members := []MemberWorkload{
		{UserID: "user_1", TotalMeetingHours: 2.0},
		{UserID: "user_2", TotalMeetingHours: 4.0},
	}

	// Population variance of {2, 4} is 1, not the sample variance 2.
	report := BuildWorkloadReport(members)
	if report.WorkloadVariance != 1.0 {
		t.Fatalf("WorkloadVariance = %v, want 1.0", report.WorkloadVariance)
	}
	if report.BalanceScore != 6.0 {
		t.Fatalf("BalanceScore = %v, want 6.0", report.BalanceScore)
	}
}

func TestWorkloadRecommendations_RedistributionAdvice(t *testing.T) {
	t.Parallel()

	members := []MemberWorkload{
		{UserID: "user_1", UserName: "Alice Johnson", TotalMeetingHours: 60, Level: WorkloadHigh},
		{UserID: "user_2", UserName: "Bob Smith", TotalMeetingHours: 58, Level: WorkloadHigh},
		{UserID: "user_3", UserName: "Carol Davis", TotalMeetingHours: 4, Level: WorkloadLow},
	}

	recommendations := WorkloadRecommendations(members)
	if !containsString(recommendations, "Consider redistributing meetings from high-workload members: Alice Johnson, Bob Smith") {
		t.Fatalf("expected redistribution recommendation, got %v", recommendations)
	}
	if !containsString(recommendations, "Balance workload by involving low-workload members in more meetings") {
		t.Fatalf("expected low-workload recommendation, got %v", recommendations)
	}
	if !containsString(recommendations, "Significant workload imbalance detected - consider restructuring meeting assignments") {
		t.Fatalf("expected imbalance recommendation, got %v", recommendations)
	}
}

func TestWorkloadRecommendations_BalancedTeamIsQuiet(t *testing.T) {
	t.Parallel()

	members := []MemberWorkload{
		{UserID: "user_1", TotalMeetingHours: 10, Level: WorkloadMedium},
		{UserID: "user_2", TotalMeetingHours: 12, Level: WorkloadMedium},
	}
	if recommendations := WorkloadRecommendations(members); len(recommendations) != 0 {
		t.Fatalf("expected no recommendations, got %v", recommendations)
	}
}

func TestWorkloadWindow_TrailingTwoWeeks(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	start, end := WorkloadWindow(now)
	if !end.Equal(now) {
		t.Fatalf("window end = %v, want %v", end, now)
	}
	if got := end.Sub(start); got != WorkloadWindowDays*24*time.Hour {
		t.Fatalf("window length = %v, want 14 days", got)
	}
}
