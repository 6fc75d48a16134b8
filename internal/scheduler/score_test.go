package scheduler

import (
	"math"
	"testing"
	"time"

	"github.com/example/meeting-assistant/internal/calendar"
)

type userSourceStub struct {
	users map[string]calendar.User
}

func (s *userSourceStub) User(id string) (calendar.User, bool) {
	user, ok := s.users[id]
	return user, ok
}

func weekdayHours(start, end string) map[string]calendar.WorkWindow {
	hours := make(map[string]calendar.WorkWindow, 5)
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday"} {
		hours[day] = calendar.WorkWindow{Start: start, End: end}
	}
	return hours
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreSlot_WorkHoursAndMidWeekBonuses(t *testing.T) {
	t.Parallel()

	directory := &userSourceStub{users: map[string]calendar.User{
		"user_1": {ID: "user_1", WorkHours: weekdayHours("09:00", "17:00")},
	}}

	// Tuesday 10:00: inside work hours, mid-week, prime hour.
	start := time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC)
	score := ScoreSlot(directory, []string{"user_1"}, start)
	if !almostEqual(score, 3.0) {
		t.Fatalf("ScoreSlot() = %v, want 3.0", score)
	}
}

func TestScoreSlot_PreferredTimeWithinOneHour(t *testing.T) {
	t.Parallel()

	directory := &userSourceStub{users: map[string]calendar.User{
		"user_1": {
			ID:          "user_1",
			WorkHours:   weekdayHours("09:00", "17:00"),
			Preferences: calendar.Preferences{PreferredTimes: "10:00"},
		},
	}}

	// Tuesday 11:00: work hours +2, preferred +1, mid-week +0.5, prime +0.5.
	start := time.Date(2024, time.January, 2, 11, 0, 0, 0, time.UTC)
	if score := ScoreSlot(directory, []string{"user_1"}, start); !almostEqual(score, 4.0) {
		t.Fatalf("ScoreSlot() = %v, want 4.0", score)
	}

	// Tuesday 13:00 is more than one hour from the preference and not a
	// prime hour: work hours +2, mid-week +0.5.
	start = time.Date(2024, time.January, 2, 13, 0, 0, 0, time.UTC)
	if score := ScoreSlot(directory, []string{"user_1"}, start); !almostEqual(score, 2.5) {
		t.Fatalf("ScoreSlot() = %v, want 2.5", score)
	}
}

func TestScoreSlot_NoMeetingWindowPenalty(t *testing.T) {
	t.Parallel()

	directory := &userSourceStub{users: map[string]calendar.User{
		"user_1": {
			ID:          "user_1",
			WorkHours:   weekdayHours("09:00", "17:00"),
			Preferences: calendar.Preferences{NoMeetingTimes: []string{"12:00-13:00"}},
		},
	}}

	// Tuesday 12:30: work hours +2, no-meeting -2, mid-week +0.5.
	start := time.Date(2024, time.January, 2, 12, 30, 0, 0, time.UTC)
	if score := ScoreSlot(directory, []string{"user_1"}, start); !almostEqual(score, 0.5) {
		t.Fatalf("ScoreSlot() = %v, want 0.5", score)
	}
}

func TestScoreSlot_UnknownParticipantsDiluteTheAverage(t *testing.T) {
	t.Parallel()

	directory := &userSourceStub{users: map[string]calendar.User{
		"user_1": {ID: "user_1", WorkHours: weekdayHours("09:00", "17:00")},
	}}

	start := time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC)
	solo := ScoreSlot(directory, []string{"user_1"}, start)
	diluted := ScoreSlot(directory, []string{"user_1", "ghost"}, start)
	if !almostEqual(diluted, solo/2) {
		t.Fatalf("expected unknown id to halve the score: solo=%v diluted=%v", solo, diluted)
	}
}

func TestScoreSlot_NeverNegative(t *testing.T) {
	t.Parallel()

	directory := &userSourceStub{users: map[string]calendar.User{
		"user_1": {ID: "user_1", WorkHours: weekdayHours("09:00", "17:00")},
	}}

	// Monday 18:00: outside work hours, no bonuses apply.
	start := time.Date(2024, time.January, 1, 18, 0, 0, 0, time.UTC)
	if score := ScoreSlot(directory, []string{"user_1"}, start); score != 0 {
		t.Fatalf("ScoreSlot() = %v, want 0", score)
	}
}

func TestScoreSlot_EmptyParticipants(t *testing.T) {
	t.Parallel()

	directory := &userSourceStub{}
	start := time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC)
	if score := ScoreSlot(directory, nil, start); score != 0 {
		t.Fatalf("ScoreSlot() = %v, want 0", score)
	}
}

func TestRecommendationReason_Tiers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		score float64
		want  string
	}{
		{score: 2.5, want: "Excellent time - within all participants' work hours and preferred times"},
		{score: 2.0, want: "Excellent time - within all participants' work hours and preferred times"},
		{score: 1.5, want: "Good time - works well for most participants"},
		{score: 1.0, want: "Acceptable time - some minor conflicts with preferences"},
		{score: 0.5, want: "Available time - may not be optimal for all participants"},
	}
	for _, tc := range cases {
		if got := RecommendationReason(tc.score); got != tc.want {
			t.Fatalf("RecommendationReason(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}
