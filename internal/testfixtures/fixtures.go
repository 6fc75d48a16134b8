// Package testfixtures provides deterministic builders for calendar users
// and meetings used across the service tests.
package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/example/meeting-assistant/internal/calendar"
)

var (
	userCounter    uint64
	meetingCounter uint64
)

// referenceTime is a Tuesday so fixtures land on a mid-week working day by
// default.
var referenceTime = time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}

// UserOption configures the generated user fixture.
type UserOption func(*calendar.User)

// NewUserFixture returns a deterministic user with weekday working hours and
// optional overrides.
func NewUserFixture(opts ...UserOption) calendar.User {
	idx := atomic.AddUint64(&userCounter, 1)
	id := fmt.Sprintf("user-%03d", idx)

	hours := make(map[string]calendar.WorkWindow, 5)
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday"} {
		hours[day] = calendar.WorkWindow{Start: "09:00", End: "17:00"}
	}

	user := calendar.User{
		ID:        id,
		Name:      fmt.Sprintf("User %03d", idx),
		Email:     fmt.Sprintf("%s@example.com", id),
		Timezone:  "UTC",
		WorkHours: hours,
	}
	for _, opt := range opts {
		opt(&user)
	}
	return user
}

// WithUserID overrides the generated user id.
func WithUserID(id string) UserOption {
	return func(u *calendar.User) {
		u.ID = id
	}
}

// WithWorkHours replaces the user's working hours.
func WithWorkHours(hours map[string]calendar.WorkWindow) UserOption {
	return func(u *calendar.User) {
		u.WorkHours = hours
	}
}

// WithPreferences replaces the user's preferences.
func WithPreferences(prefs calendar.Preferences) UserOption {
	return func(u *calendar.User) {
		u.Preferences = prefs
	}
}

// MeetingOption configures the generated meeting fixture.
type MeetingOption func(*calendar.Meeting)

// NewMeetingFixture returns a deterministic 30-minute meeting starting at
// the reference time, with optional overrides. The id is left for the store
// to assign unless overridden.
func NewMeetingFixture(opts ...MeetingOption) calendar.Meeting {
	idx := atomic.AddUint64(&meetingCounter, 1)
	start := referenceTime.Add(time.Duration(idx) * time.Hour)

	meeting := calendar.Meeting{
		Title:        fmt.Sprintf("Meeting %03d", idx),
		Participants: []string{"user-001"},
		Start:        start,
		End:          start.Add(30 * time.Minute),
		Timezone:     "UTC",
		Organizer:    "user-001",
		Type:         calendar.MeetingTypeGeneral,
		CreatedAt:    start.Add(-24 * time.Hour),
	}
	for _, opt := range opts {
		opt(&meeting)
	}
	return meeting
}

// WithMeetingID overrides the meeting id.
func WithMeetingID(id string) MeetingOption {
	return func(m *calendar.Meeting) {
		m.ID = id
	}
}

// WithTitle overrides the meeting title.
func WithTitle(title string) MeetingOption {
	return func(m *calendar.Meeting) {
		m.Title = title
	}
}

// WithParticipants replaces the participant list and organiser.
func WithParticipants(ids ...string) MeetingOption {
	return func(m *calendar.Meeting) {
		m.Participants = ids
		if len(ids) > 0 {
			m.Organizer = ids[0]
		}
	}
}

// WithInterval sets the meeting's start and end.
func WithInterval(start, end time.Time) MeetingOption {
	return func(m *calendar.Meeting) {
		m.Start = start
		m.End = end
	}
}

// WithMeetingType overrides the meeting type.
func WithMeetingType(meetingType calendar.MeetingType) MeetingOption {
	return func(m *calendar.Meeting) {
		m.Type = meetingType
	}
}

// WithAgenda replaces the agenda items.
func WithAgenda(items ...string) MeetingOption {
	return func(m *calendar.Meeting) {
		m.Agenda = items
	}
}

// WithRecurring marks the meeting as recurring.
func WithRecurring(recurring bool) MeetingOption {
	return func(m *calendar.Meeting) {
		m.Recurring = recurring
	}
}

// WithEffectiveness sets the recorded effectiveness score.
func WithEffectiveness(score float64) MeetingOption {
	return func(m *calendar.Meeting) {
		m.Effectiveness = &score
	}
}
