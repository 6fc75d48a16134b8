package application

import (
	"time"

	"github.com/example/meeting-assistant/internal/analysis"
	"github.com/example/meeting-assistant/internal/calendar"
	"github.com/example/meeting-assistant/internal/scheduler"
)

// CreateMeetingParams wraps the data required to schedule a new meeting.
type CreateMeetingParams struct {
	Title           string
	ParticipantIDs  []string
	DurationMinutes int
	Start           time.Time
	// Preferences carries caller-supplied scheduling hints. They are
	// accepted for interface compatibility but not interpreted yet.
	Preferences map[string]string
}

// CreateMeetingResult reports the outcome of a creation attempt. A conflict
// is a normal structured outcome, not an error: Success is false and
// Conflicts lists every collision, with no state change.
type CreateMeetingResult struct {
	Success         bool
	MeetingID       string
	Meeting         *calendar.Meeting
	SuggestedAgenda []string
	Conflicts       []scheduler.SlotConflict
	Message         string
}

// FindSlotsParams wraps the data required to search for meeting slots.
type FindSlotsParams struct {
	ParticipantIDs  []string
	DurationMinutes int
	RangeStart      time.Time
	RangeEnd        time.Time
}

// ConflictScanParams wraps the data required to scan a user's schedule.
type ConflictScanParams struct {
	UserID     string
	RangeStart time.Time
	RangeEnd   time.Time
}

// PatternParams wraps the data required to analyse meeting patterns.
type PatternParams struct {
	UserID string
	Period analysis.Period
}

// WorkloadParams wraps the data required to balance a team's workload.
type WorkloadParams struct {
	MemberIDs []string
}

// AgendaParams wraps the data required to generate agenda suggestions.
type AgendaParams struct {
	Topic          string
	ParticipantIDs []string
}
