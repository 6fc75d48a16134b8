// Package scheduler implements the pure slot-search, conflict-detection and
// scoring algorithms of the meeting assistant. Functions here operate on
// calendar values handed in by callers and never touch shared state.
package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/example/meeting-assistant/internal/calendar"
)

// ConflictType describes the kind of problem found in a user's schedule.
type ConflictType string

const (
	// ConflictTypeOverlap indicates two meetings whose intervals intersect.
	ConflictTypeOverlap ConflictType = "overlap"
	// ConflictTypeBackToBack indicates two meetings sharing a boundary
	// instant with no gap between them.
	ConflictTypeBackToBack ConflictType = "back_to_back"
	// ConflictTypeExcessiveMeetings indicates a day whose meeting count
	// exceeds the user's configured daily maximum.
	ConflictTypeExcessiveMeetings ConflictType = "excessive_meetings"
)

// Severity ranks how disruptive a conflict is.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
)

// DefaultMaxMeetingsPerDay applies when a user has not configured a daily
// meeting limit.
const DefaultMaxMeetingsPerDay = 8

// MeetingRef identifies one side of a pairwise conflict.
type MeetingRef struct {
	ID    string
	Title string
	Start time.Time
	End   time.Time
}

// Conflict is a single schedule problem. Pairwise conflicts populate First
// and Second; excessive-meetings conflicts populate the day fields instead.
type Conflict struct {
	Type           ConflictType
	Severity       Severity
	First          *MeetingRef
	Second         *MeetingRef
	Date           string
	MeetingCount   int
	MaxRecommended int
}

// MeetingSource supplies the full meeting history of a participant.
type MeetingSource interface {
	MeetingsForParticipant(userID string) []calendar.Meeting
}

// SlotConflict records a collision between a candidate slot and an existing
// meeting of one participant.
type SlotConflict struct {
	ParticipantID string
	MeetingID     string
	MeetingTitle  string
}

// Description renders the collision the way callers present it to users.
func (c SlotConflict) Description() string {
	return fmt.Sprintf("Conflict with %s for %s", c.MeetingTitle, c.ParticipantID)
}

// SlotConflicts reports every (participant, meeting) pair whose interval
// strictly overlaps the candidate slot. A slot that exactly touches an
// existing meeting's boundary does not conflict; that adjacency is surfaced
// separately by ScheduleConflicts as back_to_back.
func SlotConflicts(source MeetingSource, participants []string, start, end time.Time) []SlotConflict {
	var conflicts []SlotConflict
	for _, participantID := range participants {
		for _, meeting := range source.MeetingsForParticipant(participantID) {
			if start.Before(meeting.End) && end.After(meeting.Start) {
				conflicts = append(conflicts, SlotConflict{
					ParticipantID: participantID,
					MeetingID:     meeting.ID,
					MeetingTitle:  meeting.Title,
				})
			}
		}
	}
	return conflicts
}

// ScheduleConflicts scans one user's meetings for overlaps, back-to-back
// bookings and overloaded days. Pairwise conflicts come first in start-time
// order, followed by one excessive-meetings entry per overloaded day in date
// order. A non-positive maxPerDay skips the daily check entirely, which is
// how callers degrade when the user id is unknown.
func ScheduleConflicts(meetings []calendar.Meeting, maxPerDay int) []Conflict {
	sorted := make([]calendar.Meeting, len(meetings))
	copy(sorted, meetings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	var conflicts []Conflict
	for i := 0; i+1 < len(sorted); i++ {
		current, next := sorted[i], sorted[i+1]
		switch {
		case current.End.After(next.Start):
			conflicts = append(conflicts, Conflict{
				Type:     ConflictTypeOverlap,
				Severity: SeverityHigh,
				First:    meetingRef(current),
				Second:   meetingRef(next),
			})
		case current.End.Equal(next.Start):
			conflicts = append(conflicts, Conflict{
				Type:     ConflictTypeBackToBack,
				Severity: SeverityMedium,
				First:    meetingRef(current),
				Second:   meetingRef(next),
			})
		}
	}

	if maxPerDay <= 0 {
		return conflicts
	}

	counts := make(map[string]int)
	for _, meeting := range sorted {
		counts[meeting.Start.UTC().Format("2006-01-02")]++
	}
	days := make([]string, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		if counts[day] > maxPerDay {
			conflicts = append(conflicts, Conflict{
				Type:           ConflictTypeExcessiveMeetings,
				Severity:       SeverityMedium,
				Date:           day,
				MeetingCount:   counts[day],
				MaxRecommended: maxPerDay,
			})
		}
	}
	return conflicts
}

func meetingRef(meeting calendar.Meeting) *MeetingRef {
	return &MeetingRef{
		ID:    meeting.ID,
		Title: meeting.Title,
		Start: meeting.Start,
		End:   meeting.End,
	}
}
