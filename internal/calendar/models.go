package calendar

import (
	"strconv"
	"strings"
	"time"
)

// MeetingType classifies a meeting for analytics and agenda generation.
type MeetingType string

const (
	MeetingTypeStandup      MeetingType = "standup"
	MeetingTypeReview       MeetingType = "review"
	MeetingTypePlanning     MeetingType = "planning"
	MeetingTypeBrainstorm   MeetingType = "brainstorm"
	MeetingTypeOneOnOne     MeetingType = "one_on_one"
	MeetingTypePresentation MeetingType = "presentation"
	MeetingTypeTraining     MeetingType = "training"
	// MeetingTypeGeneral marks ad hoc meetings created outside the fixed set.
	MeetingTypeGeneral MeetingType = "general"
)

// MeetingTypes lists the fixed meeting classifications used by the sample
// population; ad hoc meetings use MeetingTypeGeneral instead.
func MeetingTypes() []MeetingType {
	return []MeetingType{
		MeetingTypeStandup,
		MeetingTypeReview,
		MeetingTypePlanning,
		MeetingTypeBrainstorm,
		MeetingTypeOneOnOne,
		MeetingTypePresentation,
		MeetingTypeTraining,
	}
}

// WorkWindow is a daily working window expressed as wall-clock bounds.
type WorkWindow struct {
	Start string // "HH:MM"
	End   string // "HH:MM"
}

// Contains reports whether the time-of-day of t falls inside the window,
// inclusive of both bounds. Malformed bounds never match.
func (w WorkWindow) Contains(t time.Time) bool {
	start, okStart := parseClock(w.Start)
	end, okEnd := parseClock(w.End)
	if !okStart || !okEnd {
		return false
	}
	minute := t.Hour()*60 + t.Minute()
	return start <= minute && minute <= end
}

// Preferences captures the recognised per-user scheduling preferences.
// Zero values mean the preference is unset.
type Preferences struct {
	MaxMeetingsPerDay      int
	PreferredMeetingLength int      // minutes
	PreferredTimes         string   // "HH:MM"
	NoMeetingTimes         []string // "HH:MM-HH:MM"
}

// PreferredHour returns the hour component of the preferred meeting time.
func (p Preferences) PreferredHour() (int, bool) {
	value := strings.TrimSpace(p.PreferredTimes)
	if value == "" {
		return 0, false
	}
	minute, ok := parseClock(value)
	if !ok {
		return 0, false
	}
	return minute / 60, true
}

// NoMeetingWindows parses the configured no-meeting ranges. Malformed
// entries are skipped.
func (p Preferences) NoMeetingWindows() []WorkWindow {
	if len(p.NoMeetingTimes) == 0 {
		return nil
	}
	windows := make([]WorkWindow, 0, len(p.NoMeetingTimes))
	for _, raw := range p.NoMeetingTimes {
		start, end, ok := strings.Cut(raw, "-")
		if !ok {
			continue
		}
		window := WorkWindow{Start: strings.TrimSpace(start), End: strings.TrimSpace(end)}
		if _, ok := parseClock(window.Start); !ok {
			continue
		}
		if _, ok := parseClock(window.End); !ok {
			continue
		}
		windows = append(windows, window)
	}
	return windows
}

// User represents an account in the assistant's directory. Users are created
// at load time and treated as immutable afterwards.
type User struct {
	ID       string
	Name     string
	Email    string
	Timezone string
	// WorkHours maps lowercase weekday names to the user's working window.
	WorkHours   map[string]WorkWindow
	Preferences Preferences
}

// WorkWindowOn returns the user's working window for the weekday of t.
func (u User) WorkWindowOn(t time.Time) (WorkWindow, bool) {
	window, ok := u.WorkHours[strings.ToLower(t.Weekday().String())]
	return window, ok
}

// Meeting represents a calendar entry. All times are normalised to UTC
// before entering the engine; interval arithmetic never consults the
// participants' timezones.
type Meeting struct {
	ID           string
	Title        string
	Participants []string
	Start        time.Time
	End          time.Time
	Timezone     string
	Organizer    string
	Agenda       []string
	Type         MeetingType
	Recurring    bool
	// Effectiveness is the recorded score in [1.0, 5.0]; nil until rated.
	Effectiveness *float64
	CreatedAt     time.Time
}

// Duration returns the scheduled length of the meeting.
func (m Meeting) Duration() time.Duration {
	return m.End.Sub(m.Start)
}

// HasParticipant reports whether the given user id attends the meeting.
func (m Meeting) HasParticipant(userID string) bool {
	for _, id := range m.Participants {
		if id == userID {
			return true
		}
	}
	return false
}

func parseClock(value string) (int, bool) {
	hour, rest, ok := strings.Cut(value, ":")
	if !ok {
		return 0, false
	}
	h, err := strconv.Atoi(hour)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(rest)
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
