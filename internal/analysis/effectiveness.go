package analysis

import (
	"time"

	"github.com/example/meeting-assistant/internal/calendar"
)

// Effectiveness scoring bands. The stored (or default) base score is
// multiplied by the three factors and clamped to the valid score range.
const (
	DefaultBaseScore = 3.0
	MinScore         = 1.0
	MaxScore         = 5.0

	// Duration factor: 30-45 minutes is the sweet spot, 15-60 is still
	// fine, beyond 90 minutes effectiveness collapses.
	IdealDurationMin     = 30 * time.Minute
	IdealDurationMax     = 45 * time.Minute
	TolerableDurationMin = 15 * time.Minute
	TolerableDurationMax = 60 * time.Minute
	ExcessiveDuration    = 90 * time.Minute

	IdealDurationFactor     = 1.0
	TolerableDurationFactor = 0.8
	ExcessiveDurationFactor = 0.3
	OtherDurationFactor     = 0.6

	// Participant factor: 3-6 attendees is optimal, up to 8 acceptable.
	IdealParticipantsMin     = 3
	IdealParticipantsMax     = 6
	TolerableParticipantsMax = 8

	IdealParticipantFactor     = 1.0
	TolerableParticipantFactor = 0.8
	CrowdedParticipantFactor   = 0.5

	// Agenda factor: more than two items counts as a prepared agenda.
	PreparedAgendaItems = 2
	PreparedAgendaFactor = 1.0
	ThinAgendaFactor     = 0.7

	// Suggestion triggers.
	LongDurationSuggestion = 60 * time.Minute
	StandupDurationLimit   = 30 * time.Minute
	FollowUpScoreThreshold = 3.0
)

// EffectivenessBreakdown exposes the individual scoring factors.
type EffectivenessBreakdown struct {
	BaseScore         float64
	DurationFactor    float64
	ParticipantFactor float64
	AgendaFactor      float64
}

// MeetingDetails carries the descriptive facts behind a score.
type MeetingDetails struct {
	DurationMinutes  int
	ParticipantCount int
	HasAgenda        bool
	MeetingType      string
}

// EffectivenessReport is the full scoring result for one meeting.
type EffectivenessReport struct {
	MeetingID      string
	MeetingTitle   string
	Score          float64
	Breakdown      EffectivenessBreakdown
	Suggestions    []string
	MeetingDetails MeetingDetails
}

// ScoreEffectiveness derives a fresh quality score for the meeting. The
// result is computed from the current record every call; nothing is written
// back to the meeting.
func ScoreEffectiveness(meeting calendar.Meeting) EffectivenessReport {
	base := DefaultBaseScore
	if meeting.Effectiveness != nil {
		base = *meeting.Effectiveness
	}

	duration := meeting.Duration()
	participants := len(meeting.Participants)

	durationFactor := OtherDurationFactor
	switch {
	case duration >= IdealDurationMin && duration <= IdealDurationMax:
		durationFactor = IdealDurationFactor
	case duration >= TolerableDurationMin && duration <= TolerableDurationMax:
		durationFactor = TolerableDurationFactor
	case duration > ExcessiveDuration:
		durationFactor = ExcessiveDurationFactor
	}

	participantFactor := CrowdedParticipantFactor
	switch {
	case participants >= IdealParticipantsMin && participants <= IdealParticipantsMax:
		participantFactor = IdealParticipantFactor
	case participants <= TolerableParticipantsMax:
		participantFactor = TolerableParticipantFactor
	}

	agendaFactor := ThinAgendaFactor
	if len(meeting.Agenda) > PreparedAgendaItems {
		agendaFactor = PreparedAgendaFactor
	}

	score := base * durationFactor * participantFactor * agendaFactor
	if score > MaxScore {
		score = MaxScore
	}
	if score < MinScore {
		score = MinScore
	}

	var suggestions []string
	if duration > LongDurationSuggestion {
		suggestions = append(suggestions, "Consider shortening meeting duration or breaking into multiple sessions")
	}
	if participants > TolerableParticipantsMax {
		suggestions = append(suggestions, "Reduce number of participants to key stakeholders only")
	}
	if len(meeting.Agenda) <= PreparedAgendaItems {
		suggestions = append(suggestions, "Prepare detailed agenda with clear objectives")
	}
	if score < FollowUpScoreThreshold {
		suggestions = append(suggestions, "Schedule follow-up to address unresolved topics")
	}
	if meeting.Type == calendar.MeetingTypeStandup && duration > StandupDurationLimit {
		suggestions = append(suggestions, "Keep standup meetings under 30 minutes")
	}

	return EffectivenessReport{
		MeetingID:    meeting.ID,
		MeetingTitle: meeting.Title,
		Score:        round2(score),
		Breakdown: EffectivenessBreakdown{
			BaseScore:         base,
			DurationFactor:    durationFactor,
			ParticipantFactor: participantFactor,
			AgendaFactor:      agendaFactor,
		},
		Suggestions: suggestions,
		MeetingDetails: MeetingDetails{
			DurationMinutes:  int(duration.Minutes()),
			ParticipantCount: participants,
			HasAgenda:        len(meeting.Agenda) > 0,
			MeetingType:      string(meeting.Type),
		},
	}
}
