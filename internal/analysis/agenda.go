package analysis

import (
	"strings"

	"github.com/example/meeting-assistant/internal/calendar"
)

// LargeGroupSize is the participant count above which agendas gain
// introduction and coordination items.
const LargeGroupSize = 5

// ClosingAgendaItem always terminates a generated agenda.
const ClosingAgendaItem = "Action items and next steps"

var agendaTemplates = map[calendar.MeetingType][]string{
	calendar.MeetingTypeStandup: {
		"What did you accomplish yesterday?",
		"What are you working on today?",
		"Any blockers or challenges?",
		"Team updates and announcements",
	},
	calendar.MeetingTypeReview: {
		"Review previous action items",
		"Discuss project progress",
		"Identify risks and issues",
		"Plan next steps",
		"Assign action items",
	},
	calendar.MeetingTypePlanning: {
		"Define project scope and objectives",
		"Identify key deliverables",
		"Estimate timelines and resources",
		"Assign responsibilities",
		"Set milestones and checkpoints",
	},
	calendar.MeetingTypeBrainstorm: {
		"Problem statement review",
		"Idea generation session",
		"Evaluate and prioritize ideas",
		"Action plan development",
		"Next steps and ownership",
	},
	calendar.MeetingTypeOneOnOne: {
		"Performance and goal review",
		"Current project discussion",
		"Career development topics",
		"Feedback and concerns",
		"Action items and follow-ups",
	},
}

// AgendaTemplate returns a copy of the base agenda for the meeting type, or
// a generic single-item agenda when no template exists.
func AgendaTemplate(meetingType calendar.MeetingType) []string {
	template, ok := agendaTemplates[meetingType]
	if !ok {
		return []string{"Meeting discussion"}
	}
	return append([]string(nil), template...)
}

// ClassifyTopic maps a meeting topic and attendee count to the template
// meeting type: keyword matches win, two attendees imply a one-on-one, and
// everything else defaults to a review.
func ClassifyTopic(topic string, participantCount int) calendar.MeetingType {
	lowered := strings.ToLower(topic)
	switch {
	case containsAny(lowered, "standup", "daily", "sync"):
		return calendar.MeetingTypeStandup
	case containsAny(lowered, "review", "retrospective"):
		return calendar.MeetingTypeReview
	case containsAny(lowered, "planning", "plan"):
		return calendar.MeetingTypePlanning
	case containsAny(lowered, "brainstorm", "ideation", "creative"):
		return calendar.MeetingTypeBrainstorm
	case participantCount == 2:
		return calendar.MeetingTypeOneOnOne
	default:
		return calendar.MeetingTypeReview
	}
}

// SuggestAgenda builds an agenda for the topic: the classified template,
// large-group framing when attendance warrants it, topic-triggered items and
// a guaranteed closing action-items entry. Each call returns a fresh slice.
func SuggestAgenda(topic string, participants []string) []string {
	agenda := AgendaTemplate(ClassifyTopic(topic, len(participants)))

	if len(participants) > LargeGroupSize {
		agenda = append([]string{"Introductions and attendance"}, agenda...)
		agenda = append(agenda, "Large group coordination")
	}

	lowered := strings.ToLower(topic)
	if strings.Contains(lowered, "project") {
		agenda = append(agenda, "Project timeline review")
	}
	if strings.Contains(lowered, "budget") {
		agenda = append(agenda, "Budget discussion")
	}
	if strings.Contains(lowered, "launch") {
		agenda = append(agenda, "Launch preparation checklist")
	}

	for _, item := range agenda {
		if item == ClosingAgendaItem {
			return agenda
		}
	}
	return append(agenda, ClosingAgendaItem)
}

func containsAny(value string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(value, keyword) {
			return true
		}
	}
	return false
}
