package analysis

import (
	"testing"

	"github.com/example/meeting-assistant/internal/calendar"
)

func TestClassifyTopic_KeywordsWinOverAttendance(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		topic        string
		participants int
		want         calendar.MeetingType
	}{
		{name: "standup keyword", topic: "Daily Sync", participants: 6, want: calendar.MeetingTypeStandup},
		{name: "review keyword", topic: "Sprint Retrospective", participants: 4, want: calendar.MeetingTypeReview},
		{name: "planning keyword", topic: "Q2 Planning Session", participants: 5, want: calendar.MeetingTypePlanning},
		{name: "brainstorm keyword", topic: "Creative ideation workshop", participants: 7, want: calendar.MeetingTypeBrainstorm},
		{name: "two attendees imply one-on-one", topic: "Career chat", participants: 2, want: calendar.MeetingTypeOneOnOne},
		{name: "keyword beats pair size", topic: "Plan review", participants: 2, want: calendar.MeetingTypeReview},
		{name: "default", topic: "Weekly catchup", participants: 4, want: calendar.MeetingTypeReview},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ClassifyTopic(tc.topic, tc.participants); got != tc.want {
				t.Fatalf("ClassifyTopic(%q, %d) = %q, want %q", tc.topic, tc.participants, got, tc.want)
			}
		})
	}
}

func TestAgendaTemplate_ReturnsFreshCopies(t *testing.T) {
	t.Parallel()

	first := AgendaTemplate(calendar.MeetingTypeStandup)
	first[0] = "mutated"

	second := AgendaTemplate(calendar.MeetingTypeStandup)
	if second[0] != "What did you accomplish yesterday?" {
		t.Fatalf("template was mutated through a shared slice: %v", second)
	}
}

func TestAgendaTemplate_UnknownTypeFallsBack(t *testing.T) {
	t.Parallel()

	agenda := AgendaTemplate(calendar.MeetingTypeGeneral)
	if len(agenda) != 1 || agenda[0] != "Meeting discussion" {
		t.Fatalf("unexpected fallback agenda: %v", agenda)
	}
}

func TestSuggestAgenda_AlwaysEndsWithActionItems(t *testing.T) {
	t.Parallel()

	topics := []string{"Daily standup", "Sprint review", "Roadmap planning", "Random topic"}
	for _, topic := range topics {
		agenda := SuggestAgenda(topic, []string{"user_1", "user_2", "user_3"})
		found := false
		for _, item := range agenda {
			if item == ClosingAgendaItem {
				found = true
			}
		}
		if !found {
			t.Fatalf("agenda for %q lacks the closing item: %v", topic, agenda)
		}
	}
}

func TestSuggestAgenda_LargeGroupFraming(t *testing.T) {
	t.Parallel()

	participants := []string{"a", "b", "c", "d", "e", "f"}
	agenda := SuggestAgenda("Quarterly planning", participants)

	if agenda[0] != "Introductions and attendance" {
		t.Fatalf("expected large-group opener, got %v", agenda)
	}
	if !containsString(agenda, "Large group coordination") {
		t.Fatalf("expected coordination item, got %v", agenda)
	}
}

func TestSuggestAgenda_TopicTriggeredItems(t *testing.T) {
	t.Parallel()

	agenda := SuggestAgenda("Project budget and launch review", []string{"user_1", "user_2", "user_3"})
	for _, want := range []string{"Project timeline review", "Budget discussion", "Launch preparation checklist"} {
		if !containsString(agenda, want) {
			t.Fatalf("missing topic item %q in %v", want, agenda)
		}
	}
}

func TestSuggestAgenda_ReturnsIndependentSlices(t *testing.T) {
	t.Parallel()

	first := SuggestAgenda("Daily standup", []string{"user_1", "user_2", "user_3"})
	first[0] = "mutated"

	second := SuggestAgenda("Daily standup", []string{"user_1", "user_2", "user_3"})
	if second[0] == "mutated" {
		t.Fatalf("agendas share backing storage: %v", second)
	}
}
