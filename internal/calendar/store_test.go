package calendar

import (
	"fmt"
	"testing"
	"time"
)

func storeMeeting(title string, participants []string, start time.Time, length time.Duration) Meeting {
	return Meeting{
		Title:        title,
		Participants: participants,
		Start:        start,
		End:          start.Add(length),
		Timezone:     "UTC",
	}
}

func TestStore_AddMeeting_AssignsSequentialIDs(t *testing.T) {
	t.Parallel()

	store := NewStore()
	start := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

	for i := 1; i <= 3; i++ {
		stored := store.AddMeeting(storeMeeting("Sync", []string{"user_1"}, start, 30*time.Minute))
		want := fmt.Sprintf("meeting_%d", i)
		if stored.ID != want {
			t.Fatalf("expected id %q, got %q", want, stored.ID)
		}
	}
	if store.MeetingCount() != 3 {
		t.Fatalf("expected 3 meetings, got %d", store.MeetingCount())
	}
}

func TestStore_AddMeeting_ReturnsIsolatedCopy(t *testing.T) {
	t.Parallel()

	store := NewStore()
	start := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	participants := []string{"user_1", "user_2"}

	stored := store.AddMeeting(storeMeeting("Sync", participants, start, 30*time.Minute))

	stored.Participants[0] = "mutated"
	participants[1] = "mutated"

	reread, ok := store.Meeting(stored.ID)
	if !ok {
		t.Fatalf("expected meeting %q to exist", stored.ID)
	}
	if reread.Participants[0] != "user_1" || reread.Participants[1] != "user_2" {
		t.Fatalf("stored participants were mutated through a shared slice: %v", reread.Participants)
	}
}

func TestStore_AddUser_ReplaceKeepsListingOrder(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.AddUser(User{ID: "user_1", Name: "Alice"})
	store.AddUser(User{ID: "user_2", Name: "Bob"})
	store.AddUser(User{ID: "user_1", Name: "Alice Johnson"})

	users := store.Users()
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].ID != "user_1" || users[0].Name != "Alice Johnson" {
		t.Fatalf("expected updated user_1 first, got %+v", users[0])
	}
	if users[1].ID != "user_2" {
		t.Fatalf("expected user_2 second, got %+v", users[1])
	}
}

func TestStore_User_CloneDoesNotShareWorkHours(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.AddUser(User{
		ID:        "user_1",
		WorkHours: map[string]WorkWindow{"monday": {Start: "09:00", End: "17:00"}},
	})

	first, _ := store.User("user_1")
	first.WorkHours["monday"] = WorkWindow{Start: "00:00", End: "00:01"}

	second, _ := store.User("user_1")
	if second.WorkHours["monday"].Start != "09:00" {
		t.Fatalf("work hours were mutated through a shared map: %+v", second.WorkHours)
	}
}

func TestStore_MeetingsForParticipant_FiltersByAttendance(t *testing.T) {
	t.Parallel()

	store := NewStore()
	start := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	store.AddMeeting(storeMeeting("A", []string{"user_1"}, start, 30*time.Minute))
	store.AddMeeting(storeMeeting("B", []string{"user_2"}, start.Add(time.Hour), 30*time.Minute))
	store.AddMeeting(storeMeeting("C", []string{"user_1", "user_2"}, start.Add(2*time.Hour), 30*time.Minute))

	meetings := store.MeetingsForParticipant("user_1")
	if len(meetings) != 2 {
		t.Fatalf("expected 2 meetings for user_1, got %d", len(meetings))
	}
	if meetings[0].Title != "A" || meetings[1].Title != "C" {
		t.Fatalf("expected creation order A then C, got %q then %q", meetings[0].Title, meetings[1].Title)
	}

	if got := store.MeetingsForParticipant("user_9"); len(got) != 0 {
		t.Fatalf("expected no meetings for unknown user, got %d", len(got))
	}
}

func TestStore_MeetingsForParticipantBetween_InclusiveOnStart(t *testing.T) {
	t.Parallel()

	store := NewStore()
	rangeStart := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)

	store.AddMeeting(storeMeeting("before", []string{"user_1"}, rangeStart.Add(-time.Minute), 30*time.Minute))
	store.AddMeeting(storeMeeting("at start", []string{"user_1"}, rangeStart, 30*time.Minute))
	store.AddMeeting(storeMeeting("inside", []string{"user_1"}, rangeStart.Add(24*time.Hour), 30*time.Minute))
	store.AddMeeting(storeMeeting("at end", []string{"user_1"}, rangeEnd, 30*time.Minute))
	store.AddMeeting(storeMeeting("after", []string{"user_1"}, rangeEnd.Add(time.Minute), 30*time.Minute))

	meetings := store.MeetingsForParticipantBetween("user_1", rangeStart, rangeEnd)
	if len(meetings) != 3 {
		t.Fatalf("expected 3 meetings in range, got %d", len(meetings))
	}
	for i, want := range []string{"at start", "inside", "at end"} {
		if meetings[i].Title != want {
			t.Fatalf("expected meeting %d to be %q, got %q", i, want, meetings[i].Title)
		}
	}
}

func TestStore_Meeting_UnknownID(t *testing.T) {
	t.Parallel()

	store := NewStore()
	if _, ok := store.Meeting("meeting_1"); ok {
		t.Fatal("expected lookup of unknown meeting to fail")
	}
}
