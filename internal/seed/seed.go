// Package seed loads the assistant's sample population: a small user
// directory with differing timezones and preferences, plus a month of
// pseudo-random meeting history. Population is deterministic for a given
// seed so repeated runs serve identical calendars.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/example/meeting-assistant/internal/analysis"
	"github.com/example/meeting-assistant/internal/calendar"
)

// DefaultMeetingCount is the number of sample meetings generated when the
// caller does not override it.
const DefaultMeetingCount = 70

// historyDays is the span of the generated meeting history, ending at now.
const historyDays = 30

// Options configures sample-data generation.
type Options struct {
	Seed         int64
	MeetingCount int
	// Now anchors the generated history; defaults to time.Now.
	Now func() time.Time
}

// Populate fills the store with the sample users and meeting history.
func Populate(store *calendar.Store, opts Options) {
	if opts.MeetingCount == 0 {
		opts.MeetingCount = DefaultMeetingCount
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	users := SampleUsers()
	for _, user := range users {
		store.AddUser(user)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	now := opts.Now().UTC()
	base := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -historyDays)

	userIDs := make([]string, len(users))
	for i, user := range users {
		userIDs[i] = user.ID
	}

	types := calendar.MeetingTypes()
	for i := 0; i < opts.MeetingCount; i++ {
		meetingType := types[rng.Intn(len(types))]
		titles := sampleTitles[meetingType]
		title := fmt.Sprintf("%s #%d", titles[rng.Intn(len(titles))], i+1)

		participants := samplePeople(rng, userIDs, 2+rng.Intn(3))
		organizer := participants[rng.Intn(len(participants))]

		start := base.AddDate(0, 0, rng.Intn(historyDays+1)).
			Add(time.Duration(9+rng.Intn(8)) * time.Hour).
			Add(time.Duration(15*rng.Intn(4)) * time.Minute)
		duration := sampleDurations[rng.Intn(len(sampleDurations))]
		effectiveness := 2.5 + rng.Float64()*2.5

		store.AddMeeting(calendar.Meeting{
			Title:         title,
			Participants:  participants,
			Start:         start,
			End:           start.Add(duration),
			Timezone:      "UTC",
			Organizer:     organizer,
			Agenda:        analysis.AgendaTemplate(meetingType),
			Type:          meetingType,
			Recurring:     rng.Intn(2) == 0,
			Effectiveness: &effectiveness,
			CreatedAt:     start.AddDate(0, 0, -(1 + rng.Intn(5))),
		})
	}
}

// SampleUsers returns the canonical five-person directory.
func SampleUsers() []calendar.User {
	weekdayHours := func(start, end string) map[string]calendar.WorkWindow {
		hours := make(map[string]calendar.WorkWindow, 5)
		for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday"} {
			hours[day] = calendar.WorkWindow{Start: start, End: end}
		}
		return hours
	}

	return []calendar.User{
		{
			ID: "user_1", Name: "Alice Johnson", Email: "alice@company.com",
			Timezone:  "America/New_York",
			WorkHours: weekdayHours("09:00", "17:00"),
			Preferences: calendar.Preferences{
				MaxMeetingsPerDay:      6,
				PreferredMeetingLength: 30,
				NoMeetingTimes:         []string{"12:00-13:00"},
			},
		},
		{
			ID: "user_2", Name: "Bob Smith", Email: "bob@company.com",
			Timezone:  "Europe/London",
			WorkHours: weekdayHours("08:00", "16:00"),
			Preferences: calendar.Preferences{
				MaxMeetingsPerDay:      5,
				PreferredMeetingLength: 45,
				NoMeetingTimes:         []string{"11:30-12:30"},
			},
		},
		{
			ID: "user_3", Name: "Carol Davis", Email: "carol@company.com",
			Timezone:  "Asia/Tokyo",
			WorkHours: weekdayHours("09:00", "18:00"),
			Preferences: calendar.Preferences{
				MaxMeetingsPerDay:      4,
				PreferredMeetingLength: 60,
				NoMeetingTimes:         []string{"12:00-13:00"},
			},
		},
		{
			ID: "user_4", Name: "David Wilson", Email: "david@company.com",
			Timezone:  "America/Los_Angeles",
			WorkHours: weekdayHours("08:00", "17:00"),
			Preferences: calendar.Preferences{
				MaxMeetingsPerDay:      7,
				PreferredMeetingLength: 30,
				NoMeetingTimes:         []string{"13:00-14:00"},
			},
		},
		{
			ID: "user_5", Name: "Emma Brown", Email: "emma@company.com",
			Timezone:  "Australia/Sydney",
			WorkHours: weekdayHours("09:00", "17:00"),
			Preferences: calendar.Preferences{
				MaxMeetingsPerDay:      5,
				PreferredMeetingLength: 45,
				NoMeetingTimes:         []string{"12:00-13:00"},
			},
		},
	}
}

var sampleTitles = map[calendar.MeetingType][]string{
	calendar.MeetingTypeStandup:      {"Daily Standup", "Team Sync", "Morning Check-in"},
	calendar.MeetingTypeReview:       {"Sprint Review", "Project Review", "Quarterly Review"},
	calendar.MeetingTypePlanning:     {"Sprint Planning", "Project Planning", "Strategic Planning"},
	calendar.MeetingTypeBrainstorm:   {"Innovation Session", "Problem Solving", "Creative Workshop"},
	calendar.MeetingTypeOneOnOne:     {"1:1 Check-in", "Performance Review", "Career Discussion"},
	calendar.MeetingTypePresentation: {"Demo Day", "Client Presentation", "Team Showcase"},
	calendar.MeetingTypeTraining:     {"Skills Workshop", "Training Session", "Knowledge Transfer"},
}

var sampleDurations = []time.Duration{
	15 * time.Minute,
	30 * time.Minute,
	45 * time.Minute,
	60 * time.Minute,
	90 * time.Minute,
}

// samplePeople picks k distinct ids without replacement.
func samplePeople(rng *rand.Rand, ids []string, k int) []string {
	shuffled := append([]string(nil), ids...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if k > len(shuffled) {
		k = len(shuffled)
	}
	return shuffled[:k]
}
