package calendar

import (
	"fmt"
	"sync"
	"time"
)

// Store holds the user directory and the meeting calendar in memory. A single
// RWMutex serialises meeting creation against reads; lookups return copies so
// callers can never observe a partially appended meeting.
type Store struct {
	mu           sync.RWMutex
	users        map[string]User
	userOrder    []string
	meetings     map[string]Meeting
	meetingOrder []string
	counter      uint64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:    make(map[string]User),
		meetings: make(map[string]Meeting),
	}
}

// AddUser registers a user. Re-adding an existing id replaces the record but
// keeps its position in listing order.
func (s *Store) AddUser(user User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[user.ID]; !exists {
		s.userOrder = append(s.userOrder, user.ID)
	}
	s.users[user.ID] = cloneUser(user)
}

// User looks up a user by id.
func (s *Store) User(id string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return User{}, false
	}
	return cloneUser(user), true
}

// Users returns every user in registration order.
func (s *Store) Users() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		users = append(users, cloneUser(s.users[id]))
	}
	return users
}

// AddMeeting assigns the next meeting id, appends the meeting and returns the
// stored record. Id allocation and append happen under one write lock so the
// sequence stays gapless and the insert is linearisable with reads.
func (s *Store) AddMeeting(meeting Meeting) Meeting {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter++
	meeting.ID = fmt.Sprintf("meeting_%d", s.counter)
	stored := cloneMeeting(meeting)
	s.meetings[stored.ID] = stored
	s.meetingOrder = append(s.meetingOrder, stored.ID)
	return cloneMeeting(stored)
}

// Meeting looks up a meeting by id.
func (s *Store) Meeting(id string) (Meeting, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	meeting, ok := s.meetings[id]
	if !ok {
		return Meeting{}, false
	}
	return cloneMeeting(meeting), true
}

// Meetings returns every meeting in creation order.
func (s *Store) Meetings() []Meeting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	meetings := make([]Meeting, 0, len(s.meetingOrder))
	for _, id := range s.meetingOrder {
		meetings = append(meetings, cloneMeeting(s.meetings[id]))
	}
	return meetings
}

// MeetingCount reports the number of stored meetings.
func (s *Store) MeetingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.meetingOrder)
}

// MeetingsForParticipant returns every meeting the user attends, in creation
// order. Unknown ids yield an empty slice.
func (s *Store) MeetingsForParticipant(userID string) []Meeting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var meetings []Meeting
	for _, id := range s.meetingOrder {
		meeting := s.meetings[id]
		if meeting.HasParticipant(userID) {
			meetings = append(meetings, cloneMeeting(meeting))
		}
	}
	return meetings
}

// MeetingsForParticipantBetween returns the user's meetings whose start time
// falls inside [start, end], inclusive on both ends.
func (s *Store) MeetingsForParticipantBetween(userID string, start, end time.Time) []Meeting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var meetings []Meeting
	for _, id := range s.meetingOrder {
		meeting := s.meetings[id]
		if !meeting.HasParticipant(userID) {
			continue
		}
		if meeting.Start.Before(start) || meeting.Start.After(end) {
			continue
		}
		meetings = append(meetings, cloneMeeting(meeting))
	}
	return meetings
}

func cloneUser(user User) User {
	cloned := user
	if user.WorkHours != nil {
		cloned.WorkHours = make(map[string]WorkWindow, len(user.WorkHours))
		for day, window := range user.WorkHours {
			cloned.WorkHours[day] = window
		}
	}
	if user.Preferences.NoMeetingTimes != nil {
		cloned.Preferences.NoMeetingTimes = append([]string(nil), user.Preferences.NoMeetingTimes...)
	}
	return cloned
}

func cloneMeeting(meeting Meeting) Meeting {
	cloned := meeting
	if meeting.Participants != nil {
		cloned.Participants = append([]string(nil), meeting.Participants...)
	}
	if meeting.Agenda != nil {
		cloned.Agenda = append([]string(nil), meeting.Agenda...)
	}
	if meeting.Effectiveness != nil {
		score := *meeting.Effectiveness
		cloned.Effectiveness = &score
	}
	return cloned
}
