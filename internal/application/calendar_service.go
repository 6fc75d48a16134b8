package application

import (
	"context"

	"github.com/example/meeting-assistant/internal/calendar"
)

// DirectoryStore is the store surface the calendar service depends on.
type DirectoryStore interface {
	Users() []calendar.User
	Meetings() []calendar.Meeting
}

// CalendarService exposes the read-only bulk views over the store: the full
// meeting calendar and the user directory.
type CalendarService struct {
	store DirectoryStore
}

// NewCalendarService wires the store for the bulk views.
func NewCalendarService(store DirectoryStore) *CalendarService {
	return &CalendarService{store: store}
}

// ListMeetings returns every stored meeting in creation order.
func (s *CalendarService) ListMeetings(ctx context.Context) ([]calendar.Meeting, error) {
	return s.store.Meetings(), nil
}

// ListUsers returns every registered user in registration order.
func (s *CalendarService) ListUsers(ctx context.Context) ([]calendar.User, error) {
	return s.store.Users(), nil
}
