package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/example/meeting-assistant/internal/analysis"
	"github.com/example/meeting-assistant/internal/calendar"
	"github.com/example/meeting-assistant/internal/scheduler"
)

// CalendarStore is the store surface the meeting service depends on.
type CalendarStore interface {
	scheduler.CalendarSource
	AddMeeting(meeting calendar.Meeting) calendar.Meeting
	MeetingsForParticipantBetween(userID string, start, end time.Time) []calendar.Meeting
}

// MeetingService orchestrates slot search, conflict scanning and meeting
// creation over the shared calendar store.
type MeetingService struct {
	store  CalendarStore
	now    func() time.Time
	logger *slog.Logger
}

// NewMeetingService wires dependencies for meeting operations.
func NewMeetingService(store CalendarStore, now func() time.Time, logger *slog.Logger) *MeetingService {
	if now == nil {
		now = time.Now
	}
	return &MeetingService{store: store, now: now, logger: defaultLogger(logger)}
}

// CreateMeeting checks the requested slot against every participant's whole
// calendar and either reports the collisions or appends the new meeting with
// a generated agenda. Conflicts leave the store untouched.
func (s *MeetingService) CreateMeeting(ctx context.Context, params CreateMeetingParams) (CreateMeetingResult, error) {
	logger := serviceLogger(ctx, s.logger, "meeting", "create")

	vErr := &ValidationError{}
	if strings.TrimSpace(params.Title) == "" {
		vErr.add("title", "title is required")
	}
	if len(params.ParticipantIDs) == 0 {
		vErr.add("participants", "at least one participant is required")
	}
	if params.DurationMinutes <= 0 {
		vErr.add("duration", "duration must be positive")
	}
	if vErr.HasErrors() {
		logger.WarnContext(ctx, "meeting creation rejected", "error_kind", ErrorKind(vErr))
		return CreateMeetingResult{}, vErr
	}

	start := params.Start
	end := start.Add(time.Duration(params.DurationMinutes) * time.Minute)

	conflicts := scheduler.SlotConflicts(s.store, params.ParticipantIDs, start, end)
	if len(conflicts) > 0 {
		logger.InfoContext(ctx, "meeting creation blocked by conflicts", "conflicts", len(conflicts))
		return CreateMeetingResult{
			Success:   false,
			Conflicts: conflicts,
			Message:   "Meeting conflicts detected",
		}, nil
	}

	meeting := s.store.AddMeeting(calendar.Meeting{
		Title:        strings.TrimSpace(params.Title),
		Participants: params.ParticipantIDs,
		Start:        start,
		End:          end,
		Timezone:     "UTC",
		Organizer:    params.ParticipantIDs[0],
		Agenda:       analysis.SuggestAgenda(params.Title, params.ParticipantIDs),
		Type:         calendar.MeetingTypeGeneral,
		CreatedAt:    s.now(),
	})

	logger.InfoContext(ctx, "meeting created", "meeting_id", meeting.ID, "participants", len(meeting.Participants))
	return CreateMeetingResult{
		Success:         true,
		MeetingID:       meeting.ID,
		Meeting:         &meeting,
		SuggestedAgenda: meeting.Agenda,
		Message:         "Meeting created successfully",
	}, nil
}

// FindOptimalSlots ranks candidate slots for the participants over the
// requested range. Unknown participant ids are skipped by the scorer; when
// none resolve at all the request escalates to an error.
func (s *MeetingService) FindOptimalSlots(ctx context.Context, params FindSlotsParams) ([]scheduler.Slot, error) {
	logger := serviceLogger(ctx, s.logger, "meeting", "find_slots")

	vErr := &ValidationError{}
	if len(params.ParticipantIDs) == 0 {
		vErr.add("participants", "at least one participant is required")
	}
	if params.DurationMinutes <= 0 {
		vErr.add("duration", "duration must be positive")
	}
	if params.RangeEnd.Before(params.RangeStart) {
		vErr.add("end_date", "end date must not precede start date")
	}
	if vErr.HasErrors() {
		return nil, vErr
	}

	if !s.anyKnownUser(params.ParticipantIDs) {
		logger.WarnContext(ctx, "slot search with no resolvable participants")
		return nil, ErrNoValidMembers
	}

	duration := time.Duration(params.DurationMinutes) * time.Minute
	slots := scheduler.FindOptimalSlots(s.store, params.ParticipantIDs, duration, params.RangeStart, params.RangeEnd)
	logger.InfoContext(ctx, "slot search completed", "candidates", len(slots))
	return slots, nil
}

// DetectConflicts scans the user's meetings in range for overlaps,
// back-to-back pairs and overloaded days. An unknown user id degrades
// silently: pairwise checks still run, the daily-limit check is skipped.
func (s *MeetingService) DetectConflicts(ctx context.Context, params ConflictScanParams) ([]scheduler.Conflict, error) {
	logger := serviceLogger(ctx, s.logger, "meeting", "detect_conflicts", "user_id", params.UserID)

	maxPerDay := 0
	if user, ok := s.store.User(params.UserID); ok {
		maxPerDay = scheduler.DefaultMaxMeetingsPerDay
		if user.Preferences.MaxMeetingsPerDay > 0 {
			maxPerDay = user.Preferences.MaxMeetingsPerDay
		}
	}

	meetings := s.store.MeetingsForParticipantBetween(params.UserID, params.RangeStart, params.RangeEnd)
	conflicts := scheduler.ScheduleConflicts(meetings, maxPerDay)
	logger.InfoContext(ctx, "conflict scan completed", "meetings", len(meetings), "conflicts", len(conflicts))
	return conflicts, nil
}

func (s *MeetingService) anyKnownUser(ids []string) bool {
	for _, id := range ids {
		if _, ok := s.store.User(id); ok {
			return true
		}
	}
	return false
}
