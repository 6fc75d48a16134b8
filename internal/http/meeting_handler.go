package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/example/meeting-assistant/internal/analysis"
	"github.com/example/meeting-assistant/internal/application"
	"github.com/example/meeting-assistant/internal/calendar"
	"github.com/example/meeting-assistant/internal/scheduler"
)

type meetingService interface {
	CreateMeeting(ctx context.Context, params application.CreateMeetingParams) (application.CreateMeetingResult, error)
	FindOptimalSlots(ctx context.Context, params application.FindSlotsParams) ([]scheduler.Slot, error)
}

type effectivenessScorer interface {
	ScoreEffectiveness(ctx context.Context, meetingID string) (analysis.EffectivenessReport, error)
}

type meetingLister interface {
	ListMeetings(ctx context.Context) ([]calendar.Meeting, error)
}

// MeetingHandler serves meeting creation, slot search, the calendar bulk
// view and effectiveness scoring.
type MeetingHandler struct {
	meetings  meetingService
	scorer    effectivenessScorer
	lister    meetingLister
	responder responder
}

// NewMeetingHandler wires the meeting endpoints.
func NewMeetingHandler(meetings meetingService, scorer effectivenessScorer, lister meetingLister, logger *slog.Logger) *MeetingHandler {
	return &MeetingHandler{meetings: meetings, scorer: scorer, lister: lister, responder: newResponder(logger)}
}

type createMeetingRequest struct {
	Title        string            `json:"title"`
	Participants []string          `json:"participants"`
	Duration     int               `json:"duration"`
	StartTime    string            `json:"start_time"`
	Preferences  map[string]string `json:"preferences"`
}

type createMeetingResponse struct {
	Success         bool        `json:"success"`
	MeetingID       string      `json:"meeting_id,omitempty"`
	Meeting         *meetingDTO `json:"meeting,omitempty"`
	SuggestedAgenda []string    `json:"suggested_agenda,omitempty"`
	Conflicts       []string    `json:"conflicts,omitempty"`
	Message         string      `json:"message"`
}

func (h *MeetingHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.meetings == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req createMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	start, err := parseTimestamp(req.StartTime)
	if err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidTimeRange)
		return
	}

	result, err := h.meetings.CreateMeeting(r.Context(), application.CreateMeetingParams{
		Title:           req.Title,
		ParticipantIDs:  req.Participants,
		DurationMinutes: req.Duration,
		Start:           start,
		Preferences:     req.Preferences,
	})
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	response := createMeetingResponse{
		Success:         result.Success,
		MeetingID:       result.MeetingID,
		SuggestedAgenda: result.SuggestedAgenda,
		Message:         result.Message,
	}
	if result.Meeting != nil {
		dto := toMeetingDTO(*result.Meeting)
		response.Meeting = &dto
	}
	for _, conflict := range result.Conflicts {
		response.Conflicts = append(response.Conflicts, conflict.Description())
	}

	status := http.StatusCreated
	if !result.Success {
		status = http.StatusConflict
	}
	h.responder.writeJSON(r.Context(), w, status, response)
}

type findSlotsRequest struct {
	Participants []string `json:"participants"`
	Duration     int      `json:"duration"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
}

type findSlotsResponse struct {
	Slots []slotDTO `json:"optimal_slots"`
}

func (h *MeetingHandler) Search(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.meetings == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req findSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	rangeStart, err := parseDate(req.StartDate)
	if err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidTimeRange)
		return
	}
	rangeEnd, err := parseDate(req.EndDate)
	if err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidTimeRange)
		return
	}
	// The search range covers the whole final day.
	rangeEnd = rangeEnd.Add(24*time.Hour - time.Second)

	slots, err := h.meetings.FindOptimalSlots(r.Context(), application.FindSlotsParams{
		ParticipantIDs:  req.Participants,
		DurationMinutes: req.Duration,
		RangeStart:      rangeStart,
		RangeEnd:        rangeEnd,
	})
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, findSlotsResponse{Slots: toSlotDTOs(slots)})
}

func (h *MeetingHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.lister == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	meetings, err := h.lister.ListMeetings(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toMeetingDTOs(meetings))
}

func (h *MeetingHandler) Effectiveness(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.scorer == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	meetingID, ok := MeetingIDFromContext(r.Context())
	if !ok || strings.TrimSpace(meetingID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidMeetingID)
		return
	}

	report, err := h.scorer.ScoreEffectiveness(r.Context(), meetingID)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toEffectivenessReportDTO(report))
}
