package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/example/meeting-assistant/internal/analysis"
	"github.com/example/meeting-assistant/internal/application"
)

type teamInsights interface {
	WorkloadBalance(ctx context.Context, params application.WorkloadParams) (analysis.WorkloadReport, error)
	SuggestAgenda(ctx context.Context, params application.AgendaParams) ([]string, error)
}

// TeamHandler serves the team-level operations: workload balancing and
// agenda suggestions.
type TeamHandler struct {
	insights  teamInsights
	responder responder
}

// NewTeamHandler wires the team endpoints.
func NewTeamHandler(insights teamInsights, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{insights: insights, responder: newResponder(logger)}
}

type workloadRequest struct {
	TeamMembers []string `json:"team_members"`
}

func (h *TeamHandler) Workload(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.insights == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req workloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	report, err := h.insights.WorkloadBalance(r.Context(), application.WorkloadParams{MemberIDs: req.TeamMembers})
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toWorkloadReportDTO(report))
}

type agendaRequest struct {
	MeetingTopic string   `json:"meeting_topic"`
	Participants []string `json:"participants"`
}

type agendaResponse struct {
	SuggestedAgenda []string `json:"suggested_agenda"`
}

func (h *TeamHandler) Agenda(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.insights == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req agendaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	agenda, err := h.insights.SuggestAgenda(r.Context(), application.AgendaParams{
		Topic:          req.MeetingTopic,
		ParticipantIDs: req.Participants,
	})
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, agendaResponse{SuggestedAgenda: agenda})
}
