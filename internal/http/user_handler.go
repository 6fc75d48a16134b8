package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/meeting-assistant/internal/analysis"
	"github.com/example/meeting-assistant/internal/application"
	"github.com/example/meeting-assistant/internal/calendar"
	"github.com/example/meeting-assistant/internal/scheduler"
)

type conflictDetector interface {
	DetectConflicts(ctx context.Context, params application.ConflictScanParams) ([]scheduler.Conflict, error)
}

type scheduleInsights interface {
	AnalyzePatterns(ctx context.Context, params application.PatternParams) (analysis.PatternStats, error)
	OptimizeSchedule(ctx context.Context, userID string) (analysis.OptimizationReport, error)
}

type userLister interface {
	ListUsers(ctx context.Context) ([]calendar.User, error)
}

// UserHandler serves the user directory view and the per-user analyses:
// conflict scans, pattern statistics and schedule optimization.
type UserHandler struct {
	detector  conflictDetector
	insights  scheduleInsights
	lister    userLister
	responder responder
}

// NewUserHandler wires the user endpoints.
func NewUserHandler(detector conflictDetector, insights scheduleInsights, lister userLister, logger *slog.Logger) *UserHandler {
	return &UserHandler{detector: detector, insights: insights, lister: lister, responder: newResponder(logger)}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.lister == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	users, err := h.lister.ListUsers(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toUserDTOs(users))
}

type conflictScanResponse struct {
	UserID    string        `json:"user_id"`
	Conflicts []conflictDTO `json:"conflicts"`
}

func (h *UserHandler) Conflicts(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.detector == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	userID, ok := UserIDFromContext(r.Context())
	if !ok || strings.TrimSpace(userID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidUserID)
		return
	}

	query := r.URL.Query()
	start, err := parseTimestamp(query.Get("start"))
	if err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidTimeRange)
		return
	}
	end, err := parseTimestamp(query.Get("end"))
	if err != nil || end.Before(start) {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidTimeRange)
		return
	}

	conflicts, err := h.detector.DetectConflicts(r.Context(), application.ConflictScanParams{
		UserID:     userID,
		RangeStart: start,
		RangeEnd:   end,
	})
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, conflictScanResponse{
		UserID:    userID,
		Conflicts: toConflictDTOs(conflicts),
	})
}

func (h *UserHandler) Patterns(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.insights == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	userID, ok := UserIDFromContext(r.Context())
	if !ok || strings.TrimSpace(userID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidUserID)
		return
	}

	period := analysis.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = analysis.PeriodMonth
	}

	stats, err := h.insights.AnalyzePatterns(r.Context(), application.PatternParams{
		UserID: userID,
		Period: period,
	})
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toPatternStatsDTO(stats))
}

func (h *UserHandler) Optimization(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.insights == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	userID, ok := UserIDFromContext(r.Context())
	if !ok || strings.TrimSpace(userID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidUserID)
		return
	}

	report, err := h.insights.OptimizeSchedule(r.Context(), userID)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toOptimizationReportDTO(report))
}
