package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/example/meeting-assistant/internal/analysis"
	"github.com/example/meeting-assistant/internal/calendar"
)

// InsightStore is the store surface the insight service depends on.
type InsightStore interface {
	User(id string) (calendar.User, bool)
	Meeting(id string) (calendar.Meeting, bool)
	MeetingsForParticipantBetween(userID string, start, end time.Time) []calendar.Meeting
}

// InsightService serves the analytics operations: pattern analysis, workload
// balancing, effectiveness scoring, schedule optimization and agenda
// suggestions.
type InsightService struct {
	store  InsightStore
	now    func() time.Time
	logger *slog.Logger
}

// NewInsightService wires dependencies for analytics operations.
func NewInsightService(store InsightStore, now func() time.Time, logger *slog.Logger) *InsightService {
	if now == nil {
		now = time.Now
	}
	return &InsightService{store: store, now: now, logger: defaultLogger(logger)}
}

// AnalyzePatterns computes period statistics for the user's trailing window.
// An empty window is a structured failure, not a panic or a zeroed report.
func (s *InsightService) AnalyzePatterns(ctx context.Context, params PatternParams) (analysis.PatternStats, error) {
	logger := serviceLogger(ctx, s.logger, "insight", "analyze_patterns", "user_id", params.UserID)

	end := s.now()
	start := end.Add(-params.Period.Window())
	meetings := s.store.MeetingsForParticipantBetween(params.UserID, start, end)
	if len(meetings) == 0 {
		logger.InfoContext(ctx, "no meetings in analysis window", "period", string(params.Period))
		return analysis.PatternStats{}, ErrNoMeetings
	}

	stats := analysis.AnalyzePatterns(meetings, params.Period)
	logger.InfoContext(ctx, "pattern analysis completed", "meetings", stats.TotalMeetings, "recommendations", len(stats.Recommendations))
	return stats, nil
}

// WorkloadBalance computes the team report over the trailing two-week
// window. Unknown member ids are skipped; only a fully unresolvable team
// escalates to an error.
func (s *InsightService) WorkloadBalance(ctx context.Context, params WorkloadParams) (analysis.WorkloadReport, error) {
	logger := serviceLogger(ctx, s.logger, "insight", "workload_balance")

	start, end := analysis.WorkloadWindow(s.now())
	var members []analysis.MemberWorkload
	for _, memberID := range params.MemberIDs {
		user, ok := s.store.User(memberID)
		if !ok {
			continue
		}
		meetings := s.store.MeetingsForParticipantBetween(memberID, start, end)
		members = append(members, analysis.MemberWorkloadFor(user, meetings))
	}
	if len(members) == 0 {
		logger.WarnContext(ctx, "no resolvable team members", "requested", len(params.MemberIDs))
		return analysis.WorkloadReport{}, ErrNoValidMembers
	}

	report := analysis.BuildWorkloadReport(members)
	logger.InfoContext(ctx, "workload balance computed", "members", len(members), "balance_score", report.BalanceScore)
	return report, nil
}

// ScoreEffectiveness derives a fresh effectiveness report for the meeting.
func (s *InsightService) ScoreEffectiveness(ctx context.Context, meetingID string) (analysis.EffectivenessReport, error) {
	logger := serviceLogger(ctx, s.logger, "insight", "score_effectiveness", "meeting_id", meetingID)

	meeting, ok := s.store.Meeting(meetingID)
	if !ok {
		logger.InfoContext(ctx, "meeting not found")
		return analysis.EffectivenessReport{}, ErrNotFound
	}

	report := analysis.ScoreEffectiveness(meeting)
	logger.InfoContext(ctx, "effectiveness scored", "score", report.Score)
	return report, nil
}

// OptimizeSchedule runs the schedule optimizer over the user's trailing
// two-week window.
func (s *InsightService) OptimizeSchedule(ctx context.Context, userID string) (analysis.OptimizationReport, error) {
	logger := serviceLogger(ctx, s.logger, "insight", "optimize_schedule", "user_id", userID)

	user, ok := s.store.User(userID)
	if !ok {
		logger.InfoContext(ctx, "user not found")
		return analysis.OptimizationReport{}, ErrNotFound
	}

	start, end := analysis.WorkloadWindow(s.now())
	meetings := s.store.MeetingsForParticipantBetween(userID, start, end)
	report := analysis.OptimizeSchedule(user, meetings)
	logger.InfoContext(ctx, "schedule optimized", "score", report.Score, "recommendations", len(report.Recommendations))
	return report, nil
}

// SuggestAgenda generates agenda items for a topic and attendee list.
func (s *InsightService) SuggestAgenda(ctx context.Context, params AgendaParams) ([]string, error) {
	vErr := &ValidationError{}
	if params.Topic == "" {
		vErr.add("meeting_topic", "meeting topic is required")
	}
	if vErr.HasErrors() {
		return nil, vErr
	}
	return analysis.SuggestAgenda(params.Topic, params.ParticipantIDs), nil
}
