package http

import (
	"time"

	"github.com/example/meeting-assistant/internal/analysis"
	"github.com/example/meeting-assistant/internal/calendar"
	"github.com/example/meeting-assistant/internal/scheduler"
)

type meetingDTO struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Participants       []string  `json:"participants"`
	StartTime          time.Time `json:"start_time"`
	EndTime            time.Time `json:"end_time"`
	Timezone           string    `json:"timezone"`
	Organizer          string    `json:"organizer"`
	Agenda             []string  `json:"agenda"`
	MeetingType        string    `json:"meeting_type"`
	Recurring          bool      `json:"recurring"`
	EffectivenessScore *float64  `json:"effectiveness_score,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func toMeetingDTO(meeting calendar.Meeting) meetingDTO {
	return meetingDTO{
		ID:                 meeting.ID,
		Title:              meeting.Title,
		Participants:       meeting.Participants,
		StartTime:          meeting.Start,
		EndTime:            meeting.End,
		Timezone:           meeting.Timezone,
		Organizer:          meeting.Organizer,
		Agenda:             meeting.Agenda,
		MeetingType:        string(meeting.Type),
		Recurring:          meeting.Recurring,
		EffectivenessScore: meeting.Effectiveness,
		CreatedAt:          meeting.CreatedAt,
	}
}

func toMeetingDTOs(meetings []calendar.Meeting) []meetingDTO {
	dtos := make([]meetingDTO, len(meetings))
	for i, meeting := range meetings {
		dtos[i] = toMeetingDTO(meeting)
	}
	return dtos
}

type userDTO struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Timezone    string              `json:"timezone"`
	WorkHours   map[string][]string `json:"work_hours"`
	Preferences preferencesDTO      `json:"preferences"`
}

type preferencesDTO struct {
	MaxMeetingsPerDay      int      `json:"max_meetings_per_day,omitempty"`
	PreferredMeetingLength int      `json:"preferred_meeting_length,omitempty"`
	PreferredTimes         string   `json:"preferred_times,omitempty"`
	NoMeetingTimes         []string `json:"no_meeting_times,omitempty"`
}

func toUserDTO(user calendar.User) userDTO {
	workHours := make(map[string][]string, len(user.WorkHours))
	for day, window := range user.WorkHours {
		workHours[day] = []string{window.Start, window.End}
	}
	return userDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Timezone:  user.Timezone,
		WorkHours: workHours,
		Preferences: preferencesDTO{
			MaxMeetingsPerDay:      user.Preferences.MaxMeetingsPerDay,
			PreferredMeetingLength: user.Preferences.PreferredMeetingLength,
			PreferredTimes:         user.Preferences.PreferredTimes,
			NoMeetingTimes:         user.Preferences.NoMeetingTimes,
		},
	}
}

func toUserDTOs(users []calendar.User) []userDTO {
	dtos := make([]userDTO, len(users))
	for i, user := range users {
		dtos[i] = toUserDTO(user)
	}
	return dtos
}

type slotDTO struct {
	StartTime            time.Time `json:"start_time"`
	EndTime              time.Time `json:"end_time"`
	QualityScore         float64   `json:"quality_score"`
	Timezone             string    `json:"timezone"`
	RecommendationReason string    `json:"recommendation_reason"`
}

func toSlotDTOs(slots []scheduler.Slot) []slotDTO {
	dtos := make([]slotDTO, len(slots))
	for i, slot := range slots {
		dtos[i] = slotDTO{
			StartTime:            slot.Start,
			EndTime:              slot.End,
			QualityScore:         slot.QualityScore,
			Timezone:             "UTC",
			RecommendationReason: slot.Reason,
		}
	}
	return dtos
}

type conflictMeetingDTO struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type conflictDTO struct {
	Type           string              `json:"type"`
	Severity       string              `json:"severity"`
	Meeting1       *conflictMeetingDTO `json:"meeting1,omitempty"`
	Meeting2       *conflictMeetingDTO `json:"meeting2,omitempty"`
	Date           string              `json:"date,omitempty"`
	MeetingCount   int                 `json:"meeting_count,omitempty"`
	MaxRecommended int                 `json:"max_recommended,omitempty"`
}

func toConflictDTOs(conflicts []scheduler.Conflict) []conflictDTO {
	dtos := make([]conflictDTO, len(conflicts))
	for i, conflict := range conflicts {
		dtos[i] = conflictDTO{
			Type:           string(conflict.Type),
			Severity:       string(conflict.Severity),
			Meeting1:       toConflictMeetingDTO(conflict.First),
			Meeting2:       toConflictMeetingDTO(conflict.Second),
			Date:           conflict.Date,
			MeetingCount:   conflict.MeetingCount,
			MaxRecommended: conflict.MaxRecommended,
		}
	}
	return dtos
}

func toConflictMeetingDTO(ref *scheduler.MeetingRef) *conflictMeetingDTO {
	if ref == nil {
		return nil
	}
	return &conflictMeetingDTO{
		ID:    ref.ID,
		Title: ref.Title,
		Start: ref.Start,
		End:   ref.End,
	}
}

type patternStatsDTO struct {
	Period                 string         `json:"period"`
	TotalMeetings          int            `json:"total_meetings"`
	TotalHours             float64        `json:"total_hours"`
	AverageDurationMinutes float64        `json:"average_duration_minutes"`
	EffectivenessScore     float64        `json:"effectiveness_score"`
	MeetingTypes           map[string]int `json:"meeting_types"`
	DailyDistribution      map[string]int `json:"daily_distribution"`
	PeakMeetingHour        int            `json:"peak_meeting_hour"`
	Recommendations        []string       `json:"recommendations"`
}

func toPatternStatsDTO(stats analysis.PatternStats) patternStatsDTO {
	return patternStatsDTO{
		Period:                 string(stats.Period),
		TotalMeetings:          stats.TotalMeetings,
		TotalHours:             stats.TotalHours,
		AverageDurationMinutes: stats.AverageDurationMinutes,
		EffectivenessScore:     stats.EffectivenessScore,
		MeetingTypes:           stats.MeetingTypes,
		DailyDistribution:      stats.DailyDistribution,
		PeakMeetingHour:        stats.PeakMeetingHour,
		Recommendations:        stats.Recommendations,
	}
}

type memberWorkloadDTO struct {
	UserID            string  `json:"user_id"`
	UserName          string  `json:"user_name"`
	TotalMeetingHours float64 `json:"total_meeting_hours"`
	TotalMeetings     int     `json:"total_meetings"`
	DailyAvgHours     float64 `json:"daily_avg_hours"`
	DailyAvgMeetings  float64 `json:"daily_avg_meetings"`
	WorkloadLevel     string  `json:"workload_level"`
}

type workloadReportDTO struct {
	TeamMembers      []memberWorkloadDTO `json:"team_members"`
	TeamAverageHours float64             `json:"team_average_hours"`
	WorkloadVariance float64             `json:"workload_variance"`
	BalanceScore     float64             `json:"balance_score"`
	Recommendations  []string            `json:"recommendations"`
}

func toWorkloadReportDTO(report analysis.WorkloadReport) workloadReportDTO {
	members := make([]memberWorkloadDTO, len(report.Members))
	for i, member := range report.Members {
		members[i] = memberWorkloadDTO{
			UserID:            member.UserID,
			UserName:          member.UserName,
			TotalMeetingHours: member.TotalMeetingHours,
			TotalMeetings:     member.TotalMeetings,
			DailyAvgHours:     member.DailyAvgHours,
			DailyAvgMeetings:  member.DailyAvgMeetings,
			WorkloadLevel:     string(member.Level),
		}
	}
	return workloadReportDTO{
		TeamMembers:      members,
		TeamAverageHours: report.TeamAverageHours,
		WorkloadVariance: report.WorkloadVariance,
		BalanceScore:     report.BalanceScore,
		Recommendations:  report.Recommendations,
	}
}

type effectivenessReportDTO struct {
	MeetingID          string                    `json:"meeting_id"`
	MeetingTitle       string                    `json:"meeting_title"`
	EffectivenessScore float64                   `json:"effectiveness_score"`
	ScoreBreakdown     effectivenessBreakdownDTO `json:"score_breakdown"`
	Suggestions        []string                  `json:"improvement_suggestions"`
	MeetingDetails     effectivenessDetailsDTO   `json:"meeting_details"`
}

type effectivenessBreakdownDTO struct {
	BaseScore         float64 `json:"base_score"`
	DurationFactor    float64 `json:"duration_factor"`
	ParticipantFactor float64 `json:"participant_factor"`
	AgendaFactor      float64 `json:"agenda_factor"`
}

type effectivenessDetailsDTO struct {
	DurationMinutes  int    `json:"duration_minutes"`
	ParticipantCount int    `json:"participant_count"`
	HasAgenda        bool   `json:"has_agenda"`
	MeetingType      string `json:"meeting_type"`
}

func toEffectivenessReportDTO(report analysis.EffectivenessReport) effectivenessReportDTO {
	return effectivenessReportDTO{
		MeetingID:          report.MeetingID,
		MeetingTitle:       report.MeetingTitle,
		EffectivenessScore: report.Score,
		ScoreBreakdown: effectivenessBreakdownDTO{
			BaseScore:         report.Breakdown.BaseScore,
			DurationFactor:    report.Breakdown.DurationFactor,
			ParticipantFactor: report.Breakdown.ParticipantFactor,
			AgendaFactor:      report.Breakdown.AgendaFactor,
		},
		Suggestions: report.Suggestions,
		MeetingDetails: effectivenessDetailsDTO{
			DurationMinutes:  report.MeetingDetails.DurationMinutes,
			ParticipantCount: report.MeetingDetails.ParticipantCount,
			HasAgenda:        report.MeetingDetails.HasAgenda,
			MeetingType:      report.MeetingDetails.MeetingType,
		},
	}
}

type optimizationRecommendationDTO struct {
	Type           string `json:"type"`
	Priority       string `json:"priority"`
	Recommendation string `json:"recommendation"`
	Impact         string `json:"impact"`
}

type optimizationStatsDTO struct {
	MeetingsPerWeek int     `json:"meetings_per_week"`
	HoursPerWeek    float64 `json:"hours_per_week"`
	FocusBlocks     int     `json:"focus_blocks_per_week"`
}

type optimizationReportDTO struct {
	UserID            string                          `json:"user_id"`
	UserName          string                          `json:"user_name"`
	OptimizationScore int                             `json:"optimization_score"`
	Recommendations   []optimizationRecommendationDTO `json:"recommendations"`
	CurrentStats      optimizationStatsDTO            `json:"current_stats"`
}

func toOptimizationReportDTO(report analysis.OptimizationReport) optimizationReportDTO {
	recommendations := make([]optimizationRecommendationDTO, len(report.Recommendations))
	for i, rec := range report.Recommendations {
		recommendations[i] = optimizationRecommendationDTO{
			Type:           rec.Type,
			Priority:       rec.Priority,
			Recommendation: rec.Recommendation,
			Impact:         rec.Impact,
		}
	}
	return optimizationReportDTO{
		UserID:            report.UserID,
		UserName:          report.UserName,
		OptimizationScore: report.Score,
		Recommendations:   recommendations,
		CurrentStats: optimizationStatsDTO{
			MeetingsPerWeek: report.Stats.MeetingsPerWeek,
			HoursPerWeek:    report.Stats.HoursPerWeek,
			FocusBlocks:     report.Stats.FocusBlocks,
		},
	}
}

// parseTimestamp accepts RFC 3339 timestamps; a value without a zone offset
// is interpreted as UTC.
func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", value, time.UTC)
}

// parseDate accepts a plain calendar date.
func parseDate(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, time.UTC)
}
