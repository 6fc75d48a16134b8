package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/meeting-assistant/internal/application"
	"github.com/example/meeting-assistant/internal/calendar"
	"github.com/example/meeting-assistant/internal/config"
	httptransport "github.com/example/meeting-assistant/internal/http"
	"github.com/example/meeting-assistant/internal/logging"
	"github.com/example/meeting-assistant/internal/seed"
)

func main() {
	logger := logging.New(os.Stdout, slog.LevelInfo)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	store := calendar.NewStore()
	if !cfg.SeedDisabled {
		seed.Populate(store, seed.Options{
			Seed:         cfg.Seed,
			MeetingCount: cfg.SeedMeetings,
		})
		logger.Info("sample data loaded", "users", len(store.Users()), "meetings", store.MeetingCount())
	}

	now := time.Now

	meetingService := application.NewMeetingService(store, now, logger)
	insightService := application.NewInsightService(store, now, logger)
	calendarService := application.NewCalendarService(store)

	meetingHandler := httptransport.NewMeetingHandler(meetingService, insightService, calendarService, logger)
	userHandler := httptransport.NewUserHandler(meetingService, insightService, calendarService, logger)
	teamHandler := httptransport.NewTeamHandler(insightService, logger)

	handler := httptransport.NewRouter(httptransport.RouterConfig{
		Meetings:   meetingHandler,
		Users:      userHandler,
		Team:       teamHandler,
		Middleware: []func(http.Handler) http.Handler{httptransport.RequestLogger(logger)},
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("meeting assistant API listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server encountered error", "error", err)
		os.Exit(1)
	}
}
