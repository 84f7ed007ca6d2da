// Package scheduler runs the periodic background jobs: hourly practice
// reminders and a daily purge of old incorrect attempts.
package scheduler

import (
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/vocabtrainer/internal/database"
)

// Notifier delivers practice reminders to users
type Notifier interface {
	SendReminder(chatID int64, dueCount int) error
}

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	settings  *database.SettingsRepository
	attempts  *database.AttemptRepository
	notifier  Notifier
	retention time.Duration
	logger    *slog.Logger
}

// New creates a new scheduler instance. The notifier may be nil, in which
// case reminder delivery is skipped.
func New(notifier Notifier, retention time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		settings:  database.NewSettingsRepository(),
		attempts:  database.NewAttemptRepository(),
		notifier:  notifier,
		retention: retention,
		logger:    logger,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Hour().Do(s.sendReminders)
	s.scheduler.Every(1).Day().At("04:00").Do(s.purgeOldAttempts)

	// Start the scheduler in a non-blocking manner
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// sendReminders notifies every user whose reminder hour matches the current
// hour and who still has unlearned entries
func (s *Scheduler) sendReminders() {
	if s.notifier == nil {
		return
	}

	hour := time.Now().UTC().Hour()
	targets, err := s.settings.ReminderTargets(hour)
	if err != nil {
		s.logger.Error("failed to get reminder targets", slog.Any("error", err))
		return
	}

	for _, target := range targets {
		if err := s.notifier.SendReminder(target.TelegramChatID, target.DueCount); err != nil {
			s.logger.Warn("failed to send reminder",
				slog.Int64("user_id", target.UserID), slog.Any("error", err))
			continue
		}
		s.logger.Info("reminder sent",
			slog.Int64("user_id", target.UserID), slog.Int("due", target.DueCount))
	}
}

// purgeOldAttempts removes incorrect attempts past the retention window
func (s *Scheduler) purgeOldAttempts() {
	removed, err := s.attempts.PurgeOlderThan(s.retention)
	if err != nil {
		s.logger.Error("failed to purge old attempts", slog.Any("error", err))
		return
	}
	if removed > 0 {
		s.logger.Info("purged old attempts", slog.Int64("removed", removed))
	}
}
