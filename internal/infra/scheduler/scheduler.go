package scheduler

import (
	"fmt"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/telegram"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// StatsSource provides a snapshot of poll-loop activity.
type StatsSource interface {
	Stats() app.PollStats
}

// HeartbeatScheduler sends a periodic liveness summary to the configured
// recipient. It talks to the chat client directly: heartbeats are not subject
// to the notifier's duplicate suppression.
type HeartbeatScheduler struct {
	cronEngine *cron.Cron
	stats      StatsSource
	client     telegram.Client
	chatID     int64
	log        *logrus.Logger
	cronSpec   string
}

func NewHeartbeatScheduler(
	stats StatsSource,
	client telegram.Client,
	chatID int64,
	log *logrus.Logger,
	cronSpec string, // e.g., "0 9 * * *" (9:00 AM daily)
) *HeartbeatScheduler {
	return &HeartbeatScheduler{
		cronEngine: cron.New(cron.WithLocation(time.Local)),
		stats:      stats,
		client:     client,
		chatID:     chatID,
		log:        log,
		cronSpec:   cronSpec,
	}
}

func heartbeatMessage(stats app.PollStats) string {
	lastSuccess := "never"
	if !stats.LastSuccess.IsZero() {
		lastSuccess = stats.LastSuccess.Format("2006-01-02 15:04:05")
	}
	return fmt.Sprintf(
		"Bot is up. Poll cycles: %d, failures: %d, last successful poll: %s.",
		stats.Cycles, stats.Failures, lastSuccess,
	)
}

func (s *HeartbeatScheduler) Start() {
	_, err := s.cronEngine.AddFunc(s.cronSpec, func() {
		message := heartbeatMessage(s.stats.Stats())
		if err := s.client.SendMessage(s.chatID, message, nil); err != nil {
			s.log.Errorf("Failed to send heartbeat message: %v.", err)
			return
		}
		s.log.Debug("Heartbeat message sent.")
	})
	if err != nil {
		s.log.Fatalf("Could not add heartbeat cron job: %v", err)
	}

	s.cronEngine.Start()
	s.log.Infof("Heartbeat scheduler started with spec %q.", s.cronSpec)
}

func (s *HeartbeatScheduler) Stop() {
	ctx := s.cronEngine.Stop() // waits for a running job to finish
	<-ctx.Done()
	s.log.Info("Heartbeat scheduler stopped.")
}
