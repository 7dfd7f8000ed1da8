// internal/infra/telegram/handlers.go
package telegram

import (
	"fmt"

	"homework_status_bot/internal/app"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// StatsSource provides a snapshot of poll-loop activity for the /status command.
type StatsSource interface {
	Stats() app.PollStats
}

// RegisterBotHandlers registers the read-only bot commands. Only the
// configured recipient may use them; these commands never touch the poll
// cursor or the notification state.
func RegisterBotHandlers(b *telebot.Bot, stats StatsSource, recipientChatID int64, baseLogger *logrus.Entry) {
	commandsLogger := baseLogger.WithField("handler_group", "commands")

	b.Handle("/start", func(c telebot.Context) error {
		senderID := c.Sender().ID
		logCtx := commandsLogger.WithField("command", "/start").WithField("sender_id", senderID)
		logCtx.Info("Processing /start command")

		if senderID != recipientChatID {
			logCtx.Warn("Unauthorized access attempt")
			return c.Send("This bot serves a single configured recipient.")
		}
		return c.Send("Hi! I watch your homework review status and message you when it changes. Use /status to see how the polling is going.")
	})

	b.Handle("/status", func(c telebot.Context) error {
		senderID := c.Sender().ID
		logCtx := commandsLogger.WithField("command", "/status").WithField("sender_id", senderID)
		logCtx.Info("Processing /status command")

		if senderID != recipientChatID {
			logCtx.Warn("Unauthorized access attempt")
			return c.Send("This bot serves a single configured recipient.")
		}

		snapshot := stats.Stats()
		lastSuccess := "never"
		if !snapshot.LastSuccess.IsZero() {
			lastSuccess = snapshot.LastSuccess.Format("2006-01-02 15:04:05")
		}
		return c.Send(fmt.Sprintf(
			"Poll cycles: %d\nFailures: %d\nLast successful poll: %s",
			snapshot.Cycles, snapshot.Failures, lastSuccess,
		))
	})
}
