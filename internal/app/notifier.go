// internal/app/notifier.go
package app

import (
	"homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

const attentionPrefix = "Attention ⚠️ An important update has arrived 📨"

// delivered is the most recently confirmed notification: the pair used to
// suppress redundant sends for the same homework and text.
type delivered struct {
	message    string
	homeworkID int64
}

// Notifier delivers notifications to the single configured recipient and
// suppresses exact repeats. State lives for the process lifetime only.
type Notifier struct {
	client telegram.Client
	chatID int64
	log    *logrus.Logger
	last   *delivered
}

func NewNotifier(client telegram.Client, chatID int64, log *logrus.Logger) *Notifier {
	return &Notifier{
		client: client,
		chatID: chatID,
		log:    log,
	}
}

// Notify sends an attention-prefix message followed by the actual message,
// unless both the message and the homework id match the last delivered pair.
// Delivery failures are logged and swallowed; state is advanced only after a
// confirmed send, so a failed delivery leaves the pair eligible for resending.
func (n *Notifier) Notify(message string, homeworkID int64) {
	if n.last != nil && n.last.message == message && n.last.homeworkID == homeworkID {
		return
	}
	if err := n.client.SendMessage(n.chatID, attentionPrefix, nil); err != nil {
		n.log.Errorf("Failed to send message to Telegram: %v.", err)
		return
	}
	if err := n.client.SendMessage(n.chatID, message, nil); err != nil {
		n.log.Errorf("Failed to send message to Telegram: %v.", err)
		return
	}
	n.last = &delivered{message: message, homeworkID: homeworkID}
	n.log.Infof("Message %q sent to Telegram.", message)
}
