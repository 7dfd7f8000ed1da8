package telegram

import "gopkg.in/telebot.v3"

// Client is the chat-delivery capability: send text to a recipient, fail on
// delivery error. It decouples the notifier and the heartbeat job from the
// concrete bot library.
type Client interface {
	SendMessage(recipientChatID int64, text string, options *telebot.SendOptions) error
}
