// Package notify delivers practice reminders over Telegram.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier sends reminder messages through a Telegram bot. Users link
// their account by storing a chat id in their settings.
type TelegramNotifier struct {
	bot *tgbotapi.BotAPI
}

// NewTelegramNotifier creates a notifier for the given bot token
func NewTelegramNotifier(token string) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}
	return &TelegramNotifier{bot: bot}, nil
}

// SendReminder sends a practice reminder to the given chat
func (n *TelegramNotifier) SendReminder(chatID int64, dueCount int) error {
	text := fmt.Sprintf("You have %d words waiting for practice. Keep the streak going!", dueCount)
	msg := tgbotapi.NewMessage(chatID, text)

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send reminder: %w", err)
	}
	return nil
}
