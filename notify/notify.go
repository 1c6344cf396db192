package notify

import (
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier sends run summaries to a Telegram chat
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewNotifier creates a new Notifier instance
func NewNotifier(token string, chatID int64) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return &Notifier{bot: bot, chatID: chatID}, nil
}

// RunComplete sends a summary message listing the written files
func (n *Notifier) RunComplete(saved, failed int, files []string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Scrape finished: %d topics saved, %d failed", saved, failed)
	for _, f := range files {
		b.WriteString("\n• " + f)
	}

	msg := tgbotapi.NewMessage(n.chatID, b.String())
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}

	log.Println("Telegram notification sent")
	return nil
}
