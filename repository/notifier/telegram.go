package notifierrepo

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sender is the slice of *tgbotapi.BotAPI we use.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type telegramRepo struct {
	bot    sender
	chatID int64
}

// NewTelegram authenticates the bot token against the Telegram API and posts
// alerts into chatID (usually the hostel group).
func NewTelegram(token string, chatID int64) (Repo, error) {
	if token == "" || chatID == 0 {
		return nil, fmt.Errorf("telegram notifier needs bot token and chat id")
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	return &telegramRepo{bot: bot, chatID: chatID}, nil
}

func newTelegramWithSender(s sender, chatID int64) Repo {
	return &telegramRepo{bot: s, chatID: chatID}
}

func (r *telegramRepo) Name() string { return "telegram" }

func (r *telegramRepo) Send(ctx context.Context, a Alert) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(r.chatID, fmt.Sprintf("🚨 %s", a.Message))
	msg.DisableNotification = false
	if _, err := r.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}
