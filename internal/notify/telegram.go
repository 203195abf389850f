package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"mssd-portal/internal/models"
)

type telegram struct {
	bot     *tgbotapi.BotAPI
	chatIDs []int64
}

func newTelegram(token string, chatIDs []int64) (*telegram, error) {
	if len(chatIDs) == 0 {
		return nil, fmt.Errorf("ADMIN_CHAT_IDS is empty")
	}
	b, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	b.Debug = false
	return &telegram{bot: b, chatIDs: chatIDs}, nil
}

func (t *telegram) Name() string { return "telegram" }

func (t *telegram) RegistrationSynced(ctx context.Context, regID string, reg models.Registration, isUpdate bool) error {
	text := SummaryMessage(regID, reg, isUpdate)
	var firstErr error
	for _, chatID := range t.chatIDs {
		msg := tgbotapi.NewMessage(chatID, text)
		if _, err := t.bot.Send(msg); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
