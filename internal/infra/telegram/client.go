// internal/infra/telegram/client.go
package telegram

import (
	"context"
	"fmt"

	"gopkg.in/telebot.v3"
)

// chatRecipient addresses a chat by its raw ID or @username.
type chatRecipient string

func (r chatRecipient) Recipient() string { return string(r) }

// TelebotAdapter implements chat.Client using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

// NewBot creates a send-only bot. Offline mode skips the getMe call at startup.
func NewBot(token, apiURL string) (*telebot.Bot, error) {
	bot, err := telebot.NewBot(telebot.Settings{
		URL:     apiURL,
		Token:   token,
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return bot, nil
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// SendMessage sends a plain text message to the destination chat.
func (tba *TelebotAdapter) SendMessage(ctx context.Context, destination string, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := tba.bot.Send(chatRecipient(destination), text, &telebot.SendOptions{ParseMode: telebot.ModeDefault})
	return err
}
