package chat

import "context"

// Client sends plain-text messages to a chat destination.
// This keeps the polling logic independent of the bot library in use.
type Client interface {
	SendMessage(ctx context.Context, destination string, text string) error
}
