package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Client implements chat.Client by posting to a Discord channel over REST.
// No gateway connection is opened.
type Client struct {
	session *discordgo.Session
}

func NewClient(token string) (*Client, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	return &Client{session: s}, nil
}

// SendMessage posts text to the channel identified by destination.
func (c *Client) SendMessage(ctx context.Context, destination string, text string) error {
	_, err := c.session.ChannelMessageSend(destination, text, discordgo.WithContext(ctx))
	return err
}
