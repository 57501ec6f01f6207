// internal/app/notifier.go
package app

import (
	"context"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/chat"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// NotifyError marks a failure to deliver a chat message.
// It is logged only and never reported to chat itself.
type NotifyError struct {
	Err error
}

func (e *NotifyError) Error() string {
	return fmt.Sprintf("failed to send message: %v", e.Err)
}

func (e *NotifyError) Unwrap() error { return e.Err }

// Notifier delivers messages to the configured chat destination.
type Notifier struct {
	client      chat.Client
	destination string
	limiter     *rate.Limiter
	logger      *logrus.Entry
}

func NewNotifier(client chat.Client, destination string, logger *logrus.Entry) *Notifier {
	return &Notifier{
		client:      client,
		destination: destination,
		limiter:     rate.NewLimiter(rate.Every(time.Second), 1), // Telegram allows ~1 msg/s per chat
		logger:      logger,
	}
}

// Notify sends exactly one message. Failures are returned as *NotifyError.
func (n *Notifier) Notify(ctx context.Context, text string) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return &NotifyError{Err: err}
	}

	if err := n.client.SendMessage(ctx, n.destination, text); err != nil {
		n.logger.WithError(err).WithField("destination", n.destination).Error("Message could not be sent.")
		return &NotifyError{Err: err}
	}

	n.logger.WithField("destination", n.destination).Info("Message sent.")
	return nil
}
