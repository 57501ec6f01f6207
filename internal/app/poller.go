// internal/app/poller.go
package app

import (
	"context"
	"errors"
	"fmt"

	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/infra/config"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// NoNewStatusMessage is recorded when the API reports no homeworks in range.
const NoNewStatusMessage = "Новых статусов нет."

const failureMessageFormat = "Сбой в работе программы: %v"

// Fetcher retrieves the decoded API body for statuses changed since timestamp.
type Fetcher interface {
	Fetch(ctx context.Context, timestamp int64) (any, error)
}

// MessageSender delivers a message to chat.
type MessageSender interface {
	Notify(ctx context.Context, text string) error
}

// Sleeper blocks until the next cycle is due.
type Sleeper interface {
	Sleep()
}

// Poller runs the fetch, compare and notify cycle for the tracked homework.
// It is not safe for concurrent use; Run drives it from a single goroutine.
type Poller struct {
	api      Fetcher
	notifier MessageSender
	sleeper  Sleeper
	logger   *logrus.Entry

	notifyNoNewStatus bool

	timestamp int64
	current   homework.ReportState
	previous  homework.ReportState
}

func NewPoller(api Fetcher, notifier MessageSender, sleeper Sleeper, cfg *config.AppConfig, logger *logrus.Entry) *Poller {
	return &Poller{
		api:               api,
		notifier:          notifier,
		sleeper:           sleeper,
		logger:            logger,
		notifyNoNewStatus: cfg.NotifyOnNoNewStatus,
		timestamp:         cfg.InitialFromDate,
	}
}

// Timestamp returns the from_date cursor used for the next request.
func (p *Poller) Timestamp() int64 {
	return p.timestamp
}

// Run executes cycles forever, sleeping after every one of them.
// ctx is only checked between cycles.
func (p *Poller) Run(ctx context.Context) {
	p.logger.WithField("from_date", p.timestamp).Info("Polling loop started.")
	for ctx.Err() == nil {
		func() {
			defer p.sleeper.Sleep()
			p.RunCycle(ctx)
		}()
	}
	p.logger.Info("Polling loop stopped.")
}

// RunCycle performs one fetch/compare/notify pass. Errors are handled here and never returned.
func (p *Poller) RunCycle(ctx context.Context) {
	log := p.logger.WithFields(logrus.Fields{
		"cycle_id":  uuid.NewString(),
		"from_date": p.timestamp,
	})

	if err := p.safeCheck(ctx, log); err != nil {
		p.handleError(ctx, log, err)
	}
}

func (p *Poller) safeCheck(ctx context.Context, log *logrus.Entry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected panic: %v", r)
		}
	}()
	return p.check(ctx, log)
}

func (p *Poller) check(ctx context.Context, log *logrus.Entry) error {
	body, err := p.api.Fetch(ctx, p.timestamp)
	if err != nil {
		return err
	}
	if ts, ok := homework.CurrentDate(body); ok {
		p.timestamp = ts
	}

	homeworks, err := homework.ExtractHomeworks(body)
	if err != nil {
		return err
	}
	log.WithField("count", len(homeworks)).Info(`Homework list found under "homeworks".`)

	var first homework.Record
	if len(homeworks) == 0 {
		p.current.Message = NoNewStatusMessage
	} else {
		// Only the most recent homework is tracked.
		first, err = homework.AsRecord(homeworks[0])
		if err != nil {
			return err
		}
		p.current = homework.ReportState{Name: first.Name(), Message: first.Status()}
	}

	// An all-empty record still goes to Render so that it is reported as malformed.
	if p.current == p.previous && !p.current.IsZero() {
		log.WithField("homework_name", p.current.Name).Info("Status has not changed, nothing to send.")
		return nil
	}

	if first == nil {
		if !p.notifyNoNewStatus {
			log.Info("No new statuses.")
			return nil
		}
		if err := p.notifier.Notify(ctx, NoNewStatusMessage); err != nil {
			return err
		}
		p.previous = p.current
		return nil
	}

	message, err := homework.Render(first)
	if err != nil {
		return err
	}
	if err := p.notifier.Notify(ctx, message); err != nil {
		return err
	}
	p.previous = p.current
	log.WithField("homework_name", p.current.Name).Info("Status change reported.")
	return nil
}

func (p *Poller) handleError(ctx context.Context, log *logrus.Entry, err error) {
	var notifyErr *NotifyError
	if errors.As(err, &notifyErr) {
		log.WithError(err).Error("Failed to deliver status notification.")
		return
	}

	message := fmt.Sprintf(failureMessageFormat, err)
	log.WithError(err).Error(message)

	p.current.Message = message
	if p.current == p.previous {
		log.Info("Failure already reported, not sending it again.")
		return
	}
	p.previous = p.current

	if err := p.notifier.Notify(ctx, message); err != nil {
		log.WithError(err).Error("Failed to report failure to chat.")
	}
}
