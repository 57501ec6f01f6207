package scheduler

import (
	"time"

	"github.com/hako/durafmt"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Sleeper blocks the caller until the next fixed-interval tick.
// The wait cannot be interrupted.
type Sleeper struct {
	schedule cron.Schedule
	interval time.Duration
	logger   *logrus.Entry

	now   func() time.Time
	sleep func(time.Duration)
}

// NewSleeper returns a Sleeper firing every interval (rounded to whole seconds, minimum 1s).
func NewSleeper(interval time.Duration, logger *logrus.Entry) *Sleeper {
	return &Sleeper{
		schedule: cron.Every(interval),
		interval: interval,
		logger:   logger,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// Sleep waits until the next tick measured from now.
func (s *Sleeper) Sleep() {
	now := s.now()
	wait := s.schedule.Next(now).Sub(now)
	s.logger.WithField("next_check_at", now.Add(wait).Format(time.RFC3339)).
		Infof("Sleeping for %s", durafmt.Parse(s.interval).LimitFirstN(2).String())
	s.sleep(wait)
}
