package scheduler

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSleeperWaitsFixedInterval(t *testing.T) {
	l, hook := test.NewNullLogger()
	s := NewSleeper(600*time.Second, logrus.NewEntry(l))

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }
	var slept []time.Duration
	s.sleep = func(d time.Duration) { slept = append(slept, d) }

	s.Sleep()
	s.Sleep()

	assert.Equal(t, []time.Duration{600 * time.Second, 600 * time.Second}, slept)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "Sleeping for 10 minutes", hook.LastEntry().Message)
}

func TestSleeperRoundsToWholeSeconds(t *testing.T) {
	l, _ := test.NewNullLogger()
	s := NewSleeper(10*time.Second, logrus.NewEntry(l))

	s.now = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, int(250*time.Millisecond), time.UTC) }
	var slept time.Duration
	s.sleep = func(d time.Duration) { slept = d }

	s.Sleep()
	assert.Equal(t, 9750*time.Millisecond, slept)
}
