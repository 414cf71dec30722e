package wlclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPollTimeoutMillisBlocksIndefinitelyWithNoDeadline(t *testing.T) {
	l := &Loop{}
	assert.Equal(t, -1, l.pollTimeoutMillis())
}

func TestPollTimeoutMillisZeroWhenDeadlinePassed(t *testing.T) {
	past := time.Now().Add(-time.Second)
	l := &Loop{Deadline: func() *time.Time { return &past }}
	assert.Equal(t, 0, l.pollTimeoutMillis())
}

func TestPollTimeoutMillisPositiveWhenDeadlineAhead(t *testing.T) {
	future := time.Now().Add(50 * time.Millisecond)
	l := &Loop{Deadline: func() *time.Time { return &future }}
	got := l.pollTimeoutMillis()
	assert.True(t, got > 0 && got <= 50)
}

func TestRequestExitAndShouldExit(t *testing.T) {
	l := &Loop{}
	assert.False(t, l.ShouldExit())
	l.RequestExit()
	assert.True(t, l.ShouldExit())
}

func TestTrayActionConsumesOnce(t *testing.T) {
	l := &Loop{}
	l.trayAction.Store(true)
	assert.True(t, l.TrayAction())
	assert.False(t, l.TrayAction())
}
