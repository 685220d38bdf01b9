package service

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHousekeepingLifecycle(t *testing.T) {
	st := newTestStore(t)
	users, _ := newTestUsers(t, st)

	// Leave behind a dead-end account for the survey to find.
	user := registerUser(t, users, "stuck@example.org", "hunter2")
	require.NotNil(t, user.Code)

	hk := NewHousekeepingService(st, slog.New(slog.DiscardHandler), time.Hour)
	hk.Start()
	hk.Stop() // must not hang or panic
}

func TestHousekeepingDefaultInterval(t *testing.T) {
	st := newTestStore(t)

	hk := NewHousekeepingService(st, slog.New(slog.DiscardHandler), 0)
	require.Equal(t, time.Hour, hk.Interval)
}
