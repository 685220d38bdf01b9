package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/sablehq/enrolld/internal/enroll/domain"
	"github.com/sablehq/enrolld/internal/enroll/store"
	"github.com/sablehq/enrolld/internal/enroll/store/drivers/sqlite"
	"github.com/sablehq/enrolld/pkg/mailx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newTestUsers(t *testing.T, st store.Store) (*UserService, *mailx.MemorySender) {
	t.Helper()

	sender := mailx.NewMemorySender()
	users := &UserService{
		Store:        st,
		Sender:       sender,
		Logger:       slog.New(slog.DiscardHandler),
		From:         "noreply@example.org",
		CodeValidity: time.Minute,
	}
	t.Cleanup(users.Wait)
	return users, sender
}

func registerUser(t *testing.T, users *UserService, email, password string) domain.User {
	t.Helper()

	user, err := users.Register(context.Background(), email, password)
	require.NoError(t, err)
	return user
}

func TestResolve(t *testing.T) {
	st := newTestStore(t)
	users, _ := newTestUsers(t, st)
	auth := &AuthService{Store: st}
	ctx := context.Background()

	user := registerUser(t, users, "john.doe@example.org", "hunter2")
	require.NoError(t, users.Validate(ctx, user, *user.Code))

	t.Run("valid credentials", func(t *testing.T) {
		got, err := auth.Resolve(ctx, "john.doe@example.org", "hunter2", true)
		require.NoError(t, err)
		require.Equal(t, user.ID, got.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := auth.Resolve(ctx, "john.doe@example.org", "wrong", true)
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown address", func(t *testing.T) {
		_, err := auth.Resolve(ctx, "nobody@example.org", "hunter2", true)
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestResolveUnvalidatedUser(t *testing.T) {
	st := newTestStore(t)
	users, _ := newTestUsers(t, st)
	auth := &AuthService{Store: st}
	ctx := context.Background()

	registerUser(t, users, "jane.doe@example.org", "hunter2")

	t.Run("rejected when validation is required", func(t *testing.T) {
		_, err := auth.Resolve(ctx, "jane.doe@example.org", "hunter2", true)
		require.ErrorIs(t, err, ErrUserNotValidated)
	})

	t.Run("accepted when validation is not required", func(t *testing.T) {
		got, err := auth.Resolve(ctx, "jane.doe@example.org", "hunter2", false)
		require.NoError(t, err)
		require.False(t, got.Validated())
	})
}

func TestResolveDelayAppliesToEveryOutcome(t *testing.T) {
	st := newTestStore(t)
	users, _ := newTestUsers(t, st)
	registerUser(t, users, "john.doe@example.org", "hunter2")

	const delay = 50 * time.Millisecond
	auth := &AuthService{Store: st, Delay: delay}
	ctx := context.Background()

	attempts := []struct {
		name     string
		email    string
		password string
	}{
		{name: "unknown address", email: "nobody@example.org", password: "hunter2"},
		{name: "wrong password", email: "john.doe@example.org", password: "wrong"},
	}

	for _, tc := range attempts {
		t.Run(tc.name, func(t *testing.T) {
			start := time.Now()
			_, err := auth.Resolve(ctx, tc.email, tc.password, false)
			require.ErrorIs(t, err, ErrInvalidCredentials)
			require.GreaterOrEqual(t, time.Since(start), delay)
		})
	}
}

func TestResolveCancelledContext(t *testing.T) {
	st := newTestStore(t)
	auth := &AuthService{Store: st, Delay: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := auth.Resolve(ctx, "john.doe@example.org", "hunter2", false)
	require.ErrorIs(t, err, context.Canceled)
}
