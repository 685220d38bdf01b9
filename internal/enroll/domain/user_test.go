package domain_test

import (
	"testing"
	"time"

	"github.com/sablehq/enrolld/internal/enroll/domain"
	"github.com/stretchr/testify/require"
)

func TestUserStatus(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	code := "0183"

	t.Run("validated when no pending code", func(t *testing.T) {
		u := domain.User{}
		require.True(t, u.Validated())
		require.Equal(t, domain.StatusValidated, u.Status(now))
	})

	t.Run("awaiting validation before deadline", func(t *testing.T) {
		deadline := now.Add(time.Minute)
		u := domain.User{Code: &code, CodeExpiresAt: &deadline}
		require.False(t, u.Validated())
		require.Equal(t, domain.StatusAwaitingValidation, u.Status(now))
	})

	t.Run("unvalidated at and after deadline", func(t *testing.T) {
		deadline := now
		u := domain.User{Code: &code, CodeExpiresAt: &deadline}
		require.Equal(t, domain.StatusUnvalidated, u.Status(now))
		require.Equal(t, domain.StatusUnvalidated, u.Status(now.Add(time.Hour)))
	})
}
