package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sablehq/enrolld/internal/enroll/domain"
	"github.com/sablehq/enrolld/internal/enroll/store"
	"github.com/sablehq/enrolld/pkg/cryptox"
)

// AuthService resolves HTTP Basic credentials into user accounts.
//
// Every resolution stalls for a fixed delay before touching the database,
// regardless of outcome, so unknown addresses and wrong passwords are
// indistinguishable by timing. The delay blocks only the calling request.
type AuthService struct {
	Store store.Store

	// Delay is the fixed stall applied to every resolution.
	Delay time.Duration
}

// Resolve authenticates the given credentials and returns the matching
// user.
//
// Returns:
//   - (user, nil) on success
//   - (zero, ErrInvalidCredentials) for unknown addresses and wrong
//     passwords alike
//   - (zero, ErrUserNotValidated) when requireValidated is set and the
//     account has a pending code
func (s *AuthService) Resolve(
	ctx context.Context,
	email, password string,
	requireValidated bool,
) (domain.User, error) {
	if err := sleep(ctx, s.Delay); err != nil {
		return domain.User{}, err
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("lookup user: %w", err)
	}

	ok, err := cryptox.VerifyPassword(user.PasswordHash, password)
	if err != nil {
		return domain.User{}, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return domain.User{}, ErrInvalidCredentials
	}

	if requireValidated && !user.Validated() {
		return domain.User{}, ErrUserNotValidated
	}

	return user, nil
}
