package service

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors returned by the services. HTTP handlers translate these
// into problem responses.
var (
	ErrInvalidCredentials   = errors.New("invalid_credentials")
	ErrUserNotValidated     = errors.New("user_not_validated")
	ErrAlreadyExists        = errors.New("already_exists")
	ErrUserAlreadyValidated = errors.New("user_already_validated")
	ErrExpiredCode          = errors.New("expired_code")
	ErrIncorrectCode        = errors.New("incorrect_code")
)

// sleep waits for d or until the context is cancelled. Used for the
// deliberate stalls that slow down credential and code guessing.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
