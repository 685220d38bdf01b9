package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sablehq/enrolld/internal/enroll/domain"
	"github.com/sablehq/enrolld/internal/enroll/store"
	"github.com/sablehq/enrolld/pkg/cryptox"
	"github.com/sablehq/enrolld/pkg/idx"
	"github.com/sablehq/enrolld/pkg/mailx"
)

const (
	codeMailSubject = "Your account validation code"
	codeMailBody    = "Hello there!\n\nHere's your account verification code: %s\n\nSee you in a bit!\n"
)

// UserService handles account registration and validation.
type UserService struct {
	Store  store.Store
	Sender mailx.Sender
	Logger *slog.Logger

	// From is the sender address on validation e-mails.
	From string

	// CodeValidity is how long a validation code stays usable.
	CodeValidity time.Duration

	// CodeCheckDelay is the fixed stall before comparing a submitted code,
	// slowing down brute force over the 10000-code space.
	CodeCheckDelay time.Duration

	// SendTimeout bounds each background e-mail delivery.
	SendTimeout time.Duration

	// Now returns the current time. Defaults to time.Now; overridable in tests.
	Now func() time.Time

	wg sync.WaitGroup
}

func (s *UserService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Register creates a new unvalidated account and dispatches the validation
// code to its e-mail address in the background. The response does not wait
// for, or reveal the outcome of, the delivery.
//
// Returns ErrAlreadyExists if the address is taken.
func (s *UserService) Register(ctx context.Context, email, password string) (domain.User, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	code, err := cryptox.GenerateCode()
	if err != nil {
		return domain.User{}, fmt.Errorf("generate code: %w", err)
	}

	now := s.now().UTC()
	expiresAt := now.Add(s.CodeValidity)

	user := domain.User{
		ID:            idx.New().String(),
		EmailAddress:  email,
		PasswordHash:  hash,
		Code:          &code,
		CodeExpiresAt: &expiresAt,
		CreatedAt:     now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrAlreadyExists
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	s.dispatchCode(user.EmailAddress, code)

	return user, nil
}

// dispatchCode sends the validation code without blocking the caller. The
// request context is not reused so the delivery survives the response.
func (s *UserService) dispatchCode(to, code string) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		timeout := s.SendTimeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := s.Sender.Send(ctx, mailx.Message{
			From:    s.From,
			To:      to,
			Subject: codeMailSubject,
			Body:    fmt.Sprintf(codeMailBody, code),
		})
		if err != nil {
			s.Logger.Error("failed to send validation code", "to", to, "error", err)
		}
	}()
}

// Wait blocks until all in-flight code deliveries have finished. Called
// during shutdown.
func (s *UserService) Wait() {
	s.wg.Wait()
}

// Validate checks the submitted code against the user's pending one and
// marks the account validated on a match. The comparison is preceded by a
// fixed stall and runs in constant time.
//
// Returns:
//   - ErrUserAlreadyValidated when no code is pending
//   - ErrExpiredCode when the pending code is past its deadline
//   - ErrIncorrectCode on a mismatch
func (s *UserService) Validate(ctx context.Context, user domain.User, code string) error {
	if user.Validated() {
		return ErrUserAlreadyValidated
	}

	if user.CodeExpiresAt == nil || !s.now().Before(*user.CodeExpiresAt) {
		s.Logger.Warn("validation attempt with expired code", "email", user.EmailAddress)
		return ErrExpiredCode
	}

	// Stall before comparing, so guessing through the 10000-code space is
	// impractical within the validity window.
	if err := sleep(ctx, s.CodeCheckDelay); err != nil {
		return err
	}

	normalized := cryptox.NormalizeCode(code)
	if subtle.ConstantTimeCompare([]byte(normalized), []byte(*user.Code)) != 1 {
		return ErrIncorrectCode
	}

	// The user snapshot comes from credential resolution and may be stale
	// by the time the code matches. Re-check and clear in one transaction
	// so concurrent submissions cannot both clear the code.
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Users().GetUserByEmail(ctx, user.EmailAddress)
		if err != nil {
			return fmt.Errorf("lookup user: %w", err)
		}
		if current.Validated() {
			return ErrUserAlreadyValidated
		}
		return tx.Users().ClearCode(ctx, user.ID)
	})
	if err != nil {
		if errors.Is(err, ErrUserAlreadyValidated) {
			return ErrUserAlreadyValidated
		}
		return fmt.Errorf("clear code: %w", err)
	}

	return nil
}
