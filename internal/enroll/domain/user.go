package domain

import "time"

// User status values, derived from the code columns rather than stored.
const (
	StatusValidated          = "validated"
	StatusAwaitingValidation = "awaiting_validation"
	StatusUnvalidated        = "unvalidated"
)

type User struct {
	ID            string
	EmailAddress  string
	PasswordHash  string     // pbkdf2-sha256 encoded
	Code          *string    // pending validation code (nullable)
	CodeExpiresAt *time.Time // validity deadline for Code (nullable)
	CreatedAt     time.Time
}

// Validated reports whether the account has completed validation, i.e. its
// pending code has been cleared.
func (u User) Validated() bool {
	return u.Code == nil
}

// Status derives the account status at the given instant. An account with a
// pending code is awaiting_validation until the code's deadline passes, then
// unvalidated; clearing the code makes it validated.
func (u User) Status(now time.Time) string {
	if u.Code == nil {
		return StatusValidated
	}
	if u.CodeExpiresAt != nil && now.Before(*u.CodeExpiresAt) {
		return StatusAwaitingValidation
	}
	return StatusUnvalidated
}
