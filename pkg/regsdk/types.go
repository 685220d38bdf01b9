package regsdk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/sablehq/enrolld/pkg/cryptox"
)

// User status type discriminators.
const (
	StatusValidated          = "validated"
	StatusAwaitingValidation = "awaiting_validation"
	StatusUnvalidated        = "unvalidated"
)

// UserStatus is the discriminated status union for a user account.
// ExpiresAt is only present for awaiting_validation.
type UserStatus struct {
	Type      string     `json:"type"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// UserResponse is the public representation of a user account.
type UserResponse struct {
	EmailAddress string     `json:"email_address"`
	CreatedAt    time.Time  `json:"created_at"`
	Status       UserStatus `json:"status"`
}

// CreateUserRequest is the payload for registering a new account.
type CreateUserRequest struct {
	EmailAddress string `json:"email_address"`
	Password     string `json:"password"`
}

// ValidationCode is a four-digit account validation code. Unmarshalling
// normalizes sloppy input (surrounding whitespace, missing or extra leading
// zeroes) and rejects anything that is not a JSON string or does not
// normalize to exactly four digits.
type ValidationCode string

var codePattern = regexp.MustCompile(`^[0-9]{4}$`)

// UnmarshalJSON implements json.Unmarshaler.
func (c *ValidationCode) UnmarshalJSON(data []byte) error {
	// Unmarshalling null into a string is a no-op, so it must be rejected
	// explicitly or it would normalize to "0000".
	if bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("validation code must be a string")
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("validation code must be a string")
	}

	normalized := cryptox.NormalizeCode(raw)
	if !codePattern.MatchString(normalized) {
		return fmt.Errorf("validation code must be four digits")
	}

	*c = ValidationCode(normalized)
	return nil
}

// ValidateUserRequest is the payload for submitting a validation code.
type ValidateUserRequest struct {
	Code ValidationCode `json:"code"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
