package http

import (
	"time"

	"github.com/sablehq/enrolld/internal/enroll/domain"
	"github.com/sablehq/enrolld/pkg/regsdk"
)

// toUserResponse maps a domain user onto the wire representation, deriving
// the status union at the given instant.
func toUserResponse(u domain.User, now time.Time) regsdk.UserResponse {
	status := regsdk.UserStatus{Type: u.Status(now)}
	if status.Type == domain.StatusAwaitingValidation {
		at := u.CodeExpiresAt.UTC()
		status.ExpiresAt = &at
	}

	return regsdk.UserResponse{
		EmailAddress: u.EmailAddress,
		CreatedAt:    u.CreatedAt.UTC(),
		Status:       status,
	}
}
