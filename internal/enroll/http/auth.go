package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/sablehq/enrolld/internal/enroll/domain"
	"github.com/sablehq/enrolld/internal/enroll/service"
	"github.com/sablehq/enrolld/pkg/regsdk"
	"github.com/sablehq/enrolld/pkg/slogx"
)

const basicRealm = `Basic realm="enrolld", charset="UTF-8"`

// resolveBasic authenticates the request's Basic credentials through the
// auth service. On failure it writes the problem response and returns
// ok=false; the handler should just return.
func resolveBasic(
	w http.ResponseWriter,
	r *http.Request,
	auth *service.AuthService,
	requireValidated bool,
) (domain.User, bool) {
	ctx := r.Context()

	email, password, hasAuth := r.BasicAuth()
	if !hasAuth {
		w.Header().Set("WWW-Authenticate", basicRealm)
		regsdk.ErrInvalidCredentials.Write(ctx, w)
		return domain.User{}, false
	}

	user, err := auth.Resolve(ctx, email, password, requireValidated)
	if err != nil {
		writeServiceError(ctx, w, err)
		return domain.User{}, false
	}

	return user, true
}

// writeServiceError translates service sentinel errors into problem
// responses. Anything unrecognized is logged and reported as a server error.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		w.Header().Set("WWW-Authenticate", basicRealm)
		regsdk.ErrInvalidCredentials.Write(ctx, w)
	case errors.Is(err, service.ErrUserNotValidated):
		regsdk.ErrUserNotValidated.Write(ctx, w)
	case errors.Is(err, service.ErrAlreadyExists):
		regsdk.ErrAlreadyExists.Write(ctx, w)
	case errors.Is(err, service.ErrUserAlreadyValidated):
		regsdk.ErrUserAlreadyValidated.Write(ctx, w)
	case errors.Is(err, service.ErrExpiredCode):
		regsdk.ErrExpiredCode.Write(ctx, w)
	case errors.Is(err, service.ErrIncorrectCode):
		regsdk.ErrIncorrectCode.Write(ctx, w)
	default:
		slogx.FromContext(ctx).Error("unhandled service error", "error", err)
		regsdk.ErrServerError.Write(ctx, w)
	}
}
