package http

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"time"

	"github.com/sablehq/enrolld/internal/enroll/service"
	"github.com/sablehq/enrolld/pkg/httpx"
	"github.com/sablehq/enrolld/pkg/regsdk"
	"github.com/sablehq/enrolld/pkg/slogx"
)

// UsersHandler serves the registration and validation endpoints.
type UsersHandler struct {
	AuthService *service.AuthService
	UserService *service.UserService
}

// HandleCreate registers a new user account.
//
//	@Summary		Register a user
//	@Description	Creates an unvalidated account and sends a four-digit validation
//	@Description	code to its e-mail address. The code must be submitted on the
//	@Description	validate endpoint within the validity window.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		regsdk.CreateUserRequest	true	"Account details"
//	@Success		201		{object}	regsdk.UserResponse			"Created account"
//	@Failure		409		{object}	regsdk.Problem				"E-mail address already registered"
//	@Failure		422		{object}	regsdk.Problem				"Malformed or invalid payload"
//	@Router			/v1/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req regsdk.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		regsdk.ErrInvalidRequest.Write(ctx, w)
		return
	}

	if problems := validateCreateRequest(req); len(problems) > 0 {
		regsdk.ErrInvalidRequest.WithValidationErrors(problems).Write(ctx, w)
		return
	}

	user, err := h.UserService.Register(ctx, req.EmailAddress, req.Password)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	log.Info("user registered", "email", user.EmailAddress)
	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(user, time.Now()))
}

// HandleSelf returns the authenticated account.
//
//	@Summary		Get own account
//	@Description	Returns the account matching the Basic credentials. Only
//	@Description	validated accounts can authenticate here; accounts with a
//	@Description	pending code get their status from the registration response.
//	@Tags			Users
//	@Security		BasicAuth
//	@Produce		json
//	@Success		200	{object}	regsdk.UserResponse	"Account details"
//	@Failure		401	{object}	regsdk.Problem		"Invalid credentials or account not validated"
//	@Router			/v1/users/self [get].
func (h *UsersHandler) HandleSelf(w http.ResponseWriter, r *http.Request) {
	user, ok := resolveBasic(w, r, h.AuthService, true)
	if !ok {
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user, time.Now()))
}

// HandleValidate submits the e-mailed code to validate the account.
//
//	@Summary		Validate own account
//	@Description	Checks the submitted code against the one sent by e-mail and,
//	@Description	on a match, marks the account validated. Sloppy code input
//	@Description	(whitespace, missing or extra leading zeroes) is normalized.
//	@Tags			Users
//	@Security		BasicAuth
//	@Accept			json
//	@Success		204	"Account validated"
//	@Failure		400	{object}	regsdk.Problem	"Incorrect or expired code"
//	@Failure		401	{object}	regsdk.Problem	"Invalid credentials"
//	@Failure		409	{object}	regsdk.Problem	"Account already validated"
//	@Failure		422	{object}	regsdk.Problem	"Malformed payload"
//	@Router			/v1/users/self/validate [post].
func (h *UsersHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := resolveBasic(w, r, h.AuthService, false)
	if !ok {
		return
	}

	var req regsdk.ValidateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		regsdk.ErrInvalidRequest.WithValidationErrors([]regsdk.ValidationError{{
			Type:   "string_pattern_mismatch",
			Loc:    []any{"body", "code"},
			Detail: err.Error(),
		}}).Write(ctx, w)
		return
	}

	// Decoding only runs the code unmarshaler when the field is present;
	// an absent field leaves it empty and must not be treated as a guess.
	if req.Code == "" {
		regsdk.ErrInvalidRequest.WithValidationErrors([]regsdk.ValidationError{{
			Type:   "missing",
			Loc:    []any{"body", "code"},
			Detail: "validation code is required",
		}}).Write(ctx, w)
		return
	}

	if err := h.UserService.Validate(ctx, user, string(req.Code)); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	log.Info("user validated", "email", user.EmailAddress)
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

// validateCreateRequest checks the registration payload the same way the
// API documents it: a parseable e-mail address and a non-empty password.
func validateCreateRequest(req regsdk.CreateUserRequest) []regsdk.ValidationError {
	var problems []regsdk.ValidationError

	if req.EmailAddress == "" {
		problems = append(problems, regsdk.ValidationError{
			Type:   "missing",
			Loc:    []any{"body", "email_address"},
			Detail: "e-mail address is required",
		})
	} else if _, err := mail.ParseAddress(req.EmailAddress); err != nil {
		problems = append(problems, regsdk.ValidationError{
			Type:   "value_error",
			Loc:    []any{"body", "email_address"},
			Detail: "value is not a valid e-mail address",
		})
	}

	if req.Password == "" {
		problems = append(problems, regsdk.ValidationError{
			Type:   "string_too_short",
			Loc:    []any{"body", "password"},
			Detail: "password must not be empty",
		})
	}

	return problems
}
