// goudace | 2026
// handler.go

package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/goudace/shop-backend/internal/core"
	"github.com/goudace/shop-backend/internal/session"
)

type Handler struct {
	service   *Service
	sessions  *session.Manager
	validator *validator.Validate
}

func NewHandler(service *Service, sessions *session.Manager) *Handler {
	return &Handler{
		service:   service,
		sessions:  sessions,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/signup", h.Signup)
	r.Post("/signin", h.Signin)
	r.Post("/signout", h.Signout)
	r.Post("/request-reset", h.RequestReset)
	r.Post("/reset-password", h.ResetPassword)
	r.Get("/me", h.Me)
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	record, token, err := h.service.Signup(r.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			core.JSONError(w, core.DuplicateError("email"))
			return
		}
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "passwords do not match")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	h.sessions.SetCookie(w, token)
	core.Created(w, ToUserResponse(record))
}

func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	record, token, err := h.service.Signin(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			core.JSONError(
				w,
				core.UnauthorizedError("invalid email or password"),
			)
			return
		}
		core.InternalServerError(w, err)
		return
	}

	h.sessions.SetCookie(w, token)
	core.OK(w, ToUserResponse(record))
}

func (h *Handler) Signout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w)
	core.OK(w, MessageResponse{Message: "Goodbye"})
}

// Me tolerates anonymous access: no valid session means a null user, not an
// error.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	record, err := h.service.Me(r.Context(), FromContext(r.Context()))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.OK(w, nil)
			return
		}
		core.InternalServerError(w, err)
		return
	}

	if record == nil {
		core.OK(w, nil)
		return
	}

	core.OK(w, ToUserResponse(record))
}

func (h *Handler) RequestReset(w http.ResponseWriter, r *http.Request) {
	var req RequestResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if err := h.service.RequestReset(r.Context(), req.Email); err != nil {
		if errors.Is(err, ErrNoSuchUser) {
			core.NotFound(w, "user")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, MessageResponse{Message: "Thanks!"})
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	record, token, err := h.service.ResetPassword(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrResetTokenInvalid) {
			core.JSONError(w, core.NewAppError(
				core.ErrInvalidInput,
				"token is invalid or expired",
				http.StatusBadRequest,
				"RESET_TOKEN_INVALID",
			))
			return
		}
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, err.Error())
			return
		}
		core.InternalServerError(w, err)
		return
	}

	h.sessions.SetCookie(w, token)
	core.OK(w, ToUserResponse(record))
}
