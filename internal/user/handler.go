// goudace | 2026
// handler.go

package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/goudace/shop-backend/internal/auth"
	"github.com/goudace/shop-backend/internal/core"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Route("/admin/users", func(r chi.Router) {
		r.Get("/", h.ListUsers)
		r.Put("/{userID}/permissions", h.UpdatePermissions)
	})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context(), auth.FromContext(r.Context()))
	if err != nil {
		core.MapError(w, err, "users")
		return
	}

	core.OK(w, UserListResponse{Users: ToUserResponseList(users)})
}

func (h *Handler) UpdatePermissions(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "userID")

	var req UpdatePermissionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	updated, err := h.service.UpdatePermissions(
		r.Context(),
		auth.FromContext(r.Context()),
		targetID,
		req.Permissions,
	)
	if err != nil {
		core.MapError(w, err, "user")
		return
	}

	core.OK(w, ToUserResponse(updated))
}
