// goudace | 2026
// handler.go

package checkout

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/goudace/shop-backend/internal/auth"
	"github.com/goudace/shop-backend/internal/core"
	"github.com/goudace/shop-backend/internal/order"
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

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/orders", h.CreateOrder)
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	o, items, err := h.service.CreateOrder(
		r.Context(),
		auth.FromContext(r.Context()),
		req.Token,
	)
	if err != nil {
		core.MapError(w, err, "order")
		return
	}

	core.Created(w, order.ToOrderResponse(o, items))
}
