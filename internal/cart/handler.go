// goudace | 2026
// handler.go

package cart

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

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/cart", h.GetCart)
	r.Post("/cart/items", h.AddToCart)
	r.Delete("/cart/items/{cartItemID}", h.RemoveFromCart)
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.GetCart(r.Context(), auth.FromContext(r.Context()))
	if err != nil {
		core.MapError(w, err, "cart")
		return
	}

	core.OK(w, ToCartResponse(entries))
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	row, err := h.service.AddToCart(
		r.Context(),
		auth.FromContext(r.Context()),
		req.ItemID,
	)
	if err != nil {
		core.MapError(w, err, "item")
		return
	}

	core.Created(w, map[string]any{
		"id":       row.ID,
		"item_id":  row.ItemID,
		"quantity": row.Quantity,
	})
}

func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	err := h.service.RemoveFromCart(
		r.Context(),
		auth.FromContext(r.Context()),
		chi.URLParam(r, "cartItemID"),
	)
	if err != nil {
		core.MapError(w, err, "cart item")
		return
	}

	core.NoContent(w)
}
