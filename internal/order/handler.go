// goudace | 2026
// handler.go

package order

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/goudace/shop-backend/internal/auth"
	"github.com/goudace/shop-backend/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/orders", h.ListMine)
	r.Get("/orders/{orderID}", h.GetOrder)
}

func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/admin/orders", h.ListAll)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	o, items, err := h.service.GetOrder(
		r.Context(),
		auth.FromContext(r.Context()),
		chi.URLParam(r, "orderID"),
	)
	if err != nil {
		core.MapError(w, err, "order")
		return
	}

	core.OK(w, ToOrderResponse(o, items))
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListMine(r.Context(), auth.FromContext(r.Context()))
	if err != nil {
		core.MapError(w, err, "orders")
		return
	}

	core.OK(w, ToOrderListResponse(orders))
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListAll(r.Context(), auth.FromContext(r.Context()))
	if err != nil {
		core.MapError(w, err, "orders")
		return
	}

	core.OK(w, ToOrderListResponse(orders))
}
