// goudace | 2026
// handler.go

package catalog

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
	r.Get("/items", h.ListItems)
	r.Get("/items/{itemID}", h.GetItem)
	r.Get("/categories", h.ListCategories)
	r.Get("/subcategories", h.ListSubcategories)
}

func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/admin/items", h.CreateItem)
	r.Put("/admin/items/{itemID}", h.UpdateItem)
	r.Delete("/admin/items/{itemID}", h.DeleteItem)
}

func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListItems(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ItemListResponse{Items: ToItemResponseList(items)})
}

func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.GetItem(r.Context(), chi.URLParam(r, "itemID"))
	if err != nil {
		core.MapError(w, err, "item")
		return
	}

	core.OK(w, ToItemResponse(item))
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, CategoryResponse{ID: c.ID, Name: c.Name})
	}

	core.OK(w, responses)
}

func (h *Handler) ListSubcategories(w http.ResponseWriter, r *http.Request) {
	subcategories, err := h.service.ListSubcategories(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	responses := make([]SubcategoryResponse, 0, len(subcategories))
	for _, s := range subcategories {
		responses = append(responses, SubcategoryResponse{
			ID:         s.ID,
			Name:       s.Name,
			CategoryID: s.CategoryID,
		})
	}

	core.OK(w, responses)
}

func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	item, err := h.service.CreateItem(r.Context(), auth.FromContext(r.Context()), req)
	if err != nil {
		core.MapError(w, err, "item")
		return
	}

	core.Created(w, ToItemResponse(item))
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	item, err := h.service.UpdateItem(
		r.Context(),
		auth.FromContext(r.Context()),
		chi.URLParam(r, "itemID"),
		req,
	)
	if err != nil {
		core.MapError(w, err, "item")
		return
	}

	core.OK(w, ToItemResponse(item))
}

func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteItem(
		r.Context(),
		auth.FromContext(r.Context()),
		chi.URLParam(r, "itemID"),
	)
	if err != nil {
		core.MapError(w, err, "item")
		return
	}

	core.NoContent(w)
}
