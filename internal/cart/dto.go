// goudace | 2026
// dto.go

package cart

import (
	"github.com/goudace/shop-backend/internal/catalog"
)

type AddToCartRequest struct {
	ItemID string `json:"item_id" validate:"required,uuid4"`
}

type CartItemResponse struct {
	ID       string               `json:"id"`
	ItemID   string               `json:"item_id"`
	Quantity int                  `json:"quantity"`
	Item     catalog.ItemResponse `json:"item"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total int64              `json:"total"`
}

func ToCartResponse(entries []Entry) CartResponse {
	items := make([]CartItemResponse, 0, len(entries))
	var total int64
	for _, e := range entries {
		items = append(items, CartItemResponse{
			ID:       e.ID,
			ItemID:   e.ItemID,
			Quantity: e.Quantity,
			Item:     catalog.ToItemResponse(&e.Item),
		})
		total += e.Item.Price * int64(e.Quantity)
	}

	return CartResponse{Items: items, Total: total}
}
