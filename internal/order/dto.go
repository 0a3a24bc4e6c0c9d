// goudace | 2026
// dto.go

package order

import "time"

type OrderItemResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	LargeImage  string `json:"large_image"`
	Quantity    int    `json:"quantity"`
}

type OrderResponse struct {
	ID        string              `json:"id"`
	UserID    string              `json:"user_id"`
	Total     int64               `json:"total"`
	ChargeID  string              `json:"charge_id"`
	CreatedAt time.Time           `json:"created_at"`
	Items     []OrderItemResponse `json:"items,omitempty"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

func ToOrderResponse(o *Order, items []OrderItem) OrderResponse {
	resp := OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		Total:     o.Total,
		ChargeID:  o.ChargeID,
		CreatedAt: o.CreatedAt,
	}

	for _, item := range items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			Price:       item.Price,
			Image:       item.Image,
			LargeImage:  item.LargeImage,
			Quantity:    item.Quantity,
		})
	}

	return resp
}

func ToOrderListResponse(orders []Order) OrderListResponse {
	resp := OrderListResponse{Orders: make([]OrderResponse, 0, len(orders))}
	for i := range orders {
		resp.Orders = append(resp.Orders, ToOrderResponse(&orders[i], nil))
	}
	return resp
}
