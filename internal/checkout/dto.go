// goudace | 2026
// dto.go

package checkout

type CreateOrderRequest struct {
	Token string `json:"token" validate:"required"`
}
