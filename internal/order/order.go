package order

import (
	"github.com/shopspring/decimal"

	"ecommerce-backend/internal/item"
)

// Order is an immutable record of a submitted cart. Items is a snapshot taken
// at submission time and never tracks later cart mutations.
type Order struct {
	ID        int             `json:"orderId"`
	UserID    int             `json:"userId"`
	Items     []item.Item     `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt string          `json:"createdAt,omitempty"`
}
