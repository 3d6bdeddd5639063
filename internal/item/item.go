package item

import "github.com/shopspring/decimal"

// Item represents a purchasable catalog entry and maps to the `items` table.
// Items are immutable once created; the catalog is read-only for the cart and
// order packages.
type Item struct {
	ID          int             `json:"itemId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}
