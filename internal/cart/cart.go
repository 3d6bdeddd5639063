package cart

import (
	"github.com/shopspring/decimal"

	"ecommerce-backend/internal/item"
)

// Cart holds an ordered item sequence and a running total. Quantity is
// represented by repeated entries, not a count field, so the same item may
// appear many times. Invariant: Total equals the sum of all item prices in
// Items after every mutation.
type Cart struct {
	ID     int             `json:"cartId"`
	UserID int             `json:"userId"`
	Items  []item.Item     `json:"items"`
	Total  decimal.Decimal `json:"total"`
}

// AddItem appends it to the item sequence qty times and recomputes the total.
// Callers must validate qty > 0 and hand in a resolved item; the engine does
// no existence checks itself.
func (c *Cart) AddItem(it item.Item, qty int) {
	for i := 0; i < qty; i++ {
		c.Items = append(c.Items, it)
	}
	c.recomputeTotal()
}

// RemoveItem removes up to qty occurrences of it (matched by id, first to
// last) and recomputes the total. Removing more occurrences than present is
// tolerated and simply removes all of them.
func (c *Cart) RemoveItem(it item.Item, qty int) {
	remaining := qty
	kept := c.Items[:0]
	for _, entry := range c.Items {
		if remaining > 0 && entry.ID == it.ID {
			remaining--
			continue
		}
		kept = append(kept, entry)
	}
	c.Items = kept
	c.recomputeTotal()
}

// recomputeTotal resums every price in insertion order rather than adjusting
// the total incrementally, so interleaved add/remove sequences cannot drift.
func (c *Cart) recomputeTotal() {
	total := decimal.Zero
	for _, entry := range c.Items {
		total = total.Add(entry.Price)
	}
	c.Total = total
}
