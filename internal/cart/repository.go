package cart

import (
	"errors"
	"sync"

	"ecommerce-backend/internal/item"
)

var (
	ErrNotFound        = errors.New("cart not found")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// Repository persists carts. Save writes the whole item sequence and total in
// one update, matching the engine's exclusive-access contract.
type Repository interface {
	GetByID(cartID int) (Cart, error)
	Save(c Cart) (Cart, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[int]Cart
}

func NewInMemoryRepository(seed []Cart) *InMemoryRepository {
	r := &InMemoryRepository{carts: make(map[int]Cart, len(seed))}
	for _, c := range seed {
		r.carts[c.ID] = c
	}
	return r
}

func (r *InMemoryRepository) GetByID(cartID int) (Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.carts[cartID]
	if !ok {
		return Cart{}, ErrNotFound
	}

	// hand out a copy so engine mutations never alias the stored slice
	items := make([]item.Item, len(c.Items))
	copy(items, c.Items)
	c.Items = items
	return c, nil
}

func (r *InMemoryRepository) Save(c Cart) (Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[c.ID] = c
	return c, nil
}
