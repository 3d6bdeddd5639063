package order

import (
	"time"

	"ecommerce-backend/internal/cart"
	"ecommerce-backend/internal/item"
	"ecommerce-backend/internal/user"
)

// Service materializes orders from carts and serves order history.
type Service struct {
	repo  Repository
	users user.ServiceInterface
	carts cart.ServiceInterface
}

func NewService(repo Repository, users user.ServiceInterface, carts cart.ServiceInterface) *Service {
	return &Service{repo: repo, users: users, carts: carts}
}

// Submit snapshots the user's cart into a new persisted order. The total is
// copied from the cart, not recomputed, and the cart itself is left untouched
// after submission.
func (s *Service) Submit(username string) (Order, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		return Order{}, err
	}

	crt, err := s.carts.GetByCartID(u.CartID)
	if err != nil {
		return Order{}, err
	}

	items := make([]item.Item, len(crt.Items))
	copy(items, crt.Items)

	return s.repo.Create(Order{
		UserID:    u.ID,
		Items:     items,
		Total:     crt.Total,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// History returns every order the user has submitted, in whatever order the
// repository yields them.
func (s *Service) History(username string) ([]Order, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByUser(u.ID)
}
