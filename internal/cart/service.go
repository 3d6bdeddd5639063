package cart

import (
	"ecommerce-backend/internal/item"
	"ecommerce-backend/internal/user"
)

// ServiceInterface lets the order package read carts without depending on the
// concrete service.
type ServiceInterface interface {
	GetByUsername(username string) (Cart, error)
	GetByCartID(cartID int) (Cart, error)
}

// Service resolves users and items, then drives the cart engine. Existence
// checks live here so the engine only ever sees valid, resolved inputs.
type Service struct {
	repo  Repository
	users user.ServiceInterface
	items item.ServiceInterface
	locks *locker
}

func NewService(repo Repository, users user.ServiceInterface, items item.ServiceInterface) *Service {
	return &Service{
		repo:  repo,
		users: users,
		items: items,
		locks: newLocker(),
	}
}

// AddToCart appends qty occurrences of the item to the user's cart and
// persists the result. The whole read-modify-write runs under the cart's
// lock so concurrent requests for the same user serialize.
func (s *Service) AddToCart(username string, itemID, qty int) (Cart, error) {
	return s.modify(username, itemID, qty, (*Cart).AddItem)
}

// RemoveFromCart removes up to qty occurrences of the item from the user's
// cart and persists the result.
func (s *Service) RemoveFromCart(username string, itemID, qty int) (Cart, error) {
	return s.modify(username, itemID, qty, (*Cart).RemoveItem)
}

func (s *Service) modify(username string, itemID, qty int, mutate func(*Cart, item.Item, int)) (Cart, error) {
	if qty <= 0 {
		return Cart{}, ErrInvalidQuantity
	}

	u, err := s.users.GetByUsername(username)
	if err != nil {
		return Cart{}, err
	}

	it, err := s.items.GetByID(itemID)
	if err != nil {
		return Cart{}, err
	}

	lock := s.locks.forCart(u.CartID)
	lock.Lock()
	defer lock.Unlock()

	c, err := s.repo.GetByID(u.CartID)
	if err != nil {
		return Cart{}, err
	}

	mutate(&c, it, qty)
	return s.repo.Save(c)
}

func (s *Service) GetByUsername(username string) (Cart, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		return Cart{}, err
	}
	return s.repo.GetByID(u.CartID)
}

func (s *Service) GetByCartID(cartID int) (Cart, error) {
	return s.repo.GetByID(cartID)
}

var _ ServiceInterface = (*Service)(nil)
