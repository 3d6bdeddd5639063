package user

import (
	"errors"
	"sync"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameExists     = errors.New("username already exists")
	ErrInvalidPassword    = errors.New("password does not meet requirements")
)

// Repository persists users. Create is expected to allocate the user's cart
// atomically with the user row, so a stored user always owns exactly one cart.
type Repository interface {
	GetByID(id int) (User, error)
	GetByUsername(username string) (User, error)
	Create(u User) (User, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu         sync.RWMutex
	users      []User
	nextID     int
	nextCartID int
}

func NewInMemoryRepository(seed []User) *InMemoryRepository {
	repo := &InMemoryRepository{
		users:      make([]User, 0, len(seed)),
		nextID:     1,
		nextCartID: 1,
	}

	maxID := 0
	maxCartID := 0
	for _, u := range seed {
		repo.users = append(repo.users, u)
		if u.ID > maxID {
			maxID = u.ID
		}
		if u.CartID > maxCartID {
			maxCartID = u.CartID
		}
	}

	repo.nextID = maxID + 1
	repo.nextCartID = maxCartID + 1
	return repo
}

func (r *InMemoryRepository) GetByID(id int) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}

	return User{}, ErrNotFound
}

func (r *InMemoryRepository) GetByUsername(username string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}

	return User{}, ErrNotFound
}

func (r *InMemoryRepository) Create(u User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ID == 0 {
		u.ID = r.nextID
		r.nextID++
	}
	if u.CartID == 0 {
		u.CartID = r.nextCartID
		r.nextCartID++
	}

	r.users = append(r.users, u)
	return u, nil
}
