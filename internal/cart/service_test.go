package cart

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"ecommerce-backend/internal/item"
	"ecommerce-backend/internal/user"
)

// stub user service backed by the user package's in-memory repository; only
// lookups are exercised by the cart service.
type stubUserService struct {
	repo *user.InMemoryRepository
}

func (s *stubUserService) GetByID(id int) (user.User, error) {
	return s.repo.GetByID(id)
}

func (s *stubUserService) GetByUsername(username string) (user.User, error) {
	return s.repo.GetByUsername(username)
}

func (s *stubUserService) Create(username, password, confirmPassword string) (user.User, error) {
	return s.repo.Create(user.User{Username: username, Password: password})
}

func (s *stubUserService) Authenticate(username, password string) (user.User, error) {
	return s.repo.GetByUsername(username)
}

var _ user.ServiceInterface = (*stubUserService)(nil)

func newTestService(items []item.Item) (*Service, *InMemoryRepository) {
	users := &stubUserService{repo: user.NewInMemoryRepository([]user.User{
		{ID: 1, Username: "alice", CartID: 1},
	})}
	catalog := item.NewService(item.NewInMemoryRepository(items))
	repo := NewInMemoryRepository([]Cart{{ID: 1, UserID: 1}})
	return NewService(repo, users, catalog), repo
}

func TestAddToCart_PersistsMutation(t *testing.T) {
	svc, repo := newTestService([]item.Item{
		{ID: 1, Name: "Round Widget", Price: decimal.RequireFromString("12.34")},
	})

	got, err := svc.AddToCart("alice", 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got.Items))
	}
	if !got.Total.Equal(decimal.RequireFromString("24.68")) {
		t.Fatalf("expected total 24.68, got %s", got.Total)
	}

	stored, err := repo.GetByID(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored.Items) != 2 || !stored.Total.Equal(got.Total) {
		t.Fatalf("mutation not persisted: %+v", stored)
	}
}

func TestAddToCart_UnknownUser(t *testing.T) {
	svc, repo := newTestService([]item.Item{
		{ID: 1, Name: "Round Widget", Price: decimal.RequireFromString("12.34")},
	})

	if _, err := svc.AddToCart("nobody", 1, 1); err != user.ErrNotFound {
		t.Fatalf("expected user.ErrNotFound, got %v", err)
	}

	// no mutation on failure
	stored, _ := repo.GetByID(1)
	if len(stored.Items) != 0 {
		t.Fatalf("cart mutated despite failed resolution: %+v", stored)
	}
}

func TestAddToCart_UnknownItem(t *testing.T) {
	svc, repo := newTestService(nil)

	if _, err := svc.AddToCart("alice", 99, 1); err != item.ErrNotFound {
		t.Fatalf("expected item.ErrNotFound, got %v", err)
	}

	stored, _ := repo.GetByID(1)
	if len(stored.Items) != 0 {
		t.Fatalf("cart mutated despite failed resolution: %+v", stored)
	}
}

func TestAddToCart_RejectsNonPositiveQuantity(t *testing.T) {
	svc, _ := newTestService([]item.Item{
		{ID: 1, Name: "Round Widget", Price: decimal.RequireFromString("12.34")},
	})

	for _, qty := range []int{0, -1} {
		if _, err := svc.AddToCart("alice", 1, qty); err != ErrInvalidQuantity {
			t.Fatalf("expected ErrInvalidQuantity for qty %d, got %v", qty, err)
		}
	}
}

func TestRemoveFromCart_UnderRemovalTolerated(t *testing.T) {
	svc, _ := newTestService([]item.Item{
		{ID: 1, Name: "Round Widget", Price: decimal.RequireFromString("2.99")},
	})

	if _, err := svc.AddToCart("alice", 1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.RemoveFromCart("alice", 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Items) != 0 || !got.Total.IsZero() {
		t.Fatalf("expected empty cart, got %+v", got)
	}
}

func TestAddToCart_ConcurrentSameCart(t *testing.T) {
	svc, repo := newTestService([]item.Item{
		{ID: 1, Name: "Round Widget", Price: decimal.RequireFromString("1.00")},
	})

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := svc.AddToCart("alice", 1, 1); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	stored, err := repo.GetByID(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored.Items) != workers {
		t.Fatalf("lost updates: expected %d entries, got %d", workers, len(stored.Items))
	}
	if !stored.Total.Equal(decimal.NewFromInt(workers)) {
		t.Fatalf("expected total %d, got %s", workers, stored.Total)
	}
}
