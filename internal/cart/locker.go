package cart

import "sync"

// locker hands out one mutex per cart id so two requests mutating the same
// cart serialize their read-modify-write cycles while different carts stay
// independent.
type locker struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func newLocker() *locker {
	return &locker{locks: make(map[int]*sync.Mutex)}
}

func (l *locker) forCart(cartID int) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[cartID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[cartID] = m
	}
	return m
}
