package order

import (
	"sync"

	"github.com/google/uuid"
)

// Repository defines persistence operations for orders. Orders are
// insert-only; nothing in the flow updates or deletes them.
type Repository interface {
	Create(ord Order) (Order, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []Order

	// Err, when set, is returned by Create to simulate a failing store.
	Err error
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{orders: make([]Order, 0)}
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return Order{}, r.Err
	}

	if ord.ID == "" {
		ord.ID = uuid.NewString()
	}
	r.orders = append(r.orders, ord)
	return ord, nil
}

// All returns a copy of every stored order.
func (r *InMemoryRepository) All() []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, len(r.orders))
	copy(out, r.orders)
	return out
}
