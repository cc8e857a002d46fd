package cart

import "sync"

// Repository persists a session's cart lines. Implementations must preserve
// insertion order across Save/Load.
type Repository interface {
	Load(sessionID string) ([]Item, error)
	Save(sessionID string, items []Item) error
	Clear(sessionID string) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[string][]Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[string][]Item)}
}

func (r *InMemoryRepository) Load(sessionID string) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.carts[sessionID]
	out := make([]Item, len(items))
	copy(out, items)
	return out, nil
}

func (r *InMemoryRepository) Save(sessionID string, items []Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]Item, len(items))
	copy(stored, items)
	r.carts[sessionID] = stored
	return nil
}

func (r *InMemoryRepository) Clear(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
	return nil
}
