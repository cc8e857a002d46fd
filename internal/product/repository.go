package product

import (
	"errors"
	"sort"
	"sync"
)

var (
	ErrNotFound = errors.New("product not found")
)

type Repository interface {
	// ListAvailable returns available products ordered by name.
	ListAvailable() ([]Product, error)
	GetByID(id string) (Product, error)
	// ListByIDs returns the products whose id is present in the provided
	// slice, ordered the same way as the ids argument. An empty slice
	// returns an empty result without querying.
	ListByIDs(ids []string) ([]Product, error)
	// UpsertByName inserts products, updating existing rows that share the
	// same name. Used only by catalog seeding.
	UpsertByName(products []Product) error
}

// InMemoryRepository is a simple in-memory implementation useful for tests and
// seeding local data.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Product, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) ListAvailable() ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0, len(r.storage))
	for _, p := range r.storage {
		if p.IsAvailable {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryRepository) GetByID(id string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) ListByIDs(ids []string) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0, len(ids))
	for _, id := range ids {
		for _, p := range r.storage {
			if p.ID == id {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (r *InMemoryRepository) UpsertByName(products []Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range products {
		replaced := false
		for i, existing := range r.storage {
			if existing.Name == p.Name {
				p.ID = existing.ID
				r.storage[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			r.storage = append(r.storage, p)
		}
	}
	return nil
}
