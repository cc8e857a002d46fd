package referral

import (
	"errors"
	"strings"
	"sync"
)

var (
	ErrNotFound = errors.New("referral not found")
)

type Repository interface {
	// FindActiveByCode returns the active referral whose code matches the
	// given one case-insensitively, or ErrNotFound.
	FindActiveByCode(code string) (Referral, error)
	// AddOrderStats credits one order and its revenue to the referral.
	AddOrderStats(id string, revenue int) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records []Referral
}

func NewInMemoryRepository(seed []Referral) *InMemoryRepository {
	r := &InMemoryRepository{records: make([]Referral, 0, len(seed))}
	r.records = append(r.records, seed...)
	return r
}

func (r *InMemoryRepository) FindActiveByCode(code string) (Referral, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	code = strings.ToUpper(strings.TrimSpace(code))
	for _, rec := range r.records {
		if rec.IsActive && strings.ToUpper(rec.ReferralCode) == code {
			return rec, nil
		}
	}
	return Referral{}, ErrNotFound
}

func (r *InMemoryRepository) AddOrderStats(id string, revenue int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rec := range r.records {
		if rec.ID == id {
			rec.TotalOrders++
			rec.TotalRevenue += revenue
			r.records[i] = rec
			return nil
		}
	}
	return ErrNotFound
}
