package cart

import "sync"

// Service is the cart state container. All mutations go through it and are
// serialized by the mutex: the cart contract assumes a single writer at a
// time, and HTTP handlers run on multiple goroutines.
type Service struct {
	mu   sync.Mutex
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AddItem inserts the product with quantity 1, or increments its quantity by
// 1 when the id is already in the cart. It never fails for cart-state
// reasons; the returned error only reflects storage problems.
func (s *Service) AddItem(sessionID string, item Item) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.Load(sessionID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		item.Quantity = 1
		items = append(items, item)
	}

	if err := s.repo.Save(sessionID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveItem deletes the line with the given id. An absent id is a no-op,
// not an error.
func (s *Service) RemoveItem(sessionID, id string) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(sessionID, id)
}

// UpdateQuantity sets the line's quantity. A quantity of zero or below
// removes the line entirely. An absent id is a no-op.
func (s *Service) UpdateQuantity(sessionID, id string, quantity int) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return s.removeLocked(sessionID, id)
	}

	items, err := s.repo.Load(sessionID)
	if err != nil {
		return nil, err
	}

	changed := false
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = quantity
			changed = true
			break
		}
	}
	if !changed {
		return items, nil
	}

	if err := s.repo.Save(sessionID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Clear empties the session's cart.
func (s *Service) Clear(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Clear(sessionID)
}

// Items returns a snapshot of the session's cart lines in insertion order.
func (s *Service) Items(sessionID string) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Load(sessionID)
}

// Get returns the cart with its derived totals.
func (s *Service) Get(sessionID string) (Summary, error) {
	items, err := s.Items(sessionID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(items), nil
}

func (s *Service) removeLocked(sessionID, id string) ([]Item, error) {
	items, err := s.repo.Load(sessionID)
	if err != nil {
		return nil, err
	}

	kept := items[:0]
	removed := false
	for _, it := range items {
		if it.ID == id {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	if !removed {
		return items, nil
	}

	if err := s.repo.Save(sessionID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}
