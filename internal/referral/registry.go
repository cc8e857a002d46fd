package referral

import (
	"sync"
	"time"
)

// Registry hands out one Validator per session so each browser's typing
// stream debounces independently.
type Registry struct {
	repo  Lookup
	delay time.Duration

	mu         sync.Mutex
	validators map[string]*Validator
}

func NewRegistry(repo Lookup, delay time.Duration) *Registry {
	return &Registry{
		repo:       repo,
		delay:      delay,
		validators: make(map[string]*Validator),
	}
}

func (r *Registry) For(sessionID string) *Validator {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.validators[sessionID]
	if !ok {
		// TODO: evict validators for sessions idle longer than the cookie lifetime
		v = NewValidator(r.repo, r.delay)
		r.validators[sessionID] = v
	}
	return v
}
