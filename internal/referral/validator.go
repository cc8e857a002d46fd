package referral

import (
	"strings"
	"sync"
	"time"
)

// DefaultDebounce is how long the input must stay quiet before a lookup fires.
const DefaultDebounce = 500 * time.Millisecond

type Status int

const (
	// StatusUnvalidated means no code has been entered (or it was cleared).
	StatusUnvalidated Status = iota
	// StatusValid means an active record matched the code.
	StatusValid
	// StatusInvalid covers both "no active match" and "lookup failed"; the
	// two are deliberately not distinguished.
	StatusInvalid
)

// State is a snapshot of the validator's resolution. Record is meaningful
// only when Status is StatusValid.
type State struct {
	Status Status
	Code   string
	Record Referral
}

// Lookup is the read-only slice of the repository the validator needs.
type Lookup interface {
	FindActiveByCode(code string) (Referral, error)
}

// Validator turns incrementally-typed referral codes into a resolved state.
// Input is debounced: only the code still present after the quiet period is
// looked up. Each input bumps a generation counter and a lookup result is
// applied only while its generation is still the latest, so a slow lookup
// superseded by newer input cannot overwrite the newer state.
type Validator struct {
	repo  Lookup
	delay time.Duration

	mu    sync.Mutex
	gen   uint64
	timer *time.Timer
	state State
}

func NewValidator(repo Lookup, delay time.Duration) *Validator {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Validator{repo: repo, delay: delay}
}

// Input feeds one keystroke's worth of code into the validator. Empty input
// resolves immediately to the neutral unvalidated state.
func (v *Validator) Input(code string) {
	code = normalize(code)

	v.mu.Lock()
	defer v.mu.Unlock()

	v.gen++
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}

	if code == "" {
		v.state = State{Status: StatusUnvalidated}
		return
	}

	gen := v.gen
	v.timer = time.AfterFunc(v.delay, func() {
		v.lookup(gen, code)
	})
}

// ValidateNow runs the lookup immediately, bypassing the debounce. Used for
// codes arriving through a shared link rather than typed input. It bumps the
// generation so any pending debounced lookup is superseded.
func (v *Validator) ValidateNow(code string) State {
	code = normalize(code)

	v.mu.Lock()
	v.gen++
	gen := v.gen
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
	if code == "" {
		v.state = State{Status: StatusUnvalidated}
		v.mu.Unlock()
		return v.state
	}
	v.mu.Unlock()

	v.lookup(gen, code)
	return v.State()
}

// State returns the current resolution snapshot.
func (v *Validator) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *Validator) lookup(gen uint64, code string) {
	rec, err := v.repo.FindActiveByCode(code)

	v.mu.Lock()
	defer v.mu.Unlock()

	// a newer input has arrived while the lookup was in flight
	if gen != v.gen {
		return
	}

	if err != nil {
		v.state = State{Status: StatusInvalid, Code: code}
		return
	}
	v.state = State{Status: StatusValid, Code: rec.ReferralCode, Record: rec}
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
