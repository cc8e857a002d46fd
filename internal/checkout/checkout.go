package checkout

import (
	"errors"
	"fmt"
	"sort"

	"github.com/coldlove/cold-love-backend/internal/referral"
)

// ErrEmptyCart is returned when a submission arrives with nothing in the cart.
var ErrEmptyCart = errors.New("cart is empty")

// Request carries the customer form fields for one submission.
type Request struct {
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	DeliveryAddress string `json:"delivery_address"`
}

// Result is returned on a successful submission. WhatsAppURL is the prefilled
// deep link the client opens to notify the shop.
type Result struct {
	OrderNumber string `json:"order_number"`
	WhatsAppURL string `json:"whatsapp_url"`
}

// ValidationError reports per-field form problems. It blocks submission
// before anything is written.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("validation failed: %v", keys)
}

// PersistenceError wraps a failed order write. The attempt is over but the
// cart and form are untouched, so the user can resubmit.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "order write failed: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// AppliedReferral says whether a validated referral is attached to the
// submission. Record is meaningful only when Valid is true, in the
// database/sql Null* style.
type AppliedReferral struct {
	Valid  bool
	Record referral.Referral
}

// FromState converts a validator snapshot into the referral applied to an
// order. Anything short of a completed valid lookup counts as no referral.
func FromState(st referral.State) AppliedReferral {
	if st.Status != referral.StatusValid {
		return AppliedReferral{}
	}
	return AppliedReferral{Valid: true, Record: st.Record}
}
