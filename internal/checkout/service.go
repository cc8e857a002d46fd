package checkout

import (
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/coldlove/cold-love-backend/internal/cart"
	"github.com/coldlove/cold-love-backend/internal/order"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// StatsUpdater is the slice of the referral repository the workflow needs
// after an order lands.
type StatsUpdater interface {
	AddOrderStats(id string, revenue int) error
}

// Service runs the checkout workflow: validate the form, snapshot the cart,
// persist the order, credit the referral, dispatch the notification, clear
// the cart. Steps stay in that order.
type Service struct {
	carts     *cart.Service
	orders    order.Repository
	referrals StatsUpdater
	notifier  Notifier
	now       func() time.Time
}

func NewService(carts *cart.Service, orders order.Repository, referrals StatsUpdater, notifier Notifier) *Service {
	return &Service{
		carts:     carts,
		orders:    orders,
		referrals: referrals,
		notifier:  notifier,
		now:       time.Now,
	}
}

// WithClock overrides the time source. Tests use it to pin order numbers.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Submit places an order for the session's cart. On failure nothing is
// cleared, so the same cart and form can be resubmitted; each attempt gets a
// freshly generated order number.
func (s *Service) Submit(sessionID string, req Request, ref AppliedReferral) (Result, error) {
	if err := validate(req); err != nil {
		return Result{}, err
	}

	items, err := s.carts.Items(sessionID)
	if err != nil {
		return Result{}, &PersistenceError{Err: err}
	}
	if len(items) == 0 {
		return Result{}, ErrEmptyCart
	}

	// generated once per attempt; the number shown to the user is the number
	// persisted
	orderNumber := generateOrderNumber(s.now())

	snapshot := make([]cart.Item, len(items))
	copy(snapshot, items)

	var referralCode *string
	if ref.Valid {
		code := ref.Record.ReferralCode
		referralCode = &code
	}

	total := cart.TotalPrice(snapshot)
	ord := order.Order{
		OrderNumber:     orderNumber,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		DeliveryAddress: req.DeliveryAddress,
		OrderItems:      snapshot,
		TotalAmount:     total,
		ReferralCode:    referralCode,
		Status:          "pending",
		CreatedAt:       s.now().UTC().Format(time.RFC3339),
	}

	created, err := s.orders.Create(ord)
	if err != nil {
		return Result{}, &PersistenceError{Err: err}
	}

	// best-effort: the order is already placed, a failed stat update must
	// not fail the checkout
	if ref.Valid {
		if err := s.referrals.AddOrderStats(ref.Record.ID, total); err != nil {
			log.Printf("warning: could not update referral stats for %s: %v", ref.Record.ReferralCode, err)
		}
	}

	link := s.notifier.Dispatch(created)

	if err := s.carts.Clear(sessionID); err != nil {
		log.Printf("warning: could not clear cart for session %s: %v", sessionID, err)
	}

	return Result{OrderNumber: orderNumber, WhatsAppURL: link}, nil
}

func generateOrderNumber(now time.Time) string {
	return "ORD" + now.UTC().Format("20060102150405")
}

func validate(req Request) error {
	fields := map[string]string{}
	if strings.TrimSpace(req.CustomerName) == "" {
		fields["customer_name"] = "Name is required"
	}
	if req.CustomerPhone == "" {
		fields["customer_phone"] = "Phone number is required"
	} else if !phonePattern.MatchString(req.CustomerPhone) {
		fields["customer_phone"] = "Please enter a valid 10-digit phone number"
	}
	if strings.TrimSpace(req.DeliveryAddress) == "" {
		fields["delivery_address"] = "Address is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
