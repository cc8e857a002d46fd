package order

import (
	"github.com/coldlove/cold-love-backend/internal/cart"
)

// Order represents a placed order. OrderItems is a frozen copy of the cart
// at submission time; later cart mutations never touch it.
type Order struct {
	ID              string      `json:"id,omitempty"`
	OrderNumber     string      `json:"order_number"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	DeliveryAddress string      `json:"delivery_address"`
	OrderItems      []cart.Item `json:"order_items"`
	TotalAmount     int         `json:"total_amount"`
	ReferralCode    *string     `json:"referral_code"`
	Status          string      `json:"status"`
	CreatedAt       string      `json:"created_at,omitempty"`
}
