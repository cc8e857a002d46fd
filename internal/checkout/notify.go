package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/coldlove/cold-love-backend/internal/order"
)

// Notifier hands an order summary off to the shop's messaging channel and
// returns the deep link. Dispatch is fire-and-forget: delivery is neither
// awaited nor verified.
type Notifier interface {
	Dispatch(ord order.Order) string
}

// WhatsAppNotifier builds a wa.me compose link prefilled with the order
// summary.
type WhatsAppNotifier struct {
	ShopPhone string
}

func NewWhatsAppNotifier(shopPhone string) *WhatsAppNotifier {
	return &WhatsAppNotifier{ShopPhone: shopPhone}
}

func (n *WhatsAppNotifier) Dispatch(ord order.Order) string {
	return "https://wa.me/" + n.ShopPhone + "?text=" + url.QueryEscape(ComposeMessage(ord))
}

// ComposeMessage renders the order as the plain-text message sent to the
// shop's WhatsApp.
func ComposeMessage(ord order.Order) string {
	var lines []string
	for _, it := range ord.OrderItems {
		lines = append(lines, fmt.Sprintf("- %s x%d (₹%d)", it.Name, it.Quantity, it.Price*it.Quantity))
	}

	referralLabel := "DIRECT"
	if ord.ReferralCode != nil && *ord.ReferralCode != "" {
		referralLabel = *ord.ReferralCode
	}

	var b strings.Builder
	b.WriteString("🍨 *New Order - Cold Love Ice Cream*\n\n")
	fmt.Fprintf(&b, "*Order Number:* %s\n", ord.OrderNumber)
	fmt.Fprintf(&b, "*Customer:* %s\n", ord.CustomerName)
	fmt.Fprintf(&b, "*Phone:* %s\n", ord.CustomerPhone)
	fmt.Fprintf(&b, "*Address:* %s\n\n", ord.DeliveryAddress)
	fmt.Fprintf(&b, "*Items:*\n%s\n\n", strings.Join(lines, "\n"))
	fmt.Fprintf(&b, "*Total:* ₹%d\n", ord.TotalAmount)
	fmt.Fprintf(&b, "*Referral:* %s\n", referralLabel)
	b.WriteString("*Status:* Pending")
	return b.String()
}
