package checkout

import (
	"net/url"
	"strings"
	"testing"

	"github.com/coldlove/cold-love-backend/internal/cart"
	"github.com/coldlove/cold-love-backend/internal/order"
)

func sampleOrder() order.Order {
	return order.Order{
		OrderNumber:     "ORD20260901120000",
		CustomerName:    "Priya",
		CustomerPhone:   "9876543210",
		DeliveryAddress: "12 MG Road, Delhi",
		OrderItems: []cart.Item{
			{ID: "prod_4", Name: "Mocha Ice Cream Sandwich", Price: 169, Quantity: 1},
			{ID: "prod_11", Name: "Chocolate Scoop", Price: 99, Quantity: 2},
		},
		TotalAmount: 367,
		Status:      "pending",
	}
}

func TestComposeMessage_ItemizesWithSubtotals(t *testing.T) {
	msg := ComposeMessage(sampleOrder())

	for _, want := range []string{
		"*Order Number:* ORD20260901120000",
		"*Customer:* Priya",
		"*Phone:* 9876543210",
		"*Address:* 12 MG Road, Delhi",
		"- Mocha Ice Cream Sandwich x1 (₹169)",
		"- Chocolate Scoop x2 (₹198)",
		"*Total:* ₹367",
		"*Referral:* DIRECT",
		"*Status:* Pending",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestComposeMessage_UsesReferralCodeWhenPresent(t *testing.T) {
	ord := sampleOrder()
	code := "SAVE10"
	ord.ReferralCode = &code

	msg := ComposeMessage(ord)
	if !strings.Contains(msg, "*Referral:* SAVE10") {
		t.Fatalf("expected referral code in message:\n%s", msg)
	}
	if strings.Contains(msg, "DIRECT") {
		t.Fatalf("DIRECT sentinel should not appear with a referral:\n%s", msg)
	}
}

func TestDispatch_BuildsEncodedDeepLink(t *testing.T) {
	n := NewWhatsAppNotifier("918810544170")
	link := n.Dispatch(sampleOrder())

	if !strings.HasPrefix(link, "https://wa.me/918810544170?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	decoded := u.Query().Get("text")
	if decoded != ComposeMessage(sampleOrder()) {
		t.Fatalf("decoded text does not round-trip:\n%s", decoded)
	}
}
