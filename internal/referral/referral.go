package referral

// Referral is a promotional partner record from the `referrals` table.
// Codes are stored uppercase; lookups normalize before matching.
type Referral struct {
	ID            string `json:"id"`
	ReferralCode  string `json:"referral_code"`
	ReferralName  string `json:"referral_name"`
	ReferralPhone string `json:"referral_phone"`
	TotalOrders   int    `json:"total_orders"`
	TotalRevenue  int    `json:"total_revenue"`
	IsActive      bool   `json:"is_active"`
}
