package cart

// Item is one line in a session's cart: a product plus its quantity.
type Item struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Price        int    `json:"price"`
	Quantity     int    `json:"quantity"`
	ImageURL     string `json:"image_url"`
	QuantityInfo string `json:"quantity_info"`
}

// Summary is a cart snapshot with its derived totals.
type Summary struct {
	Items      []Item `json:"items"`
	TotalItems int    `json:"total_items"`
	TotalPrice int    `json:"total_price"`
}

// TotalItems sums quantities over the items.
func TotalItems(items []Item) int {
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return total
}

// TotalPrice sums price multiplied by quantity over the items.
func TotalPrice(items []Item) int {
	total := 0
	for _, it := range items {
		total += it.Price * it.Quantity
	}
	return total
}

// Summarize recomputes the totals from the items. Totals are always derived
// from the collection, never cached.
func Summarize(items []Item) Summary {
	return Summary{
		Items:      items,
		TotalItems: TotalItems(items),
		TotalPrice: TotalPrice(items),
	}
}
