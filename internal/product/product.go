package product

// Product represents one catalog entry and maps to the `products` table.
// Prices are whole rupees, no paise.
type Product struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Price        int    `json:"price"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	QuantityInfo string `json:"quantity_info"`
	IsAvailable  bool   `json:"is_available"`
	CreatedAt    string `json:"created_at,omitempty"`
}
