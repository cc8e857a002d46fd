package product

import (
	"fmt"
	"strings"
	"time"
)

type seedEntry struct {
	name         string
	category     string
	price        int
	quantityInfo string
}

var seedCatalog = []seedEntry{
	{"Valentine's Special Mango Raspberry Ice Cream Cake", "Valentine's Day Special", 2119, "1 kg"},
	{"Dark Chocolate Caramel Crunch Mini Bar", "Mini Ice Cream Bars (Low Calorie)", 149, "Pack of 2"},
	{"Sugar-Free Chocolate Mini Bar", "Mini Ice Cream Bars (Low Calorie)", 169, "Pack of 2"},
	{"Mocha Ice Cream Sandwich", "Ice Cream Sandwiches (Low Calorie)", 169, "1 piece"},
	{"Vanilla Choco Chip Ice Cream Sandwich", "Ice Cream Sandwiches (Low Calorie)", 169, "1 piece"},
	{"Mango Strawberry Ice Cream Sandwich", "Ice Cream Sandwiches (Low Calorie)", 169, "1 piece"},
	{"Sugar-Free Strawberry Ice Cream", "Sugar Free & Vegan Ice Cream (Low Cal)", 159, "1 Cup, 120 Ml"},
	{"Sugar-Free Chocolate Ice Cream", "Sugar Free & Vegan Ice Cream (Low Cal)", 159, "1 Cup, 120 Ml"},
	{"Sugar-Free Mixed-Berry Ice Cream", "Sugar Free & Vegan Ice Cream (Low Cal)", 159, "1 Cup, 120 Ml"},
	{"Mango Ice Cream", "Ice Cream Cups from Rs 79 (120ML)", 79, "1 Cup, 120 Ml"},
	{"Chocolate Fudge-A-Licious Ice Cream Scoop", "Special", 99, "1 Scoop, 120 Ml"},
	{"Chocolate Hazelnut Ice Cream", "Special", 99, "1 Cup, 120 Ml"},
	{"Waffle Cone", "Waffle Cone", 25, "1 Piece"},
	{"Salted Butter Caramel Ice Cream", "Ice Cream Cups from Rs 79 (120ML)", 99, "1 Cup, 120 Ml"},
	{"Boozy Baileys Ice Cream", "Premium", 129, "1 Cup, 120 Ml"},
	{"Cold Love Experience Box", "Taster Box", 295, "4 cups"},
	{"Ice Cream Sandwiches Family Pack", "Ice Cream Sandwiches (Low Calorie)", 649, "5 pieces"},
	{"Strawberry Ice Cream", "Classic", 79, "1 Cup, 120 Ml"},
	{"Vanilla Ice Cream", "Classic", 79, "1 Cup, 120 Ml"},
	{"Mini Bars Family Pack", "Mini Ice Cream Bars (Low Calorie)", 599, "5 pieces"},
	{"Cookie Dough Choco Chip Sandwich", "Ice Cream Sandwiches (Low Calorie)", 169, "1 piece"},
	{"Chocolate Fudge-a-licious Ice Cream Sandwich", "Ice Cream Sandwiches (Low Calorie)", 169, "1 piece"},
	{"Sugar-Free Coffee Mini Bars", "Mini Ice Cream Bars (Low Calorie)", 169, "Pack of 2"},
	{"Classic Choco Mini Bar", "Mini Ice Cream Bars (Low Calorie)", 149, "Pack of 2"},
	{"Strawberry Mini Bars", "Mini Ice Cream Bars (Low Calorie)", 149, "Pack of 2"},
}

// SeedProducts returns the default catalog ready for UpsertByName.
func SeedProducts() []Product {
	now := time.Now().UTC().Format(time.RFC3339)
	out := make([]Product, 0, len(seedCatalog))
	for i, e := range seedCatalog {
		out = append(out, Product{
			ID:           fmt.Sprintf("prod_%d", i+1),
			Name:         e.name,
			Category:     e.category,
			Price:        e.price,
			Description:  fmt.Sprintf("Premium artisanal %s, crafted with love for the perfect indulgence.", strings.ToLower(e.name)),
			ImageURL:     "/images/products/" + slugify(e.name) + ".jpg",
			QuantityInfo: e.quantityInfo,
			IsAvailable:  true,
			CreatedAt:    now,
		})
	}
	return out
}

func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
