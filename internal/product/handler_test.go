package product

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func seedRepo() *InMemoryRepository {
	return NewInMemoryRepository([]Product{
		{ID: "prod_19", Name: "Vanilla Ice Cream", Category: "Classic", Price: 79, IsAvailable: true},
		{ID: "prod_13", Name: "Waffle Cone", Category: "Waffle Cone", Price: 25, IsAvailable: true},
		{ID: "prod_18", Name: "Strawberry Ice Cream", Category: "Classic", Price: 79, IsAvailable: true},
		{ID: "prod_99", Name: "Retired Flavour", Category: "Classic", Price: 50, IsAvailable: false},
	})
}

func TestProductRoutes_Basic(t *testing.T) {
	handler := NewHandler(NewService(seedRepo()))
	app := fiber.New()
	handler.RegisterPublicRoutes(app)

	// only available products, ordered by name
	req := httptest.NewRequest("GET", "/api/v1/products", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	body := string(b)
	if strings.Contains(body, "Retired Flavour") {
		t.Fatalf("unavailable product leaked into listing: %s", body)
	}
	if strings.Index(body, "Strawberry") > strings.Index(body, "Vanilla") {
		t.Fatalf("expected name ordering, got %s", body)
	}

	// categories derived from available products
	req = httptest.NewRequest("GET", "/api/v1/products/categories", nil)
	res, _ = app.Test(req)
	b, _ = io.ReadAll(res.Body)
	if !strings.Contains(string(b), "Classic") || !strings.Contains(string(b), "Waffle Cone") {
		t.Fatalf("expected categories, got %s", string(b))
	}

	// single product
	req = httptest.NewRequest("GET", "/api/v1/products/prod_13", nil)
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ = io.ReadAll(res.Body)
	if !strings.Contains(string(b), "Waffle Cone") {
		t.Fatalf("unexpected product body: %s", string(b))
	}

	// unknown id
	req = httptest.NewRequest("GET", "/api/v1/products/ghost", nil)
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func TestSeedProducts_CatalogShape(t *testing.T) {
	seed := SeedProducts()
	if len(seed) != 25 {
		t.Fatalf("expected 25 seed products, got %d", len(seed))
	}
	for _, p := range seed {
		if p.ID == "" || p.Name == "" || p.Price <= 0 || !p.IsAvailable {
			t.Fatalf("malformed seed product: %+v", p)
		}
	}
}
