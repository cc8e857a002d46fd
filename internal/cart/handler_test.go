package cart

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/coldlove/cold-love-backend/internal/product"
)

func makeAppWithCartHandler(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-Session-ID"); v != "" {
			c.Locals("sessionID", v)
		}
		return c.Next()
	})
	h.RegisterRoutes(app)
	return app
}

func TestCartRoutes_Basic(t *testing.T) {
	products := product.NewService(product.NewInMemoryRepository([]product.Product{
		{ID: "prod_1", Name: "Vanilla Ice Cream", Price: 79, QuantityInfo: "1 Cup, 120 Ml", IsAvailable: true},
		{ID: "prod_2", Name: "Waffle Cone", Price: 25, QuantityInfo: "1 Piece", IsAvailable: true},
	}))
	handler := NewHandler(NewService(NewInMemoryRepository()), products)
	app := makeAppWithCartHandler(handler)

	// missing session cookie should be rejected
	req := httptest.NewRequest("GET", "/api/v1/cart", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 without session, got %d", res.StatusCode)
	}

	// empty cart for a fresh session
	req = httptest.NewRequest("GET", "/api/v1/cart", nil)
	req.Header.Set("X-Session-ID", "s1")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"total_items":0`) {
		t.Fatalf("expected empty totals, got %s", string(b))
	}

	// add a product; the line is built from the catalog
	req = httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"product_id":"prod_1"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "s1")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for add, got %d", res.StatusCode)
	}
	b, _ = io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"price":79`) || !strings.Contains(string(b), `"quantity":1`) {
		t.Fatalf("expected catalog-priced line with quantity 1, got %s", string(b))
	}

	// unknown product is a 404
	req = httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"product_id":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "s1")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", res.StatusCode)
	}

	// set quantity
	req = httptest.NewRequest("PUT", "/api/v1/cart/items/prod_1", strings.NewReader(`{"quantity":3}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "s1")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for update, got %d", res.StatusCode)
	}
	b, _ = io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"quantity":3`) || !strings.Contains(string(b), `"total_price":237`) {
		t.Fatalf("expected quantity 3 and total 237, got %s", string(b))
	}

	// quantity zero removes the line
	req = httptest.NewRequest("PUT", "/api/v1/cart/items/prod_1", strings.NewReader(`{"quantity":0}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "s1")
	res, _ = app.Test(req)
	b, _ = io.ReadAll(res.Body)
	if strings.Contains(string(b), "prod_1") {
		t.Fatalf("expected prod_1 removed at quantity zero, got %s", string(b))
	}

	// removing an absent id is a no-op, not an error
	req = httptest.NewRequest("DELETE", "/api/v1/cart/items/prod_1", nil)
	req.Header.Set("X-Session-ID", "s1")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for no-op remove, got %d", res.StatusCode)
	}

	// clear
	req = httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"product_id":"prod_2"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "s1")
	app.Test(req)
	req = httptest.NewRequest("DELETE", "/api/v1/cart", nil)
	req.Header.Set("X-Session-ID", "s1")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204 for clear, got %d", res.StatusCode)
	}
	req = httptest.NewRequest("GET", "/api/v1/cart", nil)
	req.Header.Set("X-Session-ID", "s1")
	res, _ = app.Test(req)
	b, _ = io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"total_items":0`) {
		t.Fatalf("expected empty cart after clear, got %s", string(b))
	}
}
