package cart

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coldlove/cold-love-backend/internal/product"
	"github.com/coldlove/cold-love-backend/internal/session"
)

// Handler exposes the cart over HTTP. Cart lines are built server-side from
// the catalog so the client never supplies its own prices.
type Handler struct {
	service  *Service
	products product.ServiceInterface
}

func NewHandler(s *Service, products product.ServiceInterface) *Handler {
	return &Handler{service: s, products: products}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart/items", h.addItem)
	app.Put("/api/v1/cart/items/:id", h.updateQuantity)
	app.Delete("/api/v1/cart/items/:id", h.removeItem)
	app.Delete("/api/v1/cart", h.clearCart)
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	sid, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing session"})
	}

	summary, err := h.service.Get(sid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(summary)
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "product_id is required"})
	}

	sid, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing session"})
	}

	p, err := h.products.GetByID(payload.ProductID)
	if err != nil {
		if err == product.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	items, err := h.service.AddItem(sid, Item{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		ImageURL:     p.ImageURL,
		QuantityInfo: p.QuantityInfo,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(Summarize(items))
}

func (h *Handler) updateQuantity(c *fiber.Ctx) error {
	payload := new(updateQuantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	sid, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing session"})
	}

	items, err := h.service.UpdateQuantity(sid, c.Params("id"), payload.Quantity)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(Summarize(items))
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	sid, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing session"})
	}

	items, err := h.service.RemoveItem(sid, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(Summarize(items))
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	sid, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing session"})
	}

	if err := h.service.Clear(sid); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
