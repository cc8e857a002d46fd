package checkout

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/coldlove/cold-love-backend/internal/referral"
	"github.com/coldlove/cold-love-backend/internal/session"
)

// Handler exposes the checkout workflow and the per-session referral
// validator over HTTP.
type Handler struct {
	service    *Service
	validators *referral.Registry
}

func NewHandler(service *Service, validators *referral.Registry) *Handler {
	return &Handler{service: service, validators: validators}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout", h.submit)
	app.Post("/api/v1/checkout/referral", h.inputReferral)
	app.Get("/api/v1/checkout/referral", h.referralState)
}

type referralInputRequest struct {
	Code string `json:"code"`
}

type referralStateResponse struct {
	Status       string `json:"status"`
	Code         string `json:"code,omitempty"`
	ReferralName string `json:"referral_name,omitempty"`
}

func (h *Handler) submit(c *fiber.Ctx) error {
	payload := new(Request)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	sid, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing session"})
	}

	ref := FromState(h.validators.For(sid).State())

	result, err := h.service.Submit(sid, *payload, ref)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": ve.Fields})
		}
		if errors.Is(err, ErrEmptyCart) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cart is empty"})
		}
		var pe *PersistenceError
		if errors.As(err, &pe) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "Failed to place order. Please try again."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(result)
}

// inputReferral feeds typed referral-code input into the session's debounced
// validator. The lookup happens after the quiet period; poll the GET
// endpoint for the outcome.
func (h *Handler) inputReferral(c *fiber.Ctx) error {
	payload := new(referralInputRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	sid, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing session"})
	}

	h.validators.For(sid).Input(payload.Code)
	return c.SendStatus(fiber.StatusAccepted)
}

// referralState reports the current validation state. With a `ref` query
// parameter it validates that code eagerly first (the shared-link entry
// point).
func (h *Handler) referralState(c *fiber.Ctx) error {
	sid, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing session"})
	}

	v := h.validators.For(sid)
	st := v.State()
	if ref := c.Query("ref"); ref != "" {
		st = v.ValidateNow(ref)
	}

	resp := referralStateResponse{Code: st.Code}
	switch st.Status {
	case referral.StatusValid:
		resp.Status = "valid"
		resp.ReferralName = st.Record.ReferralName
	case referral.StatusInvalid:
		resp.Status = "invalid"
	default:
		resp.Status = "unvalidated"
	}
	return c.JSON(resp)
}
