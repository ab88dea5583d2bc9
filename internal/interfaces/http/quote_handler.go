package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aeroparts-api/internal/application/dto"
	"github.com/jhoicas/aeroparts-api/internal/application/usecase"
	"github.com/jhoicas/aeroparts-api/internal/application/workflow"
)

// QuoteHandler maneja las peticiones HTTP de cotizaciones, incluida la
// conversión a factura.
type QuoteHandler struct {
	uc     *usecase.QuoteUseCase
	engine *workflow.Engine
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(uc *usecase.QuoteUseCase, engine *workflow.Engine) *QuoteHandler {
	return &QuoteHandler{uc: uc, engine: engine}
}

// Create POST /api/quotes
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	quote, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(quote)
}

// List GET /api/quotes
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// GetByID GET /api/quotes/:id
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	quote, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(quote)
}

// Update PUT /api/quotes/:id
func (h *QuoteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	quote, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(quote)
}

// Delete DELETE /api/quotes/:id
func (h *QuoteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Convert POST /api/quotes/:id/convert
// Convierte la cotización en factura emitida con su cuenta por cobrar y
// marca la cotización como Won. Responde la factura creada.
func (h *QuoteHandler) Convert(c *fiber.Ctx) error {
	invoice, err := h.engine.ConvertQuoteToInvoice(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}
