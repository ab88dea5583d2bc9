package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aeroparts-api/internal/application/dto"
	"github.com/jhoicas/aeroparts-api/internal/application/usecase"
	"github.com/jhoicas/aeroparts-api/internal/application/workflow"
)

// InvoiceHandler maneja las peticiones HTTP de facturas, incluido el cobro.
type InvoiceHandler struct {
	uc     *usecase.InvoiceUseCase
	engine *workflow.Engine
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase, engine *workflow.Engine) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, engine: engine}
}

// Create POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	invoice, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// List GET /api/invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// GetByID GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	invoice, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(invoice)
}

// Update PUT /api/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	invoice, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(invoice)
}

// Delete DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Pay POST /api/invoices/:id/pay
// Marca la factura como pagada: descuenta inventario, registra movimientos
// OUT y liquida la cuenta por cobrar. Responde la factura actualizada.
func (h *InvoiceHandler) Pay(c *fiber.Ctx) error {
	invoice, err := h.engine.MarkInvoicePaid(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(invoice)
}
