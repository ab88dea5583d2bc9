package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aeroparts-api/internal/application/dto"
	"github.com/jhoicas/aeroparts-api/internal/application/usecase"
	"github.com/jhoicas/aeroparts-api/internal/application/workflow"
)

// PurchaseOrderHandler maneja las peticiones HTTP de órdenes de compra,
// incluida la recepción.
type PurchaseOrderHandler struct {
	uc     *usecase.PurchaseOrderUseCase
	engine *workflow.Engine
}

// NewPurchaseOrderHandler construye el handler.
func NewPurchaseOrderHandler(uc *usecase.PurchaseOrderUseCase, engine *workflow.Engine) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{uc: uc, engine: engine}
}

// Create POST /api/purchase-orders
func (h *PurchaseOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePORequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	po, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(po)
}

// List GET /api/purchase-orders
func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// GetByID GET /api/purchase-orders/:id
func (h *PurchaseOrderHandler) GetByID(c *fiber.Ctx) error {
	po, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(po)
}

// Update PUT /api/purchase-orders/:id
func (h *PurchaseOrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePORequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	po, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(po)
}

// Delete DELETE /api/purchase-orders/:id
func (h *PurchaseOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Receive POST /api/purchase-orders/:id/receive
// Registra la recepción: crea lotes y movimientos IN por cada línea con
// parte vigente y la cuenta por pagar del proveedor. Responde la PO.
func (h *PurchaseOrderHandler) Receive(c *fiber.Ctx) error {
	po, err := h.engine.ReceivePurchaseOrder(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(po)
}
