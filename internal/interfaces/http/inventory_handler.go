package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aeroparts-api/internal/application/dto"
	"github.com/jhoicas/aeroparts-api/internal/application/usecase"
)

// InventoryHandler maneja las peticiones HTTP de lotes, movimientos y ajustes.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// CreateLot POST /api/inventory/lots
func (h *InventoryHandler) CreateLot(c *fiber.Ctx) error {
	var in dto.CreateLotRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	lot, err := h.uc.CreateLot(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(lot)
}

// ListLots GET /api/inventory/lots
func (h *InventoryHandler) ListLots(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListLots())
}

// GetLot GET /api/inventory/lots/:id
func (h *InventoryHandler) GetLot(c *fiber.Ctx) error {
	lot, err := h.uc.GetLot(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lot)
}

// UpdateLot PUT /api/inventory/lots/:id
func (h *InventoryHandler) UpdateLot(c *fiber.Ctx) error {
	var in dto.UpdateLotRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	lot, err := h.uc.UpdateLot(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lot)
}

// DeleteLot DELETE /api/inventory/lots/:id
func (h *InventoryHandler) DeleteLot(c *fiber.Ctx) error {
	if err := h.uc.DeleteLot(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterAdjustment POST /api/inventory/lots/:id/adjustments
// El delta puede ser positivo o negativo; nunca deja el lote bajo cero.
func (h *InventoryHandler) RegisterAdjustment(c *fiber.Ctx) error {
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	mov, err := h.uc.RegisterAdjustment(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mov)
}

// ListMovements GET /api/inventory/movements
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListMovements())
}
