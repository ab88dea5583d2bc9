package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aeroparts-api/internal/application/reporting"
)

// ReportHandler expone los reportes del tablero (solo lectura).
type ReportHandler struct {
	uc *reporting.FinancialUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.FinancialUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Aging GET /api/reports/aging
func (h *ReportHandler) Aging(c *fiber.Ctx) error {
	return c.JSON(h.uc.AgingReport(time.Now()))
}

// FinancialKPIs GET /api/reports/kpis/financial
func (h *ReportHandler) FinancialKPIs(c *fiber.Ctx) error {
	return c.JSON(h.uc.FinancialKPIs(time.Now()))
}

// InventoryKPIs GET /api/reports/kpis/inventory
func (h *ReportHandler) InventoryKPIs(c *fiber.Ctx) error {
	return c.JSON(h.uc.InventoryKPIs())
}
