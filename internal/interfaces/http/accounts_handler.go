package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aeroparts-api/internal/application/dto"
	"github.com/jhoicas/aeroparts-api/internal/application/usecase"
)

// AccountsHandler maneja las peticiones HTTP de cuentas por pagar y por
// cobrar, incluido el registro de abonos.
type AccountsHandler struct {
	uc *usecase.AccountsUseCase
}

// NewAccountsHandler construye el handler.
func NewAccountsHandler(uc *usecase.AccountsUseCase) *AccountsHandler {
	return &AccountsHandler{uc: uc}
}

// ListPayables GET /api/accounts/payable
func (h *AccountsHandler) ListPayables(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListPayables())
}

// ListReceivables GET /api/accounts/receivable
func (h *AccountsHandler) ListReceivables(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListReceivables())
}

// PayPayable POST /api/accounts/payable/:id/payments
func (h *AccountsHandler) PayPayable(c *fiber.Ctx) error {
	var in dto.PaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	ap, err := h.uc.RegisterPayablePayment(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ap)
}

// PayReceivable POST /api/accounts/receivable/:id/payments
func (h *AccountsHandler) PayReceivable(c *fiber.Ctx) error {
	var in dto.PaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	ar, err := h.uc.RegisterReceivablePayment(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ar)
}
