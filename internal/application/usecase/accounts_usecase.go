package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/aeroparts-api/internal/application/dto"
	"github.com/jhoicas/aeroparts-api/internal/domain"
	"github.com/jhoicas/aeroparts-api/internal/domain/entity"
	"github.com/jhoicas/aeroparts-api/internal/store"
)

// AccountsUseCase gestión de cuentas por pagar y por cobrar. Las entradas
// las genera solo el workflow (recepción de PO, emisión de factura); aquí
// únicamente se registran abonos manuales.
type AccountsUseCase struct {
	store *store.Store
}

// NewAccountsUseCase construye el caso de uso.
func NewAccountsUseCase(s *store.Store) *AccountsUseCase {
	return &AccountsUseCase{store: s}
}

// accountStatus decide Pending/Partial/Paid según el acumulado abonado.
func accountStatus(paid, amount decimal.Decimal) string {
	switch {
	case paid.GreaterThanOrEqual(amount):
		return entity.AccountPaid
	case paid.GreaterThan(decimal.Zero):
		return entity.AccountPartial
	default:
		return entity.AccountPending
	}
}

// RegisterPayablePayment abona a una cuenta por pagar y recalcula su estado.
func (uc *AccountsUseCase) RegisterPayablePayment(id string, in dto.PaymentRequest) (*entity.AccountPayable, error) {
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	var updated entity.AccountPayable
	err := uc.store.Commit(func(st *store.State) error {
		ap := st.AccountPayable(id)
		if ap == nil {
			return domain.ErrNotFound
		}
		ap.PaidAmount = ap.PaidAmount.Add(in.Amount)
		ap.Status = accountStatus(ap.PaidAmount, ap.Amount)
		ap.UpdatedAt = time.Now()
		updated = *ap
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// RegisterReceivablePayment abona a una cuenta por cobrar y recalcula su estado.
func (uc *AccountsUseCase) RegisterReceivablePayment(id string, in dto.PaymentRequest) (*entity.AccountReceivable, error) {
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	var updated entity.AccountReceivable
	err := uc.store.Commit(func(st *store.State) error {
		ar := st.AccountReceivable(id)
		if ar == nil {
			return domain.ErrNotFound
		}
		ar.PaidAmount = ar.PaidAmount.Add(in.Amount)
		ar.Status = accountStatus(ar.PaidAmount, ar.Amount)
		ar.UpdatedAt = time.Now()
		updated = *ar
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ListPayables devuelve todas las cuentas por pagar.
func (uc *AccountsUseCase) ListPayables() []entity.AccountPayable {
	return uc.store.Snapshot().AccountsPayable
}

// ListReceivables devuelve todas las cuentas por cobrar.
func (uc *AccountsUseCase) ListReceivables() []entity.AccountReceivable {
	return uc.store.Snapshot().AccountsReceivable
}
