package usecase

import (
	"time"

	"github.com/jhoicas/aeroparts-api/internal/application/dto"
	"github.com/jhoicas/aeroparts-api/internal/domain"
	"github.com/jhoicas/aeroparts-api/internal/domain/entity"
	"github.com/jhoicas/aeroparts-api/internal/domain/finance"
	"github.com/jhoicas/aeroparts-api/internal/store"
)

// InvoiceUseCase CRUD de facturas independientes (las derivadas de cotización
// las crea el workflow). Subtotal, impuesto y total se recalculan de las
// líneas en cada alta o edición.
type InvoiceUseCase struct {
	store *store.Store
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(s *store.Store) *InvoiceUseCase {
	return &InvoiceUseCase{store: s}
}

// Create da de alta una factura independiente con número de secuencia.
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*entity.Invoice, error) {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	status := in.Status
	if status == "" {
		status = entity.InvoiceDraft
	}
	items := buildInvoiceItems(in.Items)
	subtotal := sumInvoiceItems(items)
	tax := finance.InvoiceTax(subtotal)
	inv := entity.Invoice{
		ID:           store.NewID(),
		CustomerID:   in.CustomerID,
		CustomerName: in.CustomerName,
		Items:        items,
		Shipping:     in.Shipping,
		Tax:          tax,
		WireCcFee:    in.WireCcFee,
		Subtotal:     subtotal,
		Total:        subtotal.Add(in.Shipping).Add(tax).Add(in.WireCcFee),
		DueDate:      in.DueDate,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err := uc.store.Commit(func(st *store.State) error {
		inv.InvoiceNumber = st.NextInvoiceNumber()
		st.Invoices = append(st.Invoices, inv)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// Update aplica un merge parcial y recalcula los agregados si cambian las
// líneas, el flete o el fee.
func (uc *InvoiceUseCase) Update(id string, in dto.UpdateInvoiceRequest) (*entity.Invoice, error) {
	var updated entity.Invoice
	err := uc.store.Commit(func(st *store.State) error {
		inv := st.Invoice(id)
		if inv == nil {
			return domain.ErrNotFound
		}
		if in.CustomerID != nil {
			inv.CustomerID = *in.CustomerID
		}
		if in.CustomerName != nil {
			inv.CustomerName = *in.CustomerName
		}
		recompute := false
		if in.Items != nil {
			inv.Items = buildInvoiceItems(*in.Items)
			recompute = true
		}
		if in.Shipping != nil {
			inv.Shipping = *in.Shipping
			recompute = true
		}
		if in.WireCcFee != nil {
			inv.WireCcFee = *in.WireCcFee
			recompute = true
		}
		if in.DueDate != nil {
			inv.DueDate = *in.DueDate
		}
		if in.Status != nil {
			inv.Status = *in.Status
		}
		if recompute {
			inv.Subtotal = sumInvoiceItems(inv.Items)
			inv.Tax = finance.InvoiceTax(inv.Subtotal)
			inv.Total = inv.Subtotal.Add(inv.Shipping).Add(inv.Tax).Add(inv.WireCcFee)
		}
		inv.UpdatedAt = time.Now()
		updated = inv.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete elimina la factura. El contador de secuencia no retrocede y la
// cuenta por cobrar ligada, si existe, queda huérfana (se tolera).
func (uc *InvoiceUseCase) Delete(id string) error {
	return uc.store.Commit(func(st *store.State) error {
		for i := range st.Invoices {
			if st.Invoices[i].ID == id {
				st.Invoices = append(st.Invoices[:i], st.Invoices[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// GetByID devuelve una factura del snapshot vigente.
func (uc *InvoiceUseCase) GetByID(id string) (*entity.Invoice, error) {
	snap := uc.store.Snapshot()
	inv := snap.Invoice(id)
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

// List devuelve todas las facturas.
func (uc *InvoiceUseCase) List() []entity.Invoice {
	return uc.store.Snapshot().Invoices
}
