package workflow

import (
	"fmt"
	"time"

	"github.com/jhoicas/aeroparts-api/internal/domain"
	"github.com/jhoicas/aeroparts-api/internal/domain/entity"
	"github.com/jhoicas/aeroparts-api/internal/store"
)

// MarkInvoicePaid marca una factura como pagada y ejecuta el cumplimiento:
//
//  1. Por cada línea se busca el primer lote de la parte con cantidad
//     suficiente (first-fit, sin dividir entre lotes). Si ninguno cubre la
//     línea completa, la línea no genera movimiento ni descuento — el
//     cumplimiento parcial no se rastrea; política de negocio documentada.
//  2. Cada lote acertado genera un movimiento OUT con referencia a la
//     factura y su cantidad se descuenta de inmediato, de modo que dos
//     líneas sobre la misma parte ven el stock ya consumido por la anterior.
//  3. La factura pasa a Paid con paidDate; la cuenta por cobrar ligada pasa
//     a Paid con paidAmount = amount (liquidación total; los abonos
//     parciales van por el caso de uso de cuentas).
//
// Todo en un solo commit.
func (e *Engine) MarkInvoicePaid(invoiceID string) (*entity.Invoice, error) {
	var updated entity.Invoice
	var movements int
	err := e.store.Commit(func(st *store.State) error {
		inv := st.Invoice(invoiceID)
		if inv == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		for _, item := range inv.Items {
			for i := range st.InventoryLots {
				lot := &st.InventoryLots[i]
				if lot.PartID != item.PartID || lot.Quantity.LessThan(item.Quantity) {
					continue
				}
				st.InventoryMovements = append(st.InventoryMovements, entity.InventoryMovement{
					ID:        store.NewID(),
					LotID:     lot.ID,
					PartID:    item.PartID,
					Type:      entity.MovementTypeOUT,
					Quantity:  item.Quantity,
					Reference: fmt.Sprintf("Invoice %s", inv.InvoiceNumber),
					Date:      now,
				})
				lot.Quantity = lot.Quantity.Sub(item.Quantity)
				lot.UpdatedAt = now
				movements++
				break
			}
		}

		inv.Status = entity.InvoicePaid
		inv.PaidDate = &now
		inv.UpdatedAt = now

		if ar := st.AccountReceivableByInvoice(inv.ID); ar != nil {
			ar.Status = entity.AccountPaid
			ar.PaidAmount = ar.Amount
			ar.UpdatedAt = now
		}

		updated = inv.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.log.Info().
		Str("invoice_id", invoiceID).
		Str("invoice_number", updated.InvoiceNumber).
		Int("items", len(updated.Items)).
		Int("movements", movements).
		Msg("factura marcada como pagada")
	if movements < len(updated.Items) {
		// Cumplimiento incompleto: alguna línea quedó sin lote que la cubra.
		e.log.Warn().
			Str("invoice_number", updated.InvoiceNumber).
			Int("unfulfilled", len(updated.Items)-movements).
			Msg("líneas sin lote con cantidad suficiente; sin movimiento de salida")
	}
	return &updated, nil
}
