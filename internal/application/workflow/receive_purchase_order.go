package workflow

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/aeroparts-api/internal/domain"
	"github.com/jhoicas/aeroparts-api/internal/domain/entity"
	"github.com/jhoicas/aeroparts-api/internal/domain/finance"
	"github.com/jhoicas/aeroparts-api/internal/store"
)

// ReceivePurchaseOrder registra la recepción de una orden de compra:
//
//  1. Cada línea cuya parte siga existiendo en el catálogo produce un lote
//     nuevo (ubicación "Main Warehouse", stock mínimo 1) y su movimiento IN
//     con referencia a la PO. Las líneas con parte borrada se omiten por
//     completo: sin lote, sin movimiento, sin costo.
//  2. El vencimiento de la cuenta por pagar sale de los dígitos del lead
//     time del proveedor (reuso heredado del campo como término de pago;
//     default 30 días) y la moneda del proveedor (default USD).
//  3. La cuenta por pagar toma el TotalLandedCost guardado de la PO, sin
//     recalcular desde las líneas, con número sintético VINV-<poNumber>.
//  4. La PO pasa a Received. El motor no re-verifica el estado previo.
//
// No consume ningún contador de secuencia. Todo en un solo commit.
func (e *Engine) ReceivePurchaseOrder(poID string) (*entity.PurchaseOrder, error) {
	var updated entity.PurchaseOrder
	var lotsCreated, skipped int
	err := e.store.Commit(func(st *store.State) error {
		po := st.PurchaseOrder(poID)
		if po == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		minStock := decimal.NewFromInt(1)
		for _, item := range po.Items {
			if st.Part(item.PartID) == nil {
				skipped++
				continue
			}
			lot := entity.InventoryLot{
				ID:           store.NewID(),
				PartID:       item.PartID,
				PN:           item.PN,
				Quantity:     item.Quantity,
				UnitCost:     item.UnitCost,
				SupplierID:   po.VendorID,
				SupplierName: po.VendorName,
				EntryDate:    now,
				Location:     defaultLocation,
				MinimumStock: minStock,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			st.InventoryLots = append(st.InventoryLots, lot)
			st.InventoryMovements = append(st.InventoryMovements, entity.InventoryMovement{
				ID:        store.NewID(),
				LotID:     lot.ID,
				PartID:    item.PartID,
				Type:      entity.MovementTypeIN,
				Quantity:  item.Quantity,
				Reference: fmt.Sprintf("PO %s", po.PONumber),
				Date:      now,
			})
			lotsCreated++
		}

		terms := entity.TermsNet30
		currency := entity.CurrencyUSD
		if vendor := st.Vendor(po.VendorID); vendor != nil {
			terms = vendor.LeadTime
			if vendor.Currency != "" {
				currency = vendor.Currency
			}
		}

		st.AccountsPayable = append(st.AccountsPayable, entity.AccountPayable{
			ID:                  store.NewID(),
			VendorID:            po.VendorID,
			VendorName:          po.VendorName,
			VendorInvoiceNumber: fmt.Sprintf("VINV-%s", po.PONumber),
			POID:                po.ID,
			PONumber:            po.PONumber,
			DueDate:             finance.DueDate(now, terms),
			Amount:              po.TotalLandedCost,
			Currency:            currency,
			Status:              entity.AccountPending,
			PaidAmount:          decimal.Zero,
			CreatedAt:           now,
			UpdatedAt:           now,
		})

		po.Status = entity.POReceived
		po.UpdatedAt = now
		updated = po.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.log.Info().
		Str("po_id", poID).
		Str("po_number", updated.PONumber).
		Int("lots_created", lotsCreated).
		Msg("orden de compra recibida")
	if skipped > 0 {
		e.log.Warn().
			Str("po_number", updated.PONumber).
			Int("skipped_items", skipped).
			Msg("líneas con parte inexistente omitidas en la recepción")
	}
	return &updated, nil
}
