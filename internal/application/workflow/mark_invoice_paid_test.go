package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aeroparts-api/internal/domain"
	"github.com/jhoicas/aeroparts-api/internal/domain/entity"
	"github.com/jhoicas/aeroparts-api/internal/store"
)

// invoiceFixture factura emitida de dos líneas: 2 × AV-100 y 1 × AV-200.
func invoiceFixture() entity.Invoice {
	return entity.Invoice{
		ID:            "inv1",
		InvoiceNumber: "INV-0001",
		CustomerID:    "c1",
		Items: []entity.InvoiceItem{
			{ID: "ii1", PartID: "p1", PN: "AV-100", Quantity: dec("2"), UnitPrice: dec("150.00"), Total: dec("300.00")},
			{ID: "ii2", PartID: "p2", PN: "AV-200", Quantity: dec("1"), UnitPrice: dec("300.00"), Total: dec("300.00")},
		},
		Subtotal: dec("600.00"),
		Total:    dec("698.00"),
		Status:   entity.InvoiceIssued,
	}
}

func TestMarkInvoicePaid(t *testing.T) {
	s, engine := newEngine(func(st *store.State) {
		st.Invoices = append(st.Invoices, invoiceFixture())
		st.InventoryLots = append(st.InventoryLots,
			entity.InventoryLot{ID: "l1", PartID: "p1", PN: "AV-100", Quantity: dec("5")},
			entity.InventoryLot{ID: "l2", PartID: "p2", PN: "AV-200", Quantity: dec("1")},
		)
		st.AccountsReceivable = append(st.AccountsReceivable, entity.AccountReceivable{
			ID: "ar1", InvoiceID: "inv1", Amount: dec("698.00"), Status: entity.AccountPending,
		})
	})

	inv, err := engine.MarkInvoicePaid("inv1")
	require.NoError(t, err)

	assert.Equal(t, entity.InvoicePaid, inv.Status)
	require.NotNil(t, inv.PaidDate)

	snap := s.Snapshot()

	// Un movimiento OUT por línea cumplida, con referencia a la factura
	require.Len(t, snap.InventoryMovements, 2)
	for _, mov := range snap.InventoryMovements {
		assert.Equal(t, entity.MovementTypeOUT, mov.Type)
		assert.Equal(t, "Invoice INV-0001", mov.Reference)
	}

	// Los lotes acertados se descontaron
	assert.True(t, snap.InventoryLot("l1").Quantity.Equal(dec("3")))
	assert.True(t, snap.InventoryLot("l2").Quantity.IsZero())

	// La cuenta por cobrar quedó liquidada por completo
	ar := snap.AccountReceivable("ar1")
	assert.Equal(t, entity.AccountPaid, ar.Status)
	assert.True(t, ar.PaidAmount.Equal(ar.Amount))
}

// First-fit: toma el primer lote que cubra la línea completa, sin dividir
// entre lotes.
func TestMarkInvoicePaid_FirstFitSinDividir(t *testing.T) {
	s, engine := newEngine(func(st *store.State) {
		inv := invoiceFixture()
		inv.Items = inv.Items[:1] // solo 2 × AV-100
		st.Invoices = append(st.Invoices, inv)
		st.InventoryLots = append(st.InventoryLots,
			// Insuficiente: se salta aunque sea el primero
			entity.InventoryLot{ID: "l1", PartID: "p1", Quantity: dec("1")},
			entity.InventoryLot{ID: "l2", PartID: "p1", Quantity: dec("10")},
		)
	})

	_, err := engine.MarkInvoicePaid("inv1")
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.True(t, snap.InventoryLot("l1").Quantity.Equal(dec("1")), "el lote corto no se toca")
	assert.True(t, snap.InventoryLot("l2").Quantity.Equal(dec("8")))
	require.Len(t, snap.InventoryMovements, 1)
	assert.Equal(t, "l2", snap.InventoryMovements[0].LotID)
}

// Dos líneas sobre la misma parte: la segunda ve el stock ya consumido por
// la primera dentro del mismo commit.
func TestMarkInvoicePaid_LineasSobreLaMismaParte(t *testing.T) {
	s, engine := newEngine(func(st *store.State) {
		inv := invoiceFixture()
		inv.Items = []entity.InvoiceItem{
			{ID: "ii1", PartID: "p1", Quantity: dec("3")},
			{ID: "ii2", PartID: "p1", Quantity: dec("3")},
		}
		st.Invoices = append(st.Invoices, inv)
		st.InventoryLots = append(st.InventoryLots,
			entity.InventoryLot{ID: "l1", PartID: "p1", Quantity: dec("4")},
			entity.InventoryLot{ID: "l2", PartID: "p1", Quantity: dec("3")},
		)
	})

	_, err := engine.MarkInvoicePaid("inv1")
	require.NoError(t, err)

	snap := s.Snapshot()
	// Primera línea consume l1 (4→1); la segunda ya no cabe en l1 y va a l2
	assert.True(t, snap.InventoryLot("l1").Quantity.Equal(dec("1")))
	assert.True(t, snap.InventoryLot("l2").Quantity.IsZero())
}

// Sin lote que cubra una línea, esa línea no genera movimiento ni descuento,
// pero la factura igual queda pagada.
func TestMarkInvoicePaid_LineaSinStockNoGeneraMovimiento(t *testing.T) {
	s, engine := newEngine(func(st *store.State) {
		st.Invoices = append(st.Invoices, invoiceFixture())
		// Solo hay stock para la primera línea
		st.InventoryLots = append(st.InventoryLots,
			entity.InventoryLot{ID: "l1", PartID: "p1", Quantity: dec("2")},
		)
	})

	inv, err := engine.MarkInvoicePaid("inv1")
	require.NoError(t, err)
	assert.Equal(t, entity.InvoicePaid, inv.Status)

	snap := s.Snapshot()
	require.Len(t, snap.InventoryMovements, 1)
	assert.Equal(t, "l1", snap.InventoryMovements[0].LotID)
}

func TestMarkInvoicePaid_NoExiste(t *testing.T) {
	_, engine := newEngine(nil)
	_, err := engine.MarkInvoicePaid("fantasma")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
