package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aeroparts-api/internal/domain"
	"github.com/jhoicas/aeroparts-api/internal/domain/entity"
	"github.com/jhoicas/aeroparts-api/internal/store"
)

// poFixture orden de compra de dos líneas con costo total aterrizado guardado.
func poFixture() entity.PurchaseOrder {
	return entity.PurchaseOrder{
		ID:         "po1",
		PONumber:   "PO-0001",
		VendorID:   "v1",
		VendorName: "Skyline Parts Ltd",
		Items: []entity.POItem{
			{ID: "pi1", PartID: "p1", PN: "AV-100", Quantity: dec("4"), UnitCost: dec("90.00"), Total: dec("360.00")},
			{ID: "pi2", PartID: "p2", PN: "AV-200", Quantity: dec("2"), UnitCost: dec("120.00"), Total: dec("240.00")},
		},
		ShippingCost:    dec("40.00"),
		Taxes:           dec("10.00"),
		TotalLandedCost: dec("650.00"),
		Status:          entity.POShipped,
	}
}

func TestReceivePurchaseOrder(t *testing.T) {
	s, engine := newEngine(func(st *store.State) {
		st.Parts = append(st.Parts,
			entity.Part{ID: "p1", PN: "AV-100"},
			entity.Part{ID: "p2", PN: "AV-200"},
		)
		st.Vendors = append(st.Vendors, entity.Vendor{
			ID: "v1", CompanyName: "Skyline Parts Ltd", LeadTime: "Net 45", Currency: entity.CurrencyEUR,
		})
		st.PurchaseOrders = append(st.PurchaseOrders, poFixture())
	})

	po, err := engine.ReceivePurchaseOrder("po1")
	require.NoError(t, err)
	assert.Equal(t, entity.POReceived, po.Status)

	snap := s.Snapshot()

	// Un lote por línea, con costo y proveedor de la PO y defaults de bodega
	require.Len(t, snap.InventoryLots, 2)
	lot := snap.InventoryLots[0]
	assert.Equal(t, "p1", lot.PartID)
	assert.True(t, lot.Quantity.Equal(dec("4")))
	assert.True(t, lot.UnitCost.Equal(dec("90.00")))
	assert.Equal(t, "v1", lot.SupplierID)
	assert.Equal(t, "Main Warehouse", lot.Location)
	assert.True(t, lot.MinimumStock.Equal(dec("1")))

	// Un movimiento IN por lote con referencia a la PO
	require.Len(t, snap.InventoryMovements, 2)
	for _, mov := range snap.InventoryMovements {
		assert.Equal(t, entity.MovementTypeIN, mov.Type)
		assert.Equal(t, "PO PO-0001", mov.Reference)
	}

	// Cuenta por pagar por el costo total guardado, sin recalcular
	require.Len(t, snap.AccountsPayable, 1)
	ap := snap.AccountsPayable[0]
	assert.True(t, ap.Amount.Equal(dec("650.00")))
	assert.Equal(t, "VINV-PO-0001", ap.VendorInvoiceNumber)
	assert.Equal(t, entity.AccountPending, ap.Status)
	assert.Equal(t, entity.CurrencyEUR, ap.Currency)
	// Vencimiento desde el lead time del proveedor ("Net 45" → 45 días)
	assert.Equal(t, ap.CreatedAt.AddDate(0, 0, 45).Day(), ap.DueDate.Day())

	// No consume numeración de documentos
	assert.Equal(t, 1, snap.NextPOSeq)
}

// Las líneas cuya parte fue borrada del catálogo se omiten por completo,
// pero la cuenta por pagar sigue siendo por el total guardado de la PO.
func TestReceivePurchaseOrder_ParteBorradaSeOmite(t *testing.T) {
	s, engine := newEngine(func(st *store.State) {
		st.Parts = append(st.Parts, entity.Part{ID: "p1", PN: "AV-100"}) // p2 no existe
		st.PurchaseOrders = append(st.PurchaseOrders, poFixture())
	})

	_, err := engine.ReceivePurchaseOrder("po1")
	require.NoError(t, err)

	snap := s.Snapshot()
	require.Len(t, snap.InventoryLots, 1)
	assert.Equal(t, "p1", snap.InventoryLots[0].PartID)
	require.Len(t, snap.InventoryMovements, 1)

	require.Len(t, snap.AccountsPayable, 1)
	assert.True(t, snap.AccountsPayable[0].Amount.Equal(dec("650.00")))
}

// Sin ficha de proveedor: términos de 30 días y moneda USD por defecto.
func TestReceivePurchaseOrder_ProveedorBorradoUsaDefaults(t *testing.T) {
	s, engine := newEngine(func(st *store.State) {
		st.Parts = append(st.Parts, entity.Part{ID: "p1"}, entity.Part{ID: "p2"})
		st.PurchaseOrders = append(st.PurchaseOrders, poFixture())
	})

	_, err := engine.ReceivePurchaseOrder("po1")
	require.NoError(t, err)

	ap := s.Snapshot().AccountsPayable[0]
	assert.Equal(t, entity.CurrencyUSD, ap.Currency)
	assert.Equal(t, ap.CreatedAt.AddDate(0, 0, 30).Day(), ap.DueDate.Day())
}

func TestReceivePurchaseOrder_NoExiste(t *testing.T) {
	s, engine := newEngine(nil)
	_, err := engine.ReceivePurchaseOrder("fantasma")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.Snapshot().AccountsPayable)
}
