package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aeroparts-api/internal/domain"
	"github.com/jhoicas/aeroparts-api/internal/domain/entity"
	"github.com/jhoicas/aeroparts-api/internal/store"
)

func TestConvertQuoteToInvoice(t *testing.T) {
	s, engine := newEngine(func(st *store.State) {
		st.Customers = append(st.Customers, entity.Customer{
			ID: "c1", CompanyName: "Aero Andes SAS", PaymentTerms: entity.TermsNet45,
		})
		st.Quotes = append(st.Quotes, quoteFixture())
	})

	inv, err := engine.ConvertQuoteToInvoice("q1")
	require.NoError(t, err)

	// Número desde el contador, estado emitida, ligada a la cotización
	assert.Equal(t, "INV-0001", inv.InvoiceNumber)
	assert.Equal(t, entity.InvoiceIssued, inv.Status)
	assert.Equal(t, "q1", inv.QuoteID)

	// Las líneas se clonan con IDs nuevos conservando parte, precio y total
	require.Len(t, inv.Items, 2)
	assert.NotEqual(t, "qi1", inv.Items[0].ID)
	assert.Equal(t, "p1", inv.Items[0].PartID)
	assert.True(t, inv.Items[0].Total.Equal(dec("300.00")))

	// Subtotal 600, impuesto 8% = 48, flete 50, fee 0 → total 698
	assert.True(t, inv.Subtotal.Equal(dec("600.00")), "subtotal=%s", inv.Subtotal)
	assert.True(t, inv.Tax.Equal(dec("48.00")), "tax=%s", inv.Tax)
	assert.True(t, inv.WireCcFee.IsZero())
	assert.True(t, inv.Total.Equal(dec("698.00")), "total=%s", inv.Total)

	// Vencimiento según los términos del cliente (Net 45)
	assert.Equal(t, inv.CreatedAt.AddDate(0, 0, 45).Day(), inv.DueDate.Day())

	snap := s.Snapshot()

	// La cotización quedó Won
	assert.Equal(t, entity.QuoteWon, snap.Quote("q1").Status)

	// Una sola cuenta por cobrar, por el total, en Pending
	require.Len(t, snap.AccountsReceivable, 1)
	ar := snap.AccountsReceivable[0]
	assert.Equal(t, inv.ID, ar.InvoiceID)
	assert.Equal(t, inv.InvoiceNumber, ar.InvoiceNumber)
	assert.True(t, ar.Amount.Equal(inv.Total))
	assert.Equal(t, entity.AccountPending, ar.Status)
	assert.True(t, ar.PaidAmount.IsZero())

	// La emisión no toca inventario
	assert.Empty(t, snap.InventoryMovements)

	// El contador de facturas avanzó
	assert.Equal(t, 2, snap.NextInvoiceSeq)
}

// Sin ficha de cliente (o borrada) el vencimiento cae en 30 días.
func TestConvertQuoteToInvoice_ClienteBorradoUsaNet30(t *testing.T) {
	_, engine := newEngine(func(st *store.State) {
		st.Quotes = append(st.Quotes, quoteFixture())
	})

	inv, err := engine.ConvertQuoteToInvoice("q1")
	require.NoError(t, err)
	assert.Equal(t, inv.CreatedAt.AddDate(0, 0, 30).Day(), inv.DueDate.Day())
}

// La conversión es incondicional sobre el estado previo: una cotización Lost
// también convierte y queda Won.
func TestConvertQuoteToInvoice_DesdeLostQuedaWon(t *testing.T) {
	s, engine := newEngine(func(st *store.State) {
		q := quoteFixture()
		q.Status = entity.QuoteLost
		st.Quotes = append(st.Quotes, q)
	})

	_, err := engine.ConvertQuoteToInvoice("q1")
	require.NoError(t, err)
	snap := s.Snapshot()
	assert.Equal(t, entity.QuoteWon, snap.Quote("q1").Status)
}

func TestConvertQuoteToInvoice_NoExiste(t *testing.T) {
	s, engine := newEngine(nil)

	_, err := engine.ConvertQuoteToInvoice("fantasma")
	require.ErrorIs(t, err, domain.ErrNotFound)

	// El commit fallido no dejó rastro ni consumió numeración
	snap := s.Snapshot()
	assert.Empty(t, snap.Invoices)
	assert.Equal(t, 1, snap.NextInvoiceSeq)
}
