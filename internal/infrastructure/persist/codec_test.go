package persist

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aeroparts-api/internal/domain/entity"
	"github.com/jhoicas/aeroparts-api/internal/store"
)

// El snapshot sobrevive el viaje de ida y vuelta por el slot: colecciones,
// contadores y decimales intactos.
func TestCodec_RoundTrip(t *testing.T) {
	st := store.NewState()
	st.NextQuoteSeq = 7
	st.NextInvoiceSeq = 3
	st.NextPOSeq = 12
	paid := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	st.Parts = append(st.Parts, entity.Part{ID: "p1", PN: "AV-100", Condition: entity.ConditionNew})
	st.Invoices = append(st.Invoices, entity.Invoice{
		ID:            "inv1",
		InvoiceNumber: "INV-0002",
		Subtotal:      decimal.RequireFromString("600.00"),
		Tax:           decimal.RequireFromString("48.00"),
		Total:         decimal.RequireFromString("698.00"),
		Status:        entity.InvoicePaid,
		PaidDate:      &paid,
		Items: []entity.InvoiceItem{
			{ID: "ii1", PartID: "p1", Quantity: decimal.NewFromInt(2), Total: decimal.RequireFromString("300.00")},
		},
	})
	st.AccountsReceivable = append(st.AccountsReceivable, entity.AccountReceivable{
		ID: "ar1", InvoiceID: "inv1", Amount: decimal.RequireFromString("698.00"), Status: entity.AccountPaid,
	})

	data, err := encodeState(st)
	require.NoError(t, err)

	got, err := decodeState(data)
	require.NoError(t, err)

	assert.Equal(t, 7, got.NextQuoteSeq)
	assert.Equal(t, 3, got.NextInvoiceSeq)
	assert.Equal(t, 12, got.NextPOSeq)
	require.Len(t, got.Invoices, 1)
	assert.True(t, got.Invoices[0].Total.Equal(decimal.RequireFromString("698.00")))
	require.NotNil(t, got.Invoices[0].PaidDate)
	assert.True(t, got.Invoices[0].PaidDate.Equal(paid))
	require.Len(t, got.Invoices[0].Items, 1)
	assert.True(t, got.Invoices[0].Items[0].Quantity.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, "AV-100", got.Parts[0].PN)
}

func TestCodec_PayloadCorrupto(t *testing.T) {
	_, err := decodeState([]byte("{esto no es json"))
	assert.Error(t, err)
}

// Snapshots de versiones viejas con contadores en cero se normalizan a 1.
func TestCodec_NormalizaContadores(t *testing.T) {
	got, err := decodeState([]byte(`{"nextQuoteSeq":0,"nextInvoiceSeq":5}`))
	require.NoError(t, err)
	assert.Equal(t, 1, got.NextQuoteSeq)
	assert.Equal(t, 5, got.NextInvoiceSeq)
	assert.Equal(t, 1, got.NextPOSeq)
}
