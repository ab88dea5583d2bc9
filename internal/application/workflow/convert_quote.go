package workflow

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/aeroparts-api/internal/domain"
	"github.com/jhoicas/aeroparts-api/internal/domain/entity"
	"github.com/jhoicas/aeroparts-api/internal/domain/finance"
	"github.com/jhoicas/aeroparts-api/internal/store"
)

// ConvertQuoteToInvoice convierte una cotización en factura emitida:
//
//  1. Vencimiento según los términos de pago del cliente (dígitos del texto;
//     sin cliente o sin dígitos, 30 días).
//  2. Las líneas se clonan con IDs nuevos conservando parte, precio y total.
//  3. Subtotal = Σ totales de línea; impuesto plano 8% a dos decimales;
//     wireCcFee reservado en 0; total = subtotal + flete + impuesto + fee.
//  4. Una cuenta por cobrar por el total de la factura, en Pending.
//  5. La cotización pasa a Won incondicionalmente (aunque estuviera Lost).
//
// El inventario no se toca: la emisión no es cumplimiento; las salidas
// ocurren al marcar la factura pagada. Todo en un solo commit.
func (e *Engine) ConvertQuoteToInvoice(quoteID string) (*entity.Invoice, error) {
	var created entity.Invoice
	err := e.store.Commit(func(st *store.State) error {
		quote := st.Quote(quoteID)
		if quote == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		terms := entity.TermsNet30
		if customer := st.Customer(quote.CustomerID); customer != nil {
			terms = customer.PaymentTerms
		}
		dueDate := finance.DueDate(now, terms)

		items := make([]entity.InvoiceItem, 0, len(quote.Items))
		subtotal := decimal.Zero
		for _, qi := range quote.Items {
			items = append(items, entity.InvoiceItem{
				ID:          store.NewID(),
				PartID:      qi.PartID,
				PN:          qi.PN,
				Description: qi.Description,
				Condition:   qi.Condition,
				Quantity:    qi.Quantity,
				UnitPrice:   qi.UnitPrice,
				Total:       qi.Total,
			})
			subtotal = subtotal.Add(qi.Total)
		}
		tax := finance.InvoiceTax(subtotal)
		wireCcFee := decimal.Zero
		total := subtotal.Add(quote.Shipping).Add(tax).Add(wireCcFee)

		created = entity.Invoice{
			ID:            store.NewID(),
			InvoiceNumber: st.NextInvoiceNumber(),
			QuoteID:       quote.ID,
			CustomerID:    quote.CustomerID,
			CustomerName:  quote.CustomerName,
			Items:         items,
			Shipping:      quote.Shipping,
			Tax:           tax,
			WireCcFee:     wireCcFee,
			Subtotal:      subtotal,
			Total:         total,
			DueDate:       dueDate,
			Status:        entity.InvoiceIssued,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		ar := entity.AccountReceivable{
			ID:            store.NewID(),
			CustomerID:    quote.CustomerID,
			CustomerName:  quote.CustomerName,
			InvoiceID:     created.ID,
			InvoiceNumber: created.InvoiceNumber,
			DueDate:       dueDate,
			Amount:        total,
			Status:        entity.AccountPending,
			PaidAmount:    decimal.Zero,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		quote.Status = entity.QuoteWon
		quote.UpdatedAt = now
		st.Invoices = append(st.Invoices, created)
		st.AccountsReceivable = append(st.AccountsReceivable, ar)
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.log.Info().
		Str("quote_id", quoteID).
		Str("invoice_number", created.InvoiceNumber).
		Str("total", created.Total.String()).
		Msg("cotización convertida en factura")
	return &created, nil
}
