package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de factura. Paid es terminal para efectos de pago.
const (
	InvoiceDraft     = "Draft"
	InvoiceIssued    = "Issued"
	InvoicePaid      = "Paid"
	InvoiceOverdue   = "Overdue"
	InvoiceCancelled = "Cancelled"
)

// InvoiceItem es una línea de factura (snapshot de la línea de cotización).
type InvoiceItem struct {
	ID          string          `json:"id"`
	PartID      string          `json:"partId"`
	PN          string          `json:"pn"`
	Description string          `json:"description"`
	Condition   string          `json:"condition"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// Invoice representa una factura de venta, independiente o derivada de una
// cotización. Número INV-0001 desde el contador de secuencia.
type Invoice struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	QuoteID       string          `json:"quoteId,omitempty"`
	CustomerID    string          `json:"customerId"`
	CustomerName  string          `json:"customerName"`
	Items         []InvoiceItem   `json:"items"`
	Shipping      decimal.Decimal `json:"shipping"`
	Tax           decimal.Decimal `json:"tax"`
	WireCcFee     decimal.Decimal `json:"wireCcFee"` // reservado, siempre 0 al crear
	Subtotal      decimal.Decimal `json:"subtotal"`
	Total         decimal.Decimal `json:"total"`
	DueDate       time.Time       `json:"dueDate"`
	Status        string          `json:"status"`
	PaidDate      *time.Time      `json:"paidDate,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Clone devuelve una copia profunda (incluye las líneas).
func (inv Invoice) Clone() Invoice {
	out := inv
	out.Items = append([]InvoiceItem(nil), inv.Items...)
	if inv.PaidDate != nil {
		d := *inv.PaidDate
		out.PaidDate = &d
	}
	return out
}
