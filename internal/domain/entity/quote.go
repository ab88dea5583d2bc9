package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de cotización. Solo la conversión a factura se modela como
// transición; el resto se cambia libremente vía CRUD.
const (
	QuoteDraft = "Draft"
	QuoteSent  = "Sent"
	QuoteWon   = "Won"
	QuoteLost  = "Lost"
)

// QuoteItem es una línea de cotización: referencia a una parte con precio.
// Total = Quantity × UnitPrice (lo mantiene la capa CRUD).
type QuoteItem struct {
	ID          string          `json:"id"`
	PartID      string          `json:"partId"`
	PN          string          `json:"pn"`
	Description string          `json:"description"`
	Condition   string          `json:"condition"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// Quote representa una cotización para un cliente. QuoteNumber se asigna en
// la creación desde el contador de secuencia (QT-0001) y nunca se reusa.
type Quote struct {
	ID           string          `json:"id"`
	QuoteNumber  string          `json:"quoteNumber"`
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	Items        []QuoteItem     `json:"items"`
	LeadTime     string          `json:"leadTime"`
	Shipping     decimal.Decimal `json:"shipping"`
	ValidUntil   time.Time       `json:"validUntil"`
	Status       string          `json:"status"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// Clone devuelve una copia profunda (incluye las líneas).
func (q Quote) Clone() Quote {
	out := q
	out.Items = append([]QuoteItem(nil), q.Items...)
	return out
}

// Subtotal suma los totales de línea.
func (q Quote) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range q.Items {
		sum = sum.Add(item.Total)
	}
	return sum
}
