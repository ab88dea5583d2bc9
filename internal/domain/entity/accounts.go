package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de cuentas por pagar / por cobrar.
const (
	AccountPending = "Pending"
	AccountPartial = "Partial"
	AccountPaid    = "Paid"
	AccountOverdue = "Overdue"
)

// AccountPayable es una cuenta por pagar generada al recibir una orden de
// compra. Nunca la crea directamente el usuario; los abonos se registran vía
// el caso de uso de pagos.
type AccountPayable struct {
	ID                  string          `json:"id"`
	VendorID            string          `json:"vendorId"`
	VendorName          string          `json:"vendorName"`
	VendorInvoiceNumber string          `json:"vendorInvoiceNumber"`
	POID                string          `json:"poId,omitempty"`
	PONumber            string          `json:"poNumber,omitempty"`
	DueDate             time.Time       `json:"dueDate"`
	Amount              decimal.Decimal `json:"amount"`
	Currency            string          `json:"currency"`
	Status              string          `json:"status"`
	PaidAmount          decimal.Decimal `json:"paidAmount"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

// AccountReceivable es una cuenta por cobrar generada al emitir una factura
// desde una cotización (una por factura).
type AccountReceivable struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customerId"`
	CustomerName  string          `json:"customerName"`
	InvoiceID     string          `json:"invoiceId"`
	InvoiceNumber string          `json:"invoiceNumber"`
	DueDate       time.Time       `json:"dueDate"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
