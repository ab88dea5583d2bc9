package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de cliente.
const (
	CustomerActive    = "Active"
	CustomerInactive  = "Inactive"
	CustomerSuspended = "Suspended"
)

// Términos de pago habituales. El campo es texto libre: el workflow extrae
// los dígitos (ver finance.TermsDays), cualquier otro valor cae en 30 días.
const (
	TermsNet15   = "Net 15"
	TermsNet30   = "Net 30"
	TermsNet45   = "Net 45"
	TermsNet60   = "Net 60"
	TermsCOD     = "COD"
	TermsPrepaid = "Prepaid"
)

// Customer representa la ficha maestra de un cliente. Los documentos guardan
// un snapshot del nombre, no una referencia viva.
type Customer struct {
	ID              string          `json:"id"`
	CompanyName     string          `json:"companyName"`
	ContactPerson   string          `json:"contactPerson"`
	Emails          []string        `json:"emails"`
	Phone           string          `json:"phone"`
	BillingAddress  string          `json:"billingAddress"`
	ShippingAddress string          `json:"shippingAddress"`
	TaxID           string          `json:"taxId"`
	PaymentTerms    string          `json:"paymentTerms"`
	CreditLimit     decimal.Decimal `json:"creditLimit"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Clone devuelve una copia profunda (el slice de emails es mutable).
func (c Customer) Clone() Customer {
	out := c
	out.Emails = append([]string(nil), c.Emails...)
	return out
}
