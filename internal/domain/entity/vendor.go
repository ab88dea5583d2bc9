package entity

import "time"

// Calificaciones de proveedor.
const (
	RatingA        = "A"
	RatingB        = "B"
	RatingC        = "C"
	RatingNotRated = "Not Rated"
)

// Monedas soportadas para proveedores.
const (
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyGBP = "GBP"
	CurrencyCAD = "CAD"
)

// Vendor representa la ficha maestra de un proveedor.
// LeadTime es texto libre ("2 weeks", "Net 45"); al recibir una PO se reusa
// como término de pago extrayendo los dígitos — rareza heredada del negocio.
type Vendor struct {
	ID            string    `json:"id"`
	CompanyName   string    `json:"companyName"`
	ContactPerson string    `json:"contactPerson"`
	Emails        []string  `json:"emails"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	PaymentMethod string    `json:"paymentMethod"`
	LeadTime      string    `json:"leadTime"`
	Currency      string    `json:"currency"`
	Rating        string    `json:"rating"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Clone devuelve una copia profunda.
func (v Vendor) Clone() Vendor {
	out := v
	out.Emails = append([]string(nil), v.Emails...)
	return out
}
