package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest alta de cliente.
type CreateCustomerRequest struct {
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
	Notes           string          `json:"notes"`
}

// UpdateCustomerRequest merge parcial de cliente.
type UpdateCustomerRequest struct {
	CompanyName     *string          `json:"companyName"`
	ContactPerson   *string          `json:"contactPerson"`
	Emails          *[]string        `json:"emails"`
	Phone           *string          `json:"phone"`
	BillingAddress  *string          `json:"billingAddress"`
	ShippingAddress *string          `json:"shippingAddress"`
	TaxID           *string          `json:"taxId"`
	PaymentTerms    *string          `json:"paymentTerms"`
	CreditLimit     *decimal.Decimal `json:"creditLimit"`
	Status          *string          `json:"status"`
	Notes           *string          `json:"notes"`
}

// CreateVendorRequest alta de proveedor.
type CreateVendorRequest struct {
	CompanyName   string   `json:"companyName"`
	ContactPerson string   `json:"contactPerson"`
	Emails        []string `json:"emails"`
	Phone         string   `json:"phone"`
	Address       string   `json:"address"`
	PaymentMethod string   `json:"paymentMethod"`
	LeadTime      string   `json:"leadTime"`
	Currency      string   `json:"currency"`
	Rating        string   `json:"rating"`
	Notes         string   `json:"notes"`
}

// UpdateVendorRequest merge parcial de proveedor.
type UpdateVendorRequest struct {
	CompanyName   *string   `json:"companyName"`
	ContactPerson *string   `json:"contactPerson"`
	Emails        *[]string `json:"emails"`
	Phone         *string   `json:"phone"`
	Address       *string   `json:"address"`
	PaymentMethod *string   `json:"paymentMethod"`
	LeadTime      *string   `json:"leadTime"`
	Currency      *string   `json:"currency"`
	Rating        *string   `json:"rating"`
	Notes         *string   `json:"notes"`
}
