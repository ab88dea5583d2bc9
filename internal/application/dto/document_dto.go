package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItemInput línea de documento (cotización, factura u orden de compra).
// UnitPrice aplica a cotizaciones/facturas, UnitCost a órdenes de compra; el
// total de línea lo calcula la capa CRUD, nunca viene del cliente.
type LineItemInput struct {
	PartID      string          `json:"partId"`
	PN          string          `json:"pn"`
	Description string          `json:"description"`
	Condition   string          `json:"condition"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	UnitCost    decimal.Decimal `json:"unitCost"`
}

// CreateQuoteRequest alta de cotización (el número QT-XXXX lo asigna el store).
type CreateQuoteRequest struct {
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	Items        []LineItemInput `json:"items"`
	LeadTime     string          `json:"leadTime"`
	Shipping     decimal.Decimal `json:"shipping"`
	ValidUntil   time.Time       `json:"validUntil"`
	Status       string          `json:"status"`
	Notes        string          `json:"notes"`
}

// UpdateQuoteRequest merge parcial. Items, si viene, reemplaza todas las
// líneas y recalcula sus totales.
type UpdateQuoteRequest struct {
	CustomerID   *string          `json:"customerId"`
	CustomerName *string          `json:"customerName"`
	Items        *[]LineItemInput `json:"items"`
	LeadTime     *string          `json:"leadTime"`
	Shipping     *decimal.Decimal `json:"shipping"`
	ValidUntil   *time.Time       `json:"validUntil"`
	Status       *string          `json:"status"`
	Notes        *string          `json:"notes"`
}

// CreateInvoiceRequest alta de factura independiente (sin cotización de
// origen). Subtotal, impuesto y total se calculan de las líneas.
type CreateInvoiceRequest struct {
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	Items        []LineItemInput `json:"items"`
	Shipping     decimal.Decimal `json:"shipping"`
	WireCcFee    decimal.Decimal `json:"wireCcFee"`
	DueDate      time.Time       `json:"dueDate"`
	Status       string          `json:"status"`
}

// UpdateInvoiceRequest merge parcial de factura.
type UpdateInvoiceRequest struct {
	CustomerID   *string          `json:"customerId"`
	CustomerName *string          `json:"customerName"`
	Items        *[]LineItemInput `json:"items"`
	Shipping     *decimal.Decimal `json:"shipping"`
	WireCcFee    *decimal.Decimal `json:"wireCcFee"`
	DueDate      *time.Time       `json:"dueDate"`
	Status       *string          `json:"status"`
}

// CreatePORequest alta de orden de compra (el número PO-XXXX lo asigna el store).
type CreatePORequest struct {
	VendorID     string          `json:"vendorId"`
	VendorName   string          `json:"vendorName"`
	Items        []LineItemInput `json:"items"`
	ShippingCost decimal.Decimal `json:"shippingCost"`
	Taxes        decimal.Decimal `json:"taxes"`
	Status       string          `json:"status"`
}

// UpdatePORequest merge parcial de orden de compra.
type UpdatePORequest struct {
	VendorID     *string          `json:"vendorId"`
	VendorName   *string          `json:"vendorName"`
	Items        *[]LineItemInput `json:"items"`
	ShippingCost *decimal.Decimal `json:"shippingCost"`
	Taxes        *decimal.Decimal `json:"taxes"`
	Status       *string          `json:"status"`
}

// PaymentRequest abono manual sobre una cuenta por pagar o por cobrar.
type PaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}
