package finance

import "github.com/shopspring/decimal"

// InvoiceTaxRate es la tasa plana del 8% aplicada a toda factura de venta.
// Política fija del negocio, no configurable por jurisdicción.
var InvoiceTaxRate = decimal.NewFromFloat(0.08)

// InvoiceTax calcula el impuesto de una factura a dos decimales.
func InvoiceTax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(InvoiceTaxRate).Round(2)
}
