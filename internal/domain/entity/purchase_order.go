package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de orden de compra.
const (
	PODraft     = "Draft"
	POSent      = "Sent"
	POShipped   = "Shipped"
	POReceived  = "Received"
	POClosed    = "Closed"
	POCancelled = "Cancelled"
)

// POItem es una línea de orden de compra. Total = Quantity × UnitCost.
type POItem struct {
	ID          string          `json:"id"`
	PartID      string          `json:"partId"`
	PN          string          `json:"pn"`
	Description string          `json:"description"`
	Condition   string          `json:"condition"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	Total       decimal.Decimal `json:"total"`
}

// PurchaseOrder representa una orden de compra a un proveedor. Número PO-0001
// desde el contador de secuencia. TotalLandedCost = líneas + flete + impuestos;
// lo mantiene la capa CRUD y la recepción lo toma tal cual (no lo recalcula).
type PurchaseOrder struct {
	ID              string          `json:"id"`
	PONumber        string          `json:"poNumber"`
	VendorID        string          `json:"vendorId"`
	VendorName      string          `json:"vendorName"`
	Items           []POItem        `json:"items"`
	ShippingCost    decimal.Decimal `json:"shippingCost"`
	Taxes           decimal.Decimal `json:"taxes"`
	TotalLandedCost decimal.Decimal `json:"totalLandedCost"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Clone devuelve una copia profunda (incluye las líneas).
func (po PurchaseOrder) Clone() PurchaseOrder {
	out := po
	out.Items = append([]POItem(nil), po.Items...)
	return out
}
