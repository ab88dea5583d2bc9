package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN         = "IN"         // entrada (recepción de PO)
	MovementTypeOUT        = "OUT"        // salida (cumplimiento de factura)
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste manual
)

// InventoryLot representa un lote físico en existencia: cantidad de una parte
// con su propio costo, proveedor y ubicación. La cantidad solo la mutan las
// transiciones del workflow o una edición manual.
type InventoryLot struct {
	ID                  string          `json:"id"`
	PartID              string          `json:"partId"`
	PN                  string          `json:"pn"`
	SerialNumber        string          `json:"serialNumber,omitempty"`
	BatchLot            string          `json:"batchLot,omitempty"`
	Quantity            decimal.Decimal `json:"quantity"`
	UnitCost            decimal.Decimal `json:"unitCost"`
	SupplierID          string          `json:"supplierId"`
	SupplierName        string          `json:"supplierName"`
	InvoiceNumber       string          `json:"invoiceNumber,omitempty"`
	EntryDate           time.Time       `json:"entryDate"`
	Location            string          `json:"location"`
	CertificateFileName string          `json:"certificateFileName,omitempty"`
	MinimumStock        decimal.Decimal `json:"minimumStock"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

// InventoryMovement es el registro de auditoría de un delta de cantidad
// contra un lote. Append-only: el workflow nunca lo actualiza ni lo borra.
type InventoryMovement struct {
	ID        string          `json:"id"`
	LotID     string          `json:"lotId"`
	PartID    string          `json:"partId"`
	Type      string          `json:"type"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reference string          `json:"reference"` // documento de origen, ej. "Invoice INV-0001"
	Date      time.Time       `json:"date"`
	Notes     string          `json:"notes,omitempty"`
}
