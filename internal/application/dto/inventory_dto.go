package dto

import "github.com/shopspring/decimal"

// CreateLotRequest alta manual de lote. No se valida que PartID exista
// (las referencias huérfanas se toleran).
type CreateLotRequest struct {
	PartID              string          `json:"partId"`
	PN                  string          `json:"pn"`
	SerialNumber        string          `json:"serialNumber"`
	BatchLot            string          `json:"batchLot"`
	Quantity            decimal.Decimal `json:"quantity"`
	UnitCost            decimal.Decimal `json:"unitCost"`
	SupplierID          string          `json:"supplierId"`
	SupplierName        string          `json:"supplierName"`
	InvoiceNumber       string          `json:"invoiceNumber"`
	Location            string          `json:"location"`
	CertificateFileName string          `json:"certificateFileName"`
	MinimumStock        decimal.Decimal `json:"minimumStock"`
}

// UpdateLotRequest merge parcial de lote.
type UpdateLotRequest struct {
	PN                  *string          `json:"pn"`
	SerialNumber        *string          `json:"serialNumber"`
	BatchLot            *string          `json:"batchLot"`
	Quantity            *decimal.Decimal `json:"quantity"`
	UnitCost            *decimal.Decimal `json:"unitCost"`
	SupplierID          *string          `json:"supplierId"`
	SupplierName        *string          `json:"supplierName"`
	InvoiceNumber       *string          `json:"invoiceNumber"`
	Location            *string          `json:"location"`
	CertificateFileName *string          `json:"certificateFileName"`
	MinimumStock        *decimal.Decimal `json:"minimumStock"`
}

// AdjustmentRequest ajuste manual de cantidad sobre un lote. Quantity es el
// delta firmado; genera un movimiento ADJUSTMENT en la auditoría.
type AdjustmentRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
	Notes    string          `json:"notes"`
}
