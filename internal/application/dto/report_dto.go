package dto

import "github.com/shopspring/decimal"

// AgingBucketDTO saldo pendiente agrupado por antigüedad del vencimiento.
type AgingBucketDTO struct {
	Bucket string          `json:"bucket"` // "0-30", "31-60", "61+"
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"` // pendiente = amount - paidAmount
}

// AgingReportDTO reporte de antigüedad de cuentas por cobrar y por pagar.
type AgingReportDTO struct {
	Receivables []AgingBucketDTO `json:"receivables"`
	Payables    []AgingBucketDTO `json:"payables"`
}

// FinancialKPIsDTO indicadores del tablero financiero.
type FinancialKPIsDTO struct {
	OutstandingReceivable decimal.Decimal `json:"outstandingReceivable"`
	OutstandingPayable    decimal.Decimal `json:"outstandingPayable"`
	OverdueReceivables    int             `json:"overdueReceivables"`
	OverduePayables       int             `json:"overduePayables"`
	PaidRevenue           decimal.Decimal `json:"paidRevenue"` // facturas en estado Paid
	OpenQuotes            int             `json:"openQuotes"`  // Draft + Sent
}

// InventoryKPIsDTO indicadores del tablero de inventario.
type InventoryKPIsDTO struct {
	TotalLots         int             `json:"totalLots"`
	TotalUnits        decimal.Decimal `json:"totalUnits"`
	TotalValue        decimal.Decimal `json:"totalValue"` // Σ cantidad × costo unitario
	LotsBelowMinimum  int             `json:"lotsBelowMinimum"`
	PartsBelowMinimum []string        `json:"partsBelowMinimum"` // part numbers afectados
}
