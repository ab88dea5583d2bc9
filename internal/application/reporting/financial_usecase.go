package reporting

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/aeroparts-api/internal/application/dto"
	"github.com/jhoicas/aeroparts-api/internal/domain/entity"
	"github.com/jhoicas/aeroparts-api/internal/domain/finance"
	"github.com/jhoicas/aeroparts-api/internal/store"
)

// FinancialUseCase reportes del tablero financiero: antigüedad de saldos e
// indicadores agregados. Solo lee el snapshot, nunca lo muta.
type FinancialUseCase struct {
	store *store.Store
}

// NewFinancialUseCase construye el caso de uso.
func NewFinancialUseCase(s *store.Store) *FinancialUseCase {
	return &FinancialUseCase{store: s}
}

// orden fijo de los buckets en los reportes.
var bucketOrder = []string{finance.BucketCurrent, finance.BucketMid, finance.BucketLate}

// AgingReport agrupa los saldos pendientes (amount - paidAmount) de cuentas
// por cobrar y por pagar en buckets 0-30 / 31-60 / 61+ según el vencimiento.
// Las cuentas ya pagadas no aportan.
func (uc *FinancialUseCase) AgingReport(now time.Time) dto.AgingReportDTO {
	snap := uc.store.Snapshot()

	arBuckets := map[string]*dto.AgingBucketDTO{}
	apBuckets := map[string]*dto.AgingBucketDTO{}
	for _, b := range bucketOrder {
		arBuckets[b] = &dto.AgingBucketDTO{Bucket: b, Amount: decimal.Zero}
		apBuckets[b] = &dto.AgingBucketDTO{Bucket: b, Amount: decimal.Zero}
	}

	for _, ar := range snap.AccountsReceivable {
		outstanding := ar.Amount.Sub(ar.PaidAmount)
		if !outstanding.GreaterThan(decimal.Zero) {
			continue
		}
		b := arBuckets[finance.AgingBucket(now, ar.DueDate)]
		b.Count++
		b.Amount = b.Amount.Add(outstanding)
	}
	for _, ap := range snap.AccountsPayable {
		outstanding := ap.Amount.Sub(ap.PaidAmount)
		if !outstanding.GreaterThan(decimal.Zero) {
			continue
		}
		b := apBuckets[finance.AgingBucket(now, ap.DueDate)]
		b.Count++
		b.Amount = b.Amount.Add(outstanding)
	}

	report := dto.AgingReportDTO{}
	for _, name := range bucketOrder {
		report.Receivables = append(report.Receivables, *arBuckets[name])
		report.Payables = append(report.Payables, *apBuckets[name])
	}
	return report
}

// FinancialKPIs calcula los indicadores del tablero financiero.
func (uc *FinancialUseCase) FinancialKPIs(now time.Time) dto.FinancialKPIsDTO {
	snap := uc.store.Snapshot()
	kpis := dto.FinancialKPIsDTO{
		OutstandingReceivable: decimal.Zero,
		OutstandingPayable:    decimal.Zero,
		PaidRevenue:           decimal.Zero,
	}

	for _, ar := range snap.AccountsReceivable {
		outstanding := ar.Amount.Sub(ar.PaidAmount)
		if outstanding.GreaterThan(decimal.Zero) {
			kpis.OutstandingReceivable = kpis.OutstandingReceivable.Add(outstanding)
			if now.After(ar.DueDate) {
				kpis.OverdueReceivables++
			}
		}
	}
	for _, ap := range snap.AccountsPayable {
		outstanding := ap.Amount.Sub(ap.PaidAmount)
		if outstanding.GreaterThan(decimal.Zero) {
			kpis.OutstandingPayable = kpis.OutstandingPayable.Add(outstanding)
			if now.After(ap.DueDate) {
				kpis.OverduePayables++
			}
		}
	}
	for _, inv := range snap.Invoices {
		if inv.Status == entity.InvoicePaid {
			kpis.PaidRevenue = kpis.PaidRevenue.Add(inv.Total)
		}
	}
	for _, q := range snap.Quotes {
		if q.Status == entity.QuoteDraft || q.Status == entity.QuoteSent {
			kpis.OpenQuotes++
		}
	}
	return kpis
}

// InventoryKPIs calcula los indicadores del tablero de inventario: valor
// total al costo y lotes en o bajo su stock mínimo.
func (uc *FinancialUseCase) InventoryKPIs() dto.InventoryKPIsDTO {
	snap := uc.store.Snapshot()
	kpis := dto.InventoryKPIsDTO{
		TotalUnits: decimal.Zero,
		TotalValue: decimal.Zero,
	}

	seen := map[string]bool{}
	for _, lot := range snap.InventoryLots {
		kpis.TotalLots++
		kpis.TotalUnits = kpis.TotalUnits.Add(lot.Quantity)
		kpis.TotalValue = kpis.TotalValue.Add(lot.Quantity.Mul(lot.UnitCost))
		if lot.Quantity.LessThanOrEqual(lot.MinimumStock) {
			kpis.LotsBelowMinimum++
			if !seen[lot.PN] {
				kpis.PartsBelowMinimum = append(kpis.PartsBelowMinimum, lot.PN)
				seen[lot.PN] = true
			}
		}
	}
	return kpis
}
