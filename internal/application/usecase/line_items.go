package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/aeroparts-api/internal/application/dto"
	"github.com/jhoicas/aeroparts-api/internal/domain/entity"
	"github.com/jhoicas/aeroparts-api/internal/store"
)

// Constructores de líneas de documento. El total de línea siempre se
// recalcula aquí (cantidad × precio/costo unitario); nunca se confía en un
// total que venga del cliente.

func buildQuoteItems(items []dto.LineItemInput) []entity.QuoteItem {
	out := make([]entity.QuoteItem, 0, len(items))
	for _, in := range items {
		out = append(out, entity.QuoteItem{
			ID:          store.NewID(),
			PartID:      in.PartID,
			PN:          in.PN,
			Description: in.Description,
			Condition:   in.Condition,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			Total:       in.Quantity.Mul(in.UnitPrice),
		})
	}
	return out
}

func buildInvoiceItems(items []dto.LineItemInput) []entity.InvoiceItem {
	out := make([]entity.InvoiceItem, 0, len(items))
	for _, in := range items {
		out = append(out, entity.InvoiceItem{
			ID:          store.NewID(),
			PartID:      in.PartID,
			PN:          in.PN,
			Description: in.Description,
			Condition:   in.Condition,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			Total:       in.Quantity.Mul(in.UnitPrice),
		})
	}
	return out
}

func buildPOItems(items []dto.LineItemInput) []entity.POItem {
	out := make([]entity.POItem, 0, len(items))
	for _, in := range items {
		out = append(out, entity.POItem{
			ID:          store.NewID(),
			PartID:      in.PartID,
			PN:          in.PN,
			Description: in.Description,
			Condition:   in.Condition,
			Quantity:    in.Quantity,
			UnitCost:    in.UnitCost,
			Total:       in.Quantity.Mul(in.UnitCost),
		})
	}
	return out
}

func sumInvoiceItems(items []entity.InvoiceItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Total)
	}
	return sum
}

func sumPOItems(items []entity.POItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Total)
	}
	return sum
}
