package workflow_test

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/aeroparts-api/internal/application/workflow"
	"github.com/jhoicas/aeroparts-api/internal/domain/entity"
	"github.com/jhoicas/aeroparts-api/internal/store"
	"github.com/jhoicas/aeroparts-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// newEngine construye un store aislado con su motor de transiciones.
func newEngine(seed func(*store.State)) (*store.Store, *workflow.Engine) {
	st := store.NewState()
	if seed != nil {
		seed(&st)
	}
	s := store.New(st)
	return s, workflow.NewEngine(s, logger.NewNop())
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// quoteFixture cotización de dos líneas: 2 × 150.00 + 1 × 300.00 = 600.00.
func quoteFixture() entity.Quote {
	return entity.Quote{
		ID:           "q1",
		QuoteNumber:  "QT-0001",
		CustomerID:   "c1",
		CustomerName: "Aero Andes SAS",
		Items: []entity.QuoteItem{
			{ID: "qi1", PartID: "p1", PN: "AV-100", Condition: entity.ConditionNew,
				Quantity: dec("2"), UnitPrice: dec("150.00"), Total: dec("300.00")},
			{ID: "qi2", PartID: "p2", PN: "AV-200", Condition: entity.ConditionOH,
				Quantity: dec("1"), UnitPrice: dec("300.00"), Total: dec("300.00")},
		},
		Shipping: dec("50.00"),
		Status:   entity.QuoteSent,
	}
}
