package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aeroparts-api/internal/application/dto"
	"github.com/jhoicas/aeroparts-api/internal/application/usecase"
	"github.com/jhoicas/aeroparts-api/internal/domain"
	"github.com/jhoicas/aeroparts-api/internal/domain/entity"
	"github.com/jhoicas/aeroparts-api/internal/store"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newStore() *store.Store {
	return store.New(store.NewState())
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo de partes
// ──────────────────────────────────────────────────────────────────────────────

func TestPartUseCase_CRUD(t *testing.T) {
	uc := usecase.NewPartUseCase(newStore())

	part, err := uc.Create(dto.CreatePartRequest{
		PN: "AV-100", Description: "Actuador hidráulico", Condition: entity.ConditionNew,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, part.ID)
	assert.False(t, part.CreatedAt.IsZero())

	got, err := uc.GetByID(part.ID)
	require.NoError(t, err)
	assert.Equal(t, "AV-100", got.PN)

	// Merge parcial: solo el campo presente cambia
	updated, err := uc.Update(part.ID, dto.UpdatePartRequest{Description: strPtr("Actuador OH")})
	require.NoError(t, err)
	assert.Equal(t, "Actuador OH", updated.Description)
	assert.Equal(t, "AV-100", updated.PN)

	require.NoError(t, uc.Delete(part.ID))
	assert.Empty(t, uc.List())

	_, err = uc.GetByID(part.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPartUseCase_UpdateYDeleteInexistente(t *testing.T) {
	uc := usecase.NewPartUseCase(newStore())

	_, err := uc.Update("fantasma", dto.UpdatePartRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete("fantasma"), domain.ErrNotFound)
}

func TestPartUseCase_CreateSinPN(t *testing.T) {
	uc := usecase.NewPartUseCase(newStore())
	_, err := uc.Create(dto.CreatePartRequest{Description: "sin part number"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cotizaciones: numeración dentro del commit de creación
// ──────────────────────────────────────────────────────────────────────────────

func TestQuoteUseCase_CreateAsignaNumeroSecuencial(t *testing.T) {
	uc := usecase.NewQuoteUseCase(newStore())
	in := dto.CreateQuoteRequest{
		CustomerID: "c1",
		Items: []dto.LineItemInput{
			{PartID: "p1", PN: "AV-100", Quantity: dec("2"), UnitPrice: dec("150.00")},
		},
	}

	q1, err := uc.Create(in)
	require.NoError(t, err)
	q2, err := uc.Create(in)
	require.NoError(t, err)

	assert.Equal(t, "QT-0001", q1.QuoteNumber)
	assert.Equal(t, "QT-0002", q2.QuoteNumber)
	assert.Equal(t, entity.QuoteDraft, q1.Status)

	// El total de línea lo calcula el servidor: 2 × 150 = 300
	assert.True(t, q1.Items[0].Total.Equal(dec("300.00")))
}

func TestQuoteUseCase_UpdateReemplazaLineasYRecalcula(t *testing.T) {
	uc := usecase.NewQuoteUseCase(newStore())
	q, err := uc.Create(dto.CreateQuoteRequest{
		CustomerID: "c1",
		Items:      []dto.LineItemInput{{PartID: "p1", PN: "AV-100", Quantity: dec("1"), UnitPrice: dec("100")}},
	})
	require.NoError(t, err)

	newItems := []dto.LineItemInput{
		{PartID: "p2", PN: "AV-200", Quantity: dec("3"), UnitPrice: dec("50.00")},
	}
	updated, err := uc.Update(q.ID, dto.UpdateQuoteRequest{Items: &newItems})
	require.NoError(t, err)

	require.Len(t, updated.Items, 1)
	assert.Equal(t, "AV-200", updated.Items[0].PN)
	assert.True(t, updated.Items[0].Total.Equal(dec("150.00")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas independientes: totales derivados de las líneas
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceUseCase_CreateCalculaTotales(t *testing.T) {
	uc := usecase.NewInvoiceUseCase(newStore())

	inv, err := uc.Create(dto.CreateInvoiceRequest{
		CustomerID: "c1",
		Items: []dto.LineItemInput{
			{PartID: "p1", PN: "AV-100", Quantity: dec("2"), UnitPrice: dec("100.00")},
		},
		Shipping: dec("25.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-0001", inv.InvoiceNumber)
	assert.True(t, inv.Subtotal.Equal(dec("200.00")))
	// Impuesto plano 8%
	assert.True(t, inv.Tax.Equal(dec("16.00")))
	assert.True(t, inv.Total.Equal(dec("241.00")), "total=%s", inv.Total)
	// Una factura creada a mano no genera cuenta por cobrar
}

// ──────────────────────────────────────────────────────────────────────────────
// Órdenes de compra: costo total aterrizado
// ──────────────────────────────────────────────────────────────────────────────

func TestPurchaseOrderUseCase_CreateCalculaCostoAterrizado(t *testing.T) {
	uc := usecase.NewPurchaseOrderUseCase(newStore())

	po, err := uc.Create(dto.CreatePORequest{
		VendorID: "v1",
		Items: []dto.LineItemInput{
			{PartID: "p1", PN: "AV-100", Quantity: dec("4"), UnitCost: dec("90.00")},
			{PartID: "p2", PN: "AV-200", Quantity: dec("2"), UnitCost: dec("120.00")},
		},
		ShippingCost: dec("40.00"),
		Taxes:        dec("10.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "PO-0001", po.PONumber)
	assert.True(t, po.Items[0].Total.Equal(dec("360.00")))
	// 360 + 240 + 40 + 10 = 650
	assert.True(t, po.TotalLandedCost.Equal(dec("650.00")), "landed=%s", po.TotalLandedCost)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario: ajustes manuales
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryUseCase_Adjustment(t *testing.T) {
	uc := usecase.NewInventoryUseCase(newStore())
	lot, err := uc.CreateLot(dto.CreateLotRequest{
		PartID: "p1", PN: "AV-100", Quantity: dec("10"), UnitCost: dec("90.00"),
	})
	require.NoError(t, err)

	// Delta negativo válido
	mov, err := uc.RegisterAdjustment(lot.ID, dto.AdjustmentRequest{Quantity: dec("-4"), Notes: "conteo físico"})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeADJUSTMENT, mov.Type)
	assert.Equal(t, "conteo físico", mov.Notes)

	got, err := uc.GetLot(lot.ID)
	require.NoError(t, err)
	assert.True(t, got.Quantity.Equal(dec("6")))

	// El ajuste nunca deja el lote bajo cero
	_, err = uc.RegisterAdjustment(lot.ID, dto.AdjustmentRequest{Quantity: dec("-7")})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Un ajuste rechazado no deja movimiento ni cambia la cantidad
	got, _ = uc.GetLot(lot.ID)
	assert.True(t, got.Quantity.Equal(dec("6")))
	assert.Len(t, uc.ListMovements(), 1)

	// Delta cero es inválido
	_, err = uc.RegisterAdjustment(lot.ID, dto.AdjustmentRequest{Quantity: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes y proveedores: defaults de alta
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerUseCase_DefaultsDeAlta(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newStore())
	c, err := uc.Create(dto.CreateCustomerRequest{CompanyName: "Aero Andes SAS"})
	require.NoError(t, err)
	assert.Equal(t, entity.CustomerActive, c.Status)
	assert.Equal(t, entity.TermsNet30, c.PaymentTerms)
}

func TestVendorUseCase_DefaultsDeAlta(t *testing.T) {
	uc := usecase.NewVendorUseCase(newStore())
	v, err := uc.Create(dto.CreateVendorRequest{CompanyName: "Skyline Parts Ltd"})
	require.NoError(t, err)
	assert.Equal(t, entity.CurrencyUSD, v.Currency)
	assert.Equal(t, entity.RatingNotRated, v.Rating)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cuentas: abonos manuales Pending → Partial → Paid
// ──────────────────────────────────────────────────────────────────────────────

func TestAccountsUseCase_AbonosParciales(t *testing.T) {
	s := newStore()
	require.NoError(t, s.Commit(func(st *store.State) error {
		st.AccountsPayable = append(st.AccountsPayable, entity.AccountPayable{
			ID: "ap1", Amount: dec("500.00"), PaidAmount: decimal.Zero, Status: entity.AccountPending,
		})
		return nil
	}))
	uc := usecase.NewAccountsUseCase(s)

	ap, err := uc.RegisterPayablePayment("ap1", dto.PaymentRequest{Amount: dec("200.00")})
	require.NoError(t, err)
	assert.Equal(t, entity.AccountPartial, ap.Status)
	assert.True(t, ap.PaidAmount.Equal(dec("200.00")))

	ap, err = uc.RegisterPayablePayment("ap1", dto.PaymentRequest{Amount: dec("300.00")})
	require.NoError(t, err)
	assert.Equal(t, entity.AccountPaid, ap.Status)

	// Abonos no positivos son inválidos
	_, err = uc.RegisterPayablePayment("ap1", dto.PaymentRequest{Amount: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterReceivablePayment("fantasma", dto.PaymentRequest{Amount: dec("10")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
