package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aeroparts-api/internal/application/reporting"
	"github.com/jhoicas/aeroparts-api/internal/application/usecase"
	"github.com/jhoicas/aeroparts-api/internal/application/workflow"
	"github.com/jhoicas/aeroparts-api/internal/store"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PartUC      *usecase.PartUseCase
	InventoryUC *usecase.InventoryUseCase
	CustomerUC  *usecase.CustomerUseCase
	VendorUC    *usecase.VendorUseCase
	QuoteUC     *usecase.QuoteUseCase
	InvoiceUC   *usecase.InvoiceUseCase
	POUC        *usecase.PurchaseOrderUseCase
	AccountsUC  *usecase.AccountsUseCase
	Engine      *workflow.Engine
	Reports     *reporting.FinancialUseCase
	Store       *store.Store
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo de partes
	parts := api.Group("/parts")
	partHandler := NewPartHandler(deps.PartUC)
	parts.Post("/", partHandler.Create)
	parts.Get("/", partHandler.List)
	parts.Get("/:id", partHandler.GetByID)
	parts.Put("/:id", partHandler.Update)
	parts.Delete("/:id", partHandler.Delete)

	// Inventario: lotes, ajustes y movimientos
	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv.Post("/lots", inventoryHandler.CreateLot)
	inv.Get("/lots", inventoryHandler.ListLots)
	inv.Get("/lots/:id", inventoryHandler.GetLot)
	inv.Put("/lots/:id", inventoryHandler.UpdateLot)
	inv.Delete("/lots/:id", inventoryHandler.DeleteLot)
	inv.Post("/lots/:id/adjustments", inventoryHandler.RegisterAdjustment)
	inv.Get("/movements", inventoryHandler.ListMovements)

	// Clientes
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Proveedores
	vendors := api.Group("/vendors")
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors.Post("/", vendorHandler.Create)
	vendors.Get("/", vendorHandler.List)
	vendors.Get("/:id", vendorHandler.GetByID)
	vendors.Put("/:id", vendorHandler.Update)
	vendors.Delete("/:id", vendorHandler.Delete)

	// Cotizaciones (incluye conversión a factura)
	quotes := api.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.QuoteUC, deps.Engine)
	quotes.Post("/", quoteHandler.Create)
	quotes.Get("/", quoteHandler.List)
	quotes.Get("/:id", quoteHandler.GetByID)
	quotes.Put("/:id", quoteHandler.Update)
	quotes.Delete("/:id", quoteHandler.Delete)
	quotes.Post("/:id/convert", quoteHandler.Convert)

	// Facturas (incluye cobro)
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.Engine)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Post("/:id/pay", invoiceHandler.Pay)

	// Órdenes de compra (incluye recepción)
	pos := api.Group("/purchase-orders")
	poHandler := NewPurchaseOrderHandler(deps.POUC, deps.Engine)
	pos.Post("/", poHandler.Create)
	pos.Get("/", poHandler.List)
	pos.Get("/:id", poHandler.GetByID)
	pos.Put("/:id", poHandler.Update)
	pos.Delete("/:id", poHandler.Delete)
	pos.Post("/:id/receive", poHandler.Receive)

	// Cuentas por pagar / por cobrar
	accounts := api.Group("/accounts")
	accountsHandler := NewAccountsHandler(deps.AccountsUC)
	accounts.Get("/payable", accountsHandler.ListPayables)
	accounts.Get("/receivable", accountsHandler.ListReceivables)
	accounts.Post("/payable/:id/payments", accountsHandler.PayPayable)
	accounts.Post("/receivable/:id/payments", accountsHandler.PayReceivable)

	// Reportes del tablero
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.Reports)
	reports.Get("/aging", reportHandler.Aging)
	reports.Get("/kpis/financial", reportHandler.FinancialKPIs)
	reports.Get("/kpis/inventory", reportHandler.InventoryKPIs)

	// Snapshot completo del estado
	stateHandler := NewStateHandler(deps.Store)
	api.Get("/state", stateHandler.Snapshot)
}
