package store

import "github.com/jhoicas/aeroparts-api/internal/domain/entity"

// Helpers de búsqueda por ID sobre el snapshot. Devuelven punteros dentro de
// los slices del State: mutarlos solo es válido sobre el clon de un Commit.

// Part busca una parte por ID; nil si no existe.
func (st *State) Part(id string) *entity.Part {
	for i := range st.Parts {
		if st.Parts[i].ID == id {
			return &st.Parts[i]
		}
	}
	return nil
}

// InventoryLot busca un lote por ID; nil si no existe.
func (st *State) InventoryLot(id string) *entity.InventoryLot {
	for i := range st.InventoryLots {
		if st.InventoryLots[i].ID == id {
			return &st.InventoryLots[i]
		}
	}
	return nil
}

// Customer busca un cliente por ID; nil si no existe.
func (st *State) Customer(id string) *entity.Customer {
	for i := range st.Customers {
		if st.Customers[i].ID == id {
			return &st.Customers[i]
		}
	}
	return nil
}

// Vendor busca un proveedor por ID; nil si no existe.
func (st *State) Vendor(id string) *entity.Vendor {
	for i := range st.Vendors {
		if st.Vendors[i].ID == id {
			return &st.Vendors[i]
		}
	}
	return nil
}

// Quote busca una cotización por ID; nil si no existe.
func (st *State) Quote(id string) *entity.Quote {
	for i := range st.Quotes {
		if st.Quotes[i].ID == id {
			return &st.Quotes[i]
		}
	}
	return nil
}

// Invoice busca una factura por ID; nil si no existe.
func (st *State) Invoice(id string) *entity.Invoice {
	for i := range st.Invoices {
		if st.Invoices[i].ID == id {
			return &st.Invoices[i]
		}
	}
	return nil
}

// PurchaseOrder busca una orden de compra por ID; nil si no existe.
func (st *State) PurchaseOrder(id string) *entity.PurchaseOrder {
	for i := range st.PurchaseOrders {
		if st.PurchaseOrders[i].ID == id {
			return &st.PurchaseOrders[i]
		}
	}
	return nil
}

// AccountPayable busca una cuenta por pagar por ID; nil si no existe.
func (st *State) AccountPayable(id string) *entity.AccountPayable {
	for i := range st.AccountsPayable {
		if st.AccountsPayable[i].ID == id {
			return &st.AccountsPayable[i]
		}
	}
	return nil
}

// AccountReceivable busca una cuenta por cobrar por ID; nil si no existe.
func (st *State) AccountReceivable(id string) *entity.AccountReceivable {
	for i := range st.AccountsReceivable {
		if st.AccountsReceivable[i].ID == id {
			return &st.AccountsReceivable[i]
		}
	}
	return nil
}

// AccountReceivableByInvoice busca la cuenta por cobrar ligada a una factura.
func (st *State) AccountReceivableByInvoice(invoiceID string) *entity.AccountReceivable {
	for i := range st.AccountsReceivable {
		if st.AccountsReceivable[i].InvoiceID == invoiceID {
			return &st.AccountsReceivable[i]
		}
	}
	return nil
}

// AccountPayableByPO busca la cuenta por pagar ligada a una orden de compra.
func (st *State) AccountPayableByPO(poID string) *entity.AccountPayable {
	for i := range st.AccountsPayable {
		if st.AccountsPayable[i].POID == poID {
			return &st.AccountsPayable[i]
		}
	}
	return nil
}
