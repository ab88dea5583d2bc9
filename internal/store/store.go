// Package store contiene el almacén de entidades en memoria: un snapshot
// completo del estado del negocio que se reemplaza atómicamente en cada
// commit. No hay singleton: el Store se construye y se inyecta, de modo que
// cada test puede instanciar el suyo aislado.
package store

import (
	"sync"

	"github.com/jhoicas/aeroparts-api/internal/domain/entity"
)

// State es el snapshot completo: las diez colecciones ordenadas más los tres
// contadores de secuencia. Es el mismo payload que se serializa al slot de
// persistencia.
type State struct {
	Parts              []entity.Part              `json:"parts"`
	InventoryLots      []entity.InventoryLot      `json:"inventoryLots"`
	InventoryMovements []entity.InventoryMovement `json:"inventoryMovements"`
	Customers          []entity.Customer          `json:"customers"`
	Vendors            []entity.Vendor            `json:"vendors"`
	Quotes             []entity.Quote             `json:"quotes"`
	Invoices           []entity.Invoice           `json:"invoices"`
	PurchaseOrders     []entity.PurchaseOrder     `json:"purchaseOrders"`
	AccountsPayable    []entity.AccountPayable    `json:"accountsPayable"`
	AccountsReceivable []entity.AccountReceivable `json:"accountsReceivable"`

	NextQuoteSeq   int `json:"nextQuoteSeq"`
	NextInvoiceSeq int `json:"nextInvoiceSeq"`
	NextPOSeq      int `json:"nextPOSeq"`
}

// NewState devuelve el estado vacío por defecto: colecciones vacías y
// contadores en 1. Es también el estado tras un slot ausente o corrupto.
func NewState() State {
	return State{
		NextQuoteSeq:   1,
		NextInvoiceSeq: 1,
		NextPOSeq:      1,
	}
}

// Clone devuelve una copia profunda del estado. Las entidades con slices
// internos (líneas, emails) clonan los suyos.
func (st State) Clone() State {
	out := st

	out.Parts = append([]entity.Part(nil), st.Parts...)
	out.InventoryLots = append([]entity.InventoryLot(nil), st.InventoryLots...)
	out.InventoryMovements = append([]entity.InventoryMovement(nil), st.InventoryMovements...)
	out.AccountsPayable = append([]entity.AccountPayable(nil), st.AccountsPayable...)
	out.AccountsReceivable = append([]entity.AccountReceivable(nil), st.AccountsReceivable...)

	out.Customers = make([]entity.Customer, len(st.Customers))
	for i, c := range st.Customers {
		out.Customers[i] = c.Clone()
	}
	out.Vendors = make([]entity.Vendor, len(st.Vendors))
	for i, v := range st.Vendors {
		out.Vendors[i] = v.Clone()
	}
	out.Quotes = make([]entity.Quote, len(st.Quotes))
	for i, q := range st.Quotes {
		out.Quotes[i] = q.Clone()
	}
	out.Invoices = make([]entity.Invoice, len(st.Invoices))
	for i, inv := range st.Invoices {
		out.Invoices[i] = inv.Clone()
	}
	out.PurchaseOrders = make([]entity.PurchaseOrder, len(st.PurchaseOrders))
	for i, po := range st.PurchaseOrders {
		out.PurchaseOrders[i] = po.Clone()
	}

	return out
}

// Store contiene el snapshot vigente y lo reemplaza atómicamente en cada
// commit. Los lectores ven el estado pre o post transición completo, nunca
// uno intermedio. El RWMutex existe porque los handlers HTTP son
// concurrentes; cada commit sigue siendo de un solo escritor.
type Store struct {
	mu       sync.RWMutex
	state    State
	onCommit []func(State)
}

// New construye el store con un estado inicial (normalmente el rehidratado
// desde persistencia, o NewState si el slot estaba vacío).
func New(initial State) *Store {
	return &Store{state: initial}
}

// OnCommit registra un observador que recibe cada snapshot confirmado
// (lo usa el adaptador de persistencia write-behind). El snapshot entregado
// es inmutable: los commits posteriores trabajan sobre su propio clon.
func (s *Store) OnCommit(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onCommit = append(s.onCommit, fn)
}

// Snapshot devuelve una copia profunda del estado vigente.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Commit clona el estado vigente, aplica fn sobre el clon y, si fn no
// retorna error, lo instala como nuevo snapshot y notifica a los
// observadores. Un error descarta el clon completo: atomicidad a nivel de
// transición sin estados a medias.
func (s *Store) Commit(fn func(*State) error) error {
	s.mu.Lock()
	next := s.state.Clone()
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = next
	observers := s.onCommit
	s.mu.Unlock()

	for _, fn := range observers {
		fn(next)
	}
	return nil
}
