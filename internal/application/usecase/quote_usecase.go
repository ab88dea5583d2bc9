package usecase

import (
	"time"

	"github.com/jhoicas/aeroparts-api/internal/application/dto"
	"github.com/jhoicas/aeroparts-api/internal/domain"
	"github.com/jhoicas/aeroparts-api/internal/domain/entity"
	"github.com/jhoicas/aeroparts-api/internal/store"
)

// QuoteUseCase CRUD de cotizaciones. El número QT-XXXX se asigna en el mismo
// commit que crea el documento y nunca se reusa.
type QuoteUseCase struct {
	store *store.Store
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(s *store.Store) *QuoteUseCase {
	return &QuoteUseCase{store: s}
}

// Create da de alta una cotización con número de secuencia.
func (uc *QuoteUseCase) Create(in dto.CreateQuoteRequest) (*entity.Quote, error) {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	status := in.Status
	if status == "" {
		status = entity.QuoteDraft
	}
	quote := entity.Quote{
		ID:           store.NewID(),
		CustomerID:   in.CustomerID,
		CustomerName: in.CustomerName,
		Items:        buildQuoteItems(in.Items),
		LeadTime:     in.LeadTime,
		Shipping:     in.Shipping,
		ValidUntil:   in.ValidUntil,
		Status:       status,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err := uc.store.Commit(func(st *store.State) error {
		quote.QuoteNumber = st.NextQuoteNumber()
		st.Quotes = append(st.Quotes, quote)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// Update aplica un merge parcial. Items, si viene, reemplaza las líneas y
// recalcula sus totales. Los cambios de estado por esta vía son libres (solo
// la conversión a factura es una transición del workflow).
func (uc *QuoteUseCase) Update(id string, in dto.UpdateQuoteRequest) (*entity.Quote, error) {
	var updated entity.Quote
	err := uc.store.Commit(func(st *store.State) error {
		quote := st.Quote(id)
		if quote == nil {
			return domain.ErrNotFound
		}
		if in.CustomerID != nil {
			quote.CustomerID = *in.CustomerID
		}
		if in.CustomerName != nil {
			quote.CustomerName = *in.CustomerName
		}
		if in.Items != nil {
			quote.Items = buildQuoteItems(*in.Items)
		}
		if in.LeadTime != nil {
			quote.LeadTime = *in.LeadTime
		}
		if in.Shipping != nil {
			quote.Shipping = *in.Shipping
		}
		if in.ValidUntil != nil {
			quote.ValidUntil = *in.ValidUntil
		}
		if in.Status != nil {
			quote.Status = *in.Status
		}
		if in.Notes != nil {
			quote.Notes = *in.Notes
		}
		quote.UpdatedAt = time.Now()
		updated = quote.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete elimina la cotización. El contador de secuencia no retrocede.
func (uc *QuoteUseCase) Delete(id string) error {
	return uc.store.Commit(func(st *store.State) error {
		for i := range st.Quotes {
			if st.Quotes[i].ID == id {
				st.Quotes = append(st.Quotes[:i], st.Quotes[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// GetByID devuelve una cotización del snapshot vigente.
func (uc *QuoteUseCase) GetByID(id string) (*entity.Quote, error) {
	snap := uc.store.Snapshot()
	quote := snap.Quote(id)
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	return quote, nil
}

// List devuelve todas las cotizaciones.
func (uc *QuoteUseCase) List() []entity.Quote {
	return uc.store.Snapshot().Quotes
}
