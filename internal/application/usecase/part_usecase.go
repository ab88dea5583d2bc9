package usecase

import (
	"time"

	"github.com/jhoicas/aeroparts-api/internal/application/dto"
	"github.com/jhoicas/aeroparts-api/internal/domain"
	"github.com/jhoicas/aeroparts-api/internal/domain/entity"
	"github.com/jhoicas/aeroparts-api/internal/store"
)

// PartUseCase CRUD del catálogo de partes.
type PartUseCase struct {
	store *store.Store
}

// NewPartUseCase construye el caso de uso.
func NewPartUseCase(s *store.Store) *PartUseCase {
	return &PartUseCase{store: s}
}

// Create da de alta una parte con ID y timestamps asignados.
func (uc *PartUseCase) Create(in dto.CreatePartRequest) (*entity.Part, error) {
	if in.PN == "" || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	part := entity.Part{
		ID:                   store.NewID(),
		PN:                   in.PN,
		Description:          in.Description,
		ATAChapter:           in.ATAChapter,
		Manufacturer:         in.Manufacturer,
		Condition:            in.Condition,
		UnitOfMeasure:        in.UnitOfMeasure,
		TraceabilityRequired: in.TraceabilityRequired,
		ShelfLife:            in.ShelfLife,
		Hazardous:            in.Hazardous,
		AlternatePN:          in.AlternatePN,
		SupersededPN:         in.SupersededPN,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	err := uc.store.Commit(func(st *store.State) error {
		st.Parts = append(st.Parts, part)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &part, nil
}

// Update aplica un merge parcial y refresca UpdatedAt.
func (uc *PartUseCase) Update(id string, in dto.UpdatePartRequest) (*entity.Part, error) {
	var updated entity.Part
	err := uc.store.Commit(func(st *store.State) error {
		part := st.Part(id)
		if part == nil {
			return domain.ErrNotFound
		}
		if in.PN != nil {
			part.PN = *in.PN
		}
		if in.Description != nil {
			part.Description = *in.Description
		}
		if in.ATAChapter != nil {
			part.ATAChapter = *in.ATAChapter
		}
		if in.Manufacturer != nil {
			part.Manufacturer = *in.Manufacturer
		}
		if in.Condition != nil {
			part.Condition = *in.Condition
		}
		if in.UnitOfMeasure != nil {
			part.UnitOfMeasure = *in.UnitOfMeasure
		}
		if in.TraceabilityRequired != nil {
			part.TraceabilityRequired = *in.TraceabilityRequired
		}
		if in.ShelfLife != nil {
			part.ShelfLife = *in.ShelfLife
		}
		if in.Hazardous != nil {
			part.Hazardous = *in.Hazardous
		}
		if in.AlternatePN != nil {
			part.AlternatePN = *in.AlternatePN
		}
		if in.SupersededPN != nil {
			part.SupersededPN = *in.SupersededPN
		}
		part.UpdatedAt = time.Now()
		updated = *part
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete elimina la parte. No hay cascada: lotes y líneas que la referencien
// quedan huérfanos y se toleran.
func (uc *PartUseCase) Delete(id string) error {
	return uc.store.Commit(func(st *store.State) error {
		for i := range st.Parts {
			if st.Parts[i].ID == id {
				st.Parts = append(st.Parts[:i], st.Parts[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// GetByID devuelve una parte del snapshot vigente.
func (uc *PartUseCase) GetByID(id string) (*entity.Part, error) {
	snap := uc.store.Snapshot()
	part := snap.Part(id)
	if part == nil {
		return nil, domain.ErrNotFound
	}
	return part, nil
}

// List devuelve el catálogo completo en orden de inserción.
func (uc *PartUseCase) List() []entity.Part {
	return uc.store.Snapshot().Parts
}
