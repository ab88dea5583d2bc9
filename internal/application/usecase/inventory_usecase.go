package usecase

import (
	"time"

	"github.com/jhoicas/aeroparts-api/internal/application/dto"
	"github.com/jhoicas/aeroparts-api/internal/domain"
	"github.com/jhoicas/aeroparts-api/internal/domain/entity"
	"github.com/jhoicas/aeroparts-api/internal/store"
)

// InventoryUseCase CRUD de lotes y ajustes manuales de inventario.
// Los movimientos son append-only: solo se crean aquí (ajustes) y en el
// workflow (recepciones y salidas); nunca se editan ni se borran.
type InventoryUseCase struct {
	store *store.Store
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(s *store.Store) *InventoryUseCase {
	return &InventoryUseCase{store: s}
}

// CreateLot da de alta un lote manual. PartID no se valida contra el catálogo.
func (uc *InventoryUseCase) CreateLot(in dto.CreateLotRequest) (*entity.InventoryLot, error) {
	if in.PN == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	lot := entity.InventoryLot{
		ID:                  store.NewID(),
		PartID:              in.PartID,
		PN:                  in.PN,
		SerialNumber:        in.SerialNumber,
		BatchLot:            in.BatchLot,
		Quantity:            in.Quantity,
		UnitCost:            in.UnitCost,
		SupplierID:          in.SupplierID,
		SupplierName:        in.SupplierName,
		InvoiceNumber:       in.InvoiceNumber,
		EntryDate:           now,
		Location:            in.Location,
		CertificateFileName: in.CertificateFileName,
		MinimumStock:        in.MinimumStock,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	err := uc.store.Commit(func(st *store.State) error {
		st.InventoryLots = append(st.InventoryLots, lot)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &lot, nil
}

// UpdateLot aplica un merge parcial sobre el lote.
func (uc *InventoryUseCase) UpdateLot(id string, in dto.UpdateLotRequest) (*entity.InventoryLot, error) {
	var updated entity.InventoryLot
	err := uc.store.Commit(func(st *store.State) error {
		lot := st.InventoryLot(id)
		if lot == nil {
			return domain.ErrNotFound
		}
		if in.PN != nil {
			lot.PN = *in.PN
		}
		if in.SerialNumber != nil {
			lot.SerialNumber = *in.SerialNumber
		}
		if in.BatchLot != nil {
			lot.BatchLot = *in.BatchLot
		}
		if in.Quantity != nil {
			lot.Quantity = *in.Quantity
		}
		if in.UnitCost != nil {
			lot.UnitCost = *in.UnitCost
		}
		if in.SupplierID != nil {
			lot.SupplierID = *in.SupplierID
		}
		if in.SupplierName != nil {
			lot.SupplierName = *in.SupplierName
		}
		if in.InvoiceNumber != nil {
			lot.InvoiceNumber = *in.InvoiceNumber
		}
		if in.Location != nil {
			lot.Location = *in.Location
		}
		if in.CertificateFileName != nil {
			lot.CertificateFileName = *in.CertificateFileName
		}
		if in.MinimumStock != nil {
			lot.MinimumStock = *in.MinimumStock
		}
		lot.UpdatedAt = time.Now()
		updated = *lot
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteLot elimina el lote. Sus movimientos históricos se conservan.
func (uc *InventoryUseCase) DeleteLot(id string) error {
	return uc.store.Commit(func(st *store.State) error {
		for i := range st.InventoryLots {
			if st.InventoryLots[i].ID == id {
				st.InventoryLots = append(st.InventoryLots[:i], st.InventoryLots[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// RegisterAdjustment aplica un delta manual sobre la cantidad de un lote y
// deja un movimiento ADJUSTMENT en la auditoría, todo en un solo commit.
func (uc *InventoryUseCase) RegisterAdjustment(lotID string, in dto.AdjustmentRequest) (*entity.InventoryMovement, error) {
	if in.Quantity.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	var mov entity.InventoryMovement
	err := uc.store.Commit(func(st *store.State) error {
		lot := st.InventoryLot(lotID)
		if lot == nil {
			return domain.ErrNotFound
		}
		newQty := lot.Quantity.Add(in.Quantity)
		if newQty.IsNegative() {
			return domain.ErrInsufficientStock
		}
		now := time.Now()
		lot.Quantity = newQty
		lot.UpdatedAt = now
		mov = entity.InventoryMovement{
			ID:        store.NewID(),
			LotID:     lot.ID,
			PartID:    lot.PartID,
			Type:      entity.MovementTypeADJUSTMENT,
			Quantity:  in.Quantity,
			Reference: "Manual adjustment",
			Date:      now,
			Notes:     in.Notes,
		}
		st.InventoryMovements = append(st.InventoryMovements, mov)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &mov, nil
}

// GetLot devuelve un lote del snapshot vigente.
func (uc *InventoryUseCase) GetLot(id string) (*entity.InventoryLot, error) {
	snap := uc.store.Snapshot()
	lot := snap.InventoryLot(id)
	if lot == nil {
		return nil, domain.ErrNotFound
	}
	return lot, nil
}

// ListLots devuelve todos los lotes.
func (uc *InventoryUseCase) ListLots() []entity.InventoryLot {
	return uc.store.Snapshot().InventoryLots
}

// ListMovements devuelve la auditoría completa de movimientos.
func (uc *InventoryUseCase) ListMovements() []entity.InventoryMovement {
	return uc.store.Snapshot().InventoryMovements
}
