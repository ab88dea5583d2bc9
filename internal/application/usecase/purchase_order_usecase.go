package usecase

import (
	"time"

	"github.com/jhoicas/aeroparts-api/internal/application/dto"
	"github.com/jhoicas/aeroparts-api/internal/domain"
	"github.com/jhoicas/aeroparts-api/internal/domain/entity"
	"github.com/jhoicas/aeroparts-api/internal/store"
)

// PurchaseOrderUseCase CRUD de órdenes de compra. TotalLandedCost se
// recalcula aquí en cada alta o edición; la recepción lo toma tal cual.
type PurchaseOrderUseCase struct {
	store *store.Store
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(s *store.Store) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{store: s}
}

// Create da de alta una orden de compra con número de secuencia.
func (uc *PurchaseOrderUseCase) Create(in dto.CreatePORequest) (*entity.PurchaseOrder, error) {
	if in.VendorID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	status := in.Status
	if status == "" {
		status = entity.PODraft
	}
	items := buildPOItems(in.Items)
	po := entity.PurchaseOrder{
		ID:              store.NewID(),
		VendorID:        in.VendorID,
		VendorName:      in.VendorName,
		Items:           items,
		ShippingCost:    in.ShippingCost,
		Taxes:           in.Taxes,
		TotalLandedCost: sumPOItems(items).Add(in.ShippingCost).Add(in.Taxes),
		Status:          status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	err := uc.store.Commit(func(st *store.State) error {
		po.PONumber = st.NextPONumber()
		st.PurchaseOrders = append(st.PurchaseOrders, po)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &po, nil
}

// Update aplica un merge parcial y recalcula el costo total aterrizado si
// cambian líneas, flete o impuestos.
func (uc *PurchaseOrderUseCase) Update(id string, in dto.UpdatePORequest) (*entity.PurchaseOrder, error) {
	var updated entity.PurchaseOrder
	err := uc.store.Commit(func(st *store.State) error {
		po := st.PurchaseOrder(id)
		if po == nil {
			return domain.ErrNotFound
		}
		if in.VendorID != nil {
			po.VendorID = *in.VendorID
		}
		if in.VendorName != nil {
			po.VendorName = *in.VendorName
		}
		recompute := false
		if in.Items != nil {
			po.Items = buildPOItems(*in.Items)
			recompute = true
		}
		if in.ShippingCost != nil {
			po.ShippingCost = *in.ShippingCost
			recompute = true
		}
		if in.Taxes != nil {
			po.Taxes = *in.Taxes
			recompute = true
		}
		if in.Status != nil {
			po.Status = *in.Status
		}
		if recompute {
			po.TotalLandedCost = sumPOItems(po.Items).Add(po.ShippingCost).Add(po.Taxes)
		}
		po.UpdatedAt = time.Now()
		updated = po.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete elimina la orden de compra. El contador de secuencia no retrocede.
func (uc *PurchaseOrderUseCase) Delete(id string) error {
	return uc.store.Commit(func(st *store.State) error {
		for i := range st.PurchaseOrders {
			if st.PurchaseOrders[i].ID == id {
				st.PurchaseOrders = append(st.PurchaseOrders[:i], st.PurchaseOrders[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// GetByID devuelve una orden de compra del snapshot vigente.
func (uc *PurchaseOrderUseCase) GetByID(id string) (*entity.PurchaseOrder, error) {
	snap := uc.store.Snapshot()
	po := snap.PurchaseOrder(id)
	if po == nil {
		return nil, domain.ErrNotFound
	}
	return po, nil
}

// List devuelve todas las órdenes de compra.
func (uc *PurchaseOrderUseCase) List() []entity.PurchaseOrder {
	return uc.store.Snapshot().PurchaseOrders
}
