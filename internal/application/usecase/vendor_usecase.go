package usecase

import (
	"time"

	"github.com/jhoicas/aeroparts-api/internal/application/dto"
	"github.com/jhoicas/aeroparts-api/internal/domain"
	"github.com/jhoicas/aeroparts-api/internal/domain/entity"
	"github.com/jhoicas/aeroparts-api/internal/store"
)

// VendorUseCase CRUD de proveedores.
type VendorUseCase struct {
	store *store.Store
}

// NewVendorUseCase construye el caso de uso.
func NewVendorUseCase(s *store.Store) *VendorUseCase {
	return &VendorUseCase{store: s}
}

// Create da de alta un proveedor.
func (uc *VendorUseCase) Create(in dto.CreateVendorRequest) (*entity.Vendor, error) {
	if in.CompanyName == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	currency := in.Currency
	if currency == "" {
		currency = entity.CurrencyUSD
	}
	rating := in.Rating
	if rating == "" {
		rating = entity.RatingNotRated
	}
	vendor := entity.Vendor{
		ID:            store.NewID(),
		CompanyName:   in.CompanyName,
		ContactPerson: in.ContactPerson,
		Emails:        append([]string(nil), in.Emails...),
		Phone:         in.Phone,
		Address:       in.Address,
		PaymentMethod: in.PaymentMethod,
		LeadTime:      in.LeadTime,
		Currency:      currency,
		Rating:        rating,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	err := uc.store.Commit(func(st *store.State) error {
		st.Vendors = append(st.Vendors, vendor)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

// Update aplica un merge parcial y refresca UpdatedAt.
func (uc *VendorUseCase) Update(id string, in dto.UpdateVendorRequest) (*entity.Vendor, error) {
	var updated entity.Vendor
	err := uc.store.Commit(func(st *store.State) error {
		vendor := st.Vendor(id)
		if vendor == nil {
			return domain.ErrNotFound
		}
		if in.CompanyName != nil {
			vendor.CompanyName = *in.CompanyName
		}
		if in.ContactPerson != nil {
			vendor.ContactPerson = *in.ContactPerson
		}
		if in.Emails != nil {
			vendor.Emails = append([]string(nil), (*in.Emails)...)
		}
		if in.Phone != nil {
			vendor.Phone = *in.Phone
		}
		if in.Address != nil {
			vendor.Address = *in.Address
		}
		if in.PaymentMethod != nil {
			vendor.PaymentMethod = *in.PaymentMethod
		}
		if in.LeadTime != nil {
			vendor.LeadTime = *in.LeadTime
		}
		if in.Currency != nil {
			vendor.Currency = *in.Currency
		}
		if in.Rating != nil {
			vendor.Rating = *in.Rating
		}
		if in.Notes != nil {
			vendor.Notes = *in.Notes
		}
		vendor.UpdatedAt = time.Now()
		updated = vendor.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete elimina el proveedor.
func (uc *VendorUseCase) Delete(id string) error {
	return uc.store.Commit(func(st *store.State) error {
		for i := range st.Vendors {
			if st.Vendors[i].ID == id {
				st.Vendors = append(st.Vendors[:i], st.Vendors[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// GetByID devuelve un proveedor del snapshot vigente.
func (uc *VendorUseCase) GetByID(id string) (*entity.Vendor, error) {
	snap := uc.store.Snapshot()
	vendor := snap.Vendor(id)
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	return vendor, nil
}

// List devuelve todos los proveedores.
func (uc *VendorUseCase) List() []entity.Vendor {
	return uc.store.Snapshot().Vendors
}
