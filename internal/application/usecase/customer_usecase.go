package usecase

import (
	"time"

	"github.com/jhoicas/aeroparts-api/internal/application/dto"
	"github.com/jhoicas/aeroparts-api/internal/domain"
	"github.com/jhoicas/aeroparts-api/internal/domain/entity"
	"github.com/jhoicas/aeroparts-api/internal/store"
)

// CustomerUseCase CRUD de clientes.
type CustomerUseCase struct {
	store *store.Store
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(s *store.Store) *CustomerUseCase {
	return &CustomerUseCase{store: s}
}

// Create da de alta un cliente.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*entity.Customer, error) {
	if in.CompanyName == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	status := in.Status
	if status == "" {
		status = entity.CustomerActive
	}
	terms := in.PaymentTerms
	if terms == "" {
		terms = entity.TermsNet30
	}
	customer := entity.Customer{
		ID:              store.NewID(),
		CompanyName:     in.CompanyName,
		ContactPerson:   in.ContactPerson,
		Emails:          append([]string(nil), in.Emails...),
		Phone:           in.Phone,
		BillingAddress:  in.BillingAddress,
		ShippingAddress: in.ShippingAddress,
		TaxID:           in.TaxID,
		PaymentTerms:    terms,
		CreditLimit:     in.CreditLimit,
		Status:          status,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	err := uc.store.Commit(func(st *store.State) error {
		st.Customers = append(st.Customers, customer)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// Update aplica un merge parcial y refresca UpdatedAt.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*entity.Customer, error) {
	var updated entity.Customer
	err := uc.store.Commit(func(st *store.State) error {
		customer := st.Customer(id)
		if customer == nil {
			return domain.ErrNotFound
		}
		if in.CompanyName != nil {
			customer.CompanyName = *in.CompanyName
		}
		if in.ContactPerson != nil {
			customer.ContactPerson = *in.ContactPerson
		}
		if in.Emails != nil {
			customer.Emails = append([]string(nil), (*in.Emails)...)
		}
		if in.Phone != nil {
			customer.Phone = *in.Phone
		}
		if in.BillingAddress != nil {
			customer.BillingAddress = *in.BillingAddress
		}
		if in.ShippingAddress != nil {
			customer.ShippingAddress = *in.ShippingAddress
		}
		if in.TaxID != nil {
			customer.TaxID = *in.TaxID
		}
		if in.PaymentTerms != nil {
			customer.PaymentTerms = *in.PaymentTerms
		}
		if in.CreditLimit != nil {
			customer.CreditLimit = *in.CreditLimit
		}
		if in.Status != nil {
			customer.Status = *in.Status
		}
		if in.Notes != nil {
			customer.Notes = *in.Notes
		}
		customer.UpdatedAt = time.Now()
		updated = customer.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete elimina el cliente. Los documentos que lo referencian conservan su
// snapshot de nombre.
func (uc *CustomerUseCase) Delete(id string) error {
	return uc.store.Commit(func(st *store.State) error {
		for i := range st.Customers {
			if st.Customers[i].ID == id {
				st.Customers = append(st.Customers[:i], st.Customers[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// GetByID devuelve un cliente del snapshot vigente.
func (uc *CustomerUseCase) GetByID(id string) (*entity.Customer, error) {
	snap := uc.store.Snapshot()
	customer := snap.Customer(id)
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return customer, nil
}

// List devuelve todos los clientes.
func (uc *CustomerUseCase) List() []entity.Customer {
	return uc.store.Snapshot().Customers
}
