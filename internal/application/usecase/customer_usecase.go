package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jdgomez/taller-api/internal/application/dto"
	"github.com/jdgomez/taller-api/internal/domain"
	"github.com/jdgomez/taller-api/internal/domain/entity"
	"github.com/jdgomez/taller-api/internal/domain/repository"
)

// CustomerUseCase gestión de clientes del taller.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create registra un cliente nuevo. email y documentNumber son únicos.
func (uc *CustomerUseCase) Create(in *dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if existing, err := uc.repo.GetByEmail(in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.NewConflict("Email already exists")
	}
	if existing, err := uc.repo.GetByDocumentNumber(in.DocumentNumber); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.NewConflict("Document number already exists")
	}

	now := time.Now()
	customer := &entity.Customer{
		ID:             uuid.New().String(),
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		DocumentType:   in.DocumentType,
		DocumentNumber: in.DocumentNumber,
		IsActive:       true,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return dto.FromCustomer(customer), nil
}

// List devuelve la página pedida con el sobre de paginación.
func (uc *CustomerUseCase) List(p *dto.Pagination) (*dto.CustomerListResponse, error) {
	customers, err := uc.repo.List(p.Limit, p.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	return dto.NewCustomerListResponse(p, total, customers), nil
}

// GetByID devuelve el cliente con sus equipos y reparaciones cargados.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByIDWithRelations(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NewNotFound("Customer not found")
	}
	return dto.FromCustomer(customer), nil
}

// Update aplica una actualización parcial. email y documentNumber se
// re-verifican como únicos solo si cambian (excluyendo el propio registro).
func (uc *CustomerUseCase) Update(in *dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NewNotFound("Customer not found")
	}

	if in.Email != nil && *in.Email != customer.Email {
		if existing, err := uc.repo.GetByEmail(*in.Email); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, domain.NewConflict("Email already exists")
		}
	}
	if in.DocumentNumber != nil && *in.DocumentNumber != customer.DocumentNumber {
		if existing, err := uc.repo.GetByDocumentNumber(*in.DocumentNumber); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, domain.NewConflict("Document number already exists")
		}
	}

	if in.FirstName != nil {
		customer.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		customer.LastName = *in.LastName
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.DocumentType != nil {
		customer.DocumentType = *in.DocumentType
	}
	if in.DocumentNumber != nil {
		customer.DocumentNumber = *in.DocumentNumber
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.Notes != nil {
		customer.Notes = *in.Notes
	}
	if in.IsActive != nil {
		customer.IsActive = *in.IsActive
	}
	customer.UpdatedAt = time.Now()

	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return dto.FromCustomer(customer), nil
}

// Delete elimina un cliente. Guarda: no puede tener equipos activos.
func (uc *CustomerUseCase) Delete(id string) error {
	customer, err := uc.repo.GetByIDWithRelations(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.NewNotFound("Customer not found")
	}
	if customer.HasActivePhones() {
		return domain.NewConflict("Cannot delete customer with active phones")
	}
	return uc.repo.Delete(id)
}

// ToggleStatus invierte isActive sin guardas adicionales.
func (uc *CustomerUseCase) ToggleStatus(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NewNotFound("Customer not found")
	}
	customer.IsActive = !customer.IsActive
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return dto.FromCustomer(customer), nil
}

// ListAllForExport devuelve todos los clientes para la exportación CSV.
func (uc *CustomerUseCase) ListAllForExport() ([]*entity.Customer, error) {
	return uc.repo.ListAll()
}
