package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jdgomez/taller-api/internal/application/dto"
	"github.com/jdgomez/taller-api/internal/domain"
	"github.com/jdgomez/taller-api/internal/domain/entity"
	"github.com/jdgomez/taller-api/internal/domain/repository"
)

// PhoneUseCase gestión de equipos de clientes.
type PhoneUseCase struct {
	phoneRepo    repository.PhoneRepository
	customerRepo repository.CustomerRepository
}

// NewPhoneUseCase construye el caso de uso.
func NewPhoneUseCase(phoneRepo repository.PhoneRepository, customerRepo repository.CustomerRepository) *PhoneUseCase {
	return &PhoneUseCase{phoneRepo: phoneRepo, customerRepo: customerRepo}
}

// Create registra un equipo. El cliente referenciado debe existir y el IMEI
// es único global.
func (uc *PhoneUseCase) Create(in *dto.CreatePhoneRequest) (*dto.PhoneResponse, error) {
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NewNotFound("Customer not found")
	}

	if existing, err := uc.phoneRepo.GetByIMEI(in.IMEI); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.NewConflict("IMEI already exists")
	}

	now := time.Now()
	phone := &entity.Phone{
		ID:             uuid.New().String(),
		CustomerID:     in.CustomerID,
		Brand:          in.Brand,
		Model:          in.Model,
		IMEI:           in.IMEI,
		Color:          in.Color,
		PurchaseDate:   in.PurchaseDate,
		WarrantyExpiry: in.WarrantyExpiry,
		Condition:      in.Condition,
		IsActive:       true,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.phoneRepo.Create(phone); err != nil {
		return nil, err
	}
	return dto.FromPhone(phone), nil
}

// ListAll devuelve todos los equipos con su cliente.
func (uc *PhoneUseCase) ListAll() ([]*dto.PhoneResponse, error) {
	phones, err := uc.phoneRepo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PhoneResponse, 0, len(phones))
	for _, p := range phones {
		out = append(out, dto.FromPhone(p))
	}
	return out, nil
}

// ListByCustomer devuelve los equipos de un cliente existente.
func (uc *PhoneUseCase) ListByCustomer(customerID string) ([]*dto.PhoneResponse, error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NewNotFound("Customer not found")
	}

	phones, err := uc.phoneRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PhoneResponse, 0, len(phones))
	for _, p := range phones {
		out = append(out, dto.FromPhone(p))
	}
	return out, nil
}

// GetByID devuelve el equipo con cliente y reparaciones cargados.
func (uc *PhoneUseCase) GetByID(id string) (*dto.PhoneResponse, error) {
	phone, err := uc.phoneRepo.GetByIDWithRelations(id)
	if err != nil {
		return nil, err
	}
	if phone == nil {
		return nil, domain.NewNotFound("Phone not found")
	}
	return dto.FromPhone(phone), nil
}

// Update aplica una actualización parcial. El IMEI no es actualizable.
func (uc *PhoneUseCase) Update(in *dto.UpdatePhoneRequest) (*dto.PhoneResponse, error) {
	phone, err := uc.phoneRepo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if phone == nil {
		return nil, domain.NewNotFound("Phone not found")
	}

	if in.Brand != nil {
		phone.Brand = *in.Brand
	}
	if in.Model != nil {
		phone.Model = *in.Model
	}
	if in.Condition != nil {
		phone.Condition = *in.Condition
	}
	if in.Color != nil {
		phone.Color = *in.Color
	}
	if in.PurchaseDate != nil {
		phone.PurchaseDate = in.PurchaseDate
	}
	if in.WarrantyExpiry != nil {
		phone.WarrantyExpiry = in.WarrantyExpiry
	}
	if in.Notes != nil {
		phone.Notes = *in.Notes
	}
	if in.IsActive != nil {
		phone.IsActive = *in.IsActive
	}
	phone.UpdatedAt = time.Now()

	if err := uc.phoneRepo.Update(phone); err != nil {
		return nil, err
	}
	return dto.FromPhone(phone), nil
}

// Delete elimina un equipo. Guarda: sin reparaciones pendientes o en curso.
func (uc *PhoneUseCase) Delete(id string) error {
	phone, err := uc.phoneRepo.GetByIDWithRelations(id)
	if err != nil {
		return err
	}
	if phone == nil {
		return domain.NewNotFound("Phone not found")
	}
	if phone.HasOpenRepairs() {
		return domain.NewConflict("Cannot delete phone with active repairs")
	}
	return uc.phoneRepo.Delete(id)
}
