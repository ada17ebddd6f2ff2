package repository

import "github.com/jdgomez/taller-api/internal/domain/entity"

// PhoneRepository puerto de persistencia para Phone.
type PhoneRepository interface {
	Create(phone *entity.Phone) error
	GetByID(id string) (*entity.Phone, error)
	// GetByIDWithRelations carga además Customer y Repairs (ordenadas por
	// createdAt descendente).
	GetByIDWithRelations(id string) (*entity.Phone, error)
	GetByIMEI(imei string) (*entity.Phone, error)
	// ListAll devuelve todos los equipos con su Customer.
	ListAll() ([]*entity.Phone, error)
	// ListByCustomer devuelve los equipos de un cliente con sus Repairs.
	ListByCustomer(customerID string) ([]*entity.Phone, error)
	Update(phone *entity.Phone) error
	Delete(id string) error
}
