package repository

import "github.com/jdgomez/taller-api/internal/domain/entity"

// CustomerRepository puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// GetByIDWithRelations carga además Phones y las Repairs de cada Phone.
	GetByIDWithRelations(id string) (*entity.Customer, error)
	GetByEmail(email string) (*entity.Customer, error)
	GetByDocumentNumber(documentNumber string) (*entity.Customer, error)
	// List pagina por createdAt descendente.
	List(limit, offset int) ([]*entity.Customer, error)
	// ListAll devuelve todos los clientes (exportaciones).
	ListAll() ([]*entity.Customer, error)
	Count() (int, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
