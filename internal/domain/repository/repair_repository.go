package repository

import "github.com/jdgomez/taller-api/internal/domain/entity"

// RepairRepository puerto de persistencia para Repair.
type RepairRepository interface {
	Create(repair *entity.Repair) error
	GetByID(id string) (*entity.Repair, error)
	// GetByIDWithRelations carga además Phone y Customer.
	GetByIDWithRelations(id string) (*entity.Repair, error)
	// List pagina por createdAt descendente, con Phone y Customer cargados.
	List(limit, offset int) ([]*entity.Repair, error)
	// ListAll devuelve todas las órdenes con relaciones (exportaciones).
	ListAll() ([]*entity.Repair, error)
	Count() (int, error)
	CountByStatus(status entity.RepairStatus) (int, error)
	ListByPhone(phoneID string) ([]*entity.Repair, error)
	ListByCustomer(customerID string) ([]*entity.Repair, error)
	Update(repair *entity.Repair) error
	Delete(id string) error
}
