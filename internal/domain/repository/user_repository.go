// Package repository define los puertos de persistencia del dominio (DIP).
// Las implementaciones viven en internal/infrastructure. Todos los Get*
// devuelven (nil, nil) cuando el registro no existe; el caso de uso decide
// si eso es un not found o una verificación de unicidad exitosa.
package repository

import "github.com/jdgomez/taller-api/internal/domain/entity"

// UserRepository puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}
