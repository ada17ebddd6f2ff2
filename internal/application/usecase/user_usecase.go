package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jdgomez/taller-api/internal/application/dto"
	"github.com/jdgomez/taller-api/internal/domain"
	"github.com/jdgomez/taller-api/internal/domain/entity"
	"github.com/jdgomez/taller-api/internal/domain/repository"
)

// UserUseCase gestión de usuarios del sistema. Toda mutación consulta el
// gate de autorización del usuario actuante antes de tocar almacenamiento.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario. Solo super_admin puede crear usuarios; username y
// email deben ser únicos.
func (uc *UserUseCase) Create(in *dto.CreateUserRequest, current *entity.User) (*dto.UserResponse, error) {
	if !current.CanCreateUsers() {
		return nil, domain.NewForbidden("You do not have permission to create users")
	}

	if existing, err := uc.repo.GetByEmail(in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.NewConflict("Email already exists")
	}
	if existing, err := uc.repo.GetByUsername(in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.NewConflict("Username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewInternal("Error hashing password")
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		FullName:     in.FullName,
		PasswordHash: string(hash),
		Role:         in.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return dto.FromUser(user), nil
}

// List devuelve todos los usuarios en proyección pública. Requiere gate de
// gestión.
func (uc *UserUseCase) List(current *entity.User) ([]*dto.UserResponse, error) {
	if !current.CanManageUsers() {
		return nil, domain.NewForbidden("You do not have permission to view users")
	}
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.FromUser(u))
	}
	return out, nil
}

// GetByID devuelve un usuario. Se permite la autoconsulta del propio id.
func (uc *UserUseCase) GetByID(id string, current *entity.User) (*dto.UserResponse, error) {
	if !current.CanManageUsers() && current.ID != id {
		return nil, domain.NewForbidden("You do not have permission to view this user")
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFound("User not found")
	}
	return dto.FromUser(user), nil
}

// Update aplica una actualización parcial. Reglas: el rol de un super_admin
// es inmutable; cambiar roles exige el gate de gestión; super_admin no puede
// desactivarse; username/email se re-verifican como únicos solo si cambian.
func (uc *UserUseCase) Update(in *dto.UpdateUserRequest, current *entity.User) (*dto.UserResponse, error) {
	if !current.CanManageUsers() && current.ID != in.ID {
		return nil, domain.NewForbidden("You do not have permission to update this user")
	}

	user, err := uc.repo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFound("User not found")
	}

	if user.IsSuperAdmin() && in.Role != nil && *in.Role != entity.RoleSuperAdmin {
		return nil, domain.NewForbidden("Cannot change Super Admin role")
	}
	if in.Role != nil && !current.CanManageUsers() {
		return nil, domain.NewForbidden("You do not have permission to change user roles")
	}
	if user.IsSuperAdmin() && in.IsActive != nil && !*in.IsActive {
		return nil, domain.NewForbidden("Cannot change Super Admin status")
	}

	if in.Email != nil && *in.Email != user.Email {
		if existing, err := uc.repo.GetByEmail(*in.Email); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, domain.NewConflict("Email already exists")
		}
	}
	if in.Username != nil && *in.Username != user.Username {
		if existing, err := uc.repo.GetByUsername(*in.Username); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, domain.NewConflict("Username already exists")
		}
	}

	// Merge explícito campo a campo: solo lo presente se aplica.
	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	user.UpdatedAt = time.Now()

	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return dto.FromUser(user), nil
}

// ToggleStatus invierte isActive. super_admin no puede cambiar de estado.
func (uc *UserUseCase) ToggleStatus(id string, current *entity.User) (*dto.UserResponse, error) {
	if !current.CanManageUsers() {
		return nil, domain.NewForbidden("You do not have permission to change user status")
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFound("User not found")
	}
	if user.IsSuperAdmin() {
		return nil, domain.NewForbidden("Cannot change Super Admin status")
	}

	user.IsActive = !user.IsActive
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return dto.FromUser(user), nil
}

// Delete elimina un usuario. super_admin nunca se borra; un usuario activo
// debe desactivarse primero.
func (uc *UserUseCase) Delete(id string, current *entity.User) error {
	if !current.CanManageUsers() {
		return domain.NewForbidden("You do not have permission to delete users")
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.NewNotFound("User not found")
	}
	if user.IsSuperAdmin() {
		return domain.NewForbidden("Cannot delete Super Admin")
	}
	if user.IsActive {
		return domain.NewConflict("Cannot delete active user. Deactivate first.")
	}
	return uc.repo.Delete(id)
}
