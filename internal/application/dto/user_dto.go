package dto

import (
	"time"

	"github.com/jdgomez/taller-api/internal/domain"
	"github.com/jdgomez/taller-api/internal/domain/entity"
	"github.com/jdgomez/taller-api/pkg/validate"
)

// CreateUserRequest contrato para crear un usuario. password viaja en texto
// plano hasta el caso de uso, donde se hashea.
type CreateUserRequest struct {
	Username string
	Email    string
	FullName string
	Password string
	Role     entity.UserRole
}

// NewCreateUser valida el cuerpo crudo. Orden de reglas: username → email →
// fullName → password → role; gana la primera que falla.
func NewCreateUser(m map[string]any) (*CreateUserRequest, error) {
	username, hasUsername := getString(m, "username")
	email, hasEmail := getString(m, "email")
	fullName, hasFullName := getString(m, "fullName")
	password, hasPassword := getString(m, "password")
	roleRaw, hasRole := getString(m, "role")

	err := firstError(
		func() error {
			if !hasUsername || username == "" {
				return domain.NewValidation("Missing username")
			}
			return nil
		},
		func() error {
			if !hasEmail || email == "" {
				return domain.NewValidation("Missing email")
			}
			return nil
		},
		func() error {
			if !validate.IsEmail(email) {
				return domain.NewValidation("Email is not valid")
			}
			return nil
		},
		func() error {
			if !hasFullName || fullName == "" {
				return domain.NewValidation("Missing fullName")
			}
			return nil
		},
		func() error {
			if !hasPassword || password == "" {
				return domain.NewValidation("Missing password")
			}
			return nil
		},
		func() error {
			if len(password) < 6 {
				return domain.NewValidation("Password too short")
			}
			return nil
		},
		func() error {
			if !hasRole || roleRaw == "" {
				return domain.NewValidation("Missing role")
			}
			return nil
		},
		func() error {
			if _, ok := entity.ParseUserRole(roleRaw); !ok {
				return domain.NewValidation("Invalid role")
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	role, _ := entity.ParseUserRole(roleRaw)
	return &CreateUserRequest{
		Username: username,
		Email:    email,
		FullName: fullName,
		Password: password,
		Role:     role,
	}, nil
}

// UpdateUserRequest contrato de actualización parcial de usuario. Los campos
// ausentes quedan en nil y no se aplican. El formato del id no se valida
// (comportamiento heredado; endurecerlo rechazaría ids ya aceptados).
type UpdateUserRequest struct {
	ID       string
	Username *string
	Email    *string
	FullName *string
	Role     *entity.UserRole
	IsActive *bool
}

// NewUpdateUser valida el cuerpo crudo de una actualización parcial.
func NewUpdateUser(id string, m map[string]any) (*UpdateUserRequest, error) {
	if id == "" {
		return nil, domain.NewValidation("Missing id")
	}

	out := &UpdateUserRequest{ID: id}

	if email, ok := getString(m, "email"); ok {
		if !validate.IsEmail(email) {
			return nil, domain.NewValidation("Email is not valid")
		}
		out.Email = &email
	}
	if roleRaw, ok := getString(m, "role"); ok {
		role, valid := entity.ParseUserRole(roleRaw)
		if !valid {
			return nil, domain.NewValidation("Invalid role")
		}
		out.Role = &role
	}
	if username, ok := getString(m, "username"); ok {
		out.Username = &username
	}
	if fullName, ok := getString(m, "fullName"); ok {
		out.FullName = &fullName
	}
	if isActive, ok := getBool(m, "isActive"); ok {
		out.IsActive = &isActive
	}
	return out, nil
}

// LoginUserRequest contrato de login.
type LoginUserRequest struct {
	Username string
	Password string
}

// NewLoginUser valida las credenciales de entrada.
func NewLoginUser(m map[string]any) (*LoginUserRequest, error) {
	username, _ := getString(m, "username")
	password, _ := getString(m, "password")

	err := firstError(
		func() error {
			if username == "" {
				return domain.NewValidation("Missing username")
			}
			return nil
		},
		func() error {
			if password == "" {
				return domain.NewValidation("Missing password")
			}
			return nil
		},
		func() error {
			if len(password) < 6 {
				return domain.NewValidation("Password too short")
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	return &LoginUserRequest{Username: username, Password: password}, nil
}

// UserResponse proyección pública de un usuario (sin password).
type UserResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	FullName  string          `json:"fullName"`
	Role      entity.UserRole `json:"role"`
	IsActive  bool            `json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// FromUser proyecta la entidad a su representación pública.
func FromUser(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// LoginResponse salida de login/registro: proyección pública + JWT.
type LoginResponse struct {
	User      *UserResponse `json:"user"`
	Token     string        `json:"token"`
	ExpiresIn int           `json:"expiresIn"`
}
