package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jdgomez/taller-api/internal/application/dto"
	"github.com/jdgomez/taller-api/internal/domain"
	"github.com/jdgomez/taller-api/internal/domain/entity"
	"github.com/jdgomez/taller-api/internal/domain/repository"
	"github.com/jdgomez/taller-api/pkg/jwt"
)

// tokenTTLSeconds vida del token de sesión reportada al cliente.
const tokenTTLSeconds = 86400

// emailTokenMinutes vida del token del enlace de validación de email.
const emailTokenMinutes = 24 * 60

// AuthConfig parámetros de emisión de tokens y enlaces.
type AuthConfig struct {
	JWTSecret     string
	JWTIssuer     string
	JWTExpMinutes int
	WebserviceURL string // base para el enlace de validación
	SendEmail     bool   // apagado en development
}

// AuthUseCase registro, login y validación de email.
type AuthUseCase struct {
	userRepo repository.UserRepository
	mailer   Mailer
	cfg      AuthConfig
}

// NewAuthUseCase construye el caso de uso de autenticación.
func NewAuthUseCase(userRepo repository.UserRepository, mailer Mailer, cfg AuthConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, mailer: mailer, cfg: cfg}
}

// Register crea un usuario (contrato CreateUser), envía el enlace de
// validación de email y devuelve la proyección pública más un JWT de sesión.
func (uc *AuthUseCase) Register(in *dto.CreateUserRequest) (*dto.LoginResponse, error) {
	if existing, err := uc.userRepo.GetByEmail(in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.NewConflict("Email already exists")
	}
	if existing, err := uc.userRepo.GetByUsername(in.Username); err != nil {
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
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	if err := uc.sendEmailValidationLink(user.Email); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.cfg.JWTSecret, user.ID, user.Username, string(user.Role), uc.cfg.JWTIssuer, uc.cfg.JWTExpMinutes)
	if err != nil {
		return nil, domain.NewInternal("Error while creating JWT")
	}

	return &dto.LoginResponse{
		User:      dto.FromUser(user),
		Token:     token,
		ExpiresIn: tokenTTLSeconds,
	}, nil
}

// Login verifica credenciales contra el hash almacenado y emite un JWT.
// Usuarios inactivos no pueden iniciar sesión.
func (uc *AuthUseCase) Login(in *dto.LoginUserRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewUnauthorized("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.NewUnauthorized("Invalid credentials")
	}
	if !user.IsActive {
		return nil, domain.NewForbidden("User is inactive")
	}

	token, err := jwt.Generate(uc.cfg.JWTSecret, user.ID, user.Username, string(user.Role), uc.cfg.JWTIssuer, uc.cfg.JWTExpMinutes)
	if err != nil {
		return nil, domain.NewInternal("Error while creating JWT")
	}

	return &dto.LoginResponse{
		User:      dto.FromUser(user),
		Token:     token,
		ExpiresIn: tokenTTLSeconds,
	}, nil
}

// ValidateEmail resuelve el token del enlace de verificación.
func (uc *AuthUseCase) ValidateEmail(token string) error {
	email, err := jwt.ParseEmailToken(uc.cfg.JWTSecret, token)
	if err != nil {
		return domain.NewUnauthorized("Invalid token")
	}
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.NewInternal("Email not exists")
	}
	return nil
}

func (uc *AuthUseCase) sendEmailValidationLink(email string) error {
	if !uc.cfg.SendEmail {
		return nil
	}
	token, err := jwt.GenerateEmailToken(uc.cfg.JWTSecret, email, uc.cfg.JWTIssuer, emailTokenMinutes)
	if err != nil {
		return domain.NewInternal("Error getting token")
	}
	link := fmt.Sprintf("%s/auth/validate-email/%s", uc.cfg.WebserviceURL, token)
	html := fmt.Sprintf(`
		<h1>Validate your email</h1>
		<p>Click on the following link to validate your email</p>
		<a href="%s">Validate your email: %s</a>
	`, link, email)

	if err := uc.mailer.Send(email, "Validate your email", html); err != nil {
		return domain.NewInternal("Error sending email")
	}
	return nil
}
