package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jdgomez/taller-api/internal/application/dto"
	"github.com/jdgomez/taller-api/internal/application/usecase"
	"github.com/jdgomez/taller-api/internal/domain"
	"github.com/jdgomez/taller-api/internal/domain/entity"
)

func storedUser(id, username, email string, role entity.UserRole, active bool) *entity.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	now := time.Now()
	return &entity.User{
		ID:           id,
		Username:     username,
		Email:        email,
		FullName:     "Usuario " + username,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func seededUserUseCase() (*usecase.UserUseCase, *fakeUserRepo, *entity.User, *entity.User) {
	super := storedUser("u-super", "superadmin", "super@taller.com", entity.RoleSuperAdmin, true)
	admin := storedUser("u-admin", "admin1", "admin1@taller.com", entity.RoleAdmin, true)
	repo := &fakeUserRepo{users: []*entity.User{admin, super}}
	return usecase.NewUserUseCase(repo), repo, super, admin
}

func TestUserUseCase_Create(t *testing.T) {
	t.Run("SuperAdminCrea_Persiste", func(t *testing.T) {
		uc, repo, super, _ := seededUserUseCase()

		out, err := uc.Create(&dto.CreateUserRequest{
			Username: "tecnico1",
			Email:    "tecnico1@taller.com",
			FullName: "Técnico Uno",
			Password: "secreta123",
			Role:     entity.RoleAdmin,
		}, super)

		require.NoError(t, err)
		assert.NotEmpty(t, out.ID)
		assert.Equal(t, "tecnico1", out.Username)
		assert.True(t, out.IsActive)
		stored, _ := repo.GetByUsername("tecnico1")
		require.NotNil(t, stored)
		assert.NotEqual(t, "secreta123", stored.PasswordHash)
	})

	t.Run("AdminSinPermiso_Forbidden", func(t *testing.T) {
		uc, _, _, admin := seededUserUseCase()

		_, err := uc.Create(&dto.CreateUserRequest{
			Username: "tecnico1",
			Email:    "tecnico1@taller.com",
			FullName: "Técnico Uno",
			Password: "secreta123",
			Role:     entity.RoleAdmin,
		}, admin)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
		assert.EqualError(t, err, "You do not have permission to create users")
	})

	t.Run("EmailDuplicado_Conflict", func(t *testing.T) {
		uc, _, super, _ := seededUserUseCase()

		_, err := uc.Create(&dto.CreateUserRequest{
			Username: "otro",
			Email:    "admin1@taller.com",
			FullName: "Otro",
			Password: "secreta123",
			Role:     entity.RoleAdmin,
		}, super)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindConflict))
		assert.EqualError(t, err, "Email already exists")
	})

	t.Run("UsernameDuplicado_Conflict", func(t *testing.T) {
		uc, _, super, _ := seededUserUseCase()

		_, err := uc.Create(&dto.CreateUserRequest{
			Username: "admin1",
			Email:    "nuevo@taller.com",
			FullName: "Otro",
			Password: "secreta123",
			Role:     entity.RoleAdmin,
		}, super)

		require.Error(t, err)
		assert.EqualError(t, err, "Username already exists")
	})
}

func TestUserUseCase_List(t *testing.T) {
	t.Run("AdminSinPermiso_Forbidden", func(t *testing.T) {
		uc, _, _, admin := seededUserUseCase()

		_, err := uc.List(admin)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
	})

	t.Run("SuperAdmin_DevuelveProyecciones", func(t *testing.T) {
		uc, _, super, _ := seededUserUseCase()

		out, err := uc.List(super)

		require.NoError(t, err)
		require.Len(t, out, 2)
	})
}

func TestUserUseCase_GetByID(t *testing.T) {
	t.Run("Autoconsulta_Permitida", func(t *testing.T) {
		uc, _, _, admin := seededUserUseCase()

		out, err := uc.GetByID(admin.ID, admin)

		require.NoError(t, err)
		assert.Equal(t, admin.Username, out.Username)
	})

	t.Run("AdminConsultaOtro_Forbidden", func(t *testing.T) {
		uc, _, super, admin := seededUserUseCase()

		_, err := uc.GetByID(super.ID, admin)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
	})

	t.Run("Inexistente_NotFound", func(t *testing.T) {
		uc, _, super, _ := seededUserUseCase()

		_, err := uc.GetByID("u-nope", super)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
		assert.EqualError(t, err, "User not found")
	})
}

func TestUserUseCase_Update(t *testing.T) {
	t.Run("RolDeSuperAdmin_Inmutable", func(t *testing.T) {
		uc, _, super, _ := seededUserUseCase()
		role := entity.RoleAdmin

		_, err := uc.Update(&dto.UpdateUserRequest{ID: super.ID, Role: &role}, super)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
		assert.EqualError(t, err, "Cannot change Super Admin role")
	})

	t.Run("SuperAdminNoSeDesactiva", func(t *testing.T) {
		uc, _, super, _ := seededUserUseCase()
		inactive := false

		_, err := uc.Update(&dto.UpdateUserRequest{ID: super.ID, IsActive: &inactive}, super)

		require.Error(t, err)
		assert.EqualError(t, err, "Cannot change Super Admin status")
	})

	t.Run("AdminCambiaSuPropioRol_Forbidden", func(t *testing.T) {
		uc, _, _, admin := seededUserUseCase()
		role := entity.RoleSuperAdmin

		_, err := uc.Update(&dto.UpdateUserRequest{ID: admin.ID, Role: &role}, admin)

		require.Error(t, err)
		assert.EqualError(t, err, "You do not have permission to change user roles")
	})

	t.Run("EmailNuevoDuplicado_Conflict", func(t *testing.T) {
		uc, _, super, admin := seededUserUseCase()
		email := super.Email

		_, err := uc.Update(&dto.UpdateUserRequest{ID: admin.ID, Email: &email}, super)

		require.Error(t, err)
		assert.EqualError(t, err, "Email already exists")
	})

	t.Run("MismoEmail_NoCuentaComoConflicto", func(t *testing.T) {
		uc, _, super, admin := seededUserUseCase()
		email := admin.Email
		fullName := "Nombre Nuevo"

		out, err := uc.Update(&dto.UpdateUserRequest{ID: admin.ID, Email: &email, FullName: &fullName}, super)

		require.NoError(t, err)
		assert.Equal(t, "Nombre Nuevo", out.FullName)
	})

	t.Run("MergeParcial_SoloLoPresente", func(t *testing.T) {
		uc, repo, super, admin := seededUserUseCase()
		fullName := "Administrador Uno"

		out, err := uc.Update(&dto.UpdateUserRequest{ID: admin.ID, FullName: &fullName}, super)

		require.NoError(t, err)
		assert.Equal(t, "Administrador Uno", out.FullName)
		assert.Equal(t, "admin1", out.Username)
		stored, _ := repo.GetByID(admin.ID)
		assert.Equal(t, "Administrador Uno", stored.FullName)
	})
}

func TestUserUseCase_ToggleStatus(t *testing.T) {
	t.Run("InvierteIsActive", func(t *testing.T) {
		uc, _, super, admin := seededUserUseCase()

		out, err := uc.ToggleStatus(admin.ID, super)

		require.NoError(t, err)
		assert.False(t, out.IsActive)
	})

	t.Run("SuperAdmin_Rechazado", func(t *testing.T) {
		uc, _, super, _ := seededUserUseCase()

		_, err := uc.ToggleStatus(super.ID, super)

		require.Error(t, err)
		assert.EqualError(t, err, "Cannot change Super Admin status")
	})

	t.Run("AdminSinPermiso_Forbidden", func(t *testing.T) {
		uc, _, super, admin := seededUserUseCase()

		_, err := uc.ToggleStatus(super.ID, admin)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
	})
}

func TestUserUseCase_Delete(t *testing.T) {
	t.Run("SuperAdmin_NuncaSeBorra", func(t *testing.T) {
		uc, _, super, _ := seededUserUseCase()

		err := uc.Delete(super.ID, super)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
		assert.EqualError(t, err, "Cannot delete Super Admin")
	})

	t.Run("UsuarioActivo_DesactivarPrimero", func(t *testing.T) {
		uc, _, super, admin := seededUserUseCase()

		err := uc.Delete(admin.ID, super)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindConflict))
		assert.EqualError(t, err, "Cannot delete active user. Deactivate first.")
	})

	t.Run("UsuarioInactivo_SeBorra", func(t *testing.T) {
		uc, repo, super, admin := seededUserUseCase()
		admin.IsActive = false

		err := uc.Delete(admin.ID, super)

		require.NoError(t, err)
		stored, _ := repo.GetByID(admin.ID)
		assert.Nil(t, stored)
	})
}
