package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdgomez/taller-api/internal/application/dto"
	"github.com/jdgomez/taller-api/internal/application/usecase"
	"github.com/jdgomez/taller-api/internal/domain"
	"github.com/jdgomez/taller-api/internal/domain/entity"
)

func storedPhone(id, customerID, imei string) *entity.Phone {
	now := time.Now()
	return &entity.Phone{
		ID:         id,
		CustomerID: customerID,
		Brand:      "Samsung",
		Model:      "Galaxy S21",
		IMEI:       imei,
		Condition:  entity.ConditionGood,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestPhoneUseCase_Create(t *testing.T) {
	customers := &fakeCustomerRepo{customers: []*entity.Customer{
		storedCustomer("c-1", "juan@email.com", "12345678"),
	}}

	t.Run("Valido_PersisteActivo", func(t *testing.T) {
		phones := &fakePhoneRepo{}
		uc := usecase.NewPhoneUseCase(phones, customers)

		out, err := uc.Create(&dto.CreatePhoneRequest{
			CustomerID: "c-1",
			Brand:      "Apple",
			Model:      "iPhone 13",
			IMEI:       "111222333444555",
			Condition:  entity.ConditionExcellent,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, out.ID)
		assert.Equal(t, "c-1", out.CustomerID)
		assert.True(t, out.IsActive)
	})

	t.Run("ClienteInexistente_NotFound", func(t *testing.T) {
		phones := &fakePhoneRepo{}
		uc := usecase.NewPhoneUseCase(phones, customers)

		_, err := uc.Create(&dto.CreatePhoneRequest{
			CustomerID: "c-nope",
			Brand:      "Apple",
			Model:      "iPhone 13",
			IMEI:       "111222333444555",
			Condition:  entity.ConditionGood,
		})

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
		assert.EqualError(t, err, "Customer not found")
	})

	t.Run("IMEIDuplicado_Conflict", func(t *testing.T) {
		phones := &fakePhoneRepo{phones: []*entity.Phone{
			storedPhone("p-1", "c-1", "111222333444555"),
		}}
		uc := usecase.NewPhoneUseCase(phones, customers)

		_, err := uc.Create(&dto.CreatePhoneRequest{
			CustomerID: "c-1",
			Brand:      "Xiaomi",
			Model:      "Redmi Note 11",
			IMEI:       "111222333444555",
			Condition:  entity.ConditionGood,
		})

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindConflict))
		assert.EqualError(t, err, "IMEI already exists")
	})
}

func TestPhoneUseCase_ListByCustomer(t *testing.T) {
	customers := &fakeCustomerRepo{customers: []*entity.Customer{
		storedCustomer("c-1", "juan@email.com", "12345678"),
	}}
	phones := &fakePhoneRepo{phones: []*entity.Phone{
		storedPhone("p-1", "c-1", "111222333444555"),
		storedPhone("p-2", "c-2", "999888777666555"),
	}}
	uc := usecase.NewPhoneUseCase(phones, customers)

	t.Run("SoloLosDelCliente", func(t *testing.T) {
		out, err := uc.ListByCustomer("c-1")

		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "p-1", out[0].ID)
	})

	t.Run("ClienteInexistente_NotFound", func(t *testing.T) {
		_, err := uc.ListByCustomer("c-nope")

		require.Error(t, err)
		assert.EqualError(t, err, "Customer not found")
	})
}

func TestPhoneUseCase_Update(t *testing.T) {
	phones := &fakePhoneRepo{phones: []*entity.Phone{
		storedPhone("p-1", "c-1", "111222333444555"),
	}}
	uc := usecase.NewPhoneUseCase(phones, &fakeCustomerRepo{})

	t.Run("MergeParcial_IMEIIntacto", func(t *testing.T) {
		color := "Negro"
		condition := entity.ConditionFair

		out, err := uc.Update(&dto.UpdatePhoneRequest{ID: "p-1", Color: &color, Condition: &condition})

		require.NoError(t, err)
		assert.Equal(t, "Negro", out.Color)
		assert.Equal(t, entity.ConditionFair, out.Condition)
		assert.Equal(t, "111222333444555", out.IMEI)
	})

	t.Run("Inexistente_NotFound", func(t *testing.T) {
		brand := "Motorola"

		_, err := uc.Update(&dto.UpdatePhoneRequest{ID: "p-nope", Brand: &brand})

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
		assert.EqualError(t, err, "Phone not found")
	})
}

func TestPhoneUseCase_Delete(t *testing.T) {
	t.Run("ConReparacionAbierta_Conflict", func(t *testing.T) {
		phone := storedPhone("p-1", "c-1", "111222333444555")
		phone.Repairs = []*entity.Repair{{ID: "r-1", PhoneID: "p-1", Status: entity.StatusInProgress}}
		phones := &fakePhoneRepo{phones: []*entity.Phone{phone}}
		uc := usecase.NewPhoneUseCase(phones, &fakeCustomerRepo{})

		err := uc.Delete("p-1")

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindConflict))
		assert.EqualError(t, err, "Cannot delete phone with active repairs")
	})

	t.Run("SoloReparacionesCerradas_SeBorra", func(t *testing.T) {
		phone := storedPhone("p-1", "c-1", "111222333444555")
		phone.Repairs = []*entity.Repair{
			{ID: "r-1", PhoneID: "p-1", Status: entity.StatusDelivered},
			{ID: "r-2", PhoneID: "p-1", Status: entity.StatusCancelled},
		}
		phones := &fakePhoneRepo{phones: []*entity.Phone{phone}}
		uc := usecase.NewPhoneUseCase(phones, &fakeCustomerRepo{})

		err := uc.Delete("p-1")

		require.NoError(t, err)
		stored, _ := phones.GetByID("p-1")
		assert.Nil(t, stored)
	})

	t.Run("Inexistente_NotFound", func(t *testing.T) {
		uc := usecase.NewPhoneUseCase(&fakePhoneRepo{}, &fakeCustomerRepo{})

		err := uc.Delete("p-nope")

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
	})
}
