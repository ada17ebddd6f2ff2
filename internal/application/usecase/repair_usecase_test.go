package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdgomez/taller-api/internal/application/dto"
	"github.com/jdgomez/taller-api/internal/application/usecase"
	"github.com/jdgomez/taller-api/internal/domain"
	"github.com/jdgomez/taller-api/internal/domain/entity"
)

func storedRepair(id, phoneID, customerID string, status entity.RepairStatus) *entity.Repair {
	now := time.Now()
	return &entity.Repair{
		ID:                      id,
		PhoneID:                 phoneID,
		CustomerID:              customerID,
		Issue:                   "Pantalla rota",
		Description:             "Pantalla completamente fracturada, no responde al tacto",
		Status:                  status,
		Priority:                entity.PriorityMedium,
		EstimatedCost:           decimal.NewFromInt(150000),
		EstimatedDuration:       8,
		StartDate:               now,
		EstimatedCompletionDate: now.Add(24 * time.Hour),
		CreatedAt:               now,
		UpdatedAt:               now,
	}
}

func repairFixture() (*usecase.RepairUseCase, *fakeRepairRepo, *fakePhoneRepo, *fakePDFGenerator) {
	phones := &fakePhoneRepo{phones: []*entity.Phone{
		storedPhone("p-1", "c-1", "111222333444555"),
	}}
	repairs := &fakeRepairRepo{}
	pdfGen := &fakePDFGenerator{}
	return usecase.NewRepairUseCase(repairs, phones, pdfGen), repairs, phones, pdfGen
}

func TestRepairUseCase_Create(t *testing.T) {
	t.Run("Valida_EstadoPendingYFechaDerivada", func(t *testing.T) {
		uc, repairs, _, _ := repairFixture()

		out, err := uc.Create(&dto.CreateRepairRequest{
			PhoneID:           "p-1",
			CustomerID:        "c-1",
			Issue:             "Pantalla rota",
			Description:       "Pantalla completamente fracturada, no responde al tacto",
			Priority:          entity.PriorityHigh,
			EstimatedCost:     decimal.NewFromInt(150000),
			EstimatedDuration: 12,
		})

		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, out.Status)
		// 12 horas a 8 horas/día son 2 días hábiles.
		expected := entity.EstimateCompletionDate(out.StartDate, 12)
		assert.Equal(t, expected, out.EstimatedCompletionDate)
		assert.Nil(t, out.CompletionDate)
		stored, _ := repairs.GetByID(out.ID)
		require.NotNil(t, stored)
	})

	t.Run("EquipoInexistente_NotFound", func(t *testing.T) {
		uc, _, _, _ := repairFixture()

		_, err := uc.Create(&dto.CreateRepairRequest{
			PhoneID:           "p-nope",
			CustomerID:        "c-1",
			Issue:             "Pantalla rota",
			Description:       "Pantalla completamente fracturada, no responde al tacto",
			Priority:          entity.PriorityLow,
			EstimatedDuration: 4,
		})

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
		assert.EqualError(t, err, "Phone not found")
	})

	t.Run("ClienteNoEsDuenoDelEquipo_Conflict", func(t *testing.T) {
		uc, _, _, _ := repairFixture()

		_, err := uc.Create(&dto.CreateRepairRequest{
			PhoneID:           "p-1",
			CustomerID:        "c-otro",
			Issue:             "Pantalla rota",
			Description:       "Pantalla completamente fracturada, no responde al tacto",
			Priority:          entity.PriorityLow,
			EstimatedDuration: 4,
		})

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindConflict))
		assert.EqualError(t, err, "Customer ID does not match phone owner")
	})
}

func TestRepairUseCase_Update(t *testing.T) {
	t.Run("PasaACompleted_EstampaCompletionDate", func(t *testing.T) {
		uc, repairs, _, _ := repairFixture()
		repairs.repairs = []*entity.Repair{storedRepair("r-1", "p-1", "c-1", entity.StatusInProgress)}
		status := entity.StatusCompleted

		out, err := uc.Update(&dto.UpdateRepairRequest{ID: "r-1", Status: &status})

		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, out.Status)
		require.NotNil(t, out.CompletionDate)
		assert.WithinDuration(t, time.Now(), *out.CompletionDate, time.Minute)
	})

	t.Run("CompletionDateProvista_NoSeSobrescribe", func(t *testing.T) {
		uc, repairs, _, _ := repairFixture()
		repairs.repairs = []*entity.Repair{storedRepair("r-1", "p-1", "c-1", entity.StatusInProgress)}
		status := entity.StatusCompleted
		completed := time.Date(2026, 8, 20, 16, 30, 0, 0, time.UTC)

		out, err := uc.Update(&dto.UpdateRepairRequest{ID: "r-1", Status: &status, CompletionDate: &completed})

		require.NoError(t, err)
		require.NotNil(t, out.CompletionDate)
		assert.Equal(t, completed, *out.CompletionDate)
	})

	t.Run("MergeParcial_CostoFinal", func(t *testing.T) {
		uc, repairs, _, _ := repairFixture()
		repairs.repairs = []*entity.Repair{storedRepair("r-1", "p-1", "c-1", entity.StatusInProgress)}
		finalCost := decimal.NewFromInt(145000)

		out, err := uc.Update(&dto.UpdateRepairRequest{ID: "r-1", FinalCost: &finalCost})

		require.NoError(t, err)
		require.NotNil(t, out.FinalCost)
		assert.True(t, finalCost.Equal(*out.FinalCost))
		assert.Equal(t, entity.StatusInProgress, out.Status)
	})

	t.Run("Inexistente_NotFound", func(t *testing.T) {
		uc, _, _, _ := repairFixture()
		status := entity.StatusCancelled

		_, err := uc.Update(&dto.UpdateRepairRequest{ID: "r-nope", Status: &status})

		require.Error(t, err)
		assert.EqualError(t, err, "Repair not found")
	})
}

func TestRepairUseCase_Delete(t *testing.T) {
	cases := []struct {
		status  entity.RepairStatus
		wantErr bool
	}{
		{entity.StatusPending, false},
		{entity.StatusWaitingParts, false},
		{entity.StatusWaitingClient, false},
		{entity.StatusCancelled, false},
		{entity.StatusDelivered, false},
		{entity.StatusInProgress, true},
		{entity.StatusCompleted, true},
	}
	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			uc, repairs, _, _ := repairFixture()
			repairs.repairs = []*entity.Repair{storedRepair("r-1", "p-1", "c-1", tc.status)}

			err := uc.Delete("r-1")

			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsKind(err, domain.KindConflict))
				assert.EqualError(t, err, "Cannot delete active or completed repairs")
			} else {
				require.NoError(t, err)
				stored, _ := repairs.GetByID("r-1")
				assert.Nil(t, stored)
			}
		})
	}
}

func TestRepairUseCase_ListByPhone(t *testing.T) {
	uc, repairs, _, _ := repairFixture()
	repairs.repairs = []*entity.Repair{
		storedRepair("r-1", "p-1", "c-1", entity.StatusPending),
		storedRepair("r-2", "p-otro", "c-1", entity.StatusPending),
	}

	t.Run("SoloLasDelEquipo", func(t *testing.T) {
		out, err := uc.ListByPhone("p-1")

		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "r-1", out[0].ID)
	})

	t.Run("EquipoInexistente_NotFound", func(t *testing.T) {
		_, err := uc.ListByPhone("p-nope")

		require.Error(t, err)
		assert.EqualError(t, err, "Phone not found")
	})
}

func TestRepairUseCase_Statistics(t *testing.T) {
	uc, repairs, _, _ := repairFixture()
	repairs.repairs = []*entity.Repair{
		storedRepair("r-1", "p-1", "c-1", entity.StatusPending),
		storedRepair("r-2", "p-1", "c-1", entity.StatusPending),
		storedRepair("r-3", "p-1", "c-1", entity.StatusInProgress),
		storedRepair("r-4", "p-1", "c-1", entity.StatusCompleted),
		storedRepair("r-5", "p-1", "c-1", entity.StatusDelivered),
	}

	out, err := uc.Statistics()

	require.NoError(t, err)
	assert.Equal(t, 5, out.Total)
	assert.Equal(t, 2, out.Pending)
	assert.Equal(t, 1, out.InProgress)
	assert.Equal(t, 1, out.Completed)
}

func TestRepairUseCase_OrderPDF(t *testing.T) {
	t.Run("GeneraBytes", func(t *testing.T) {
		uc, repairs, _, pdfGen := repairFixture()
		repairs.repairs = []*entity.Repair{storedRepair("r-1", "p-1", "c-1", entity.StatusInProgress)}

		pdf, err := uc.OrderPDF("r-1")

		require.NoError(t, err)
		assert.NotEmpty(t, pdf)
		assert.Equal(t, 1, pdfGen.generated)
	})

	t.Run("SinGenerador_Internal", func(t *testing.T) {
		uc := usecase.NewRepairUseCase(&fakeRepairRepo{}, &fakePhoneRepo{}, nil)

		_, err := uc.OrderPDF("r-1")

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindInternal))
		assert.EqualError(t, err, "PDF generation is not configured")
	})

	t.Run("Inexistente_NotFound", func(t *testing.T) {
		uc, _, _, _ := repairFixture()

		_, err := uc.OrderPDF("r-nope")

		require.Error(t, err)
		assert.EqualError(t, err, "Repair not found")
	})
}
