package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jdgomez/taller-api/internal/application/dto"
	"github.com/jdgomez/taller-api/internal/domain"
	"github.com/jdgomez/taller-api/internal/domain/entity"
	"github.com/jdgomez/taller-api/internal/domain/repository"
)

// RepairUseCase ciclo de vida de las órdenes de reparación.
type RepairUseCase struct {
	repairRepo repository.RepairRepository
	phoneRepo  repository.PhoneRepository
	pdfGen     RepairOrderPDFGenerator
}

// NewRepairUseCase construye el caso de uso. pdfGen puede ser nil si la
// generación de órdenes imprimibles está deshabilitada.
func NewRepairUseCase(repairRepo repository.RepairRepository, phoneRepo repository.PhoneRepository, pdfGen RepairOrderPDFGenerator) *RepairUseCase {
	return &RepairUseCase{repairRepo: repairRepo, phoneRepo: phoneRepo, pdfGen: pdfGen}
}

// Create abre una orden. El equipo debe existir y el customerId provisto
// debe coincidir con el dueño del equipo. Estado inicial pending; la fecha
// estimada de entrega se deriva de la duración estimada.
func (uc *RepairUseCase) Create(in *dto.CreateRepairRequest) (*dto.RepairResponse, error) {
	phone, err := uc.phoneRepo.GetByID(in.PhoneID)
	if err != nil {
		return nil, err
	}
	if phone == nil {
		return nil, domain.NewNotFound("Phone not found")
	}
	if phone.CustomerID != in.CustomerID {
		return nil, domain.NewConflict("Customer ID does not match phone owner")
	}

	now := time.Now()
	repair := &entity.Repair{
		ID:                      uuid.New().String(),
		PhoneID:                 in.PhoneID,
		CustomerID:              in.CustomerID,
		Issue:                   in.Issue,
		Description:             in.Description,
		Status:                  entity.StatusPending,
		Priority:                in.Priority,
		EstimatedCost:           in.EstimatedCost,
		EstimatedDuration:       in.EstimatedDuration,
		StartDate:               now,
		EstimatedCompletionDate: entity.EstimateCompletionDate(now, in.EstimatedDuration),
		TechnicianNotes:         in.TechnicianNotes,
		ClientNotes:             in.ClientNotes,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	if err := uc.repairRepo.Create(repair); err != nil {
		return nil, err
	}
	return dto.FromRepair(repair), nil
}

// List devuelve la página pedida con el sobre de paginación; cada orden
// incluye su equipo y cliente.
func (uc *RepairUseCase) List(p *dto.Pagination) (*dto.RepairListResponse, error) {
	repairs, err := uc.repairRepo.List(p.Limit, p.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repairRepo.Count()
	if err != nil {
		return nil, err
	}
	return dto.NewRepairListResponse(p, total, repairs), nil
}

// GetByID devuelve la orden con equipo y cliente cargados.
func (uc *RepairUseCase) GetByID(id string) (*dto.RepairResponse, error) {
	repair, err := uc.repairRepo.GetByIDWithRelations(id)
	if err != nil {
		return nil, err
	}
	if repair == nil {
		return nil, domain.NewNotFound("Repair not found")
	}
	return dto.FromRepair(repair), nil
}

// ListByPhone devuelve las órdenes de un equipo existente.
func (uc *RepairUseCase) ListByPhone(phoneID string) ([]*dto.RepairResponse, error) {
	phone, err := uc.phoneRepo.GetByID(phoneID)
	if err != nil {
		return nil, err
	}
	if phone == nil {
		return nil, domain.NewNotFound("Phone not found")
	}
	repairs, err := uc.repairRepo.ListByPhone(phoneID)
	if err != nil {
		return nil, err
	}
	return toRepairResponses(repairs), nil
}

// ListByCustomer devuelve las órdenes asociadas a un cliente.
func (uc *RepairUseCase) ListByCustomer(customerID string) ([]*dto.RepairResponse, error) {
	repairs, err := uc.repairRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return toRepairResponses(repairs), nil
}

// Update aplica una actualización parcial. No se fuerza un grafo de
// transiciones de estado; al pasar a completed sin completionDate previa ni
// provista se estampa la fecha actual.
func (uc *RepairUseCase) Update(in *dto.UpdateRepairRequest) (*dto.RepairResponse, error) {
	repair, err := uc.repairRepo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if repair == nil {
		return nil, domain.NewNotFound("Repair not found")
	}

	if in.Status != nil && *in.Status == entity.StatusCompleted &&
		in.CompletionDate == nil && repair.CompletionDate == nil {
		now := time.Now()
		repair.CompletionDate = &now
	}

	if in.Issue != nil {
		repair.Issue = *in.Issue
	}
	if in.Description != nil {
		repair.Description = *in.Description
	}
	if in.Status != nil {
		repair.Status = *in.Status
	}
	if in.Priority != nil {
		repair.Priority = *in.Priority
	}
	if in.EstimatedCost != nil {
		repair.EstimatedCost = *in.EstimatedCost
	}
	if in.FinalCost != nil {
		repair.FinalCost = in.FinalCost
	}
	if in.EstimatedDuration != nil {
		repair.EstimatedDuration = *in.EstimatedDuration
	}
	if in.ActualDuration != nil {
		repair.ActualDuration = in.ActualDuration
	}
	if in.CompletionDate != nil {
		repair.CompletionDate = in.CompletionDate
	}
	if in.TechnicianNotes != nil {
		repair.TechnicianNotes = *in.TechnicianNotes
	}
	if in.ClientNotes != nil {
		repair.ClientNotes = *in.ClientNotes
	}
	repair.UpdatedAt = time.Now()

	if err := uc.repairRepo.Update(repair); err != nil {
		return nil, err
	}
	return dto.FromRepair(repair), nil
}

// Delete elimina una orden. Guarda: las órdenes en curso o completadas no
// se borran.
func (uc *RepairUseCase) Delete(id string) error {
	repair, err := uc.repairRepo.GetByID(id)
	if err != nil {
		return err
	}
	if repair == nil {
		return domain.NewNotFound("Repair not found")
	}
	if !repair.Deletable() {
		return domain.NewConflict("Cannot delete active or completed repairs")
	}
	return uc.repairRepo.Delete(id)
}

// Statistics agrega totales y conteos por estado para el tablero.
func (uc *RepairUseCase) Statistics() (*dto.RepairStatisticsResponse, error) {
	total, err := uc.repairRepo.Count()
	if err != nil {
		return nil, err
	}
	pending, err := uc.repairRepo.CountByStatus(entity.StatusPending)
	if err != nil {
		return nil, err
	}
	inProgress, err := uc.repairRepo.CountByStatus(entity.StatusInProgress)
	if err != nil {
		return nil, err
	}
	completed, err := uc.repairRepo.CountByStatus(entity.StatusCompleted)
	if err != nil {
		return nil, err
	}
	return &dto.RepairStatisticsResponse{
		Total:      total,
		Pending:    pending,
		InProgress: inProgress,
		Completed:  completed,
	}, nil
}

// OrderPDF genera la orden de servicio imprimible de una reparación.
func (uc *RepairUseCase) OrderPDF(id string) ([]byte, error) {
	if uc.pdfGen == nil {
		return nil, domain.NewInternal("PDF generation is not configured")
	}
	repair, err := uc.repairRepo.GetByIDWithRelations(id)
	if err != nil {
		return nil, err
	}
	if repair == nil {
		return nil, domain.NewNotFound("Repair not found")
	}
	pdf, err := uc.pdfGen.Generate(repair)
	if err != nil {
		return nil, domain.NewInternal("Error generating PDF")
	}
	return pdf, nil
}

// ListAllForExport devuelve todas las órdenes con relaciones para la
// exportación XLSX.
func (uc *RepairUseCase) ListAllForExport() ([]*entity.Repair, error) {
	return uc.repairRepo.ListAll()
}

func toRepairResponses(repairs []*entity.Repair) []*dto.RepairResponse {
	out := make([]*dto.RepairResponse, 0, len(repairs))
	for _, r := range repairs {
		out = append(out, dto.FromRepair(r))
	}
	return out
}
