package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jdgomez/taller-api/internal/domain"
	"github.com/jdgomez/taller-api/internal/domain/entity"
	"github.com/jdgomez/taller-api/pkg/validate"
)

// CreateRepairRequest contrato para abrir una orden de reparación.
type CreateRepairRequest struct {
	PhoneID           string
	CustomerID        string
	Issue             string
	Description       string
	Priority          entity.RepairPriority
	EstimatedCost     decimal.Decimal
	EstimatedDuration float64 // horas
	TechnicianNotes   string
	ClientNotes       string
}

// NewCreateRepair valida el cuerpo crudo. Orden: phoneId → customerId →
// issue → description → priority → estimatedCost → estimatedDuration → notas.
func NewCreateRepair(m map[string]any) (*CreateRepairRequest, error) {
	phoneID, _ := getString(m, "phoneId")
	customerID, _ := getString(m, "customerId")
	issue, _ := getString(m, "issue")
	description, _ := getString(m, "description")
	priorityRaw, _ := getString(m, "priority")
	cost, hasCost, costIsNumber := getNumber(m, "estimatedCost")
	duration, hasDuration, durationIsNumber := getNumber(m, "estimatedDuration")
	technicianNotes, _ := getString(m, "technicianNotes")
	clientNotes, _ := getString(m, "clientNotes")

	err := firstError(
		requirePresent(phoneID, "Missing phoneId"),
		func() error {
			if !validate.IsUUID(phoneID) {
				return domain.NewValidation("Invalid phoneId")
			}
			return nil
		},
		requirePresent(customerID, "Missing customerId"),
		func() error {
			if !validate.IsUUID(customerID) {
				return domain.NewValidation("Invalid customerId")
			}
			return nil
		},
		requirePresent(issue, "Missing issue"),
		requireLenBetween(issue, 5, 255, "Issue must be between 5 and 255 characters"),
		requirePresent(description, "Missing description"),
		func() error {
			if len(description) < 10 {
				return domain.NewValidation("Description must be at least 10 characters")
			}
			return nil
		},
		requirePresent(priorityRaw, "Missing priority"),
		func() error {
			if _, ok := entity.ParseRepairPriority(priorityRaw); !ok {
				return domain.NewValidation("Invalid priority")
			}
			return nil
		},
		func() error {
			if !hasCost {
				return domain.NewValidation("Missing estimatedCost")
			}
			return nil
		},
		func() error {
			if !costIsNumber || cost < 0 {
				return domain.NewValidation("EstimatedCost must be a positive number")
			}
			return nil
		},
		func() error {
			if !hasDuration {
				return domain.NewValidation("Missing estimatedDuration")
			}
			return nil
		},
		func() error {
			if !durationIsNumber || duration <= 0 {
				return domain.NewValidation("EstimatedDuration must be a positive number")
			}
			return nil
		},
		optionalMaxLen(technicianNotes, 1000, "TechnicianNotes cannot exceed 1000 characters"),
		optionalMaxLen(clientNotes, 1000, "ClientNotes cannot exceed 1000 characters"),
	)
	if err != nil {
		return nil, err
	}

	priority, _ := entity.ParseRepairPriority(priorityRaw)
	return &CreateRepairRequest{
		PhoneID:           phoneID,
		CustomerID:        customerID,
		Issue:             issue,
		Description:       description,
		Priority:          priority,
		EstimatedCost:     decimal.NewFromFloat(cost),
		EstimatedDuration: duration,
		TechnicianNotes:   technicianNotes,
		ClientNotes:       clientNotes,
	}, nil
}

// UpdateRepairRequest contrato de actualización parcial de una orden. El id
// sí se valida como UUID.
type UpdateRepairRequest struct {
	ID                string
	Issue             *string
	Description       *string
	Status            *entity.RepairStatus
	Priority          *entity.RepairPriority
	EstimatedCost     *decimal.Decimal
	FinalCost         *decimal.Decimal
	EstimatedDuration *float64
	ActualDuration    *float64
	CompletionDate    *time.Time
	TechnicianNotes   *string
	ClientNotes       *string
}

// NewUpdateRepair valida el cuerpo crudo de una actualización parcial.
func NewUpdateRepair(id string, m map[string]any) (*UpdateRepairRequest, error) {
	if id == "" {
		return nil, domain.NewValidation("Missing id")
	}
	if !validate.IsUUID(id) {
		return nil, domain.NewValidation("Invalid id")
	}

	out := &UpdateRepairRequest{ID: id}

	if v, ok := getString(m, "issue"); ok {
		if err := requireLenBetween(v, 5, 255, "Issue must be between 5 and 255 characters")(); err != nil {
			return nil, err
		}
		out.Issue = &v
	}
	if v, ok := getString(m, "description"); ok {
		if len(v) < 10 {
			return nil, domain.NewValidation("Description must be at least 10 characters")
		}
		out.Description = &v
	}
	if v, ok := getString(m, "status"); ok {
		st, valid := entity.ParseRepairStatus(v)
		if !valid {
			return nil, domain.NewValidation("Invalid status")
		}
		out.Status = &st
	}
	if v, ok := getString(m, "priority"); ok {
		p, valid := entity.ParseRepairPriority(v)
		if !valid {
			return nil, domain.NewValidation("Invalid priority")
		}
		out.Priority = &p
	}
	if v, present, isNumber := getNumber(m, "estimatedCost"); present {
		if !isNumber || v < 0 {
			return nil, domain.NewValidation("EstimatedCost must be a positive number")
		}
		d := decimal.NewFromFloat(v)
		out.EstimatedCost = &d
	}
	if v, present, isNumber := getNumber(m, "finalCost"); present {
		if !isNumber || v < 0 {
			return nil, domain.NewValidation("FinalCost must be a positive number")
		}
		d := decimal.NewFromFloat(v)
		out.FinalCost = &d
	}
	if v, present, isNumber := getNumber(m, "estimatedDuration"); present {
		if !isNumber || v <= 0 {
			return nil, domain.NewValidation("EstimatedDuration must be a positive number")
		}
		out.EstimatedDuration = &v
	}
	if v, present, isNumber := getNumber(m, "actualDuration"); present {
		if !isNumber || v < 0 {
			return nil, domain.NewValidation("ActualDuration must be a positive number")
		}
		out.ActualDuration = &v
	}
	if v, ok := getString(m, "technicianNotes"); ok {
		if len(v) > 1000 {
			return nil, domain.NewValidation("TechnicianNotes cannot exceed 1000 characters")
		}
		out.TechnicianNotes = &v
	}
	if v, ok := getString(m, "clientNotes"); ok {
		if len(v) > 1000 {
			return nil, domain.NewValidation("ClientNotes cannot exceed 1000 characters")
		}
		out.ClientNotes = &v
	}
	if v, ok := getString(m, "completionDate"); ok && v != "" {
		t, err := parseDate(v)
		if err != nil {
			return nil, domain.NewValidation("Invalid completionDate")
		}
		out.CompletionDate = &t
	}
	return out, nil
}

// RepairResponse representación de una orden de reparación hacia afuera.
type RepairResponse struct {
	ID                      string                `json:"id"`
	PhoneID                 string                `json:"phoneId"`
	CustomerID              string                `json:"customerId"`
	Issue                   string                `json:"issue"`
	Description             string                `json:"description"`
	Status                  entity.RepairStatus   `json:"status"`
	Priority                entity.RepairPriority `json:"priority"`
	EstimatedCost           decimal.Decimal       `json:"estimatedCost"`
	FinalCost               *decimal.Decimal      `json:"finalCost,omitempty"`
	EstimatedDuration       float64               `json:"estimatedDuration"`
	ActualDuration          *float64              `json:"actualDuration,omitempty"`
	StartDate               time.Time             `json:"startDate"`
	EstimatedCompletionDate time.Time             `json:"estimatedCompletionDate"`
	CompletionDate          *time.Time            `json:"completionDate,omitempty"`
	TechnicianNotes         string                `json:"technicianNotes,omitempty"`
	ClientNotes             string                `json:"clientNotes,omitempty"`
	CreatedAt               time.Time             `json:"createdAt"`
	UpdatedAt               time.Time             `json:"updatedAt"`
	Phone                   *PhoneResponse        `json:"phone,omitempty"`
	Customer                *CustomerResponse     `json:"customer,omitempty"`
}

// FromRepair convierte la entidad, incluyendo relaciones si fueron cargadas.
func FromRepair(r *entity.Repair) *RepairResponse {
	if r == nil {
		return nil
	}
	return &RepairResponse{
		ID:                      r.ID,
		PhoneID:                 r.PhoneID,
		CustomerID:              r.CustomerID,
		Issue:                   r.Issue,
		Description:             r.Description,
		Status:                  r.Status,
		Priority:                r.Priority,
		EstimatedCost:           r.EstimatedCost,
		FinalCost:               r.FinalCost,
		EstimatedDuration:       r.EstimatedDuration,
		ActualDuration:          r.ActualDuration,
		StartDate:               r.StartDate,
		EstimatedCompletionDate: r.EstimatedCompletionDate,
		CompletionDate:          r.CompletionDate,
		TechnicianNotes:         r.TechnicianNotes,
		ClientNotes:             r.ClientNotes,
		CreatedAt:               r.CreatedAt,
		UpdatedAt:               r.UpdatedAt,
		Phone:                   FromPhone(r.Phone),
		Customer:                FromCustomer(r.Customer),
	}
}

// RepairListResponse sobre paginado de órdenes de reparación.
type RepairListResponse struct {
	Page    int               `json:"page"`
	Limit   int               `json:"limit"`
	Total   int               `json:"total"`
	Next    *string           `json:"next"`
	Prev    *string           `json:"prev"`
	Repairs []*RepairResponse `json:"repairs"`
}

// NewRepairListResponse arma el sobre paginado con enlaces next/prev.
func NewRepairListResponse(p *Pagination, total int, repairs []*entity.Repair) *RepairListResponse {
	next, prev := PageLinks("/api/repairs", p.Page, p.Limit, total)
	out := &RepairListResponse{
		Page:    p.Page,
		Limit:   p.Limit,
		Total:   total,
		Next:    next,
		Prev:    prev,
		Repairs: make([]*RepairResponse, 0, len(repairs)),
	}
	for _, r := range repairs {
		out.Repairs = append(out.Repairs, FromRepair(r))
	}
	return out
}

// RepairStatisticsResponse agregados del tablero de reparaciones.
type RepairStatisticsResponse struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}
