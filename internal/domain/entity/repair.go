package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RepairStatus estado de una reparación dentro de su ciclo de vida.
// El flujo típico es pending → in_progress → (waiting_parts | waiting_client)
// → in_progress → completed → delivered, con cancelled alcanzable desde
// cualquier estado previo a completed. No se fuerza un grafo de transiciones:
// cualquier estado puede fijarse vía update (comportamiento heredado y
// deliberadamente permisivo).
type RepairStatus string

const (
	StatusPending       RepairStatus = "pending" // estado inicial
	StatusInProgress    RepairStatus = "in_progress"
	StatusWaitingParts  RepairStatus = "waiting_parts"
	StatusWaitingClient RepairStatus = "waiting_client"
	StatusCompleted     RepairStatus = "completed"
	StatusCancelled     RepairStatus = "cancelled"
	StatusDelivered     RepairStatus = "delivered"
)

// Valid reporta si el estado pertenece al conjunto permitido.
func (s RepairStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusWaitingParts, StatusWaitingClient,
		StatusCompleted, StatusCancelled, StatusDelivered:
		return true
	}
	return false
}

// ParseRepairStatus convierte un string externo en RepairStatus.
func ParseRepairStatus(s string) (RepairStatus, bool) {
	st := RepairStatus(s)
	return st, st.Valid()
}

// RepairPriority prioridad de atención de la reparación.
type RepairPriority string

const (
	PriorityLow    RepairPriority = "low"
	PriorityMedium RepairPriority = "medium"
	PriorityHigh   RepairPriority = "high"
	PriorityUrgent RepairPriority = "urgent"
)

// Valid reporta si la prioridad pertenece al conjunto permitido.
func (p RepairPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ParseRepairPriority convierte un string externo en RepairPriority.
func ParseRepairPriority(s string) (RepairPriority, bool) {
	p := RepairPriority(s)
	return p, p.Valid()
}

// WorkingHoursPerDay jornada asumida al derivar la fecha estimada de entrega.
const WorkingHoursPerDay = 8

// Repair orden de reparación. Pertenece a un Phone y, transitivamente, a un
// Customer; CustomerID se desnormaliza al crear y debe coincidir con el dueño
// del Phone.
type Repair struct {
	ID                      string
	PhoneID                 string
	CustomerID              string
	Issue                   string
	Description             string
	Status                  RepairStatus
	Priority                RepairPriority
	EstimatedCost           decimal.Decimal
	FinalCost               *decimal.Decimal
	EstimatedDuration       float64 // horas
	ActualDuration          *float64
	StartDate               time.Time
	EstimatedCompletionDate time.Time
	CompletionDate          *time.Time
	TechnicianNotes         string
	ClientNotes             string
	CreatedAt               time.Time
	UpdatedAt               time.Time

	// Relaciones cargadas bajo demanda por el repositorio.
	Phone    *Phone
	Customer *Customer
}

// Deletable reporta si la reparación puede eliminarse. Las reparaciones en
// curso o completadas no se borran.
func (r *Repair) Deletable() bool {
	return r.Status != StatusInProgress && r.Status != StatusCompleted
}

// EstimateCompletionDate deriva la fecha estimada de entrega desde la fecha
// de inicio: ceil(horas estimadas / jornada) días calendario.
func EstimateCompletionDate(start time.Time, estimatedHours float64) time.Time {
	days := int(estimatedHours / WorkingHoursPerDay)
	if estimatedHours > float64(days*WorkingHoursPerDay) {
		days++
	}
	return start.AddDate(0, 0, days)
}
