package entity

import "time"

// PhoneCondition estado físico del equipo al ingresarlo.
type PhoneCondition string

const (
	ConditionExcellent PhoneCondition = "excellent"
	ConditionGood      PhoneCondition = "good" // default al crear
	ConditionFair      PhoneCondition = "fair"
	ConditionPoor      PhoneCondition = "poor"
	ConditionDamaged   PhoneCondition = "damaged"
)

// Valid reporta si la condición pertenece al conjunto permitido.
func (c PhoneCondition) Valid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor, ConditionDamaged:
		return true
	}
	return false
}

// ParsePhoneCondition convierte un string externo en PhoneCondition.
func ParsePhoneCondition(s string) (PhoneCondition, bool) {
	c := PhoneCondition(s)
	return c, c.Valid()
}

// Phone equipo celular de un cliente. Pertenece a exactamente un Customer
// y posee cero o más Repairs (1:N).
type Phone struct {
	ID             string
	CustomerID     string
	Brand          string
	Model          string
	IMEI           string // único, exactamente 15 caracteres
	Color          string
	PurchaseDate   *time.Time
	WarrantyExpiry *time.Time
	Condition      PhoneCondition
	IsActive       bool
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Relaciones cargadas bajo demanda por el repositorio.
	Customer *Customer
	Repairs  []*Repair
}

// HasOpenRepairs reporta si el equipo tiene reparaciones pendientes o en
// curso. Guarda de borrado del Phone.
func (p *Phone) HasOpenRepairs() bool {
	for _, r := range p.Repairs {
		if r.Status == StatusPending || r.Status == StatusInProgress {
			return true
		}
	}
	return false
}
