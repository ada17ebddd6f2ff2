package dto

import (
	"time"

	"github.com/jdgomez/taller-api/internal/domain"
	"github.com/jdgomez/taller-api/internal/domain/entity"
	"github.com/jdgomez/taller-api/pkg/validate"
)

// CreatePhoneRequest contrato para registrar un equipo de un cliente.
type CreatePhoneRequest struct {
	CustomerID     string
	Brand          string
	Model          string
	IMEI           string
	Condition      entity.PhoneCondition
	Color          string
	PurchaseDate   *time.Time
	WarrantyExpiry *time.Time
	Notes          string
}

// NewCreatePhone valida el cuerpo crudo. Orden: customerId → brand → model →
// imei → condition → color → notes → fechas.
func NewCreatePhone(m map[string]any) (*CreatePhoneRequest, error) {
	customerID, _ := getString(m, "customerId")
	brand, _ := getString(m, "brand")
	model, _ := getString(m, "model")
	imei, _ := getString(m, "imei")
	conditionRaw, _ := getString(m, "condition")
	color, _ := getString(m, "color")
	notes, _ := getString(m, "notes")
	purchaseRaw, hasPurchase := getString(m, "purchaseDate")
	warrantyRaw, hasWarranty := getString(m, "warrantyExpiry")

	err := firstError(
		requirePresent(customerID, "Missing customerId"),
		func() error {
			if !validate.IsUUID(customerID) {
				return domain.NewValidation("Invalid customerId")
			}
			return nil
		},
		requirePresent(brand, "Missing brand"),
		requireLenBetween(brand, 2, 50, "Brand must be between 2 and 50 characters"),
		requirePresent(model, "Missing model"),
		requireLenBetween(model, 2, 100, "Model must be between 2 and 100 characters"),
		requirePresent(imei, "Missing imei"),
		func() error {
			if len(imei) != 15 {
				return domain.NewValidation("IMEI must be exactly 15 characters")
			}
			return nil
		},
		requirePresent(conditionRaw, "Missing condition"),
		func() error {
			if _, ok := entity.ParsePhoneCondition(conditionRaw); !ok {
				return domain.NewValidation("Invalid condition")
			}
			return nil
		},
		optionalMaxLen(color, 30, "Color cannot exceed 30 characters"),
		optionalMaxLen(notes, 1000, "Notes cannot exceed 1000 characters"),
	)
	if err != nil {
		return nil, err
	}

	var purchaseDate, warrantyExpiry *time.Time
	if hasPurchase && purchaseRaw != "" {
		t, err := parseDate(purchaseRaw)
		if err != nil {
			return nil, domain.NewValidation("Invalid purchaseDate")
		}
		purchaseDate = &t
	}
	if hasWarranty && warrantyRaw != "" {
		t, err := parseDate(warrantyRaw)
		if err != nil {
			return nil, domain.NewValidation("Invalid warrantyExpiry")
		}
		warrantyExpiry = &t
	}

	condition, _ := entity.ParsePhoneCondition(conditionRaw)
	return &CreatePhoneRequest{
		CustomerID:     customerID,
		Brand:          brand,
		Model:          model,
		IMEI:           imei,
		Condition:      condition,
		Color:          color,
		PurchaseDate:   purchaseDate,
		WarrantyExpiry: warrantyExpiry,
		Notes:          notes,
	}, nil
}

// UpdatePhoneRequest contrato de actualización parcial de equipo. El imei no
// es actualizable. El id sí se valida como UUID.
type UpdatePhoneRequest struct {
	ID             string
	Brand          *string
	Model          *string
	Condition      *entity.PhoneCondition
	Color          *string
	PurchaseDate   *time.Time
	WarrantyExpiry *time.Time
	Notes          *string
	IsActive       *bool
}

// NewUpdatePhone valida el cuerpo crudo de una actualización parcial.
func NewUpdatePhone(id string, m map[string]any) (*UpdatePhoneRequest, error) {
	if id == "" {
		return nil, domain.NewValidation("Missing id")
	}
	if !validate.IsUUID(id) {
		return nil, domain.NewValidation("Invalid id")
	}

	out := &UpdatePhoneRequest{ID: id}

	if v, ok := getString(m, "brand"); ok {
		if err := requireLenBetween(v, 2, 50, "Brand must be between 2 and 50 characters")(); err != nil {
			return nil, err
		}
		out.Brand = &v
	}
	if v, ok := getString(m, "model"); ok {
		if err := requireLenBetween(v, 2, 100, "Model must be between 2 and 100 characters")(); err != nil {
			return nil, err
		}
		out.Model = &v
	}
	if v, ok := getString(m, "condition"); ok {
		c, valid := entity.ParsePhoneCondition(v)
		if !valid {
			return nil, domain.NewValidation("Invalid condition")
		}
		out.Condition = &c
	}
	if v, ok := getString(m, "color"); ok {
		if len(v) > 30 {
			return nil, domain.NewValidation("Color cannot exceed 30 characters")
		}
		out.Color = &v
	}
	if v, ok := getString(m, "notes"); ok {
		if len(v) > 1000 {
			return nil, domain.NewValidation("Notes cannot exceed 1000 characters")
		}
		out.Notes = &v
	}
	if v, ok := getString(m, "purchaseDate"); ok && v != "" {
		t, err := parseDate(v)
		if err != nil {
			return nil, domain.NewValidation("Invalid purchaseDate")
		}
		out.PurchaseDate = &t
	}
	if v, ok := getString(m, "warrantyExpiry"); ok && v != "" {
		t, err := parseDate(v)
		if err != nil {
			return nil, domain.NewValidation("Invalid warrantyExpiry")
		}
		out.WarrantyExpiry = &t
	}
	if v, ok := getBool(m, "isActive"); ok {
		out.IsActive = &v
	}
	return out, nil
}

// PhoneResponse representación de un equipo hacia afuera.
type PhoneResponse struct {
	ID             string                `json:"id"`
	CustomerID     string                `json:"customerId"`
	Brand          string                `json:"brand"`
	Model          string                `json:"model"`
	IMEI           string                `json:"imei"`
	Color          string                `json:"color,omitempty"`
	PurchaseDate   *time.Time            `json:"purchaseDate,omitempty"`
	WarrantyExpiry *time.Time            `json:"warrantyExpiry,omitempty"`
	Condition      entity.PhoneCondition `json:"condition"`
	IsActive       bool                  `json:"isActive"`
	Notes          string                `json:"notes,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
	Customer       *CustomerResponse     `json:"customer,omitempty"`
	Repairs        []*RepairResponse     `json:"repairs,omitempty"`
}

// FromPhone convierte la entidad, incluyendo relaciones si fueron cargadas.
func FromPhone(p *entity.Phone) *PhoneResponse {
	if p == nil {
		return nil
	}
	out := &PhoneResponse{
		ID:             p.ID,
		CustomerID:     p.CustomerID,
		Brand:          p.Brand,
		Model:          p.Model,
		IMEI:           p.IMEI,
		Color:          p.Color,
		PurchaseDate:   p.PurchaseDate,
		WarrantyExpiry: p.WarrantyExpiry,
		Condition:      p.Condition,
		IsActive:       p.IsActive,
		Notes:          p.Notes,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		Customer:       FromCustomer(p.Customer),
	}
	for _, r := range p.Repairs {
		out.Repairs = append(out.Repairs, FromRepair(r))
	}
	return out
}
