package dto

import (
	"time"

	"github.com/jdgomez/taller-api/internal/domain"
	"github.com/jdgomez/taller-api/internal/domain/entity"
	"github.com/jdgomez/taller-api/pkg/validate"
)

// CreateCustomerRequest contrato para registrar un cliente.
type CreateCustomerRequest struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	DocumentType   entity.DocumentType
	DocumentNumber string
	Address        string
	Notes          string
}

// NewCreateCustomer valida el cuerpo crudo. Orden: firstName → lastName →
// email → phone → documentType → documentNumber → address → notes.
func NewCreateCustomer(m map[string]any) (*CreateCustomerRequest, error) {
	firstName, _ := getString(m, "firstName")
	lastName, _ := getString(m, "lastName")
	email, _ := getString(m, "email")
	phone, _ := getString(m, "phone")
	docTypeRaw, _ := getString(m, "documentType")
	documentNumber, _ := getString(m, "documentNumber")
	address, _ := getString(m, "address")
	notes, _ := getString(m, "notes")

	err := firstError(
		requirePresent(firstName, "Missing firstName"),
		requireLenBetween(firstName, 2, 100, "firstName must be between 2 and 100 characters"),
		requirePresent(lastName, "Missing lastName"),
		requireLenBetween(lastName, 2, 100, "lastName must be between 2 and 100 characters"),
		requirePresent(email, "Missing email"),
		func() error {
			if !validate.IsEmail(email) {
				return domain.NewValidation("Email is not valid")
			}
			return nil
		},
		requirePresent(phone, "Missing phone"),
		requireLenBetween(phone, 10, 20, "Phone must be between 10 and 20 characters"),
		requirePresent(docTypeRaw, "Missing documentType"),
		func() error {
			if _, ok := entity.ParseDocumentType(docTypeRaw); !ok {
				return domain.NewValidation("Invalid documentType")
			}
			return nil
		},
		requirePresent(documentNumber, "Missing documentNumber"),
		requireLenBetween(documentNumber, 5, 50, "documentNumber must be between 5 and 50 characters"),
		optionalMaxLen(address, 255, "address cannot exceed 255 characters"),
		optionalMaxLen(notes, 1000, "notes cannot exceed 1000 characters"),
	)
	if err != nil {
		return nil, err
	}

	docType, _ := entity.ParseDocumentType(docTypeRaw)
	return &CreateCustomerRequest{
		FirstName:      firstName,
		LastName:       lastName,
		Email:          email,
		Phone:          phone,
		DocumentType:   docType,
		DocumentNumber: documentNumber,
		Address:        address,
		Notes:          notes,
	}, nil
}

// UpdateCustomerRequest contrato de actualización parcial de cliente. El
// formato del id no se valida (comportamiento heredado).
type UpdateCustomerRequest struct {
	ID             string
	FirstName      *string
	LastName       *string
	Email          *string
	Phone          *string
	DocumentType   *entity.DocumentType
	DocumentNumber *string
	Address        *string
	Notes          *string
	IsActive       *bool
}

// NewUpdateCustomer valida el cuerpo crudo de una actualización parcial;
// cada campo presente se valida con la misma regla que en la creación.
func NewUpdateCustomer(id string, m map[string]any) (*UpdateCustomerRequest, error) {
	if id == "" {
		return nil, domain.NewValidation("Missing id")
	}

	out := &UpdateCustomerRequest{ID: id}

	if v, ok := getString(m, "firstName"); ok {
		if err := requireLenBetween(v, 2, 100, "firstName must be between 2 and 100 characters")(); err != nil {
			return nil, err
		}
		out.FirstName = &v
	}
	if v, ok := getString(m, "lastName"); ok {
		if err := requireLenBetween(v, 2, 100, "lastName must be between 2 and 100 characters")(); err != nil {
			return nil, err
		}
		out.LastName = &v
	}
	if v, ok := getString(m, "email"); ok {
		if !validate.IsEmail(v) {
			return nil, domain.NewValidation("Email is not valid")
		}
		out.Email = &v
	}
	if v, ok := getString(m, "phone"); ok {
		if err := requireLenBetween(v, 10, 20, "Phone must be between 10 and 20 characters")(); err != nil {
			return nil, err
		}
		out.Phone = &v
	}
	if v, ok := getString(m, "documentType"); ok {
		dt, valid := entity.ParseDocumentType(v)
		if !valid {
			return nil, domain.NewValidation("Invalid documentType")
		}
		out.DocumentType = &dt
	}
	if v, ok := getString(m, "documentNumber"); ok {
		if err := requireLenBetween(v, 5, 50, "documentNumber must be between 5 and 50 characters")(); err != nil {
			return nil, err
		}
		out.DocumentNumber = &v
	}
	if v, ok := getString(m, "address"); ok {
		if len(v) > 255 {
			return nil, domain.NewValidation("address cannot exceed 255 characters")
		}
		out.Address = &v
	}
	if v, ok := getString(m, "notes"); ok {
		if len(v) > 1000 {
			return nil, domain.NewValidation("notes cannot exceed 1000 characters")
		}
		out.Notes = &v
	}
	if v, ok := getBool(m, "isActive"); ok {
		out.IsActive = &v
	}
	return out, nil
}

// ── Reglas compartidas ───────────────────────────────────────────────────────

func requirePresent(v, msg string) rule {
	return func() error {
		if v == "" {
			return domain.NewValidation(msg)
		}
		return nil
	}
}

func requireLenBetween(v string, min, max int, msg string) rule {
	return func() error {
		if len(v) < min || len(v) > max {
			return domain.NewValidation(msg)
		}
		return nil
	}
}

func optionalMaxLen(v string, max int, msg string) rule {
	return func() error {
		if v != "" && len(v) > max {
			return domain.NewValidation(msg)
		}
		return nil
	}
}

// ── Respuestas ───────────────────────────────────────────────────────────────

// CustomerResponse representación de un cliente hacia afuera.
type CustomerResponse struct {
	ID             string              `json:"id"`
	FirstName      string              `json:"firstName"`
	LastName       string              `json:"lastName"`
	Email          string              `json:"email"`
	Phone          string              `json:"phone"`
	Address        string              `json:"address,omitempty"`
	DocumentType   entity.DocumentType `json:"documentType"`
	DocumentNumber string              `json:"documentNumber"`
	IsActive       bool                `json:"isActive"`
	Notes          string              `json:"notes,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
	Phones         []*PhoneResponse    `json:"phones,omitempty"`
}

// FromCustomer convierte la entidad, incluyendo Phones si fueron cargados.
func FromCustomer(c *entity.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	out := &CustomerResponse{
		ID:             c.ID,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		DocumentType:   c.DocumentType,
		DocumentNumber: c.DocumentNumber,
		IsActive:       c.IsActive,
		Notes:          c.Notes,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	for _, p := range c.Phones {
		out.Phones = append(out.Phones, FromPhone(p))
	}
	return out
}

// CustomerListResponse sobre paginado de clientes.
type CustomerListResponse struct {
	Page      int                 `json:"page"`
	Limit     int                 `json:"limit"`
	Total     int                 `json:"total"`
	Next      *string             `json:"next"`
	Prev      *string             `json:"prev"`
	Customers []*CustomerResponse `json:"customers"`
}

// NewCustomerListResponse arma el sobre paginado con enlaces next/prev.
func NewCustomerListResponse(p *Pagination, total int, customers []*entity.Customer) *CustomerListResponse {
	next, prev := PageLinks("/api/customers", p.Page, p.Limit, total)
	out := &CustomerListResponse{
		Page:      p.Page,
		Limit:     p.Limit,
		Total:     total,
		Next:      next,
		Prev:      prev,
		Customers: make([]*CustomerResponse, 0, len(customers)),
	}
	for _, c := range customers {
		out.Customers = append(out.Customers, FromCustomer(c))
	}
	return out
}
