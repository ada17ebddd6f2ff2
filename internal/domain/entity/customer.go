package entity

import "time"

// DocumentType tipo de documento de identidad del cliente (Colombia).
type DocumentType string

const (
	DocumentCC       DocumentType = "cc"       // cédula de ciudadanía
	DocumentCE       DocumentType = "ce"       // cédula de extranjería
	DocumentPassport DocumentType = "passport"
	DocumentNIT      DocumentType = "nit"
)

// Valid reporta si el tipo de documento pertenece al conjunto permitido.
func (d DocumentType) Valid() bool {
	switch d {
	case DocumentCC, DocumentCE, DocumentPassport, DocumentNIT:
		return true
	}
	return false
}

// ParseDocumentType convierte un string externo en DocumentType.
func ParseDocumentType(s string) (DocumentType, bool) {
	d := DocumentType(s)
	return d, d.Valid()
}

// Customer cliente del taller. Posee cero o más Phones (1:N).
type Customer struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string // único
	Phone          string // número de contacto, no confundir con la entidad Phone
	Address        string
	DocumentType   DocumentType
	DocumentNumber string // único
	IsActive       bool
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Phones relación cargada bajo demanda por el repositorio.
	Phones []*Phone
}

// FullName nombre completo para listados y documentos.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// HasActivePhones reporta si el cliente tiene algún equipo activo.
// Guarda de borrado: un cliente con equipos activos no puede eliminarse.
func (c *Customer) HasActivePhones() bool {
	for _, p := range c.Phones {
		if p.IsActive {
			return true
		}
	}
	return false
}
