package usecase

import "github.com/jdgomez/taller-api/internal/domain/entity"

// Mailer colaborador de correo saliente. La implementación vive en
// internal/infrastructure/mailer.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// RepairOrderPDFGenerator genera la orden de servicio imprimible de una
// reparación (con Phone y Customer ya cargados). Implementación en
// internal/infrastructure/pdf.
type RepairOrderPDFGenerator interface {
	Generate(repair *entity.Repair) ([]byte, error)
}
