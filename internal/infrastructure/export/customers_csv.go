package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jdgomez/taller-api/internal/domain/entity"
)

var customersHeader = []string{
	"ID", "Nombre", "Apellido", "Email", "Teléfono", "Dirección",
	"Tipo documento", "Número documento", "Activo", "Notas", "Creado",
}

// CustomersCSV genera un CSV separado por punto y coma codificado en
// ISO-8859-1, el formato que Excel en español abre sin asistente de
// importación.
func CustomersCSV(customers []*entity.Customer) ([]byte, error) {
	var buf bytes.Buffer
	enc := transform.NewWriter(&buf, charmap.ISO8859_1.NewEncoder())
	w := csv.NewWriter(enc)
	w.Comma = ';'

	if err := w.Write(customersHeader); err != nil {
		return nil, fmt.Errorf("export: escribir cabecera CSV: %w", err)
	}

	for _, c := range customers {
		active := "No"
		if c.IsActive {
			active = "Sí"
		}
		record := []string{
			c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.Address,
			string(c.DocumentType), c.DocumentNumber, active, c.Notes,
			c.CreatedAt.Format("2006-01-02"),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("export: escribir fila CSV: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export: volcar CSV: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("export: codificar CSV: %w", err)
	}
	return buf.Bytes(), nil
}
