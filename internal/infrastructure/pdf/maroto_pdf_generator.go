// Package pdf implementa la orden de servicio imprimible de una reparación
// usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Taller + "ORDEN DE SERVICIO" + N° + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + documento + contacto                      │
//	│  EQUIPO: Marca / Modelo / IMEI / Condición                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DIAGNÓSTICO: Falla reportada + descripción                  │
//	│  ESTADO: Estado | Prioridad | Fechas                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  COSTOS: Estimado / Final                                    │
//	│  FOOTER: Leyenda de garantía                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jdgomez/taller-api/internal/application/usecase"
	"github.com/jdgomez/taller-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var statusLabels = map[entity.RepairStatus]string{
	entity.StatusPending:       "Pendiente",
	entity.StatusInProgress:    "En reparación",
	entity.StatusWaitingParts:  "Esperando repuestos",
	entity.StatusWaitingClient: "Esperando al cliente",
	entity.StatusCompleted:     "Completada",
	entity.StatusCancelled:     "Cancelada",
	entity.StatusDelivered:     "Entregada",
}

var priorityLabels = map[entity.RepairPriority]string{
	entity.PriorityLow:    "Baja",
	entity.PriorityMedium: "Media",
	entity.PriorityHigh:   "Alta",
	entity.PriorityUrgent: "Urgente",
}

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.RepairOrderPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa usecase.RepairOrderPDFGenerator.
type MarotoPDFGenerator struct {
	shopName string
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator(shopName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{shopName: shopName}
}

// Generate genera la orden de servicio y devuelve sus bytes. El repair debe
// venir con Phone y Customer cargados.
func (g *MarotoPDFGenerator) Generate(repair *entity.Repair) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de Servicio", true).
		WithAuthor(g.shopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(repair))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(repair.Customer))
	m.AddRows(phoneRow(repair.Phone))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(diagnosisRows(repair)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(statusRow(repair))
	m.AddRows(datesRow(repair))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(costsRow(repair))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del taller (izq) y N° de orden + fecha (der).
func (g *MarotoPDFGenerator) headerRow(repair *entity.Repair) core.Row {
	fecha := repair.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.shopName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Servicio técnico de celulares", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ORDEN DE SERVICIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+shortID(repair.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente.
func customerRow(customer *entity.Customer) core.Row {
	name, contact := "—", "—"
	if customer != nil {
		name = customer.FullName()
		contact = fmt.Sprintf("Doc: %s %s   |   Tel: %s   |   Email: %s",
			customer.DocumentType, customer.DocumentNumber,
			nonEmpty(customer.Phone, "—"), nonEmpty(customer.Email, "—"))
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(contact, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// phoneRow: datos del equipo.
func phoneRow(phone *entity.Phone) core.Row {
	device, detail := "—", "—"
	if phone != nil {
		device = phone.Brand + " " + phone.Model
		detail = fmt.Sprintf("IMEI: %s   |   Color: %s   |   Condición: %s",
			phone.IMEI, nonEmpty(phone.Color, "—"), phone.Condition)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("EQUIPO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(device, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(detail, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// diagnosisRows: falla reportada y descripción del trabajo.
func diagnosisRows(repair *entity.Repair) []core.Row {
	rows := []core.Row{
		row.New(12).Add(col.New(12).Add(
			text.New("FALLA REPORTADA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(repair.Issue, props.Text{Size: 9, Top: 6}),
		)),
		row.New(14).Add(col.New(12).Add(
			text.New("DESCRIPCIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(repair.Description, props.Text{Size: 8, Top: 6, Color: colorGray}),
		)),
	}
	if repair.TechnicianNotes != "" {
		rows = append(rows, row.New(12).Add(col.New(12).Add(
			text.New("NOTAS DEL TÉCNICO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(repair.TechnicianNotes, props.Text{Size: 8, Top: 6, Color: colorGray}),
		)))
	}
	return rows
}

// statusRow: estado y prioridad.
func statusRow(repair *entity.Repair) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		})
	}
	return row.New(12).Add(
		col.New(6).Add(
			label("ESTADO"),
			text.New(labelFor(statusLabels, repair.Status, string(repair.Status)),
				props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		),
		col.New(6).Add(
			label("PRIORIDAD"),
			text.New(labelFor(priorityLabels, repair.Priority, string(repair.Priority)),
				props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		),
	)
}

// datesRow: fechas de inicio, estimada y de entrega.
func datesRow(repair *entity.Repair) core.Row {
	completion := "—"
	if repair.CompletionDate != nil {
		completion = repair.CompletionDate.Format("02/01/2006")
	}
	dates := fmt.Sprintf("Inicio: %s   |   Entrega estimada: %s   |   Completada: %s",
		repair.StartDate.Format("02/01/2006"),
		repair.EstimatedCompletionDate.Format("02/01/2006"),
		completion)
	return row.New(8).Add(col.New(12).Add(
		text.New(dates, props.Text{Size: 8, Top: 2, Color: colorGray}),
	))
}

// costsRow: costo estimado y final alineados a la derecha.
func costsRow(repair *entity.Repair) core.Row {
	finalCost := "Por definir"
	if repair.FinalCost != nil {
		finalCost = "$" + formatMoney(repair.FinalCost.StringFixed(0))
	}
	return row.New(16).Add(
		col.New(6),
		col.New(3).Add(
			text.New("Costo estimado:", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
			}),
			text.New("Costo final:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 7, Right: 2,
			}),
		),
		col.New(3).Add(
			text.New("$"+formatMoney(repair.EstimatedCost.StringFixed(0)),
				props.Text{Size: 9, Align: align.Right, Right: 1}),
			text.New(finalCost, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 7, Right: 1,
			}),
		),
	)
}

// footerRow: leyenda de garantía.
func footerRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(
			"La garantía cubre únicamente el trabajo realizado y los repuestos "+
				"instalados. Equipos no reclamados dentro de los 30 días siguientes "+
				"a la fecha de entrega estimada generan costos de almacenamiento.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func labelFor[K comparable](m map[K]string, key K, fallback string) string {
	if s, ok := m[key]; ok {
		return s
	}
	return fallback
}

// shortID toma el primer segmento del UUID como número de orden legible.
func shortID(id string) string {
	for i, c := range id {
		if c == '-' {
			return id[:i]
		}
	}
	return id
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
