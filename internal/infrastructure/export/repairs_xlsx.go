// Package export genera archivos descargables (XLSX, CSV) a partir de las
// entidades del taller.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jdgomez/taller-api/internal/domain/entity"
)

const repairsSheet = "Reparaciones"

var repairsHeader = []string{
	"ID", "Cliente", "Documento", "Equipo", "IMEI", "Falla", "Estado",
	"Prioridad", "Costo estimado", "Costo final", "Horas estimadas",
	"Fecha inicio", "Entrega estimada", "Fecha entrega",
}

// RepairsXLSX genera un libro XLSX con una fila por reparación. Las
// reparaciones deben venir con Phone y Customer cargados.
func RepairsXLSX(repairs []*entity.Repair) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(repairsSheet)
	if err != nil {
		return nil, fmt.Errorf("export: crear hoja: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("export: eliminar hoja por defecto: %w", err)
	}

	for col, title := range repairsHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(repairsSheet, cell, title); err != nil {
			return nil, fmt.Errorf("export: escribir cabecera: %w", err)
		}
	}

	for i, r := range repairs {
		if err := setRepairRow(f, i+2, r); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: serializar XLSX: %w", err)
	}
	return buf.Bytes(), nil
}

func setRepairRow(f *excelize.File, rowNum int, r *entity.Repair) error {
	customerName, document := "", ""
	if r.Customer != nil {
		customerName = r.Customer.FullName()
		document = fmt.Sprintf("%s %s", r.Customer.DocumentType, r.Customer.DocumentNumber)
	}
	device, imei := "", ""
	if r.Phone != nil {
		device = r.Phone.Brand + " " + r.Phone.Model
		imei = r.Phone.IMEI
	}
	finalCost := ""
	if r.FinalCost != nil {
		finalCost = r.FinalCost.StringFixed(2)
	}
	completion := ""
	if r.CompletionDate != nil {
		completion = r.CompletionDate.Format("2006-01-02")
	}

	values := []any{
		r.ID, customerName, document, device, imei, r.Issue, string(r.Status),
		string(r.Priority), r.EstimatedCost.StringFixed(2), finalCost,
		r.EstimatedDuration, r.StartDate.Format("2006-01-02"),
		r.EstimatedCompletionDate.Format("2006-01-02"), completion,
	}
	for col, v := range values {
		cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
		if err := f.SetCellValue(repairsSheet, cell, v); err != nil {
			return fmt.Errorf("export: escribir fila %d: %w", rowNum, err)
		}
	}
	return nil
}
