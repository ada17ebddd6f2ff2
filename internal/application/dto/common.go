// Package dto contiene los contratos de entrada y salida de la aplicación.
//
// Cada contrato de entrada es una fábrica de un solo uso: recibe el cuerpo
// crudo como map[string]any y devuelve el valor tipado ya validado, o un
// error de validación con la primera regla violada (las reglas se evalúan
// en orden fijo, como una lista explícita).
package dto

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jdgomez/taller-api/internal/domain"
	"github.com/jdgomez/taller-api/pkg/validate"
)

// rule una regla de validación; devuelve nil si pasa.
type rule func() error

// firstError evalúa las reglas en orden y devuelve la primera que falla.
func firstError(rules ...rule) error {
	for _, r := range rules {
		if err := r(); err != nil {
			return err
		}
	}
	return nil
}

// ── Accesores sobre el cuerpo crudo ──────────────────────────────────────────
// JSON decodifica números como float64 y todo lo demás como string/bool.
// Los accesores reportan presencia y tipo por separado para que cada regla
// distinga "ausente" de "presente pero malformado".

func getString(m map[string]any, key string) (val string, present bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return s, true
}

func getNumber(m map[string]any, key string) (val float64, present, isNumber bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, false, false
	}
	switch n := v.(type) {
	case float64:
		return n, true, true
	case int:
		return float64(n), true, true
	}
	return 0, true, false
}

func getBool(m map[string]any, key string) (val bool, present bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// parseDate acepta RFC 3339 o fecha simple AAAA-MM-DD.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// ── Paginación ───────────────────────────────────────────────────────────────

// Pagination parámetros de página validados. Defaults: page 1, limit 10.
type Pagination struct {
	Page  int
	Limit int
}

// NewPagination valida los query params crudos de paginación. Los valores
// ausentes toman su default; los presentes deben ser enteros positivos.
func NewPagination(page, limit string) (*Pagination, error) {
	if page == "" {
		page = "1"
	}
	if limit == "" {
		limit = "10"
	}
	if !validate.IsPositiveInteger(page) {
		return nil, domain.NewValidation("Page must be a positive integer")
	}
	if !validate.IsPositiveInteger(limit) {
		return nil, domain.NewValidation("Limit must be a positive integer")
	}
	pg, _ := strconv.Atoi(page)
	lm, _ := strconv.Atoi(limit)
	return &Pagination{Page: pg, Limit: lm}, nil
}

// Offset desplazamiento para la consulta paginada.
func (p *Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageLinks enlaces next/prev del sobre de paginación. next solo existe si
// quedan registros después de la página actual; prev solo si page > 1.
func PageLinks(basePath string, page, limit, total int) (next, prev *string) {
	if page*limit < total {
		n := fmt.Sprintf("%s?page=%d&limit=%d", basePath, page+1, limit)
		next = &n
	}
	if page > 1 {
		p := fmt.Sprintf("%s?page=%d&limit=%d", basePath, page-1, limit)
		prev = &p
	}
	return next, prev
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
