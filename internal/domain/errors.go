// Package domain define los errores de negocio (sin dependencias externas).
// Cada error lleva un mensaje legible y un Kind estable que la capa HTTP
// traduce a status codes sin inspeccionar el texto.
package domain

import "errors"

// Kind clasifica un error de dominio.
type Kind string

const (
	KindValidation   Kind = "validation"   // entrada malformada o fuera de rango
	KindNotFound     Kind = "not_found"    // el id referenciado no existe
	KindConflict     Kind = "conflict"     // unicidad o guarda de estado violada
	KindForbidden    Kind = "forbidden"    // rechazo del gate de autorización
	KindUnauthorized Kind = "unauthorized" // credenciales o token inválidos
	KindInternal     Kind = "internal"     // fallo opaco de un colaborador
)

// Error error de dominio con mensaje y clasificación.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// NewValidation construye un error de validación de entrada.
func NewValidation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }

// NewNotFound construye un error de recurso no encontrado.
func NewNotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }

// NewConflict construye un error de conflicto (duplicados, guardas de borrado).
func NewConflict(msg string) *Error { return &Error{Kind: KindConflict, Message: msg} }

// NewForbidden construye un error de autorización denegada.
func NewForbidden(msg string) *Error { return &Error{Kind: KindForbidden, Message: msg} }

// NewUnauthorized construye un error de autenticación fallida.
func NewUnauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Message: msg} }

// NewInternal construye un error interno opaco. El detalle del colaborador
// no viaja al cliente; queda en los logs.
func NewInternal(msg string) *Error { return &Error{Kind: KindInternal, Message: msg} }

// KindOf devuelve el Kind de err, o KindInternal si no es un *Error de dominio.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// IsKind reporta si err es un error de dominio del Kind dado.
func IsKind(err error, k Kind) bool {
	return KindOf(err) == k
}
