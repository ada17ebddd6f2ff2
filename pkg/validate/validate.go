// Package validate contiene validaciones puras de formato usadas por los
// contratos de entrada (DTOs). Nunca tocan almacenamiento ni retornan error:
// solo booleanos.
package validate

import (
	"regexp"
	"strconv"
)

var (
	// UUID v4 canónico: 8-4-4-4-12 hex, nibble de versión 4 y variante 8/9/a/b.
	uuidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

	// Email con parte local ASCII y TLD de al menos 2 letras.
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// IsUUID reporta si s es un UUID v4 con el layout canónico con guiones.
// La comparación de hex es case-insensitive.
func IsUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	return uuidRegex.MatchString(toLowerASCII(s))
}

// IsEmail reporta si s tiene forma local@dominio.tld.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsPositiveInteger reporta si s parsea a un entero mayor que cero.
func IsPositiveInteger(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n > 0
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
