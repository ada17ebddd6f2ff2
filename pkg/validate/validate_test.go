package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jdgomez/taller-api/pkg/validate"
)

func TestIsUUID(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"uuid v4 válido", "3f2504e0-4f89-41d3-9a0c-0305e82c3301", true},
		{"uuid v4 en mayúsculas", "3F2504E0-4F89-41D3-9A0C-0305E82C3301", true},
		{"versión distinta de 4", "3f2504e0-4f89-11d3-9a0c-0305e82c3301", false},
		{"variante inválida", "3f2504e0-4f89-41d3-7a0c-0305e82c3301", false},
		{"sin guiones", "3f2504e04f8941d39a0c0305e82c3301", false},
		{"vacío", "", false},
		{"basura", "no-soy-un-uuid", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, validate.IsUUID(tc.in))
		})
	}
}

func TestIsEmail(t *testing.T) {
	assert.True(t, validate.IsEmail("juan.perez@taller.com.co"))
	assert.True(t, validate.IsEmail("admin_1@repairshop.com"))
	assert.False(t, validate.IsEmail("sin-arroba.com"))
	assert.False(t, validate.IsEmail("a@b"))
	assert.False(t, validate.IsEmail("a@b.c"))
	assert.False(t, validate.IsEmail(""))
}

func TestIsPositiveInteger(t *testing.T) {
	assert.True(t, validate.IsPositiveInteger("1"))
	assert.True(t, validate.IsPositiveInteger("42"))
	assert.False(t, validate.IsPositiveInteger("0"))
	assert.False(t, validate.IsPositiveInteger("-3"))
	assert.False(t, validate.IsPositiveInteger("2.5"))
	assert.False(t, validate.IsPositiveInteger("abc"))
	assert.False(t, validate.IsPositiveInteger(""))
}
