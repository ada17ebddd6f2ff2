package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdgomez/taller-api/internal/application/dto"
	"github.com/jdgomez/taller-api/internal/domain/entity"
)

const testCustomerID = "0f8fad5b-d9cb-4d1c-9c3d-2b0dcd1e33aa"

func validPhoneBody() map[string]any {
	return map[string]any{
		"customerId": testCustomerID,
		"brand":      "Samsung",
		"model":      "Galaxy S23",
		"imei":       "123456789012345",
		"condition":  "good",
		"color":      "Negro",
	}
}

func TestNewCreatePhone_CuerpoValido(t *testing.T) {
	in, err := dto.NewCreatePhone(validPhoneBody())
	require.NoError(t, err)

	assert.Equal(t, testCustomerID, in.CustomerID)
	assert.Equal(t, "123456789012345", in.IMEI)
	assert.Equal(t, entity.ConditionGood, in.Condition)
	assert.Nil(t, in.PurchaseDate)
}

func TestNewCreatePhone_OrdenDeReglas(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(map[string]any)
		want   string
	}{
		{"sin customerId", func(m map[string]any) { delete(m, "customerId") }, "Missing customerId"},
		{"customerId no es UUID", func(m map[string]any) { m["customerId"] = "abc-123" }, "Invalid customerId"},
		{"sin brand", func(m map[string]any) { delete(m, "brand") }, "Missing brand"},
		{"sin model", func(m map[string]any) { delete(m, "model") }, "Missing model"},
		{"sin imei", func(m map[string]any) { delete(m, "imei") }, "Missing imei"},
		{"imei de 14", func(m map[string]any) { m["imei"] = "12345678901234" }, "IMEI must be exactly 15 characters"},
		{"imei de 16", func(m map[string]any) { m["imei"] = "1234567890123456" }, "IMEI must be exactly 15 characters"},
		{"sin condition", func(m map[string]any) { delete(m, "condition") }, "Missing condition"},
		{"condition inválida", func(m map[string]any) { m["condition"] = "broken" }, "Invalid condition"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := validPhoneBody()
			tc.mutate(body)

			_, err := dto.NewCreatePhone(body)
			require.Error(t, err)
			assert.Equal(t, tc.want, err.Error())
		})
	}
}

func TestNewCreatePhone_Fechas(t *testing.T) {
	t.Run("fecha corta", func(t *testing.T) {
		body := validPhoneBody()
		body["purchaseDate"] = "2023-03-15"

		in, err := dto.NewCreatePhone(body)
		require.NoError(t, err)
		require.NotNil(t, in.PurchaseDate)
		assert.Equal(t, time.March, in.PurchaseDate.Month())
	})
	t.Run("fecha RFC3339", func(t *testing.T) {
		body := validPhoneBody()
		body["warrantyExpiry"] = "2025-03-15T00:00:00Z"

		in, err := dto.NewCreatePhone(body)
		require.NoError(t, err)
		require.NotNil(t, in.WarrantyExpiry)
	})
	t.Run("fecha inválida", func(t *testing.T) {
		body := validPhoneBody()
		body["purchaseDate"] = "15/03/2023"

		_, err := dto.NewCreatePhone(body)
		require.Error(t, err)
		assert.Equal(t, "Invalid purchaseDate", err.Error())
	})
}

func TestNewUpdatePhone_IDDebeSerUUID(t *testing.T) {
	_, err := dto.NewUpdatePhone("no-uuid", map[string]any{})
	require.Error(t, err)
	assert.Equal(t, "Invalid id", err.Error())
}

// El imei no es actualizable: aunque venga en el cuerpo se ignora.
func TestNewUpdatePhone_IgnoraIMEI(t *testing.T) {
	in, err := dto.NewUpdatePhone(testCustomerID, map[string]any{
		"imei":  "999888777666555",
		"brand": "Xiaomi",
	})
	require.NoError(t, err)
	require.NotNil(t, in.Brand)
	assert.Equal(t, "Xiaomi", *in.Brand)
}
