package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Keoroanthony/go-crm/internal/validation"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestValidateCustomer_Valid(t *testing.T) {
	engine := validation.New()

	cases := []struct {
		name  string
		phone *string
	}{
		{"no phone", nil},
		{"empty phone", strPtr("")},
		{"international", strPtr("+254712345678")},
		{"dashed", strPtr("123-456-7890")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NoError(t, engine.ValidateCustomer("Alice", "alice@example.com", tc.phone))
		})
	}
}

func TestValidateCustomer_InvalidEmail(t *testing.T) {
	engine := validation.New()

	err := engine.ValidateCustomer("Alice", "not-an-email", nil)
	require.Error(t, err)

	var fe validation.FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, []string{validation.MsgInvalidEmail}, fe["email"])
	assert.NotContains(t, fe, "phone")
}

func TestValidateCustomer_InvalidPhone(t *testing.T) {
	engine := validation.New()

	for _, phone := range []string{"12345", "+123", "123-4567-890", "(123) 456-7890", "+1234567890123456"} {
		t.Run(phone, func(t *testing.T) {
			err := engine.ValidateCustomer("Alice", "alice@example.com", strPtr(phone))
			require.Error(t, err)

			var fe validation.FieldErrors
			require.True(t, errors.As(err, &fe))
			assert.NotEmpty(t, fe["phone"])
		})
	}
}

func TestValidateCustomer_CollectsAllFields(t *testing.T) {
	engine := validation.New()

	err := engine.ValidateCustomer("", "bad", strPtr("nope"))
	require.Error(t, err)

	assert.Equal(t,
		"email: Enter a valid email address.; name: This field cannot be blank.; phone: Phone must be in +1234567890 or 123-456-7890 format.",
		err.Error(),
	)
}

func TestValidateCustomer_MaxLength(t *testing.T) {
	engine := validation.New()

	err := engine.ValidateCustomer(strings.Repeat("a", 101), "alice@example.com", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name: Ensure this value has at most 100 characters.")
}

func TestValidateProduct(t *testing.T) {
	engine := validation.New()

	t.Run("defaults stock to zero", func(t *testing.T) {
		stock, err := engine.ValidateProduct("Pen", decimal.RequireFromString("1.50"), nil)
		require.NoError(t, err)
		assert.Equal(t, 0, stock)
	})

	t.Run("keeps given stock", func(t *testing.T) {
		stock, err := engine.ValidateProduct("Pen", decimal.RequireFromString("1.50"), intPtr(7))
		require.NoError(t, err)
		assert.Equal(t, 7, stock)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		for _, p := range []string{"0", "-0.01", "-10"} {
			_, err := engine.ValidateProduct("Pen", decimal.RequireFromString(p), nil)
			require.ErrorIs(t, err, validation.ErrInvalidInput, p)
			assert.Contains(t, err.Error(), validation.MsgPriceNotPositive)
		}
	})

	t.Run("rejects sub-cent prices", func(t *testing.T) {
		for _, p := range []string{"0.004", "1.999"} {
			_, err := engine.ValidateProduct("Pen", decimal.RequireFromString(p), nil)
			require.ErrorIs(t, err, validation.ErrInvalidInput, p)
			assert.Contains(t, err.Error(), validation.MsgPricePrecision)
		}
	})

	t.Run("accepts trailing zeros beyond cents", func(t *testing.T) {
		_, err := engine.ValidateProduct("Pen", decimal.RequireFromString("1.500"), nil)
		assert.NoError(t, err)
	})

	t.Run("rejects prices the column cannot hold", func(t *testing.T) {
		_, err := engine.ValidateProduct("Pen", decimal.RequireFromString("100000000"), nil)
		require.ErrorIs(t, err, validation.ErrInvalidInput)
		assert.Contains(t, err.Error(), validation.MsgPriceTooLarge)

		_, err = engine.ValidateProduct("Pen", decimal.RequireFromString("99999999.99"), nil)
		assert.NoError(t, err)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		_, err := engine.ValidateProduct("Pen", decimal.RequireFromString("1"), intPtr(-1))
		require.ErrorIs(t, err, validation.ErrInvalidInput)
		assert.Contains(t, err.Error(), validation.MsgNegativeStock)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := engine.ValidateProduct("  ", decimal.RequireFromString("1"), nil)
		require.ErrorIs(t, err, validation.ErrInvalidInput)
	})
}
