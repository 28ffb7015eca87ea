package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct_Valid(t *testing.T) {
	p, err := NewProduct("Tenis Runner", "cat1", "42", 10,
		decimal.RequireFromString("99.90"), decimal.RequireFromString("60.00"), "sup1")

	require.NoError(t, err)
	assert.Equal(t, "Tenis Runner", p.Name)
	assert.Equal(t, 10, p.Stock)
	assert.Empty(t, p.ProductID, "el backend asigna el id")
}

func TestNewProduct_Validations(t *testing.T) {
	sale := decimal.RequireFromString("99.90")
	purchase := decimal.RequireFromString("60.00")

	tests := []struct {
		name       string
		pname      string
		categoryID string
		stock      int
		salePrice  decimal.Decimal
		supplierID string
		wantErr    error
	}{
		{"sin nombre", "", "cat1", 1, sale, "sup1", ErrNameRequired},
		{"sin categoría", "Tenis", "", 1, sale, "sup1", ErrCategoryRequired},
		{"sin proveedor", "Tenis", "cat1", 1, sale, "", ErrSupplierRequired},
		{"stock negativo", "Tenis", "cat1", -1, sale, "sup1", ErrInvalidStock},
		{"precio negativo", "Tenis", "cat1", 1, decimal.RequireFromString("-5"), "sup1", ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProduct(tt.pname, tt.categoryID, "40", tt.stock, tt.salePrice, purchase, tt.supplierID)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewSupplier_CNPJLength(t *testing.T) {
	_, err := NewSupplier("Calzados SA", "12345678000190", nil)
	require.NoError(t, err)

	_, err = NewSupplier("Calzados SA", "123", nil)
	assert.ErrorIs(t, err, ErrInvalidCNPJ)

	_, err = NewSupplier("Calzados SA, demasiado largo", "123456780001900", nil)
	assert.ErrorIs(t, err, ErrInvalidCNPJ)

	_, err = NewSupplier("", "12345678000190", nil)
	assert.ErrorIs(t, err, ErrNameRequired)
}
