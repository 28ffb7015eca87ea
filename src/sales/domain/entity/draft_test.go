package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot() []Product {
	return []Product{
		{ProductID: "p1", Name: "Shoe", Stock: 5, SalePrice: decimal.RequireFromString("50.0")},
		{ProductID: "p2", Name: "Boot", Stock: 0, SalePrice: decimal.RequireFromString("120.0")},
	}
}

func TestNewOrderDraft_StartsEmpty(t *testing.T) {
	draft := NewOrderDraft()

	assert.NotEmpty(t, draft.ID)
	assert.Empty(t, draft.CustomerID)
	assert.Empty(t, draft.PaymentMethodID)
	assert.Empty(t, draft.Items)
	assert.Equal(t, DraftSelection{Quantity: 1}, draft.Selection)
}

func TestAddItem_Validations(t *testing.T) {
	products := snapshot()

	tests := []struct {
		name      string
		productID string
		quantity  int
		wantErr   error
	}{
		{"producto vacío", "", 1, ErrProductIDRequired},
		{"cantidad cero", "p1", 0, ErrInvalidQuantity},
		{"cantidad negativa", "p1", -2, ErrInvalidQuantity},
		{"producto inexistente", "p9", 1, ErrProductNotFound},
		{"stock insuficiente", "p1", 6, ErrInsufficientStock},
		{"sin stock", "p2", 1, ErrInsufficientStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := NewOrderDraft()
			err := draft.AddItem(products, tt.productID, tt.quantity)
			require.ErrorIs(t, err, tt.wantErr)
			// Un rechazo deja el borrador sin tocar.
			assert.Empty(t, draft.Items)
		})
	}
}

func TestAddItem_StockGuardBoundary(t *testing.T) {
	draft := NewOrderDraft()

	// quantity == stock pasa; quantity > stock no.
	require.NoError(t, draft.AddItem(snapshot(), "p1", 5))
	require.ErrorIs(t, draft.AddItem(snapshot(), "p1", 6), ErrInsufficientStock)
	assert.Len(t, draft.Items, 1)
}

func TestAddItem_DoesNotDecrementLocalStock(t *testing.T) {
	// El stock local no se descuenta: dos agregados de 3 contra stock 5
	// validan ambos contra el snapshot original y quedan como dos
	// entradas separadas (sin merge).
	draft := NewOrderDraft()
	products := snapshot()

	require.NoError(t, draft.AddItem(products, "p1", 3))
	require.NoError(t, draft.AddItem(products, "p1", 3))

	require.Len(t, draft.Items, 2)
	assert.Equal(t, DraftLineItem{ProductID: "p1", Quantity: 3}, draft.Items[0])
	assert.Equal(t, DraftLineItem{ProductID: "p1", Quantity: 3}, draft.Items[1])
	assert.Equal(t, 5, products[0].Stock)
}

func TestAddItem_ResetsSelection(t *testing.T) {
	draft := NewOrderDraft()
	draft.Select("p1", 3)

	require.NoError(t, draft.AddItem(snapshot(), "p1", 3))
	assert.Equal(t, DraftSelection{Quantity: 1}, draft.Selection)
}

func TestRemoveItem_OutOfRangeIsNoOp(t *testing.T) {
	draft := NewOrderDraft()
	require.NoError(t, draft.AddItem(snapshot(), "p1", 1))

	draft.RemoveItem(-1)
	draft.RemoveItem(5)
	assert.Len(t, draft.Items, 1)

	draft.RemoveItem(0)
	assert.Empty(t, draft.Items)
}

func TestRemoveItem_KeepsOrder(t *testing.T) {
	draft := NewOrderDraft()
	require.NoError(t, draft.AddItem(snapshot(), "p1", 1))
	require.NoError(t, draft.AddItem(snapshot(), "p1", 2))
	require.NoError(t, draft.AddItem(snapshot(), "p1", 3))

	draft.RemoveItem(1)
	require.Len(t, draft.Items, 2)
	assert.Equal(t, 1, draft.Items[0].Quantity)
	assert.Equal(t, 3, draft.Items[1].Quantity)
}

func TestValidate_ReportsAllMissingFields(t *testing.T) {
	draft := NewOrderDraft()

	err := draft.Validate()
	var verr *DraftValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"customer_id", "items", "payment_method_id"}, verr.MissingFields)
	assert.Empty(t, verr.Warning)
}

func TestValidate_WarnsAboutUnaddedSelection(t *testing.T) {
	draft := NewOrderDraft()
	draft.SetCustomer("c1")
	draft.SetPaymentMethod("m1")
	draft.Select("p1", 2)

	err := draft.Validate()
	var verr *DraftValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"items"}, verr.MissingFields)
	assert.NotEmpty(t, verr.Warning)
}

func TestValidate_CompleteDraftPasses(t *testing.T) {
	draft := NewOrderDraft()
	draft.SetCustomer("c1")
	draft.SetPaymentMethod("m1")
	require.NoError(t, draft.AddItem(snapshot(), "p1", 1))

	assert.NoError(t, draft.Validate())
}

func TestReset_ReturnsToInitialState(t *testing.T) {
	draft := NewOrderDraft()
	draft.SetCustomer("c1")
	draft.SetPaymentMethod("m1")
	draft.Select("p1", 4)
	require.NoError(t, draft.AddItem(snapshot(), "p1", 1))

	id := draft.ID
	draft.Reset()

	assert.Equal(t, id, draft.ID)
	assert.Empty(t, draft.CustomerID)
	assert.Empty(t, draft.PaymentMethodID)
	assert.Empty(t, draft.Items)
	assert.Equal(t, DraftSelection{Quantity: 1}, draft.Selection)
}
