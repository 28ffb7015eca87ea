package usecase

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSales_EnrichesWithCustomerNames(t *testing.T) {
	c := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/Sales":
			w.Write([]byte(`[
				{"sale_id":"s1","sale_date":"2024-03-01","customer_id":"c1"},
				{"sale_id":"s2","sale_date":"2024-03-02","customer_id":"c-gone"}
			]`))
		case "/ItemSales":
			w.Write([]byte(`[
				{"item_sale_id":"i1","sale_id":"s1","product_id":"p1","quantity":2}
			]`))
		case "/Products":
			w.Write([]byte(`[
				{"product_id":"p1","name":"Tenis Runner","stock":10,"sale_price":"49.90"}
			]`))
		case "/Customers":
			w.Write([]byte(`[
				{"customer_id":"c1","name":"Maria"}
			]`))
		default:
			http.NotFound(w, r)
		}
	})

	uc := NewListSalesUseCase(c)
	result, err := uc.Execute()
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "s1", result[0].SaleID)
	assert.Equal(t, "Maria", result[0].CustomerName)
	assert.Equal(t, []string{"Tenis Runner (x2)"}, result[0].PurchasedItems)
	assert.True(t, result[0].Total.Equal(decimal.RequireFromString("99.80")))

	// Cliente borrado: la venta sigue visible con nombre placeholder.
	assert.Equal(t, "Unknown", result[1].CustomerName)
	assert.Empty(t, result[1].PurchasedItems)
	assert.True(t, result[1].Total.IsZero())
}

func TestListSales_FetchFailurePropagates(t *testing.T) {
	c := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ItemSales" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`[]`))
	})

	uc := NewListSalesUseCase(c)
	_, err := uc.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error fetching sales snapshots")
}

func TestListSales_EmptyBackend(t *testing.T) {
	c := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	uc := NewListSalesUseCase(c)
	result, err := uc.Execute()
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}
