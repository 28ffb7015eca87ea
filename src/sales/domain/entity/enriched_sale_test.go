package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEnrichSales_TotalAndDescriptions(t *testing.T) {
	sales := []Sale{
		{SaleID: "s1", SaleDate: "2024-03-01T10:00:00Z", CustomerID: "c1"},
	}
	itemSales := []SaleLineItem{
		{ItemSaleID: "i1", SaleID: "s1", ProductID: "pA", Quantity: 2},
		{ItemSaleID: "i2", SaleID: "s1", ProductID: "pB", Quantity: 1},
	}
	products := []Product{
		{ProductID: "pA", Name: "Tenis Runner", Stock: 10, SalePrice: price("10.00")},
		{ProductID: "pB", Name: "Sandalia Verano", Stock: 4, SalePrice: price("5.00")},
	}

	enriched := EnrichSales(sales, itemSales, products)
	require.Len(t, enriched, 1)

	assert.True(t, enriched[0].Total.Equal(price("25.00")), "total = %s", enriched[0].Total)
	assert.Equal(t, []string{"Tenis Runner (x2)", "Sandalia Verano (x1)"}, enriched[0].PurchasedItems)
}

func TestEnrichSales_PureAndIdempotent(t *testing.T) {
	sales := []Sale{
		{SaleID: "s1", CustomerID: "c1"},
		{SaleID: "s2", CustomerID: "c2"},
		{SaleID: "s3", CustomerID: "c1"},
	}
	itemSales := []SaleLineItem{
		{ItemSaleID: "i1", SaleID: "s2", ProductID: "pA", Quantity: 1},
		{ItemSaleID: "i2", SaleID: "s1", ProductID: "pA", Quantity: 3},
		{ItemSaleID: "i3", SaleID: "s2", ProductID: "pB", Quantity: 2},
	}
	products := []Product{
		{ProductID: "pA", Name: "Bota Cuero", SalePrice: price("99.90")},
		{ProductID: "pB", Name: "Zapatilla Lona", SalePrice: price("35.50")},
	}

	first := EnrichSales(sales, itemSales, products)
	second := EnrichSales(sales, itemSales, products)

	// Una salida por venta de entrada, en el mismo orden.
	require.Len(t, first, len(sales))
	assert.Equal(t, "s1", first[0].SaleID)
	assert.Equal(t, "s2", first[1].SaleID)
	assert.Equal(t, "s3", first[2].SaleID)

	// Dos corridas sobre los mismos snapshots dan salida idéntica.
	assert.Equal(t, first, second)

	// Las colecciones de entrada no se mutan.
	assert.Equal(t, "s1", sales[0].SaleID)
	require.Len(t, itemSales, 3)
	assert.Equal(t, "i1", itemSales[0].ItemSaleID)
}

func TestEnrichSales_ReferentialGap(t *testing.T) {
	sales := []Sale{{SaleID: "s1", CustomerID: "c1"}}
	itemSales := []SaleLineItem{
		{ItemSaleID: "i1", SaleID: "s1", ProductID: "p-deleted", Quantity: 2},
		{ItemSaleID: "i2", SaleID: "s1", ProductID: "pA", Quantity: 1},
	}
	products := []Product{
		{ProductID: "pA", Name: "Mocasin", SalePrice: price("80.00")},
	}

	enriched := EnrichSales(sales, itemSales, products)
	require.Len(t, enriched, 1)

	// El producto borrado aporta cero al total pero la fila sigue visible.
	assert.True(t, enriched[0].Total.Equal(price("80.00")))
	require.Len(t, enriched[0].PurchasedItems, 2)
	assert.Equal(t, "Unknown product (ID: p-deleted) (x2)", enriched[0].PurchasedItems[0])
	assert.Equal(t, "Mocasin (x1)", enriched[0].PurchasedItems[1])
}

func TestEnrichSales_SaleWithoutItems(t *testing.T) {
	sales := []Sale{{SaleID: "s1", CustomerID: "c1"}}

	enriched := EnrichSales(sales, nil, nil)
	require.Len(t, enriched, 1)

	assert.True(t, enriched[0].Total.IsZero())
	assert.NotNil(t, enriched[0].PurchasedItems)
	assert.Empty(t, enriched[0].PurchasedItems)
}

func TestEnrichSales_EmptyInput(t *testing.T) {
	enriched := EnrichSales(nil, nil, nil)
	assert.NotNil(t, enriched)
	assert.Empty(t, enriched)
}
