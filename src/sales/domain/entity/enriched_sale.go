package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// EnrichedSale es una Sale aumentada con el total y las descripciones
// de los items comprados. Derivada, nunca persistida: se recalcula en
// cada lectura a partir de los tres snapshots.
type EnrichedSale struct {
	Sale
	Total          decimal.Decimal `json:"total"`
	PurchasedItems []string        `json:"purchased_items"`
}

// EnrichSales reconstruye, para cada venta, su total y la lista de items
// comprados a partir de tres colecciones planas que el backend devuelve
// sin join relacional. Función pura: no muta las entradas y dos corridas
// sobre los mismos snapshots producen salida idéntica.
//
// El orden de salida preserva el orden de sales; dentro de cada venta se
// preserva el orden de itemSales tal como llegó del backend.
func EnrichSales(sales []Sale, itemSales []SaleLineItem, products []Product) []EnrichedSale {
	productByID := make(map[string]Product, len(products))
	for _, p := range products {
		productByID[p.ProductID] = p
	}

	// Agrupar items por venta en una sola pasada, preservando el orden.
	itemsBySale := make(map[string][]SaleLineItem, len(sales))
	for _, item := range itemSales {
		itemsBySale[item.SaleID] = append(itemsBySale[item.SaleID], item)
	}

	enriched := make([]EnrichedSale, 0, len(sales))
	for _, sale := range sales {
		total := decimal.Zero
		items := itemsBySale[sale.SaleID]
		purchased := make([]string, 0, len(items))

		for _, item := range items {
			product, ok := productByID[item.ProductID]
			if !ok {
				// Hueco referencial: el producto fue borrado después de
				// registrada la venta. La fila sigue visible con un
				// placeholder y aporta cero al total.
				purchased = append(purchased, fmt.Sprintf("Unknown product (ID: %s) (x%d)", item.ProductID, item.Quantity))
				continue
			}
			total = total.Add(product.SalePrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
			purchased = append(purchased, fmt.Sprintf("%s (x%d)", product.Name, item.Quantity))
		}

		enriched = append(enriched, EnrichedSale{
			Sale:           sale,
			Total:          total,
			PurchasedItems: purchased,
		})
	}

	return enriched
}
