package response

import "github.com/shopspring/decimal"

// EnrichedSaleResponse es una venta lista para la tabla del front:
// venta + nombre de cliente + items comprados + total derivado.
type EnrichedSaleResponse struct {
	SaleID         string          `json:"sale_id"`
	SaleDate       string          `json:"sale_date"`
	CustomerID     string          `json:"customer_id"`
	CustomerName   string          `json:"customer_name"`
	PurchasedItems []string        `json:"purchased_items"`
	Total          decimal.Decimal `json:"total"`
}
