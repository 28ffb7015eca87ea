package response

import "github.com/shopspring/decimal"

// ProductResponse es un producto listo para la tabla del front:
// producto + nombre de proveedor resuelto contra el snapshot de Suppliers.
type ProductResponse struct {
	ProductID     string          `json:"product_id"`
	Name          string          `json:"name"`
	CategoryID    string          `json:"category_id"`
	Size          string          `json:"size"`
	Stock         int             `json:"stock"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SupplierID    string          `json:"supplier_id"`
	SupplierName  string          `json:"supplier_name"`
}
