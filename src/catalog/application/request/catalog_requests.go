package request

import "github.com/shopspring/decimal"

// CreateProductRequest alta de producto desde el front.
type CreateProductRequest struct {
	Name          string          `json:"name"`
	CategoryID    string          `json:"category_id"`
	Size          string          `json:"size"`
	Stock         int             `json:"stock"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SupplierID    string          `json:"supplier_id"`
}

// UpdateStockRequest sobreescritura de stock.
type UpdateStockRequest struct {
	Quantity int `json:"quantity"`
}

// CreateSupplierRequest alta de proveedor.
type CreateSupplierRequest struct {
	Name  string  `json:"name"`
	CNPJ  string  `json:"cnpj"`
	Phone *string `json:"phone"`
}

// CreateCategoryRequest alta de categoría.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}
