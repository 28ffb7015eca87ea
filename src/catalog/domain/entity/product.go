package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo tal como lo devuelve el
// backend. El backend es el dueño del dato; el gateway solo lo valida
// antes de crear y lo proyecta para el front.
type Product struct {
	ProductID     string          `json:"product_id"`
	Name          string          `json:"name"`
	CategoryID    string          `json:"category_id"`
	Size          string          `json:"size"`
	Stock         int             `json:"stock"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SupplierID    string          `json:"supplier_id"`
}

// NewProduct valida los datos de un producto nuevo.
// Nombre, categoría y proveedor son obligatorios; stock y precios no
// pueden ser negativos.
func NewProduct(name, categoryID, size string, stock int, salePrice, purchasePrice decimal.Decimal, supplierID string) (*Product, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if categoryID == "" {
		return nil, ErrCategoryRequired
	}
	if supplierID == "" {
		return nil, ErrSupplierRequired
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}
	if salePrice.IsNegative() || purchasePrice.IsNegative() {
		return nil, ErrInvalidPrice
	}

	return &Product{
		Name:          name,
		CategoryID:    categoryID,
		Size:          size,
		Stock:         stock,
		SalePrice:     salePrice,
		PurchasePrice: purchasePrice,
		SupplierID:    supplierID,
	}, nil
}
