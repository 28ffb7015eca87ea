package entity

import "github.com/shopspring/decimal"

// Sale representa una venta tal como la devuelve el backend.
// Snapshot de solo lectura, el backend es el dueño del dato.
type Sale struct {
	SaleID     string `json:"sale_id"`
	SaleDate   string `json:"sale_date"`
	CustomerID string `json:"customer_id"`
}

// SaleLineItem representa una fila de ItemSales (FK hacia Sale y Product).
// Muchos line items referencian una misma venta.
type SaleLineItem struct {
	ItemSaleID string `json:"item_sale_id"`
	SaleID     string `json:"sale_id"`
	ProductID  string `json:"product_id"`
	Quantity   int    `json:"quantity"`
}

// Product es el snapshot mínimo que necesita el módulo de ventas:
// stock vigente al momento del fetch y precio de venta.
type Product struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Stock     int             `json:"stock"`
	SalePrice decimal.Decimal `json:"sale_price"`
}

// Customer snapshot de solo lectura (para mostrar el nombre en el listado).
type Customer struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
}

// PaymentMethod snapshot de solo lectura.
type PaymentMethod struct {
	MethodID string `json:"method_id"`
	Name     string `json:"name"`
}
