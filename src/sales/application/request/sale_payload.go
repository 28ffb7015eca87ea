package request

// SaleItemPayload es un item dentro del payload de creación de venta.
type SaleItemPayload struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// SaleData agrupa los datos de la venta en sí (el backend asigna id y fecha).
type SaleData struct {
	CustomerID string `json:"customer_id"`
}

// SalePayload es el cuerpo exacto que espera POST /Sales del backend.
// El backend crea la venta y sus items de forma atómica desde el punto
// de vista del caller: un solo request, un solo éxito/fracaso.
type SalePayload struct {
	SaleData        SaleData          `json:"saleData"`
	Items           []SaleItemPayload `json:"items"`
	PaymentMethodID string            `json:"payment_method_id"`
}
