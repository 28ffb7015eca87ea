package request

// UpdateDraftRequest actualiza campos sueltos del borrador.
// Los punteros distinguen "no enviado" de "enviado vacío".
type UpdateDraftRequest struct {
	CustomerID       *string `json:"customer_id"`
	PaymentMethodID  *string `json:"payment_method_id"`
	SelectedProduct  *string `json:"selected_product_id"`
	SelectedQuantity *int    `json:"selected_quantity"`
}

// AddItemRequest agrega un item a la lista del borrador.
type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}
