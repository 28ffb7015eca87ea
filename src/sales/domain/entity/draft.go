package entity

import (
	"time"

	"github.com/google/uuid"
)

// DraftLineItem es un item (producto, cantidad) dentro de un borrador.
// Solo existe mientras el borrador está en curso.
type DraftLineItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// DraftSelection es el estado del input "producto/cantidad actual":
// lo que el usuario eligió pero todavía no agregó a la lista.
// El default es selección vacía con cantidad 1.
type DraftSelection struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderDraft es el borrador editable de una venta pendiente (Aggregate Root).
// Se crea vacío, se muta con las acciones del usuario y se destruye
// (reset a vacío) al enviarse con éxito o al cancelarse.
type OrderDraft struct {
	ID              string          `json:"draft_id"`
	CustomerID      string          `json:"customer_id"`
	PaymentMethodID string          `json:"payment_method_id"`
	Items           []DraftLineItem `json:"items"`
	Selection       DraftSelection  `json:"selection"`
	CreatedAt       time.Time       `json:"created_at"`
}

// NewOrderDraft crea un borrador vacío con id propio del gateway.
func NewOrderDraft() *OrderDraft {
	return &OrderDraft{
		ID:        uuid.New().String(),
		Items:     []DraftLineItem{},
		Selection: DraftSelection{Quantity: 1},
		CreatedAt: time.Now(),
	}
}

// SetCustomer reemplaza el cliente del borrador. Sin validación al setear.
func (d *OrderDraft) SetCustomer(customerID string) {
	d.CustomerID = customerID
}

// SetPaymentMethod reemplaza el método de pago del borrador.
func (d *OrderDraft) SetPaymentMethod(methodID string) {
	d.PaymentMethodID = methodID
}

// Select actualiza el input de selección actual sin tocar la lista de items.
func (d *OrderDraft) Select(productID string, quantity int) {
	d.Selection = DraftSelection{ProductID: productID, Quantity: quantity}
}

// AddItem valida el item contra el snapshot vigente de productos y lo
// agrega al FINAL de la lista. Un producto agregado dos veces genera dos
// entradas separadas, no se mergean. El stock local NO se descuenta:
// el ajuste autoritativo ocurre en el backend después del envío.
// Efecto colateral: la selección actual vuelve a su default.
func (d *OrderDraft) AddItem(products []Product, productID string, quantity int) error {
	if productID == "" {
		return ErrProductIDRequired
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	var product *Product
	for i := range products {
		if products[i].ProductID == productID {
			product = &products[i]
			break
		}
	}
	if product == nil {
		return ErrProductNotFound
	}
	if quantity > product.Stock {
		return ErrInsufficientStock
	}

	d.Items = append(d.Items, DraftLineItem{ProductID: productID, Quantity: quantity})
	d.Selection = DraftSelection{Quantity: 1}
	return nil
}

// RemoveItem quita el item en la posición dada.
// Índice fuera de rango es un no-op silencioso.
func (d *OrderDraft) RemoveItem(index int) {
	if index < 0 || index >= len(d.Items) {
		return
	}
	d.Items = append(d.Items[:index], d.Items[index+1:]...)
}

// Validate verifica que el borrador esté completo para enviarse.
// Devuelve *DraftValidationError con TODOS los campos faltantes.
func (d *OrderDraft) Validate() error {
	var missing []string
	if d.CustomerID == "" {
		missing = append(missing, "customer_id")
	}
	if len(d.Items) == 0 {
		missing = append(missing, "items")
	}
	if d.PaymentMethodID == "" {
		missing = append(missing, "payment_method_id")
	}
	if len(missing) == 0 {
		return nil
	}

	verr := &DraftValidationError{MissingFields: missing}
	// Salvaguarda de UX: el usuario eligió un producto pero nunca
	// lo agregó a la lista de items.
	if len(d.Items) == 0 && d.Selection.ProductID != "" {
		verr.Warning = "a product is selected but was never added to the item list"
	}
	return verr
}

// Reset vuelve el borrador a su estado inicial vacío conservando el id.
func (d *OrderDraft) Reset() {
	d.CustomerID = ""
	d.PaymentMethodID = ""
	d.Items = []DraftLineItem{}
	d.Selection = DraftSelection{Quantity: 1}
}

// TotalItems retorna el número de items del borrador.
func (d *OrderDraft) TotalItems() int {
	return len(d.Items)
}
