package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrProductIDRequired = errors.New("product_id is required")
	ErrInvalidQuantity   = errors.New("quantity must be greater than 0")
	ErrProductNotFound   = errors.New("product not found in current snapshot")
	ErrInsufficientStock = errors.New("insufficient stock for product")
	ErrDraftNotFound     = errors.New("draft not found")
)

// DraftValidationError se devuelve cuando un borrador no puede enviarse.
// Lista TODOS los campos obligatorios faltantes, no solo el primero.
type DraftValidationError struct {
	MissingFields []string
	// Warning se llena cuando hay un producto seleccionado que nunca
	// fue agregado a la lista de items (error de UX muy común).
	Warning string
}

func (e *DraftValidationError) Error() string {
	msg := fmt.Sprintf("missing required fields: %s", strings.Join(e.MissingFields, ", "))
	if e.Warning != "" {
		msg += "; " + e.Warning
	}
	return msg
}
