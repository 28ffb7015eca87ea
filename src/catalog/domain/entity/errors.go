package entity

import "errors"

var (
	ErrNameRequired     = errors.New("name is required")
	ErrCategoryRequired = errors.New("category_id is required")
	ErrSupplierRequired = errors.New("supplier_id is required")
	ErrInvalidStock     = errors.New("stock must be greater than or equal to 0")
	ErrInvalidPrice     = errors.New("price must be greater than or equal to 0")
	ErrInvalidCNPJ      = errors.New("cnpj must have 14 digits")
)
