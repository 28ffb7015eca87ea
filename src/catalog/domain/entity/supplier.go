package entity

// Supplier representa un proveedor. Phone es opcional (puede ser null).
type Supplier struct {
	SupplierID string  `json:"supplier_id"`
	Name       string  `json:"name"`
	CNPJ       string  `json:"cnpj"`
	Phone      *string `json:"phone"`
}

// NewSupplier valida los datos de un proveedor nuevo.
// El CNPJ es de largo fijo: 14 dígitos.
func NewSupplier(name, cnpj string, phone *string) (*Supplier, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if len(cnpj) != 14 {
		return nil, ErrInvalidCNPJ
	}
	return &Supplier{Name: name, CNPJ: cnpj, Phone: phone}, nil
}

// Category representa una categoría de producto.
type Category struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}
