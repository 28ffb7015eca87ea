package entity

import "errors"

var (
	ErrNameRequired = errors.New("name is required")
	ErrCEPRequired  = errors.New("cep is required")
	ErrInvalidCPF   = errors.New("cpf must have 11 digits")
)

// Customer representa un cliente. Phone es opcional (puede ser null).
type Customer struct {
	CustomerID string  `json:"customer_id"`
	Name       string  `json:"name"`
	CPF        string  `json:"cpf"`
	Phone      *string `json:"phone"`
	CEP        string  `json:"cep"`
}

// NewCustomer valida los datos de un cliente nuevo.
// Nombre, CPF y CEP son obligatorios; el CPF es de largo fijo: 11 dígitos.
func NewCustomer(name, cpf string, phone *string, cep string) (*Customer, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if len(cpf) != 11 {
		return nil, ErrInvalidCPF
	}
	if cep == "" {
		return nil, ErrCEPRequired
	}
	return &Customer{Name: name, CPF: cpf, Phone: phone, CEP: cep}, nil
}
