package request

// CreateCustomerRequest alta de cliente desde el front.
type CreateCustomerRequest struct {
	Name  string  `json:"name"`
	CPF   string  `json:"cpf"`
	Phone *string `json:"phone"`
	CEP   string  `json:"cep"`
}

// UpdatePhoneRequest sobreescritura del teléfono de un cliente.
type UpdatePhoneRequest struct {
	NewPhone string `json:"new_phone"`
}
