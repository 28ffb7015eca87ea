package usecase

import (
	"fmt"
	"sort"

	"github.com/Diamondarms/loja-sapatos-gateway/src/customers/application/request"
	"github.com/Diamondarms/loja-sapatos-gateway/src/customers/domain/entity"
	"github.com/Diamondarms/loja-sapatos-gateway/src/customers/infrastructure/client"
)

// ListCustomersUseCase lista clientes ordenados por id.
type ListCustomersUseCase struct {
	customerClient *client.CustomerClient
}

func NewListCustomersUseCase(customerClient *client.CustomerClient) *ListCustomersUseCase {
	return &ListCustomersUseCase{customerClient: customerClient}
}

func (uc *ListCustomersUseCase) Execute() ([]entity.Customer, error) {
	customers, err := uc.customerClient.GetCustomers()
	if err != nil {
		return nil, fmt.Errorf("error fetching customers: %w", err)
	}
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].CustomerID < customers[j].CustomerID
	})
	return customers, nil
}

// CreateCustomerUseCase valida (CPF de 11 dígitos, CEP obligatorio)
// y crea un cliente.
type CreateCustomerUseCase struct {
	customerClient *client.CustomerClient
}

func NewCreateCustomerUseCase(customerClient *client.CustomerClient) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{customerClient: customerClient}
}

func (uc *CreateCustomerUseCase) Execute(req *request.CreateCustomerRequest) error {
	customer, err := entity.NewCustomer(req.Name, req.CPF, req.Phone, req.CEP)
	if err != nil {
		return err
	}
	if err := uc.customerClient.CreateCustomer(customer); err != nil {
		return fmt.Errorf("error creating customer: %w", err)
	}
	return nil
}

// UpdatePhoneUseCase sobreescribe el teléfono de un cliente.
type UpdatePhoneUseCase struct {
	customerClient *client.CustomerClient
}

func NewUpdatePhoneUseCase(customerClient *client.CustomerClient) *UpdatePhoneUseCase {
	return &UpdatePhoneUseCase{customerClient: customerClient}
}

func (uc *UpdatePhoneUseCase) Execute(customerID, newPhone string) error {
	if err := uc.customerClient.UpdateCustomerPhone(customerID, newPhone); err != nil {
		return fmt.Errorf("error updating phone: %w", err)
	}
	return nil
}

// DeleteCustomerUseCase elimina un cliente.
type DeleteCustomerUseCase struct {
	customerClient *client.CustomerClient
}

func NewDeleteCustomerUseCase(customerClient *client.CustomerClient) *DeleteCustomerUseCase {
	return &DeleteCustomerUseCase{customerClient: customerClient}
}

func (uc *DeleteCustomerUseCase) Execute(customerID string) error {
	if err := uc.customerClient.DeleteCustomer(customerID); err != nil {
		return fmt.Errorf("error deleting customer: %w", err)
	}
	return nil
}
