package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Diamondarms/loja-sapatos-gateway/src/customers/domain/entity"
	"github.com/Diamondarms/loja-sapatos-gateway/src/shared/infrastructure/config"
	"github.com/Diamondarms/loja-sapatos-gateway/src/shared/infrastructure/metrics"
)

// CreateCustomerPayload es el cuerpo de POST /Customers: la entidad sin su id.
type CreateCustomerPayload struct {
	Name  string  `json:"name"`
	CPF   string  `json:"cpf"`
	Phone *string `json:"phone"`
	CEP   string  `json:"cep"`
}

// CustomerClient cliente HTTP para la colección de clientes del backend.
type CustomerClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewCustomerClient crea una nueva instancia del cliente.
func NewCustomerClient() *CustomerClient {
	return &CustomerClient{
		httpClient: &http.Client{
			Timeout: config.BackendTimeout(),
		},
		baseURL: config.BackendBaseURL(),
	}
}

// GetCustomers obtiene todos los clientes.
func (c *CustomerClient) GetCustomers() ([]entity.Customer, error) {
	var customers []entity.Customer
	err := c.getJSON("/Customers", &customers)
	metrics.ObserveBackend("customers", err)
	if err != nil {
		return nil, err
	}
	return customers, nil
}

// CreateCustomer crea un cliente (el backend asigna el id).
func (c *CustomerClient) CreateCustomer(customer *entity.Customer) error {
	payload := CreateCustomerPayload{
		Name:  customer.Name,
		CPF:   customer.CPF,
		Phone: customer.Phone,
		CEP:   customer.CEP,
	}
	err := c.send(http.MethodPost, "/Customers", payload)
	metrics.ObserveBackend("customers_create", err)
	return err
}

// UpdateCustomerPhone sobreescribe el teléfono vía PATCH /Customers/:id.
func (c *CustomerClient) UpdateCustomerPhone(customerID, newPhone string) error {
	err := c.send(http.MethodPatch, fmt.Sprintf("/Customers/%s", customerID), map[string]string{"new_phone": newPhone})
	metrics.ObserveBackend("customers_update_phone", err)
	return err
}

// DeleteCustomer elimina un cliente por id.
func (c *CustomerClient) DeleteCustomer(customerID string) error {
	err := c.send(http.MethodDelete, fmt.Sprintf("/Customers/%s", customerID), nil)
	metrics.ObserveBackend("customers_delete", err)
	return err
}

// getJSON ejecuta un GET y decodifica el body; body vacío = nulo exitoso.
func (c *CustomerClient) getJSON(path string, out interface{}) error {
	url := fmt.Sprintf("%s%s", c.baseURL, path)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling backend: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("backend returned status %d: %s", resp.StatusCode, string(body))
	}

	if len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("error unmarshalling response: %w", err)
	}

	return nil
}

// send ejecuta un POST/PATCH/DELETE ignorando el body de respuesta más
// allá del éxito/fracaso.
func (c *CustomerClient) send(method, path string, payload interface{}) error {
	var reqBody io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("error marshalling request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	url := fmt.Sprintf("%s%s", c.baseURL, path)

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling backend: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("backend returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
