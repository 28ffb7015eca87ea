package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/application/request"
	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/domain/entity"
	"github.com/Diamondarms/loja-sapatos-gateway/src/shared/infrastructure/config"
	"github.com/Diamondarms/loja-sapatos-gateway/src/shared/infrastructure/metrics"
)

// SalesClient cliente HTTP para las colecciones de ventas del backend.
// Convención de respuesta del backend: un body vacío es un resultado
// nulo exitoso (por ejemplo 204 No Content); un status no-2xx siempre
// es un fallo y el body acompaña como detalle de diagnóstico.
type SalesClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewSalesClient crea una nueva instancia del cliente.
func NewSalesClient() *SalesClient {
	return &SalesClient{
		httpClient: &http.Client{
			Timeout: config.BackendTimeout(),
		},
		baseURL: config.BackendBaseURL(),
	}
}

// GetSales obtiene el snapshot completo de ventas.
func (c *SalesClient) GetSales() ([]entity.Sale, error) {
	var sales []entity.Sale
	err := c.getJSON("/Sales", &sales)
	metrics.ObserveBackend("sales", err)
	if err != nil {
		return nil, err
	}
	return sales, nil
}

// GetItemSales obtiene el snapshot completo de items de venta.
func (c *SalesClient) GetItemSales() ([]entity.SaleLineItem, error) {
	var items []entity.SaleLineItem
	err := c.getJSON("/ItemSales", &items)
	metrics.ObserveBackend("item_sales", err)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetProducts obtiene el snapshot de productos (stock y precio vigentes).
func (c *SalesClient) GetProducts() ([]entity.Product, error) {
	var products []entity.Product
	err := c.getJSON("/Products", &products)
	metrics.ObserveBackend("products", err)
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetCustomers obtiene el snapshot de clientes.
func (c *SalesClient) GetCustomers() ([]entity.Customer, error) {
	var customers []entity.Customer
	err := c.getJSON("/Customers", &customers)
	metrics.ObserveBackend("customers", err)
	if err != nil {
		return nil, err
	}
	return customers, nil
}

// GetMethods obtiene el snapshot de métodos de pago.
func (c *SalesClient) GetMethods() ([]entity.PaymentMethod, error) {
	var methods []entity.PaymentMethod
	err := c.getJSON("/Methods", &methods)
	metrics.ObserveBackend("methods", err)
	if err != nil {
		return nil, err
	}
	return methods, nil
}

// CreateSale envía el payload de creación a POST /Sales. El backend crea
// la venta y sus items de forma atómica; el body de respuesta se ignora
// más allá del éxito/fracaso.
func (c *SalesClient) CreateSale(payload *request.SalePayload) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error marshalling sale payload: %w", err)
	}

	url := fmt.Sprintf("%s/Sales", c.baseURL)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	metrics.ObserveBackend("sales_create", err)
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

// CreateMethod crea un método de pago (el backend asigna el id).
func (c *SalesClient) CreateMethod(name string) error {
	jsonData, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return fmt.Errorf("error marshalling method payload: %w", err)
	}

	url := fmt.Sprintf("%s/Methods", c.baseURL)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	metrics.ObserveBackend("methods_create", err)
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

// DeleteMethod elimina un método de pago por id.
func (c *SalesClient) DeleteMethod(methodID string) error {
	url := fmt.Sprintf("%s/Methods/%s", c.baseURL, methodID)

	req, err := http.NewRequest(http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	metrics.ObserveBackend("methods_delete", err)
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

// getJSON ejecuta un GET contra el backend y decodifica el body en out.
// Un body vacío se trata como resultado nulo exitoso (out queda en cero),
// para distinguir "éxito sin contenido" de un fallo de parseo.
func (c *SalesClient) getJSON(path string, out interface{}) error {
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
