package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Diamondarms/loja-sapatos-gateway/src/catalog/domain/entity"
	"github.com/Diamondarms/loja-sapatos-gateway/src/shared/infrastructure/config"
	"github.com/Diamondarms/loja-sapatos-gateway/src/shared/infrastructure/metrics"
	"github.com/shopspring/decimal"
)

// CreateProductPayload es el cuerpo de POST /Products: la entidad sin su id.
type CreateProductPayload struct {
	Name          string          `json:"name"`
	CategoryID    string          `json:"category_id"`
	Size          string          `json:"size"`
	Stock         int             `json:"stock"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SupplierID    string          `json:"supplier_id"`
}

// CreateSupplierPayload es el cuerpo de POST /Suppliers.
type CreateSupplierPayload struct {
	Name  string  `json:"name"`
	CNPJ  string  `json:"cnpj"`
	Phone *string `json:"phone"`
}

// CatalogClient cliente HTTP para productos, proveedores y categorías.
type CatalogClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewCatalogClient crea una nueva instancia del cliente.
func NewCatalogClient() *CatalogClient {
	return &CatalogClient{
		httpClient: &http.Client{
			Timeout: config.BackendTimeout(),
		},
		baseURL: config.BackendBaseURL(),
	}
}

// GetProducts obtiene todos los productos.
func (c *CatalogClient) GetProducts() ([]entity.Product, error) {
	var products []entity.Product
	err := c.getJSON("/Products", &products)
	metrics.ObserveBackend("products", err)
	if err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct crea un producto (el backend asigna el id).
func (c *CatalogClient) CreateProduct(product *entity.Product) error {
	payload := CreateProductPayload{
		Name:          product.Name,
		CategoryID:    product.CategoryID,
		Size:          product.Size,
		Stock:         product.Stock,
		SalePrice:     product.SalePrice,
		PurchasePrice: product.PurchasePrice,
		SupplierID:    product.SupplierID,
	}
	err := c.send(http.MethodPost, "/Products", payload)
	metrics.ObserveBackend("products_create", err)
	return err
}

// UpdateProductStock sobreescribe el stock vía PATCH /Products/:id.
func (c *CatalogClient) UpdateProductStock(productID string, quantity int) error {
	err := c.send(http.MethodPatch, fmt.Sprintf("/Products/%s", productID), map[string]int{"quantity": quantity})
	metrics.ObserveBackend("products_update_stock", err)
	return err
}

// DeleteProduct elimina un producto por id.
func (c *CatalogClient) DeleteProduct(productID string) error {
	err := c.send(http.MethodDelete, fmt.Sprintf("/Products/%s", productID), nil)
	metrics.ObserveBackend("products_delete", err)
	return err
}

// GetSuppliers obtiene todos los proveedores.
func (c *CatalogClient) GetSuppliers() ([]entity.Supplier, error) {
	var suppliers []entity.Supplier
	err := c.getJSON("/Suppliers", &suppliers)
	metrics.ObserveBackend("suppliers", err)
	if err != nil {
		return nil, err
	}
	return suppliers, nil
}

// CreateSupplier crea un proveedor.
func (c *CatalogClient) CreateSupplier(supplier *entity.Supplier) error {
	payload := CreateSupplierPayload{
		Name:  supplier.Name,
		CNPJ:  supplier.CNPJ,
		Phone: supplier.Phone,
	}
	err := c.send(http.MethodPost, "/Suppliers", payload)
	metrics.ObserveBackend("suppliers_create", err)
	return err
}

// DeleteSupplier elimina un proveedor por id.
func (c *CatalogClient) DeleteSupplier(supplierID string) error {
	err := c.send(http.MethodDelete, fmt.Sprintf("/Suppliers/%s", supplierID), nil)
	metrics.ObserveBackend("suppliers_delete", err)
	return err
}

// GetCategories obtiene todas las categorías.
func (c *CatalogClient) GetCategories() ([]entity.Category, error) {
	var categories []entity.Category
	err := c.getJSON("/Categories", &categories)
	metrics.ObserveBackend("categories", err)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory crea una categoría.
func (c *CatalogClient) CreateCategory(name string) error {
	err := c.send(http.MethodPost, "/Categories", map[string]string{"name": name})
	metrics.ObserveBackend("categories_create", err)
	return err
}

// DeleteCategory elimina una categoría por id.
func (c *CatalogClient) DeleteCategory(categoryID string) error {
	err := c.send(http.MethodDelete, fmt.Sprintf("/Categories/%s", categoryID), nil)
	metrics.ObserveBackend("categories_delete", err)
	return err
}

// getJSON ejecuta un GET y decodifica el body; body vacío = nulo exitoso.
func (c *CatalogClient) getJSON(path string, out interface{}) error {
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
func (c *CatalogClient) send(method, path string, payload interface{}) error {
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
