package usecase

import (
	"fmt"
	"sort"

	"github.com/Diamondarms/loja-sapatos-gateway/src/catalog/application/request"
	"github.com/Diamondarms/loja-sapatos-gateway/src/catalog/application/response"
	"github.com/Diamondarms/loja-sapatos-gateway/src/catalog/domain/entity"
	"github.com/Diamondarms/loja-sapatos-gateway/src/catalog/infrastructure/client"
	"golang.org/x/sync/errgroup"
)

// ListProductsUseCase lista productos ordenados por id, con el nombre
// del proveedor resuelto y filtro opcional por proveedor.
type ListProductsUseCase struct {
	catalogClient *client.CatalogClient
}

func NewListProductsUseCase(catalogClient *client.CatalogClient) *ListProductsUseCase {
	return &ListProductsUseCase{catalogClient: catalogClient}
}

// Execute trae productos y proveedores en paralelo y proyecta la vista.
// supplierID vacío significa sin filtro.
func (uc *ListProductsUseCase) Execute(supplierID string) ([]response.ProductResponse, error) {
	var (
		products  []entity.Product
		suppliers []entity.Supplier
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		products, err = uc.catalogClient.GetProducts()
		return err
	})
	g.Go(func() error {
		var err error
		suppliers, err = uc.catalogClient.GetSuppliers()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error fetching catalog snapshots: %w", err)
	}

	supplierName := make(map[string]string, len(suppliers))
	for _, s := range suppliers {
		supplierName[s.SupplierID] = s.Name
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].ProductID < products[j].ProductID
	})

	result := make([]response.ProductResponse, 0, len(products))
	for _, p := range products {
		if supplierID != "" && p.SupplierID != supplierID {
			continue
		}
		name, ok := supplierName[p.SupplierID]
		if !ok {
			name = "Unknown"
		}
		result = append(result, response.ProductResponse{
			ProductID:     p.ProductID,
			Name:          p.Name,
			CategoryID:    p.CategoryID,
			Size:          p.Size,
			Stock:         p.Stock,
			SalePrice:     p.SalePrice,
			PurchasePrice: p.PurchasePrice,
			SupplierID:    p.SupplierID,
			SupplierName:  name,
		})
	}

	return result, nil
}

// CreateProductUseCase valida y crea un producto nuevo.
type CreateProductUseCase struct {
	catalogClient *client.CatalogClient
}

func NewCreateProductUseCase(catalogClient *client.CatalogClient) *CreateProductUseCase {
	return &CreateProductUseCase{catalogClient: catalogClient}
}

func (uc *CreateProductUseCase) Execute(req *request.CreateProductRequest) error {
	product, err := entity.NewProduct(req.Name, req.CategoryID, req.Size, req.Stock, req.SalePrice, req.PurchasePrice, req.SupplierID)
	if err != nil {
		return err
	}
	if err := uc.catalogClient.CreateProduct(product); err != nil {
		return fmt.Errorf("error creating product: %w", err)
	}
	return nil
}

// UpdateStockUseCase sobreescribe el stock de un producto.
type UpdateStockUseCase struct {
	catalogClient *client.CatalogClient
}

func NewUpdateStockUseCase(catalogClient *client.CatalogClient) *UpdateStockUseCase {
	return &UpdateStockUseCase{catalogClient: catalogClient}
}

func (uc *UpdateStockUseCase) Execute(productID string, quantity int) error {
	if quantity < 0 {
		return entity.ErrInvalidStock
	}
	if err := uc.catalogClient.UpdateProductStock(productID, quantity); err != nil {
		return fmt.Errorf("error updating stock: %w", err)
	}
	return nil
}

// DeleteProductUseCase elimina un producto.
type DeleteProductUseCase struct {
	catalogClient *client.CatalogClient
}

func NewDeleteProductUseCase(catalogClient *client.CatalogClient) *DeleteProductUseCase {
	return &DeleteProductUseCase{catalogClient: catalogClient}
}

func (uc *DeleteProductUseCase) Execute(productID string) error {
	if err := uc.catalogClient.DeleteProduct(productID); err != nil {
		return fmt.Errorf("error deleting product: %w", err)
	}
	return nil
}
