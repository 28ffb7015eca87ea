package usecase

import (
	"fmt"
	"sort"

	"github.com/Diamondarms/loja-sapatos-gateway/src/catalog/application/request"
	"github.com/Diamondarms/loja-sapatos-gateway/src/catalog/domain/entity"
	"github.com/Diamondarms/loja-sapatos-gateway/src/catalog/infrastructure/client"
)

// ListSuppliersUseCase lista proveedores ordenados por id.
type ListSuppliersUseCase struct {
	catalogClient *client.CatalogClient
}

func NewListSuppliersUseCase(catalogClient *client.CatalogClient) *ListSuppliersUseCase {
	return &ListSuppliersUseCase{catalogClient: catalogClient}
}

func (uc *ListSuppliersUseCase) Execute() ([]entity.Supplier, error) {
	suppliers, err := uc.catalogClient.GetSuppliers()
	if err != nil {
		return nil, fmt.Errorf("error fetching suppliers: %w", err)
	}
	sort.Slice(suppliers, func(i, j int) bool {
		return suppliers[i].SupplierID < suppliers[j].SupplierID
	})
	return suppliers, nil
}

// CreateSupplierUseCase valida y crea un proveedor.
type CreateSupplierUseCase struct {
	catalogClient *client.CatalogClient
}

func NewCreateSupplierUseCase(catalogClient *client.CatalogClient) *CreateSupplierUseCase {
	return &CreateSupplierUseCase{catalogClient: catalogClient}
}

func (uc *CreateSupplierUseCase) Execute(req *request.CreateSupplierRequest) error {
	supplier, err := entity.NewSupplier(req.Name, req.CNPJ, req.Phone)
	if err != nil {
		return err
	}
	if err := uc.catalogClient.CreateSupplier(supplier); err != nil {
		return fmt.Errorf("error creating supplier: %w", err)
	}
	return nil
}

// DeleteSupplierUseCase elimina un proveedor.
type DeleteSupplierUseCase struct {
	catalogClient *client.CatalogClient
}

func NewDeleteSupplierUseCase(catalogClient *client.CatalogClient) *DeleteSupplierUseCase {
	return &DeleteSupplierUseCase{catalogClient: catalogClient}
}

func (uc *DeleteSupplierUseCase) Execute(supplierID string) error {
	if err := uc.catalogClient.DeleteSupplier(supplierID); err != nil {
		return fmt.Errorf("error deleting supplier: %w", err)
	}
	return nil
}
