package usecase

import (
	"fmt"
	"sort"

	"github.com/Diamondarms/loja-sapatos-gateway/src/catalog/domain/entity"
	"github.com/Diamondarms/loja-sapatos-gateway/src/catalog/infrastructure/client"
)

// ListCategoriesUseCase lista categorías ordenadas por id.
type ListCategoriesUseCase struct {
	catalogClient *client.CatalogClient
}

func NewListCategoriesUseCase(catalogClient *client.CatalogClient) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{catalogClient: catalogClient}
}

func (uc *ListCategoriesUseCase) Execute() ([]entity.Category, error) {
	categories, err := uc.catalogClient.GetCategories()
	if err != nil {
		return nil, fmt.Errorf("error fetching categories: %w", err)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].CategoryID < categories[j].CategoryID
	})
	return categories, nil
}

// CreateCategoryUseCase crea una categoría.
type CreateCategoryUseCase struct {
	catalogClient *client.CatalogClient
}

func NewCreateCategoryUseCase(catalogClient *client.CatalogClient) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{catalogClient: catalogClient}
}

func (uc *CreateCategoryUseCase) Execute(name string) error {
	if name == "" {
		return entity.ErrNameRequired
	}
	if err := uc.catalogClient.CreateCategory(name); err != nil {
		return fmt.Errorf("error creating category: %w", err)
	}
	return nil
}

// DeleteCategoryUseCase elimina una categoría.
type DeleteCategoryUseCase struct {
	catalogClient *client.CatalogClient
}

func NewDeleteCategoryUseCase(catalogClient *client.CatalogClient) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{catalogClient: catalogClient}
}

func (uc *DeleteCategoryUseCase) Execute(categoryID string) error {
	if err := uc.catalogClient.DeleteCategory(categoryID); err != nil {
		return fmt.Errorf("error deleting category: %w", err)
	}
	return nil
}
