package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Diamondarms/loja-sapatos-gateway/src/catalog/application/request"
	"github.com/Diamondarms/loja-sapatos-gateway/src/catalog/application/usecase"
	"github.com/Diamondarms/loja-sapatos-gateway/src/catalog/domain/entity"
	"github.com/gin-gonic/gin"
)

// CategoryController maneja el CRUD de categorías (página Settings).
type CategoryController struct {
	listUC   *usecase.ListCategoriesUseCase
	createUC *usecase.CreateCategoryUseCase
	deleteUC *usecase.DeleteCategoryUseCase
}

// NewCategoryController crea una nueva instancia del controlador.
func NewCategoryController(
	listUC *usecase.ListCategoriesUseCase,
	createUC *usecase.CreateCategoryUseCase,
	deleteUC *usecase.DeleteCategoryUseCase,
) *CategoryController {
	return &CategoryController{listUC: listUC, createUC: createUC, deleteUC: deleteUC}
}

// RegisterRoutes registra las rutas del controlador.
func (c *CategoryController) RegisterRoutes(router *gin.RouterGroup) {
	categories := router.Group("/categories")
	{
		categories.GET("", c.List)
		categories.POST("", c.Create)
		categories.DELETE("/:category_id", c.Delete)
	}
}

// List devuelve las categorías ordenadas por id.
func (c *CategoryController) List(ctx *gin.Context) {
	categories, err := c.listUC.Execute()
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Error loading categories"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"items": categories, "total_count": len(categories)})
}

// Create crea una categoría nueva.
func (c *CategoryController) Create(ctx *gin.Context) {
	var req request.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := c.createUC.Execute(req.Name); err != nil {
		if errors.Is(err, entity.ErrNameRequired) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error creating category: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Error creating category"})
		return
	}

	ctx.Status(http.StatusCreated)
}

// Delete elimina una categoría.
func (c *CategoryController) Delete(ctx *gin.Context) {
	categoryID := ctx.Param("category_id")
	if err := c.deleteUC.Execute(categoryID); err != nil {
		log.Printf("Error deleting category %s: %v", categoryID, err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Error deleting category"})
		return
	}
	ctx.Status(http.StatusNoContent)
}
