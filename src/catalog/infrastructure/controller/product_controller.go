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

// ProductController maneja las peticiones HTTP de productos.
type ProductController struct {
	listUC        *usecase.ListProductsUseCase
	createUC      *usecase.CreateProductUseCase
	updateStockUC *usecase.UpdateStockUseCase
	deleteUC      *usecase.DeleteProductUseCase
}

// NewProductController crea una nueva instancia del controlador.
func NewProductController(
	listUC *usecase.ListProductsUseCase,
	createUC *usecase.CreateProductUseCase,
	updateStockUC *usecase.UpdateStockUseCase,
	deleteUC *usecase.DeleteProductUseCase,
) *ProductController {
	return &ProductController{
		listUC:        listUC,
		createUC:      createUC,
		updateStockUC: updateStockUC,
		deleteUC:      deleteUC,
	}
}

// RegisterRoutes registra las rutas del controlador.
func (c *ProductController) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", c.List)
		products.POST("", c.Create)
		products.PATCH("/:product_id/stock", c.UpdateStock)
		products.DELETE("/:product_id", c.Delete)
	}

	log.Println("Rutas Products disponibles:")
	log.Println("  GET    /api/v1/products?supplier_id=...")
	log.Println("  POST   /api/v1/products")
	log.Println("  PATCH  /api/v1/products/:product_id/stock")
	log.Println("  DELETE /api/v1/products/:product_id")
}

// List devuelve los productos, opcionalmente filtrados por proveedor.
func (c *ProductController) List(ctx *gin.Context) {
	products, err := c.listUC.Execute(ctx.Query("supplier_id"))
	if err != nil {
		log.Printf("Error listing products: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Error loading products"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"items": products, "total_count": len(products)})
}

// Create valida y crea un producto nuevo.
func (c *ProductController) Create(ctx *gin.Context) {
	var req request.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := c.createUC.Execute(&req); err != nil {
		switch {
		case errors.Is(err, entity.ErrNameRequired),
			errors.Is(err, entity.ErrCategoryRequired),
			errors.Is(err, entity.ErrSupplierRequired),
			errors.Is(err, entity.ErrInvalidStock),
			errors.Is(err, entity.ErrInvalidPrice):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("Error creating product: %v", err)
			ctx.JSON(http.StatusBadGateway, gin.H{"error": "Error creating product"})
		}
		return
	}

	ctx.Status(http.StatusCreated)
}

// UpdateStock sobreescribe el stock de un producto.
func (c *ProductController) UpdateStock(ctx *gin.Context) {
	productID := ctx.Param("product_id")

	var req request.UpdateStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := c.updateStockUC.Execute(productID, req.Quantity); err != nil {
		if errors.Is(err, entity.ErrInvalidStock) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error updating stock for product %s: %v", productID, err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Error updating stock"})
		return
	}

	ctx.Status(http.StatusOK)
}

// Delete elimina un producto.
func (c *ProductController) Delete(ctx *gin.Context) {
	productID := ctx.Param("product_id")
	if err := c.deleteUC.Execute(productID); err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Error deleting product"})
		return
	}
	ctx.Status(http.StatusNoContent)
}
