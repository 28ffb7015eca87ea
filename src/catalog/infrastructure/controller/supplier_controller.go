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

// SupplierController maneja las peticiones HTTP de proveedores.
type SupplierController struct {
	listUC   *usecase.ListSuppliersUseCase
	createUC *usecase.CreateSupplierUseCase
	deleteUC *usecase.DeleteSupplierUseCase
}

// NewSupplierController crea una nueva instancia del controlador.
func NewSupplierController(
	listUC *usecase.ListSuppliersUseCase,
	createUC *usecase.CreateSupplierUseCase,
	deleteUC *usecase.DeleteSupplierUseCase,
) *SupplierController {
	return &SupplierController{listUC: listUC, createUC: createUC, deleteUC: deleteUC}
}

// RegisterRoutes registra las rutas del controlador.
func (c *SupplierController) RegisterRoutes(router *gin.RouterGroup) {
	suppliers := router.Group("/suppliers")
	{
		suppliers.GET("", c.List)
		suppliers.POST("", c.Create)
		suppliers.DELETE("/:supplier_id", c.Delete)
	}
}

// List devuelve los proveedores ordenados por id.
func (c *SupplierController) List(ctx *gin.Context) {
	suppliers, err := c.listUC.Execute()
	if err != nil {
		log.Printf("Error listing suppliers: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Error loading suppliers"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"items": suppliers, "total_count": len(suppliers)})
}

// Create valida (nombre y CNPJ de 14 dígitos) y crea un proveedor.
func (c *SupplierController) Create(ctx *gin.Context) {
	var req request.CreateSupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := c.createUC.Execute(&req); err != nil {
		if errors.Is(err, entity.ErrNameRequired) || errors.Is(err, entity.ErrInvalidCNPJ) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error creating supplier: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Error creating supplier"})
		return
	}

	ctx.Status(http.StatusCreated)
}

// Delete elimina un proveedor.
func (c *SupplierController) Delete(ctx *gin.Context) {
	supplierID := ctx.Param("supplier_id")
	if err := c.deleteUC.Execute(supplierID); err != nil {
		log.Printf("Error deleting supplier %s: %v", supplierID, err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Error deleting supplier"})
		return
	}
	ctx.Status(http.StatusNoContent)
}
