package controller

import (
	"log"
	"net/http"

	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/application/usecase"
	"github.com/gin-gonic/gin"
)

// MethodController maneja el CRUD de métodos de pago (página Settings).
type MethodController struct {
	listUC   *usecase.ListMethodsUseCase
	createUC *usecase.CreateMethodUseCase
	deleteUC *usecase.DeleteMethodUseCase
}

// NewMethodController crea una nueva instancia del controlador.
func NewMethodController(
	listUC *usecase.ListMethodsUseCase,
	createUC *usecase.CreateMethodUseCase,
	deleteUC *usecase.DeleteMethodUseCase,
) *MethodController {
	return &MethodController{listUC: listUC, createUC: createUC, deleteUC: deleteUC}
}

// RegisterRoutes registra las rutas del controlador.
func (c *MethodController) RegisterRoutes(router *gin.RouterGroup) {
	methods := router.Group("/methods")
	{
		methods.GET("", c.List)
		methods.POST("", c.Create)
		methods.DELETE("/:method_id", c.Delete)
	}
}

// List devuelve los métodos de pago ordenados por id.
func (c *MethodController) List(ctx *gin.Context) {
	methods, err := c.listUC.Execute()
	if err != nil {
		log.Printf("Error listing methods: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Error loading payment methods"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"items": methods, "total_count": len(methods)})
}

// Create crea un método de pago nuevo.
func (c *MethodController) Create(ctx *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Name == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	if err := c.createUC.Execute(req.Name); err != nil {
		log.Printf("Error creating method: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Error creating payment method"})
		return
	}
	ctx.Status(http.StatusCreated)
}

// Delete elimina un método de pago.
func (c *MethodController) Delete(ctx *gin.Context) {
	if err := c.deleteUC.Execute(ctx.Param("method_id")); err != nil {
		log.Printf("Error deleting method: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Error deleting payment method"})
		return
	}
	ctx.Status(http.StatusNoContent)
}
