package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Diamondarms/loja-sapatos-gateway/src/customers/application/request"
	"github.com/Diamondarms/loja-sapatos-gateway/src/customers/application/usecase"
	"github.com/Diamondarms/loja-sapatos-gateway/src/customers/domain/entity"
	"github.com/gin-gonic/gin"
)

// CustomerController maneja las peticiones HTTP de clientes.
type CustomerController struct {
	listUC        *usecase.ListCustomersUseCase
	createUC      *usecase.CreateCustomerUseCase
	updatePhoneUC *usecase.UpdatePhoneUseCase
	deleteUC      *usecase.DeleteCustomerUseCase
}

// NewCustomerController crea una nueva instancia del controlador.
func NewCustomerController(
	listUC *usecase.ListCustomersUseCase,
	createUC *usecase.CreateCustomerUseCase,
	updatePhoneUC *usecase.UpdatePhoneUseCase,
	deleteUC *usecase.DeleteCustomerUseCase,
) *CustomerController {
	return &CustomerController{
		listUC:        listUC,
		createUC:      createUC,
		updatePhoneUC: updatePhoneUC,
		deleteUC:      deleteUC,
	}
}

// RegisterRoutes registra las rutas del controlador.
func (c *CustomerController) RegisterRoutes(router *gin.RouterGroup) {
	customers := router.Group("/customers")
	{
		customers.GET("", c.List)
		customers.POST("", c.Create)
		customers.PATCH("/:customer_id/phone", c.UpdatePhone)
		customers.DELETE("/:customer_id", c.Delete)
	}

	log.Println("Rutas Customers disponibles:")
	log.Println("  GET    /api/v1/customers")
	log.Println("  POST   /api/v1/customers")
	log.Println("  PATCH  /api/v1/customers/:customer_id/phone")
	log.Println("  DELETE /api/v1/customers/:customer_id")
}

// List devuelve los clientes ordenados por id.
func (c *CustomerController) List(ctx *gin.Context) {
	customers, err := c.listUC.Execute()
	if err != nil {
		log.Printf("Error listing customers: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Error loading customers"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"items": customers, "total_count": len(customers)})
}

// Create valida y crea un cliente nuevo.
func (c *CustomerController) Create(ctx *gin.Context) {
	var req request.CreateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := c.createUC.Execute(&req); err != nil {
		switch {
		case errors.Is(err, entity.ErrNameRequired),
			errors.Is(err, entity.ErrInvalidCPF),
			errors.Is(err, entity.ErrCEPRequired):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("Error creating customer: %v", err)
			ctx.JSON(http.StatusBadGateway, gin.H{"error": "Error creating customer"})
		}
		return
	}

	ctx.Status(http.StatusCreated)
}

// UpdatePhone sobreescribe el teléfono de un cliente.
func (c *CustomerController) UpdatePhone(ctx *gin.Context) {
	customerID := ctx.Param("customer_id")

	var req request.UpdatePhoneRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := c.updatePhoneUC.Execute(customerID, req.NewPhone); err != nil {
		log.Printf("Error updating phone for customer %s: %v", customerID, err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Error updating phone"})
		return
	}

	ctx.Status(http.StatusOK)
}

// Delete elimina un cliente.
func (c *CustomerController) Delete(ctx *gin.Context) {
	customerID := ctx.Param("customer_id")
	if err := c.deleteUC.Execute(customerID); err != nil {
		log.Printf("Error deleting customer %s: %v", customerID, err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Error deleting customer"})
		return
	}
	ctx.Status(http.StatusNoContent)
}
