package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/application/request"
	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/application/usecase"
	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/domain/entity"
	"github.com/gin-gonic/gin"
)

// SaleController maneja las peticiones HTTP de ventas y borradores.
type SaleController struct {
	listSalesUC   *usecase.ListSalesUseCase
	createDraftUC *usecase.CreateDraftUseCase
	updateDraftUC *usecase.UpdateDraftUseCase
	addItemUC     *usecase.AddDraftItemUseCase
	removeItemUC  *usecase.RemoveDraftItemUseCase
	submitUC      *usecase.SubmitSaleUseCase
	cancelUC      *usecase.CancelDraftUseCase
}

// NewSaleController crea una nueva instancia del controlador.
func NewSaleController(
	listSalesUC *usecase.ListSalesUseCase,
	createDraftUC *usecase.CreateDraftUseCase,
	updateDraftUC *usecase.UpdateDraftUseCase,
	addItemUC *usecase.AddDraftItemUseCase,
	removeItemUC *usecase.RemoveDraftItemUseCase,
	submitUC *usecase.SubmitSaleUseCase,
	cancelUC *usecase.CancelDraftUseCase,
) *SaleController {
	return &SaleController{
		listSalesUC:   listSalesUC,
		createDraftUC: createDraftUC,
		updateDraftUC: updateDraftUC,
		addItemUC:     addItemUC,
		removeItemUC:  removeItemUC,
		submitUC:      submitUC,
		cancelUC:      cancelUC,
	}
}

// RegisterRoutes registra las rutas del controlador.
func (c *SaleController) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/sales")
	{
		sales.GET("", c.ListSales)
		sales.POST("/drafts", c.CreateDraft)
		sales.PATCH("/drafts/:draft_id", c.UpdateDraft)
		sales.POST("/drafts/:draft_id/items", c.AddItem)
		sales.DELETE("/drafts/:draft_id/items/:index", c.RemoveItem)
		sales.POST("/drafts/:draft_id/submit", c.Submit)
		sales.DELETE("/drafts/:draft_id", c.Cancel)
	}

	log.Println("Rutas Sales disponibles:")
	log.Println("  GET    /api/v1/sales")
	log.Println("  POST   /api/v1/sales/drafts")
	log.Println("  PATCH  /api/v1/sales/drafts/:draft_id")
	log.Println("  POST   /api/v1/sales/drafts/:draft_id/items")
	log.Println("  DELETE /api/v1/sales/drafts/:draft_id/items/:index")
	log.Println("  POST   /api/v1/sales/drafts/:draft_id/submit")
	log.Println("  DELETE /api/v1/sales/drafts/:draft_id")
}

// ListSales devuelve el listado de ventas enriquecidas.
func (c *SaleController) ListSales(ctx *gin.Context) {
	sales, err := c.listSalesUC.Execute()
	if err != nil {
		// El detalle se loguea, al usuario le llega un mensaje genérico.
		log.Printf("Error listing sales: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Error loading sales"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       sales,
		"total_count": len(sales),
	})
}

// CreateDraft abre una nueva sesión de venta.
func (c *SaleController) CreateDraft(ctx *gin.Context) {
	ctx.JSON(http.StatusCreated, c.createDraftUC.Execute())
}

// UpdateDraft setea cliente, método de pago y/o la selección actual.
func (c *SaleController) UpdateDraft(ctx *gin.Context) {
	draftID := ctx.Param("draft_id")

	var req request.UpdateDraftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	draft, err := c.updateDraftUC.Execute(draftID, &req)
	if err != nil {
		if errors.Is(err, entity.ErrDraftNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
			return
		}
		log.Printf("Error updating draft %s: %v", draftID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating draft"})
		return
	}

	ctx.JSON(http.StatusOK, draft)
}

// AddItem agrega un item al borrador validando contra el stock vigente.
func (c *SaleController) AddItem(ctx *gin.Context) {
	draftID := ctx.Param("draft_id")

	var req request.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	draft, err := c.addItemUC.Execute(draftID, &req)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrDraftNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
		case errors.Is(err, entity.ErrProductIDRequired),
			errors.Is(err, entity.ErrInvalidQuantity),
			errors.Is(err, entity.ErrProductNotFound),
			errors.Is(err, entity.ErrInsufficientStock):
			// Rechazo visible para el usuario, el borrador queda como estaba.
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("Error adding item to draft %s: %v", draftID, err)
			ctx.JSON(http.StatusBadGateway, gin.H{"error": "Error adding item"})
		}
		return
	}

	ctx.JSON(http.StatusOK, draft)
}

// RemoveItem quita el item en la posición dada del borrador.
func (c *SaleController) RemoveItem(ctx *gin.Context) {
	draftID := ctx.Param("draft_id")

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}

	draft, err := c.removeItemUC.Execute(draftID, index)
	if err != nil {
		if errors.Is(err, entity.ErrDraftNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
			return
		}
		log.Printf("Error removing item from draft %s: %v", draftID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing item"})
		return
	}

	ctx.JSON(http.StatusOK, draft)
}

// Submit valida y envía el borrador como una única transacción.
func (c *SaleController) Submit(ctx *gin.Context) {
	draftID := ctx.Param("draft_id")

	resp, err := c.submitUC.Execute(draftID)
	if err != nil {
		var verr *entity.DraftValidationError
		switch {
		case errors.Is(err, entity.ErrDraftNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
		case errors.As(err, &verr):
			body := gin.H{
				"error":          "Missing required fields",
				"missing_fields": verr.MissingFields,
			}
			if verr.Warning != "" {
				body["warning"] = verr.Warning
			}
			ctx.JSON(http.StatusBadRequest, body)
		default:
			log.Printf("Error submitting draft %s: %v", draftID, err)
			ctx.JSON(http.StatusBadGateway, gin.H{"error": "Error creating sale"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// Cancel descarta el borrador.
func (c *SaleController) Cancel(ctx *gin.Context) {
	c.cancelUC.Execute(ctx.Param("draft_id"))
	ctx.Status(http.StatusNoContent)
}
