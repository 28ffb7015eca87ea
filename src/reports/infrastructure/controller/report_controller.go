package controller

import (
	"log"
	"net/http"
	"net/url"

	"github.com/Diamondarms/loja-sapatos-gateway/src/reports/infrastructure/client"
	"github.com/gin-gonic/gin"
)

// ReportController expone la familia de reportes pre-armados del backend.
// El contenido es opaco para el gateway; acá solo se validan los
// parámetros requeridos y se transporta el JSON tal cual.
type ReportController struct {
	reportClient *client.ReportClient
}

// NewReportController crea una nueva instancia del controlador.
func NewReportController(reportClient *client.ReportClient) *ReportController {
	return &ReportController{reportClient: reportClient}
}

// RegisterRoutes registra las rutas del controlador.
func (c *ReportController) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("/profit/period", c.ProfitByPeriod)
		reports.GET("/profit/supplier", c.ProfitBySupplier)
		reports.GET("/profit/product/:product_id", c.ProfitByProduct)
		reports.GET("/method/most-used", c.MostUsedMethod)
		reports.GET("/customer/most-purchases", c.MostPurchasesCustomer)
		reports.GET("/customer-products/:customer_id", c.ProductsByCustomer)
		reports.GET("/product-customers/:product_id", c.CustomersByProduct)
	}

	log.Println("Rutas Reports disponibles:")
	log.Println("  GET    /api/v1/reports/profit/period?begin_date=...&final_date=...")
	log.Println("  GET    /api/v1/reports/profit/supplier?begin_date=...&final_date=...&supplier_id=...")
	log.Println("  GET    /api/v1/reports/profit/product/:product_id")
	log.Println("  GET    /api/v1/reports/method/most-used")
	log.Println("  GET    /api/v1/reports/customer/most-purchases")
	log.Println("  GET    /api/v1/reports/customer-products/:customer_id")
	log.Println("  GET    /api/v1/reports/product-customers/:product_id")
}

// ProfitByPeriod ganancia entre dos fechas.
func (c *ReportController) ProfitByPeriod(ctx *gin.Context) {
	beginDate := ctx.Query("begin_date")
	finalDate := ctx.Query("final_date")
	if beginDate == "" || finalDate == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "begin_date and final_date query parameters are required"})
		return
	}

	query := url.Values{}
	query.Set("begin_date", beginDate)
	query.Set("final_date", finalDate)
	c.passthrough(ctx, "profit/period", query)
}

// ProfitBySupplier ganancia por proveedor entre dos fechas.
func (c *ReportController) ProfitBySupplier(ctx *gin.Context) {
	beginDate := ctx.Query("begin_date")
	finalDate := ctx.Query("final_date")
	supplierID := ctx.Query("supplier_id")
	if beginDate == "" || finalDate == "" || supplierID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "begin_date, final_date and supplier_id query parameters are required"})
		return
	}

	query := url.Values{}
	query.Set("begin_date", beginDate)
	query.Set("final_date", finalDate)
	query.Set("supplier_id", supplierID)
	c.passthrough(ctx, "profit/supplier", query)
}

// ProfitByProduct ganancia de un producto.
func (c *ReportController) ProfitByProduct(ctx *gin.Context) {
	c.passthrough(ctx, "profit/product/"+ctx.Param("product_id"), nil)
}

// MostUsedMethod método de pago más usado.
func (c *ReportController) MostUsedMethod(ctx *gin.Context) {
	c.passthrough(ctx, "method/most-used", nil)
}

// MostPurchasesCustomer cliente con más compras.
func (c *ReportController) MostPurchasesCustomer(ctx *gin.Context) {
	c.passthrough(ctx, "customer/most-purchases", nil)
}

// ProductsByCustomer productos comprados por un cliente.
func (c *ReportController) ProductsByCustomer(ctx *gin.Context) {
	c.passthrough(ctx, "customer-products/"+ctx.Param("customer_id"), nil)
}

// CustomersByProduct clientes que compraron un producto.
func (c *ReportController) CustomersByProduct(ctx *gin.Context) {
	c.passthrough(ctx, "product-customers/"+ctx.Param("product_id"), nil)
}

// passthrough transporta el reporte del backend sin interpretarlo.
// Un fallo en un reporte nunca afecta a otra página: el error queda
// acotado al request que lo pidió.
func (c *ReportController) passthrough(ctx *gin.Context, path string, query url.Values) {
	report, err := c.reportClient.GetReport(path, query)
	if err != nil {
		log.Printf("Error generating report %s: %v", path, err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Error generating report"})
		return
	}
	ctx.Data(http.StatusOK, "application/json", report)
}
