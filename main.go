package main

import (
	"log"
	"os"

	apiConfig "github.com/Diamondarms/loja-sapatos-gateway/src/api/config"
	catalogUseCase "github.com/Diamondarms/loja-sapatos-gateway/src/catalog/application/usecase"
	catalogClient "github.com/Diamondarms/loja-sapatos-gateway/src/catalog/infrastructure/client"
	catalogController "github.com/Diamondarms/loja-sapatos-gateway/src/catalog/infrastructure/controller"
	customerUseCase "github.com/Diamondarms/loja-sapatos-gateway/src/customers/application/usecase"
	customerClient "github.com/Diamondarms/loja-sapatos-gateway/src/customers/infrastructure/client"
	customerController "github.com/Diamondarms/loja-sapatos-gateway/src/customers/infrastructure/controller"
	reportClient "github.com/Diamondarms/loja-sapatos-gateway/src/reports/infrastructure/client"
	reportController "github.com/Diamondarms/loja-sapatos-gateway/src/reports/infrastructure/controller"
	salesUseCase "github.com/Diamondarms/loja-sapatos-gateway/src/sales/application/usecase"
	salesCache "github.com/Diamondarms/loja-sapatos-gateway/src/sales/infrastructure/cache"
	salesClient "github.com/Diamondarms/loja-sapatos-gateway/src/sales/infrastructure/client"
	salesController "github.com/Diamondarms/loja-sapatos-gateway/src/sales/infrastructure/controller"
	salesStore "github.com/Diamondarms/loja-sapatos-gateway/src/sales/infrastructure/store"
	sharedConfig "github.com/Diamondarms/loja-sapatos-gateway/src/shared/infrastructure/config"

	"github.com/asaskevich/EventBus"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Cargar .env si existe (en contenedores las variables ya vienen seteadas)
	if err := godotenv.Load(); err == nil {
		log.Println("Variables cargadas desde .env")
	}

	log.Println("🚀 Loja Sapatos Gateway - Iniciando...")
	log.Printf("Backend configurado en: %s", sharedConfig.BackendBaseURL())

	// Configurar el router con Gin
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	if os.Getenv("PROMETHEUS_ENABLED") == "true" {
		log.Println("Registering /metrics endpoint")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled")
	}

	// Configurar middlewares compartidos (CORS para el front)
	sharedCfg := sharedConfig.DefaultSharedConfig()
	sharedConfig.SetupSharedMiddleware(router, sharedCfg)

	// Bus de eventos en proceso: conecta el submit de ventas y los
	// cambios de métodos de pago con quienes cachean snapshots
	bus := EventBus.New()

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	// Configurar el módulo API (health check)
	apiCfg := apiConfig.DefaultAPIConfig()
	apiCfg.Version = "1.0.0"
	apiCfg.BackendURL = sharedConfig.BackendBaseURL()
	apiConfig.SetupAPIModule(router, v1, apiCfg)

	// Configurar módulos de dominio
	setupSalesModule(v1, bus)
	setupCatalogModule(v1)
	setupCustomersModule(v1)
	setupReportsModule(v1)

	// Iniciar el servidor
	port := sharedConfig.GetEnv("PORT", "8080")
	log.Printf("✅ Gateway iniciado en http://localhost:%s", port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", port)
	router.Run(":" + port)
}

// setupSalesModule configura el módulo Sales (listado enriquecido,
// borradores de venta y métodos de pago)
func setupSalesModule(router *gin.RouterGroup, bus EventBus.Bus) {
	log.Println("Configurando módulo Sales...")

	client := salesClient.NewSalesClient()
	drafts := salesStore.NewDraftStore()

	// Cache de métodos de pago: carga inicial best-effort + refresh por eventos
	methodCache := salesCache.NewPaymentMethodCache()
	if err := methodCache.Refresh(client); err != nil {
		log.Printf("⚠️  Warning: payment method cache empty at startup: %v", err)
	}
	if err := methodCache.SubscribeTo(bus, client); err != nil {
		log.Printf("⚠️  Warning: could not subscribe payment method cache: %v", err)
	}

	saleCtrl := salesController.NewSaleController(
		salesUseCase.NewListSalesUseCase(client),
		salesUseCase.NewCreateDraftUseCase(drafts),
		salesUseCase.NewUpdateDraftUseCase(drafts),
		salesUseCase.NewAddDraftItemUseCase(drafts, client),
		salesUseCase.NewRemoveDraftItemUseCase(drafts),
		salesUseCase.NewSubmitSaleUseCase(drafts, client, methodCache, bus),
		salesUseCase.NewCancelDraftUseCase(drafts),
	)
	saleCtrl.RegisterRoutes(router)

	methodCtrl := salesController.NewMethodController(
		salesUseCase.NewListMethodsUseCase(client),
		salesUseCase.NewCreateMethodUseCase(client, bus),
		salesUseCase.NewDeleteMethodUseCase(client, bus),
	)
	methodCtrl.RegisterRoutes(router)

	log.Println("Módulo Sales configurado exitosamente")
}

// setupCatalogModule configura el módulo Catalog (productos,
// proveedores y categorías)
func setupCatalogModule(router *gin.RouterGroup) {
	log.Println("Configurando módulo Catalog...")

	client := catalogClient.NewCatalogClient()

	productCtrl := catalogController.NewProductController(
		catalogUseCase.NewListProductsUseCase(client),
		catalogUseCase.NewCreateProductUseCase(client),
		catalogUseCase.NewUpdateStockUseCase(client),
		catalogUseCase.NewDeleteProductUseCase(client),
	)
	productCtrl.RegisterRoutes(router)

	supplierCtrl := catalogController.NewSupplierController(
		catalogUseCase.NewListSuppliersUseCase(client),
		catalogUseCase.NewCreateSupplierUseCase(client),
		catalogUseCase.NewDeleteSupplierUseCase(client),
	)
	supplierCtrl.RegisterRoutes(router)

	categoryCtrl := catalogController.NewCategoryController(
		catalogUseCase.NewListCategoriesUseCase(client),
		catalogUseCase.NewCreateCategoryUseCase(client),
		catalogUseCase.NewDeleteCategoryUseCase(client),
	)
	categoryCtrl.RegisterRoutes(router)

	log.Println("Módulo Catalog configurado exitosamente")
}

// setupCustomersModule configura el módulo Customers
func setupCustomersModule(router *gin.RouterGroup) {
	log.Println("Configurando módulo Customers...")

	client := customerClient.NewCustomerClient()

	customerCtrl := customerController.NewCustomerController(
		customerUseCase.NewListCustomersUseCase(client),
		customerUseCase.NewCreateCustomerUseCase(client),
		customerUseCase.NewUpdatePhoneUseCase(client),
		customerUseCase.NewDeleteCustomerUseCase(client),
	)
	customerCtrl.RegisterRoutes(router)

	log.Println("Módulo Customers configurado exitosamente")
}

// setupReportsModule configura el módulo Reports (passthrough)
func setupReportsModule(router *gin.RouterGroup) {
	log.Println("Configurando módulo Reports...")

	reportCtrl := reportController.NewReportController(reportClient.NewReportClient())
	reportCtrl.RegisterRoutes(router)

	log.Println("Módulo Reports configurado exitosamente")
}
