package routes

import (
	"log"
	"os"
	"time"

	_ "studio_orders/docs" // swagger generated docs
	"studio_orders/internal/adapter/http/handlers"
	repository2 "studio_orders/internal/adapter/persistence/repository"
	"studio_orders/internal/catalog"
	"studio_orders/internal/draft"
	"studio_orders/internal/infrastructure/cache"
	"studio_orders/internal/infrastructure/database"
	"studio_orders/internal/infrastructure/messaging"
	"studio_orders/internal/infrastructure/notifications"
	"studio_orders/internal/infrastructure/payments"
	"studio_orders/internal/infrastructure/tasks"
	"studio_orders/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const (
	taskWorkers       = 4
	taskQueueCapacity = 256
	invoiceDelay      = 30 * time.Second
)

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	err := router.Run(":" + port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	cat := catalog.New()

	ddb := database.ConnectDynamoDB()
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	trackingRepo := repository2.NewOrderTrackingDynamoRepository(ddb)

	rdb := cache.ConnectRedis()
	draftStore := draft.NewRedisStore(rdb, draft.DefaultTTL)

	publisher := messaging.NewKafkaOrderPublisher()

	var invoices notifications.IInvoiceGateway
	gateway, err := payments.NewInvoiceGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Invoice gateway not configured: %v", err)
	} else {
		invoices = gateway
	}
	notifier := notifications.NewService(publisher, invoices)

	runner := tasks.NewRunner(taskWorkers, taskQueueCapacity)

	submissionUseCase := usecase.NewOrderSubmissionUseCase(
		cat, customerRepo, orderRepo, trackingRepo, notifier, runner, invoiceDelay)
	trackingUseCase := usecase.NewOrderTrackingUseCase(orderRepo, trackingRepo)

	orderHandler := handlers.NewOrderHandler(submissionUseCase, trackingUseCase)
	catalogHandler := handlers.NewCatalogHandler(cat)
	draftHandler := handlers.NewDraftHandler(draftStore, cat, submissionUseCase)

	// The order submission contract lives at the root path.
	addPingRoutes(&router.RouterGroup)
	addOrderRoutes(&router.RouterGroup, orderHandler)
	addCatalogRoutes(&router.RouterGroup, catalogHandler)
	addDraftRoutes(&router.RouterGroup, draftHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
