package routes

import (
	"context"
	"os"
	"strings"
	"time"

	_ "morais_erp/docs"
	"morais_erp/internal/adapter/http/handlers"
	"morais_erp/internal/adapter/persistence/repository"
	"morais_erp/internal/infrastructure/classifier"
	"morais_erp/internal/infrastructure/database"
	"morais_erp/internal/infrastructure/export"
	"morais_erp/internal/infrastructure/locking"
	"morais_erp/internal/infrastructure/logging"
	"morais_erp/internal/infrastructure/payments"
	"morais_erp/internal/usecase"
	"morais_erp/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const defaultPort = "8080"

// Run will start the server
func Run() {
	log := logging.GetLogger()
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	log := logging.GetLogger()
	ctx := context.Background()

	ddb := database.ConnectDynamoDB()
	if envEnabled("DYNAMODB_AUTO_CREATE") {
		ensureCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		if err := database.EnsureTables(ensureCtx, ddb, repository.TableSpecs()); err != nil {
			log.Fatalf("Failed to create DynamoDB tables: %v", err)
		}
		cancel()
	}

	orderRepo := repository.NewMaterialOrderDynamoRepository(ddb)
	payableRepo := repository.NewAccountPayableDynamoRepository(ddb)
	receivableRepo := repository.NewAccountReceivableDynamoRepository(ddb)
	projectRepo := repository.NewProjectDynamoRepository(ddb)
	supplierRepo := repository.NewSupplierDynamoRepository(ddb)
	clientRepo := repository.NewClientDynamoRepository(ddb)
	materialRepo := repository.NewMaterialDynamoRepository(ddb)

	var advisor interface {
		interfaces.IMaterialClassifier
		interfaces.IOrderAdvisor
	}
	gemini, err := classifier.NewGeminiFromEnv(ctx)
	if err != nil {
		log.Warnf("Gemini not configured, using fallback classification: %v", err)
	} else {
		advisor = gemini
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Warnf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	locker := newOrderLocker()
	payableUseCase := usecase.NewAccountPayableUseCase(payableRepo, orderRepo, projectRepo, supplierRepo, export.NewPayablesXLSX(), locker)
	orderUseCase := usecase.NewMaterialOrderUseCase(orderRepo, projectRepo, advisor, locker, payableUseCase)
	receivableUseCase := usecase.NewAccountReceivableUseCase(receivableRepo, projectRepo, clientRepo, paymentGateway)
	reportUseCase := usecase.NewReportUseCase(orderRepo, payableRepo, receivableRepo, projectRepo, advisor)

	orderHandler := handlers.NewMaterialOrderHandler(orderUseCase)
	payableHandler := handlers.NewAccountPayableHandler(payableUseCase)
	receivableHandler := handlers.NewAccountReceivableHandler(receivableUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler, payableHandler)
	addFinanceRoutes(v1, payableHandler, receivableHandler)
	addRegistryRoutes(v1, registryHandlers{
		projects:  handlers.NewProjectHandler(usecase.NewProjectUseCase(projectRepo)),
		suppliers: handlers.NewSupplierHandler(usecase.NewSupplierUseCase(supplierRepo)),
		clients:   handlers.NewClientHandler(usecase.NewClientUseCase(clientRepo)),
		materials: handlers.NewMaterialHandler(usecase.NewMaterialUseCase(materialRepo)),
	})
	addReportRoutes(v1, reportHandler)
}

// newOrderLocker uses Redis when REDIS_ADDR is set so approvals stay
// serialized across replicas; otherwise locks are process local.
func newOrderLocker() interfaces.IOrderLocker {
	log := logging.GetLogger()
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		log.Info("[order][lock] REDIS_ADDR not set, using in-process locks")
		return locking.NewLocalLocker()
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	log.WithField("addr", addr).Info("[order][lock] using redis locks")
	return locking.NewRedisLocker(rdb)
}

func envEnabled(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
