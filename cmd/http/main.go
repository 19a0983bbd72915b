package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healiinn-service/cmd/migration"
	"healiinn-service/internal/app/config"
	"healiinn-service/internal/app/delivery/http/controllers"
	"healiinn-service/internal/app/delivery/http/middlewares"
	"healiinn-service/internal/app/delivery/http/routers"
	"healiinn-service/internal/app/drivers/database"
	"healiinn-service/internal/app/drivers/logger"
	"healiinn-service/internal/app/drivers/messaging"
	"healiinn-service/internal/app/drivers/storage"
	"healiinn-service/internal/app/services/core/orders"
	"healiinn-service/internal/app/services/core/payments"
	"healiinn-service/internal/app/services/core/requests"
	"healiinn-service/internal/app/services/core/transactions"
	"healiinn-service/internal/app/services/shared/locker"
	paymentgateway "healiinn-service/internal/app/services/shared/payment_gateway"
	"healiinn-service/internal/app/services/shared/providerqueue"
	"healiinn-service/internal/app/services/shared/redis"
	minioStorage "healiinn-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	processLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		processLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	postgresDB := database.NewPostgresDB(driverConfig)
	migration.Run(postgresDB)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		PostgresDB:     postgresDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if err := bootstrapTheApp(bootstrap, minioClient); err != nil {
		processLog.Fatalf("Bootstrap failed: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			processLog.Fatalf("Server failed to start: %v", err)
		}
	}()
	processLog.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	processLog.Println("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		processLog.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		processLog.Printf("Error closing drivers: %v", err)
	}

	processLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, minioClient *minio.Client) error {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	storageService := minioStorage.NewMinioStorage(minioClient, bootstrap.DriverConfig.Minio.BucketName)

	paymentGatewayService, err := paymentgateway.NewRazorpayService(bootstrap.InternalConfig)
	if err != nil {
		return err
	}

	providerNotifier, err := providerqueue.NewService(bootstrap.RabbitMQ, bootstrap.InternalConfig.ProviderQueue, bootstrap.Logger)
	if err != nil {
		return err
	}

	// Repositories
	serviceRequestRepository := requests.NewServiceRequestMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	orderRepository := orders.NewOrderMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	transactionRepository := transactions.NewTransactionPostgresRepository(bootstrap.PostgresDB)

	// Usecases
	serviceRequestUsecase := requests.NewServiceRequestUsecase(
		serviceRequestRepository,
		orderRepository,
		providerNotifier,
		storageService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	orderUsecase := orders.NewOrderUsecase(orderRepository, bootstrap.Logger)
	transactionUsecase := transactions.NewTransactionUsecase(transactionRepository, bootstrap.Logger)
	paymentUsecase := payments.NewPaymentUsecase(
		serviceRequestRepository,
		orderRepository,
		transactionRepository,
		paymentGatewayService,
		lockerService,
		providerNotifier,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)

	// Delivery
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)
	serviceRequestController := controllers.NewServiceRequestController(bootstrap.Logger, bootstrap.InternalConfig, serviceRequestUsecase)
	paymentController := controllers.NewPaymentController(bootstrap.Logger, bootstrap.InternalConfig, paymentUsecase)
	orderController := controllers.NewOrderController(bootstrap.Logger, bootstrap.InternalConfig, orderUsecase)
	transactionController := controllers.NewTransactionController(bootstrap.Logger, bootstrap.InternalConfig, transactionUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		serviceRequestController,
		paymentController,
		orderController,
		transactionController,
	)

	return nil
}
