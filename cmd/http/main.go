package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"emoease-service/internal/app/config"
	"emoease-service/internal/app/delivery/http/middlewares"
	"emoease-service/internal/app/delivery/http/routers"
	"emoease-service/internal/app/drivers/database"
	"emoease-service/internal/app/drivers/logger"
	"emoease-service/internal/app/drivers/messaging"
	"emoease-service/internal/app/drivers/storage"
	"emoease-service/internal/app/services/archive"
	"emoease-service/internal/app/services/auth"
	"emoease-service/internal/app/services/chat"
	"emoease-service/internal/app/services/core/session"
	"emoease-service/internal/app/services/images"
	"emoease-service/internal/app/services/navigation"
	"emoease-service/internal/app/services/patients"
	"emoease-service/internal/app/services/shared/chatqueue"
	sharedRedis "emoease-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	shutdownApp := bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		MongoDB:        mongoDB,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	shutdownApp()

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) func() {
	// Redis
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)

	// Session
	sessionService := session.NewSessionService(redisRepository)

	// Middlewares
	appMiddlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		SessionService: sessionService,
		InternalConfig: bootstrap.InternalConfig,
	}

	// Images
	imageClient := images.NewImageClient(bootstrap.InternalConfig)
	minioStorage := images.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig)
	imageUsecase := images.NewImageUsecase(imageClient, minioStorage, bootstrap.InternalConfig, bootstrap.Logger)
	imageController := images.NewImageController(bootstrap.Logger, imageUsecase)

	// Auth
	authGatewayClient := auth.NewAuthGatewayClient(bootstrap.InternalConfig)
	identityProviderClient := auth.NewIdentityProviderClient(bootstrap.InternalConfig)
	authUsecase := auth.NewAuthUsecase(authGatewayClient, identityProviderClient, sessionService, imageUsecase, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Chat
	chatQueueService, err := chatqueue.NewService(bootstrap.RabbitMQ, bootstrap.InternalConfig, bootstrap.Logger)
	if err != nil {
		logrus.Fatalf("Failed to set up chat archive queue: %v", err)
	}
	messageStore := chat.NewMessageRedisStore(bootstrap.Redis, bootstrap.Logger)
	chatUsecase := chat.NewChatUsecase(messageStore, redisRepository, chatQueueService, bootstrap.InternalConfig, bootstrap.Logger)
	chatController := chat.NewChatController(bootstrap.Logger, chatUsecase)

	activateCtx, cancelActivate := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelActivate()
	if err := chatUsecase.Activate(activateCtx); err != nil {
		logrus.Fatalf("Failed to activate chat session: %v", err)
	}

	// Archive
	archiveRepository := archive.NewMessageMongoRepository(bootstrap.MongoDB, bootstrap.InternalConfig.Chat.ArchiveCollection)
	if err := archiveRepository.EnsureIndexes(activateCtx); err != nil {
		logrus.Fatalf("Failed to ensure archive indexes: %v", err)
	}
	archiveUsecase := archive.NewArchiveUsecase(archiveRepository, bootstrap.InternalConfig)
	archiveController := archive.NewArchiveController(bootstrap.Logger, archiveUsecase)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	archiveWorker := archive.NewWorker(bootstrap.Logger, chatQueueService, archiveRepository)
	if err := archiveWorker.Start(workerCtx); err != nil {
		stopWorker()
		logrus.Fatalf("Failed to start archive worker: %v", err)
	}

	// Patient
	profileClient := patients.NewProfileClient(bootstrap.InternalConfig)
	patientUsecase := patients.NewPatientUsecase(profileClient, imageUsecase)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	// Navigation
	navigationUsecase := navigation.NewNavigationUsecase()
	navigationController := navigation.NewNavigationController(bootstrap.Logger, navigationUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		authController,
		chatController,
		patientController,
		imageController,
		navigationController,
		archiveController,
	)

	return func() {
		chatUsecase.Close()
		stopWorker()
	}
}
