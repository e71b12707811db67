package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Redis          *redis.Client
		MongoDB        *mongo.Database
		RabbitMQ       *amqp091.Connection
		Minio          *minio.Client
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App              App
		JWT              JWT
		AuthService      Upstream
		ProfileService   Upstream
		ImageService     ImageService
		IdentityProvider IdentityProvider
		Chat             Chat
	}

	DriverConfig struct {
		Redis    Redis
		MongoDB  MongoDB
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int
		AvatarMaxUploadSizeInMB    int64
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Upstream struct {
		BaseUrl string
	}

	ImageService struct {
		BaseUrl        string
		PlaceholderURL string
	}

	IdentityProvider struct {
		AllowedEmailDomain string
		RevokeUrl          string
	}

	Chat struct {
		Path                    string
		WelcomeText             string
		ReplyText               string
		ReplyDelayInMillisecond int
		SendsPerMinute          int
		QueueName               string
		DeadLetterQueueName     string
		ArchiveCollection       string
		WelcomeGuardTTLInDay    int
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	MongoDB struct {
		Host     string
		Port     string
		DbName   string
		Username string
		Password string
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
