package config

import (
	"emoease-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		MongoDB: MongoDB{
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "emoease"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "avatars"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Ho_Chi_Minh"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			AvatarMaxUploadSizeInMB:    utils.GetEnvInt64("APP_AVATAR_UPLOAD_MAX_SIZE_IN_MB", 2),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
		AuthService: Upstream{
			BaseUrl: utils.GetEnvString("AUTH_SERVICE_BASE_URL", "https://psychologysupport-auth.azurewebsites.net"),
		},
		ProfileService: Upstream{
			BaseUrl: utils.GetEnvString("PROFILE_SERVICE_BASE_URL", "https://psychologysupport-profile.azurewebsites.net"),
		},
		ImageService: ImageService{
			BaseUrl:        utils.GetEnvString("IMAGE_SERVICE_BASE_URL", "https://psychologysupport-image.azurewebsites.net"),
			PlaceholderURL: utils.GetEnvString("IMAGE_SERVICE_PLACEHOLDER_URL", "https://i.pravatar.cc/150?img=3"),
		},
		IdentityProvider: IdentityProvider{
			AllowedEmailDomain: utils.GetEnvString("IDP_ALLOWED_EMAIL_DOMAIN", "@fpt.edu.vn"),
			RevokeUrl:          utils.GetEnvString("IDP_REVOKE_URL", ""),
		},
		Chat: Chat{
			Path:                    utils.GetEnvString("CHAT_PATH", "messages"),
			WelcomeText:             utils.GetEnvString("CHAT_WELCOME_TEXT", "\U0001F44B Hello! How can I help you today? Please describe your request in detail."),
			ReplyText:               utils.GetEnvString("CHAT_REPLY_TEXT", "Thank you for reaching out. Our staff will respond as soon as possible!"),
			ReplyDelayInMillisecond: utils.GetEnvInt("CHAT_REPLY_DELAY_IN_MILLISECOND", 1000),
			SendsPerMinute:          utils.GetEnvInt("CHAT_SENDS_PER_MINUTE", 30),
			QueueName:               utils.GetEnvString("CHAT_QUEUE_NAME", "chat_archive_queue"),
			DeadLetterQueueName:     utils.GetEnvString("CHAT_DLQ_NAME", "chat_archive_dlq"),
			ArchiveCollection:       utils.GetEnvString("CHAT_ARCHIVE_COLLECTION", "chat_messages"),
			WelcomeGuardTTLInDay:    utils.GetEnvInt("CHAT_WELCOME_GUARD_TTL_IN_DAY", 30),
		},
	}
}
