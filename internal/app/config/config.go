package config

import (
	"healiinn-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "healiinn"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		PostgresDB: PostgresDB{
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			DBName:   utils.GetEnvString("POSTGRES_DB_NAME", "healiinn_ledger"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "prescriptions"),
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
			Env:                         utils.GetEnvString("APP_ENV", "development"),
			Port:                        utils.GetEnvString("APP_PORT", ":8080"),
			Version:                     utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:              utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			Timezone:                    utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			MaxRequests:                 utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeoutInSeconds:    utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:     utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			PaymentLockTimeoutInSeconds: utils.GetEnvInt("APP_PAYMENT_LOCK_TIMEOUT_IN_SECONDS", 30),
			PrescriptionURLExpiryHours:  utils.GetEnvInt("APP_PRESCRIPTION_URL_EXPIRY_IN_HOURS", 24),
		},
		JWT: AppJWT{
			Secret: utils.GetEnvString("JWT_SECRET", ""),
		},
		PaymentGateway: AppPaymentGateway{
			BaseUrl:                 utils.GetEnvString("PAYMENT_GATEWAY_BASE_URL", "https://api.razorpay.com"),
			KeyID:                   utils.GetEnvString("PAYMENT_GATEWAY_KEY_ID", ""),
			KeySecret:               utils.GetEnvString("PAYMENT_GATEWAY_KEY_SECRET", ""),
			WebhookSecret:           utils.GetEnvString("PAYMENT_GATEWAY_WEBHOOK_SECRET", ""),
			Currency:                utils.GetEnvString("PAYMENT_GATEWAY_CURRENCY", "INR"),
			RequestTimeoutInSeconds: utils.GetEnvInt("PAYMENT_GATEWAY_REQUEST_TIMEOUT_IN_SECONDS", 15),
			MaxRequestsPerSecond:    utils.GetEnvInt("PAYMENT_GATEWAY_MAX_REQUESTS_PER_SECOND", 5),
		},
		ProviderQueue: AppProviderQueue{
			QueueName:           utils.GetEnvString("PROVIDER_QUEUE_NAME", "provider_notification_queue"),
			DeadLetterQueueName: utils.GetEnvString("PROVIDER_QUEUE_DLQ_NAME", "provider_notification_dlq"),
			Prefetch:            utils.GetEnvInt("PROVIDER_QUEUE_PREFETCH", 1),
		},
	}
}
