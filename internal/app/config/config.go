package config

import (
	"radiox-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URI:    utils.GetEnvString("MONGODB_URI", "mongodb://localhost:27017"),
			DbName: utils.GetEnvString("MONGODB_DB_NAME", "MasterDb"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", "appointments@radiox.com"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8000"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "America/New_York"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			MailerQueue:                utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "radiox_mailer"),
		},
		Booking: Booking{
			TokenSecret:                 utils.GetEnvString("BOOKING_TOKEN_SECRET", "anybookingsecret"),
			TokenExpiryTimeInMinutes:    utils.GetEnvInt("BOOKING_TOKEN_EXP_TIME_IN_MINUTE", 30),
			SlotHoldExpiryTimeInMinutes: utils.GetEnvInt("BOOKING_SLOT_HOLD_EXP_TIME_IN_MINUTE", 10),
			DefaultCurrency:             utils.GetEnvString("BOOKING_DEFAULT_CURRENCY", "usd"),
		},
		Slots: Slots{
			DayStartTime: utils.GetEnvString("SLOTS_DAY_START_TIME", "9:00 AM"),
			DayEndTime:   utils.GetEnvString("SLOTS_DAY_END_TIME", "5:00 PM"),
			StepMinutes:  utils.GetEnvInt("SLOTS_STEP_MINUTES", 30),
		},
		Stripe: Stripe{
			SecretKey:  utils.GetEnvString("STRIPE_SECRET_KEY", ""),
			SuccessURL: utils.GetEnvString("STRIPE_SUCCESS_URL", "http://localhost:3000/checkout"),
			CancelURL:  utils.GetEnvString("STRIPE_CANCEL_URL", "http://localhost:3000"),
		},
	}
}
