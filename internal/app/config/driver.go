package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		SMTP     SMTP
	}
	MongoDB struct {
		URI    string
		DbName string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}
)
