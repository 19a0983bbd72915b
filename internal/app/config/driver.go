package config

type (
	DriverConfig struct {
		MongoDB    MongoDB
		PostgresDB PostgresDB
		Redis      Redis
		RabbitMQ   RabbitMQ
		Minio      Minio
		Logger     Logger
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	PostgresDB struct {
		Port     string
		Host     string
		DBName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
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
