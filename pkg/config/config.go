package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port string
}

type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

type RabbitMQConfig struct {
	Host     string
	User     string
	Password string
}

// URL собирает строку подключения к брокеру из отдельных настроек.
func (c RabbitMQConfig) URL() string {
	return fmt.Sprintf("amqp://%s:%s@%s/", c.User, c.Password, c.Host)
}

type GeocodingConfig struct {
	APIURL string
	APIKey string
}

type JWTConfig struct {
	SecretKey string
	Issuer    string
	Audience  string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type Config struct {
	Server    ServerConfig
	Mongo     MongoConfig
	RabbitMQ  RabbitMQConfig
	Geocoding GeocodingConfig
	JWT       JWTConfig
	CORS      CORSConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Предупреждение: .env файл не найден или не удалось его загрузить.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Mongo: MongoConfig{
			URI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:   getEnv("MONGO_DATABASE", "offices"),
			Collection: getEnv("MONGO_COLLECTION", "offices"),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost:5672"),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Geocoding: GeocodingConfig{
			APIURL: getEnv("YANDEX_GEOCODING_API_URL", "https://geocode-maps.yandex.ru/1.x/"),
			APIKey: getEnv("YANDEX_GEOCODING_API_KEY", ""),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET_KEY", "9A4D2AD385B2BAA8DC78F558B548F"),
			Issuer:    getEnv("JWT_ISSUER", "innoclinic-identity"),
			Audience:  getEnv("JWT_AUDIENCE", "offices-service"),
		},
		CORS: CORSConfig{
			AllowedOrigins: strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:4000,http://localhost:4001"), ","),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
