package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Square   SquareConfig
	Features FeatureFlags
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	CartTTL  time.Duration
}

type KafkaConfig struct {
	Brokers       []string
	CheckoutTopic string
}

// SquareConfig points at the commerce platform. LocationID identifies the
// single deployment location every order is submitted against.
type SquareConfig struct {
	BaseURL     string
	AccessToken string
	LocationID  string
	Timeout     time.Duration
}

type FeatureFlags struct {
	EnableCheckoutEvents bool
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvInt("SERVER_PORT", 8084),
			ReadTimeout:  time.Duration(getEnvInt("SERVER_READ_TIMEOUT", 30)) * time.Second,
			WriteTimeout: time.Duration(getEnvInt("SERVER_WRITE_TIMEOUT", 30)) * time.Second,
		},
		Redis: RedisConfig{
			Host:     getEnvString("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnvString("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			CartTTL:  time.Duration(getEnvInt("CART_TTL_HOURS", 168)) * time.Hour,
		},
		Kafka: KafkaConfig{
			Brokers:       strings.Split(getEnvString("KAFKA_BROKERS", "localhost:9092"), ","),
			CheckoutTopic: getEnvString("KAFKA_CHECKOUT_TOPIC", "pos.checkouts"),
		},
		Square: SquareConfig{
			BaseURL:     getEnvString("SQUARE_BASE_URL", "https://connect.squareupsandbox.com"),
			AccessToken: getEnvString("SQUARE_ACCESS_TOKEN", ""),
			LocationID:  getEnvString("SQUARE_LOCATION_ID", ""),
			Timeout:     time.Duration(getEnvInt("SQUARE_TIMEOUT", 30)) * time.Second,
		},
		Features: FeatureFlags{
			EnableCheckoutEvents: getEnvBool("ENABLE_CHECKOUT_EVENTS", true),
		},
	}
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
