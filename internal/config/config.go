package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Answer   AnswerConfig
	Events   EventsConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	LogRingCapacity    int
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

// AnswerConfig describes the external compliance answering service.
type AnswerConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	RetryAttempts  int
	RetryBaseDelay time.Duration
}

type EventsConfig struct {
	NatsURL           string
	TurnRecordedTopic string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "5000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:5000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			LogRingCapacity:    getEnvAsInt("LOG_RING_CAPACITY", 100),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Answer: AnswerConfig{
			// the answering backend mounts its routes under /api
			BaseURL:        getEnv("ANSWER_SERVICE_URL", "http://localhost:8000/api"),
			RequestTimeout: getEnvAsDuration("ANSWER_REQUEST_TIMEOUT", 120*time.Second),
			RetryAttempts:  getEnvAsInt("ANSWER_RETRY_ATTEMPTS", 3),
			RetryBaseDelay: getEnvAsDuration("ANSWER_RETRY_BASE_DELAY", time.Second),
		},
		Events: EventsConfig{
			NatsURL:           getEnv("NATS_URL", "nats://localhost:4222"),
			TurnRecordedTopic: getEnv("TURN_RECORDED_TOPIC_NAME", "TURN_RECORDED"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
