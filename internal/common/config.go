package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Recognizer RecognizerConfig
	Storage    StorageConfig
	Queue      QueueConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// RecognizerConfig holds recognition-service configuration
type RecognizerConfig struct {
	BaseURL      string
	APIKey       string
	MaxRetries   int
	PollInterval time.Duration // base unit of the linear backoff
	HTTPTimeout  time.Duration
}

// StorageConfig names the blob containers the pipeline moves work through.
type StorageConfig struct {
	Root               string // filesystem root holding all containers
	DropPrefix         string // inbound drop containers are "<prefix><format>"
	InboundImages      string
	OutboundJSON       string
	ProcessingComplete string
	ExceptionContainer string
}

// QueueConfig sizes the in-process processing queue.
type QueueConfig struct {
	Workers        int
	Size           int
	ProcessTimeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Recognizer: RecognizerConfig{
			BaseURL:      getEnv("RECOGNIZER_BASE_URL", ""),
			APIKey:       getEnv("RECOGNIZER_API_KEY", ""),
			MaxRetries:   getEnvAsInt("RECOGNIZER_MAX_RETRIES", 10),
			PollInterval: getEnvAsDuration("RECOGNIZER_POLL_INTERVAL", 3*time.Second),
			HTTPTimeout:  getEnvAsDuration("RECOGNIZER_HTTP_TIMEOUT", 30*time.Second),
		},
		Storage: StorageConfig{
			Root:               getEnv("STORAGE_ROOT", "./data"),
			DropPrefix:         getEnv("STORAGE_DROP_PREFIX", "drop-"),
			InboundImages:      getEnv("STORAGE_INBOUND_IMAGES", "recognize-in-image"),
			OutboundJSON:       getEnv("STORAGE_OUTBOUND_JSON", "process-in-json"),
			ProcessingComplete: getEnv("STORAGE_PROCESSING_COMPLETE", "processing-complete"),
			ExceptionContainer: getEnv("STORAGE_EXCEPTIONS", "exceptions"),
		},
		Queue: QueueConfig{
			Workers:        getEnvAsInt("QUEUE_WORKERS", 4),
			Size:           getEnvAsInt("QUEUE_SIZE", 256),
			ProcessTimeout: getEnvAsDuration("QUEUE_PROCESS_TIMEOUT", 10*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError(CodeConfigError, "DB_URL is required", ErrInvalidInput)
	}
	if c.Recognizer.BaseURL == "" {
		return NewAppError(CodeConfigError, "RECOGNIZER_BASE_URL is required", ErrInvalidInput)
	}
	if c.Recognizer.APIKey == "" {
		return NewAppError(CodeConfigError, "RECOGNIZER_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError(CodeConfigError, "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Recognizer.MaxRetries < 1 {
		return NewAppError(CodeConfigError, "RECOGNIZER_MAX_RETRIES must be at least 1", ErrInvalidInput)
	}
	return nil
}
