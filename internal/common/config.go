package common

import (
	"os"
	"strconv"
	"time"

	"github.com/seyi-adeleke/riskscore/constants"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Jobs     JobsConfig
	Models   ModelsConfig
	Ingest   IngestConfig
	Server   ServerConfig
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

// JobsConfig holds bulk-upload pipeline configuration
type JobsConfig struct {
	ChunkSize    int
	SubBatchSize int
	MaxRows      int
	Workers      int
	QueueSize    int
	ChunkTimeout time.Duration
}

// ModelsConfig points at the pre-fitted scoring artifacts
type ModelsConfig struct {
	AnnualPath    string
	QuarterlyPath string
}

// IngestConfig holds the workbook drop-directory configuration
type IngestConfig struct {
	WatchDir string
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
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
		Jobs: JobsConfig{
			ChunkSize:    getEnvAsInt("JOB_CHUNK_SIZE", constants.DefaultChunkSize),
			SubBatchSize: getEnvAsInt("JOB_SUB_BATCH_SIZE", constants.DefaultSubBatch),
			MaxRows:      getEnvAsInt("JOB_MAX_ROWS", constants.MaxUploadRows),
			Workers:      getEnvAsInt("JOB_WORKERS", 6),
			QueueSize:    getEnvAsInt("JOB_QUEUE_SIZE", 512),
			ChunkTimeout: getEnvAsDuration("JOB_CHUNK_TIMEOUT", 3*time.Minute),
		},
		Models: ModelsConfig{
			AnnualPath:    getEnv("MODEL_ANNUAL_PATH", "./models/annual_v1.json"),
			QuarterlyPath: getEnv("MODEL_QUARTERLY_PATH", "./models/quarterly_v1.json"),
		},
		Ingest: IngestConfig{
			WatchDir: getEnv("UPLOAD_WATCH_DIR", ""),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
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
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Jobs.ChunkSize <= 0 {
		return NewAppError("CONFIG_ERROR", "JOB_CHUNK_SIZE must be positive", ErrInvalidInput)
	}
	if c.Jobs.SubBatchSize <= 0 {
		return NewAppError("CONFIG_ERROR", "JOB_SUB_BATCH_SIZE must be positive", ErrInvalidInput)
	}
	if c.Models.AnnualPath == "" || c.Models.QuarterlyPath == "" {
		return NewAppError("CONFIG_ERROR", "model artifact paths are required", ErrInvalidInput)
	}
	return nil
}
