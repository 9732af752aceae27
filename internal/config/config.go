package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// Database Configuration (MySQL)
	Database DatabaseConfig `json:"database"`

	// MongoDB / GridFS Configuration (image storage)
	MongoDB MongoConfig `json:"mongodb"`

	// Media upload limits
	Media MediaConfig `json:"media"`

	// Logging Configuration
	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Port         string `json:"port"`
	Host         string `json:"host"`
	ReadTimeout  int    `json:"read_timeout"`
	WriteTimeout int    `json:"write_timeout"`
	Environment  string `json:"environment"` // development, staging, production
}

// DatabaseConfig contains MySQL connection configuration
type DatabaseConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

// MongoConfig contains MongoDB connection configuration for GridFS image storage
type MongoConfig struct {
	URI      string `json:"uri"`
	Database string `json:"database"`
	Bucket   string `json:"bucket"`
}

// MediaConfig contains upload validation and resize parameters
type MediaConfig struct {
	MaxUploadBytes int64 `json:"max_upload_bytes"`
	ImageSize      int   `json:"image_size"`     // square dimension for the main image
	ThumbnailSize  int   `json:"thumbnail_size"` // square dimension for the thumbnail
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // json, text
}

// Load builds a Config from environment variables, applying defaults
// for anything not set. godotenv.Load in main populates the env first.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 15),
			Environment:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:         getEnv("MYSQL_HOST", "localhost"),
			Port:         getEnv("MYSQL_PORT", "3306"),
			Username:     getEnv("MYSQL_USER", "root"),
			Password:     getEnv("MYSQL_PASSWORD", ""),
			DatabaseName: getEnv("MYSQL_DATABASE", "pixgram"),
			MaxOpenConns: getEnvInt("MYSQL_MAX_OPEN_CONNS", 50),
			MaxIdleConns: getEnvInt("MYSQL_MAX_IDLE_CONNS", 10),
		},
		MongoDB: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DATABASE", "pixgram_media"),
			Bucket:   getEnv("MONGO_BUCKET", "images"),
		},
		Media: MediaConfig{
			MaxUploadBytes: int64(getEnvInt("MEDIA_MAX_UPLOAD_BYTES", 10<<20)),
			ImageSize:      getEnvInt("MEDIA_IMAGE_SIZE", 1080),
			ThumbnailSize:  getEnvInt("MEDIA_THUMBNAIL_SIZE", 320),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}
}

func (cfg *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func (cfg *Config) MongoURI() string {
	return cfg.MongoDB.URI
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
