package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	App       AppConfig
	Firebase  FirebaseConfig
	Upload    UploadConfig
	Redis     RedisConfig
	Database  DatabaseConfig
	Contact   ContactConfig
	Retention RetentionConfig
	CORS      CORSConfig
}

type ServerConfig struct {
	Port string
}

type AppConfig struct {
	Environment string
	Version     string
	MetricsSalt string
}

type FirebaseConfig struct {
	ProjectID       string
	CredentialsPath string
}

// UploadConfig selects and configures the image hosting backend.
// Backend is "cloudinary" or "s3".
type UploadConfig struct {
	Backend      string
	CloudName    string
	UploadPreset string
	S3Bucket     string
	S3Region     string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type DatabaseConfig struct {
	DSN string
}

type ContactConfig struct {
	WhatsAppPhone string
}

type RetentionConfig struct {
	VisitorDays int
	ContactDays int
}

type CORSConfig struct {
	AllowOrigins []string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			MetricsSalt: getEnv("METRICS_SALT", ""),
		},
		Firebase: FirebaseConfig{
			ProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
			CredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		},
		Upload: UploadConfig{
			Backend:      getEnv("UPLOAD_BACKEND", "cloudinary"),
			CloudName:    getEnv("CLOUDINARY_CLOUD_NAME", ""),
			UploadPreset: getEnv("CLOUDINARY_UPLOAD_PRESET", "portfolio"),
			S3Bucket:     getEnv("S3_BUCKET", ""),
			S3Region:     getEnv("S3_REGION", "us-east-1"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Database: DatabaseConfig{
			DSN: getEnv("DB_DSN", ""),
		},
		Contact: ContactConfig{
			WhatsAppPhone: getEnv("CONTACT_WHATSAPP_PHONE", ""),
		},
		Retention: RetentionConfig{
			VisitorDays: getEnvAsInt("RETENTION_VISITOR_DAYS", 90),
			ContactDays: getEnvAsInt("RETENTION_CONTACT_DAYS", 180),
		},
		CORS: CORSConfig{
			AllowOrigins: []string{getEnv("CORS_ALLOW_ORIGIN", "*")},
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Firebase.ProjectID == "" {
		return fmt.Errorf("FIREBASE_PROJECT_ID is required")
	}

	switch c.Upload.Backend {
	case "cloudinary":
		if c.Upload.CloudName == "" {
			return fmt.Errorf("CLOUDINARY_CLOUD_NAME is required for the cloudinary backend")
		}
	case "s3":
		if c.Upload.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required for the s3 backend")
		}
	default:
		return fmt.Errorf("UPLOAD_BACKEND must be cloudinary or s3, got %q", c.Upload.Backend)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
