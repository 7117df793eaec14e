package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	JWTSecret  string
	SessionTTL time.Duration

	DBDriver string
	DBHost   string
	DBPort   string
	DBUser   string
	DBPass   string
	DBName   string
	DBPath   string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	StorageBackend string
	UploadDir      string

	MinioHost     string
	MinioPort     string
	MinioUsername string
	MinioPassword string
	MinioUseSSL   bool
	BucketName    string

	LoginRate  float64
	LoginBurst int
}

// getEnv returns the environment value or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvBool(key string, defaultValue bool) bool {
	value := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	if value == "" {
		return defaultValue
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		JWTSecret:  getEnv("JWT_SECRET", "l=ax+b"),
		SessionTTL: getEnvDuration("SESSION_TTL", 24*time.Hour),

		DBDriver: getEnv("DB_DRIVER", "mysql"),
		DBHost:   getEnv("DB_HOST", "localhost"),
		DBPort:   getEnv("DB_PORT", "3306"),
		DBUser:   getEnv("DB_USER", "root"),
		DBPass:   getEnv("DB_PASS", "root"),
		DBName:   getEnv("DB_NAME", "BookShelf"),
		DBPath:   getEnv("DB_PATH", "data/bookshelf.db"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		StorageBackend: getEnv("STORAGE_BACKEND", "disk"),
		UploadDir:      getEnv("UPLOAD_DIR", "static/pdfs"),

		MinioHost:     getEnv("MINIO_HOST", "localhost"),
		MinioPort:     getEnv("MINIO_PORT", "9000"),
		MinioUsername: getEnv("MINIO_USERNAME", "minioadmin"),
		MinioPassword: getEnv("MINIO_PASSWORD", "minioadmin"),
		MinioUseSSL:   getEnvBool("MINIO_USE_SSL", false),
		BucketName:    getEnv("BUCKET_NAME", "bookshelf"),

		LoginRate:  getEnvFloat("LOGIN_RATE", 2),
		LoginBurst: getEnvInt("LOGIN_BURST", 5),
	}
}
