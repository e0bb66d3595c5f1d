package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort       string // Application port
	DBHost        string // Database host
	DBPort        string // Database port
	DBUser        string // Database user
	DBPassword    string // Database password
	DBName        string // Database name
	DBSSLMode     string // Database SSL mode
	JWTSecret     string // JWT secret key
	RedisAddr     string // Redis server address
	RedisPass     string // Redis password
	RedisDB       int    // Redis database number
	UploadDir     string // Base directory for uploaded images
	MaxFileSize   int64  // Maximum upload size in bytes
	SMTPHost      string // SMTP server host
	SMTPPort      string // SMTP server port
	SMTPUser      string // SMTP username
	SMTPPassword  string // SMTP password
	SMTPFrom      string // Sender address for outgoing mail
	ContactEmail  string // Recipient of contact form messages
	FrontendURL   string // Allowed CORS origin
	AdminUsername string // Seeded admin username
	AdminPassword string // Seeded admin password
	AdminEmail    string // Seeded admin email
	IsProd        bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	maxFileSize, err := strconv.ParseInt(getEnv("MAX_FILE_SIZE", ""), 10, 64)
	if err != nil || maxFileSize <= 0 {
		maxFileSize = 5 * 1024 * 1024 // 5MB default
	}
	return &Config{
		AppPort:       getEnv("APP_PORT", "3000"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		DBName:        getEnv("DB_NAME", "portfolio"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:     getEnv("REDIS_PASS", ""),
		RedisDB:       redisDB,
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		MaxFileSize:   maxFileSize,
		SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getEnv("SMTP_PORT", "465"),
		SMTPUser:      getEnv("SMTP_USER", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:      getEnv("SMTP_FROM", ""),
		ContactEmail:  getEnv("CONTACT_EMAIL", getEnv("SMTP_FROM", "")),
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:5173"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@glowbyhanka.cz"),
		IsProd:        getEnv("IS_PROD", "") == "true",
	}
}

// DSN builds the PostgreSQL connection string
func (c *Config) DSN() string {
	return "host=" + c.DBHost + " port=" + c.DBPort + " user=" + c.DBUser +
		" password=" + c.DBPassword + " dbname=" + c.DBName + " sslmode=" + c.DBSSLMode
}

// getEnv returns the value of the environment variable or a default
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}
