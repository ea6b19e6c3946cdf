package config

import "os"

type Config struct {
	// Server
	Port        string
	CORSOrigins string

	// Admin access (single static secret, bearer or ?token= fallback)
	AdminToken    string
	AdminUsername string
	AdminPassword string

	// Storage: "memory" (default) or "postgres"
	StorageDriver string

	// Observability
	SentryDSN string
	Env       string

	// Database (postgres driver only)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		AdminToken:    getEnv("ADMIN_TOKEN", ""),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		StorageDriver: getEnv("STORAGE_DRIVER", "memory"),

		SentryDSN: getEnv("SENTRY_DSN", ""),
		Env:       getEnv("APP_ENV", "development"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "masambukidi"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
