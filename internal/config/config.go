package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Partner  PartnerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

// PartnerConfig holds everything needed to call the open finance gateway.
// It is read once at startup and passed by reference into the partner client;
// no component reads environment variables per call.
type PartnerConfig struct {
	BaseURL           string
	Authorization     string
	FinancialID       string
	JWSSignature      string
	UserAgent         string
	DefaultCustomerID string
	Timeout           time.Duration
	BalanceWorkers    int
	VerifyPageSize    int
	ConsentValidity   time.Duration
	QuoteValidity     time.Duration
	RequestsPerSecond int
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type AuthConfig struct {
	JWTSecret     string
	TokenDuration time.Duration
	Issuer        string
}

type SecurityConfig struct {
	RateLimitPerSecond int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Partner: PartnerConfig{
			BaseURL:           getEnv("PARTNER_BASE_URL", "https://jpcjofsdev.apigw-az-eu.webmethods.io"),
			Authorization:     getEnv("PARTNER_AUTHORIZATION", ""),
			FinancialID:       getEnv("PARTNER_FINANCIAL_ID", "001"),
			JWSSignature:      getEnv("PARTNER_JWS_SIGNATURE", ""),
			UserAgent:         getEnv("PARTNER_USER_AGENT", "DinarX-Gateway/1.0"),
			DefaultCustomerID: getEnv("PARTNER_DEFAULT_CUSTOMER_ID", "IND_CUST_015"),
			Timeout:           getDurationEnv("PARTNER_TIMEOUT", 30*time.Second),
			BalanceWorkers:    getIntEnv("PARTNER_BALANCE_WORKERS", 4),
			VerifyPageSize:    getIntEnv("PARTNER_VERIFY_PAGE_SIZE", 20),
			ConsentValidity:   getDurationEnv("PARTNER_CONSENT_VALIDITY", 90*24*time.Hour),
			QuoteValidity:     getDurationEnv("PARTNER_QUOTE_VALIDITY", 5*time.Minute),
			RequestsPerSecond: getIntEnv("PARTNER_REQUESTS_PER_SECOND", 10),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "gateway_user"),
			Password:        getEnv("DB_PASSWORD", "gateway_password"),
			Name:            getEnv("DB_NAME", "gateway_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("JWT_SECRET", ""),
			TokenDuration: getDurationEnv("JWT_TOKEN_DURATION", 24*time.Hour),
			Issuer:        getEnv("JWT_ISSUER", "dinarx-gateway"),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	if err := config.validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	return config
}

// validate enforces that secrets required for production are present at startup.
// Per-call code never checks for missing configuration.
func (c *Config) validate() error {
	if !c.IsProduction() {
		return nil
	}

	if c.Partner.Authorization == "" {
		return fmt.Errorf("PARTNER_AUTHORIZATION must be set in production environments")
	}
	if c.Partner.JWSSignature == "" {
		return fmt.Errorf("PARTNER_JWS_SIGNATURE must be set in production environments")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set in production environments")
	}

	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		} else {
			log.Println("INFO: CORS_ALLOW_ORIGINS not set, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	// Split by comma and trim whitespace
	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}
