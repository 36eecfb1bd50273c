package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Ledger   LedgerConfig
	Report   ReportConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// LedgerConfig configures the external payments-ledger API client
type LedgerConfig struct {
	APIKey              string
	BaseURL             string
	RequestTimeout      time.Duration
	PageSize            int
	RequestsPerSecond   int
	BreakerMaxFailures  int
	BreakerResetTimeout time.Duration
}

// ReportConfig controls how dates and times are rendered in tool output.
// All tool-facing timestamps use a single named civil timezone.
type ReportConfig struct {
	Timezone string
	Location *time.Location
}

type SecurityConfig struct {
	AgentAuthToken     string
	RateLimitPerSecond int
	RateLimitBurst     int
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Ledger: LedgerConfig{
			APIKey:              getEnv("LEDGER_API_KEY", ""),
			BaseURL:             getEnv("LEDGER_BASE_URL", "https://api.stripe.com/v1"),
			RequestTimeout:      getDurationEnv("LEDGER_REQUEST_TIMEOUT", 30*time.Second),
			PageSize:            getIntEnv("LEDGER_PAGE_SIZE", 100),
			RequestsPerSecond:   getIntEnv("LEDGER_REQUESTS_PER_SECOND", 25),
			BreakerMaxFailures:  getIntEnv("LEDGER_BREAKER_MAX_FAILURES", 5),
			BreakerResetTimeout: getDurationEnv("LEDGER_BREAKER_RESET_TIMEOUT", 30*time.Second),
		},
		Report: ReportConfig{
			Timezone: getEnv("REPORT_TIMEZONE", "America/Los_Angeles"),
		},
		Security: SecurityConfig{
			AgentAuthToken:     getEnv("AGENT_AUTH_TOKEN", ""),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 10),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 20),
		},
	}

	loc, err := time.LoadLocation(config.Report.Timezone)
	if err != nil {
		log.Fatal("Failed to load report timezone:", err)
	}
	config.Report.Location = loc

	if config.Ledger.APIKey == "" && !config.IsDevelopment() {
		log.Fatal("LEDGER_API_KEY is required outside development")
	}

	return config
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
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
