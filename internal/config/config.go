package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Forecast   ForecastConfig
	Allocation AllocationConfig
	Budget     BudgetConfig
	Security   SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	LogLevel         string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	RequestTimeout   time.Duration
	CORSAllowOrigins []string
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
	AutoMigrate     bool
	SeedDatabase    bool
	MigrationsPath  string
}

// ForecastConfig bounds the order search and the interval width used by the forecaster.
type ForecastConfig struct {
	MaxP              int
	MaxD              int
	MaxQ              int
	MinObservations   int
	ConfidenceLevel   float64
	StationarityAlpha float64
	Workers           int
}

// AllocationConfig holds the deficit reduction policy. Field names mirror the
// keys of the optional TOML policy file.
type AllocationConfig struct {
	BasePercent  float64   `toml:"base_percent"`
	CapPercent   float64   `toml:"cap_percent"`
	TierDivisors []float64 `toml:"tier_divisors"`
	Tolerance    float64   `toml:"tolerance"`
	MaxPasses    int       `toml:"max_passes"`
	PolicyFile   string    `toml:"-"`
}

type BudgetConfig struct {
	RetentionMonths int
	MinHistoryRows  int
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
	MaxUploadBytes     int64
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			Host:           getEnv("SERVER_HOST", "localhost"),
			Environment:    getEnv("APP_ENV", "development"),
			LogLevel:       getEnv("LOG_LEVEL", "info"),
			ReadTimeout:    getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			RequestTimeout: getDurationEnv("FORECAST_REQUEST_TIMEOUT", 45*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "finsense_user"),
			Password:        getEnv("DB_PASSWORD", "finsense_password"),
			Name:            getEnv("DB_NAME", "finsense_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			SeedDatabase:    getBoolEnv("SEED_DATABASE", false),
			MigrationsPath:  getEnv("MIGRATIONS_PATH", "db/migrations"),
		},
		Forecast: ForecastConfig{
			MaxP:              getIntEnv("FORECAST_MAX_P", 3),
			MaxD:              getIntEnv("FORECAST_MAX_D", 3),
			MaxQ:              getIntEnv("FORECAST_MAX_Q", 3),
			MinObservations:   getIntEnv("FORECAST_MIN_OBSERVATIONS", 3),
			ConfidenceLevel:   getFloatEnv("FORECAST_CONFIDENCE_LEVEL", 0.95),
			StationarityAlpha: getFloatEnv("FORECAST_STATIONARITY_ALPHA", 0.05),
			Workers:           getIntEnv("FORECAST_WORKERS", 4),
		},
		Allocation: DefaultAllocationConfig(),
		Budget: BudgetConfig{
			RetentionMonths: getIntEnv("BUDGET_RETENTION_MONTHS", 3),
			MinHistoryRows:  getIntEnv("BUDGET_MIN_HISTORY_ROWS", 3),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
			MaxUploadBytes:     int64(getIntEnv("MAX_UPLOAD_BYTES", 10<<20)),
		},
	}

	config.Allocation.BasePercent = getFloatEnv("ALLOCATION_BASE_PERCENT", config.Allocation.BasePercent)
	config.Allocation.CapPercent = getFloatEnv("ALLOCATION_CAP_PERCENT", config.Allocation.CapPercent)
	config.Allocation.Tolerance = getFloatEnv("ALLOCATION_TOLERANCE", config.Allocation.Tolerance)
	config.Allocation.MaxPasses = getIntEnv("ALLOCATION_MAX_PASSES", config.Allocation.MaxPasses)
	config.Allocation.PolicyFile = getEnv("ALLOCATION_POLICY_FILE", "")

	if config.Allocation.PolicyFile != "" {
		if err := config.Allocation.LoadPolicyFile(config.Allocation.PolicyFile); err != nil {
			log.Fatal("Failed to load allocation policy:", err)
		}
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

// DefaultAllocationConfig returns the reduction policy used when nothing overrides it.
func DefaultAllocationConfig() AllocationConfig {
	return AllocationConfig{
		BasePercent:  50,
		CapPercent:   20,
		TierDivisors: []float64{1, 2, 4, 8},
		Tolerance:    0.01,
		MaxPasses:    1000,
	}
}

// LoadPolicyFile overlays the keys present in a TOML policy file onto c.
func (c *AllocationConfig) LoadPolicyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading policy file: %w", err)
	}

	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing policy file: %w", err)
	}

	return c.Validate()
}

// Validate rejects policies the allocator cannot run with.
func (c *AllocationConfig) Validate() error {
	if c.BasePercent <= 0 || c.BasePercent > 100 {
		return fmt.Errorf("base_percent must be in (0, 100], got %v", c.BasePercent)
	}
	if c.CapPercent <= 0 || c.CapPercent > 100 {
		return fmt.Errorf("cap_percent must be in (0, 100], got %v", c.CapPercent)
	}
	if len(c.TierDivisors) == 0 {
		return fmt.Errorf("tier_divisors must not be empty")
	}
	for _, d := range c.TierDivisors {
		if d <= 0 {
			return fmt.Errorf("tier_divisors must be positive, got %v", d)
		}
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative, got %v", c.Tolerance)
	}
	if c.MaxPasses <= 0 {
		return fmt.Errorf("max_passes must be positive, got %d", c.MaxPasses)
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL returns the connection string in the form golang-migrate expects.
func (c *DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
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

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
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

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}
