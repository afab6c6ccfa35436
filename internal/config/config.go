package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"
)

const (
	DriverMemory = "memory"
	DriverMySQL  = "mysql"
)

// Config is read from the environment once at startup and treated as immutable.
type Config struct {
	// Server
	Port     string
	GinMode  string
	LogLevel string

	// Auth
	JWTSecret       string
	TokenTTL        time.Duration
	BcryptCost      int
	HashWorkers     int
	ResetCodeTTL    time.Duration
	ExposeResetCode bool

	// Storage
	StoreDriver string
	MySQLDSN    string

	// Redis (token revocation)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Kafka
	KafkaBrokers []string
	KafkaTopic   string

	// SMTP
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	// Rate limit, requests per minute per client IP on /api/auth
	RateLimitAuth int

	CORSAllowedOrigin string
	SeedData          bool

	// Proxies whose X-Forwarded-For is trusted for client IPs. Empty trusts none.
	TrustedProxies []string
}

// Load reads Config from the environment. Missing required variables are an error.
func Load() (*Config, error) {
	cfg := &Config{}

	var missing []string

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	cfg.StoreDriver = strings.ToLower(getEnvString("STORE_DRIVER", DriverMemory))
	cfg.MySQLDSN = os.Getenv("MYSQL_DSN")
	if cfg.StoreDriver == DriverMySQL && cfg.MySQLDSN == "" {
		missing = append(missing, "MYSQL_DSN")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables are not set: %v", missing)
	}
	if cfg.StoreDriver != DriverMemory && cfg.StoreDriver != DriverMySQL {
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	cfg.Port = getEnvString("PORT", "5000")
	cfg.GinMode = getEnvString("GIN_MODE", "release")
	cfg.LogLevel = getEnvString("LOG_LEVEL", "info")

	cfg.TokenTTL = getEnvDuration("TOKEN_TTL", 7*24*time.Hour)
	cfg.BcryptCost = getEnvInt("BCRYPT_COST", 10)
	cfg.HashWorkers = getEnvInt("HASH_WORKERS", runtime.GOMAXPROCS(0))
	cfg.ResetCodeTTL = getEnvDuration("RESET_CODE_TTL", 15*time.Minute)
	cfg.ExposeResetCode = getEnvBool("EXPOSE_RESET_CODE", true)

	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.RedisDB = getEnvInt("REDIS_DB", 0)

	cfg.KafkaBrokers = getEnvList("KAFKA_BROKERS")
	cfg.KafkaTopic = getEnvString("KAFKA_TOPIC", "ngo-platform-events")

	cfg.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.SMTPPort = getEnvInt("SMTP_PORT", 587)
	cfg.SMTPUsername = os.Getenv("SMTP_USERNAME")
	cfg.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.SMTPFrom = os.Getenv("SMTP_FROM")

	cfg.RateLimitAuth = getEnvInt("RATE_LIMIT_AUTH", 30)
	cfg.CORSAllowedOrigin = getEnvString("CORS_ALLOWED_ORIGIN", "*")
	cfg.TrustedProxies = getEnvList("TRUSTED_PROXIES")
	cfg.SeedData = getEnvBool("SEED_DATA", false)

	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}

func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
