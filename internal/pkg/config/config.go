package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/wakestop/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "wakestop")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 15)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 15)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 2)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "nats://localhost:4222")

	// NSQ config
	configs.NSQ.Enabled = GetEnvAsBool("NSQ_ENABLED", false)
	configs.NSQ.Address = GetEnv("NSQ_ADDRESS", "localhost:4150")
	configs.NSQ.Topic = GetEnv("NSQ_CALL_TOPIC", "call_events")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "wakestop")

	// Services config
	configs.Services.CallBackendURL = GetEnv("CALL_BACKEND_URL", "http://localhost:9994")

	// Trip config
	configs.Trip.DefaultThresholdMeters = GetEnvAsFloat("TRIP_DEFAULT_THRESHOLD_METERS", 482.81)
	configs.Trip.SnapshotTTL = GetEnvAsDuration("TRIP_SNAPSHOT_TTL", 24*time.Hour)
	configs.Trip.SubscriberBuffer = GetEnvAsInt("TRIP_SUBSCRIBER_BUFFER", 16)
	configs.Trip.SurfaceCallFailure = GetEnvAsBool("TRIP_SURFACE_CALL_FAILURE", false)
	configs.Trip.NotificationDelay = GetEnvAsDuration("TRIP_NOTIFICATION_DELAY", 0)
	configs.Trip.EngineIdleTTL = GetEnvAsDuration("TRIP_ENGINE_IDLE_TTL", 30*time.Minute)

	// Call retry config
	configs.Call.MaxRetries = GetEnvAsInt("CALL_MAX_RETRIES", 3)
	configs.Call.RetryDelay = GetEnvAsDuration("CALL_RETRY_DELAY", 2*time.Second)
	configs.Call.RequestTimeout = GetEnvAsDuration("CALL_REQUEST_TIMEOUT", 10*time.Second)

	// Debounce config
	configs.Debounce.Scope = GetEnv("DEBOUNCE_SCOPE", "process")
	configs.Debounce.Backend = GetEnv("DEBOUNCE_BACKEND", "memory")
	configs.Debounce.FallbackReset = GetEnvAsDuration("DEBOUNCE_FALLBACK_RESET", 5*time.Second)

	// Telephony config
	configs.Telephony.BaseURL = GetEnv("TELEPHONY_BASE_URL", "https://api.twilio.com")
	configs.Telephony.AccountSID = GetEnv("TELEPHONY_ACCOUNT_SID", "")
	configs.Telephony.AuthToken = GetEnv("TELEPHONY_AUTH_TOKEN", "")
	configs.Telephony.CallerID = GetEnv("TELEPHONY_CALLER_ID", "")
	configs.Telephony.Message = GetEnv("TELEPHONY_MESSAGE", "Wake up! You are approaching your stop.")
	configs.Telephony.Timeout = GetEnvAsDuration("TELEPHONY_TIMEOUT", 10*time.Second)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.LogsEnabled = GetEnvAsBool("NEW_RELIC_LOGS_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsDuration accepts Go duration strings such as "2s" or "500ms"
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}
