package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	Services  ServicesConfig
	Trip      TripConfig
	Call      CallConfig
	Debounce  DebounceConfig
	Telephony TelephonyConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
}

// ServicesConfig contains URLs for other services
type ServicesConfig struct {
	CallBackendURL string
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains the nsqd address used for call audit events
type NSQConfig struct {
	Enabled bool
	Address string
	Topic   string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// TripConfig contains trip progress engine configuration
type TripConfig struct {
	DefaultThresholdMeters float64
	SnapshotTTL            time.Duration
	SubscriberBuffer       int
	// SurfaceCallFailure exposes a final call failure on the trip snapshot.
	SurfaceCallFailure bool
	NotificationDelay  time.Duration
	// EngineIdleTTL evicts engines that stayed idle and unobserved this long; 0 keeps them
	EngineIdleTTL time.Duration
}

// CallConfig contains outbound call retry configuration
type CallConfig struct {
	MaxRetries     int
	RetryDelay     time.Duration
	RequestTimeout time.Duration
}

// DebounceConfig contains call backend debounce configuration
type DebounceConfig struct {
	Scope         string // process or user
	Backend       string // memory or redis
	FallbackReset time.Duration
}

// TelephonyConfig contains telephony provider configuration
type TelephonyConfig struct {
	BaseURL    string
	AccountSID string
	AuthToken  string
	CallerID   string
	Message    string
	Timeout    time.Duration
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	LogsEnabled bool
	ForwardLogs bool
}

// LoggerConfig contains Zap logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
