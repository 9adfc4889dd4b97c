package models

import "time"

// Config represents application configuration
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	NSQ         NSQConfig
	JWT         JWTConfig
	Coordinator CoordinatorConfig
	Match       MatchConfig
	RateLimit   RateLimitConfig
	Audit       AuditConfig
	Logger      LoggerConfig
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

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Enabled     bool
	NSQDAddress string
	Topic       string
}

// JWTConfig contains coordinator session token configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// CoordinatorConfig holds the shared admin PIN used to open coordinator sessions
type CoordinatorConfig struct {
	// PINHash is a bcrypt hash of the admin PIN
	PINHash string
}

// MatchConfig contains match service specific configuration
type MatchConfig struct {
	StoreTimeout time.Duration
	// CompatibleLimit caps the offer pool read per search; 0 reads every available offer
	CompatibleLimit int
}

// RateLimitConfig limits public submissions per client IP
type RateLimitConfig struct {
	Enabled  bool
	Requests int
	Window   time.Duration
}

// AuditConfig controls the audit recorder retries and the event publish breaker
type AuditConfig struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	// MaxInFlight bounds concurrent sink writes; later entries queue behind them
	MaxInFlight int

	PublishFailureThreshold int
	PublishCooldown         time.Duration
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
	Type       string
}
