package config

import (
	"log"
	"strings"
	"time"

	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from an optional env file, with process
// environment variables taking precedence over the file.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	defaults := map[string]interface{}{
		"APP_NAME":    "boleias",
		"APP_ENV":     "local",
		"APP_DEBUG":   false,
		"APP_VERSION": "dev",

		"SERVER_HOST":             "0.0.0.0",
		"SERVER_PORT":             8080,
		"SERVER_READ_TIMEOUT":     10,
		"SERVER_WRITE_TIMEOUT":    10,
		"SERVER_SHUTDOWN_TIMEOUT": 15,

		"DB_DRIVER":     "pgx",
		"DB_HOST":       "localhost",
		"DB_PORT":       5432,
		"DB_USERNAME":   "postgres",
		"DB_PASSWORD":   "",
		"DB_DATABASE":   "boleias",
		"DB_SSL_MODE":   "disable",
		"DB_MAX_CONNS":  20,
		"DB_IDLE_CONNS": 5,

		"REDIS_HOST":      "localhost",
		"REDIS_PORT":      6379,
		"REDIS_PASSWORD":  "",
		"REDIS_DB":        0,
		"REDIS_POOL_SIZE": 10,

		"NSQ_ENABLED":      false,
		"NSQ_NSQD_ADDRESS": "localhost:4150",
		"NSQ_TOPIC":        "boleias.entity_changed",

		"JWT_SECRET":     "",
		"JWT_EXPIRATION": 720,
		"JWT_ISSUER":     "boleias",

		"COORDINATOR_PIN_HASH": "",

		"MATCH_STORE_TIMEOUT":    "5s",
		"MATCH_COMPATIBLE_LIMIT": 0,

		"RATE_LIMIT_ENABLED":  true,
		"RATE_LIMIT_REQUESTS": 10,
		"RATE_LIMIT_WINDOW":   "1m",

		"AUDIT_MAX_RETRIES":               3,
		"AUDIT_INITIAL_DELAY":             "100ms",
		"AUDIT_MAX_DELAY":                 "2s",
		"AUDIT_MAX_IN_FLIGHT":             16,
		"AUDIT_PUBLISH_FAILURE_THRESHOLD": 5,
		"AUDIT_PUBLISH_COOLDOWN":          "30s",

		"LOG_LEVEL":       "info",
		"LOG_FILE_PATH":   "logs/boleias.log",
		"LOG_MAX_SIZE":    100,
		"LOG_MAX_AGE":     7,
		"LOG_MAX_BACKUPS": 3,
		"LOG_COMPRESS":    true,
		"LOG_TYPE":        "console",
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NSQ config
	configs.NSQ.Enabled = v.GetBool("NSQ_ENABLED")
	configs.NSQ.NSQDAddress = v.GetString("NSQ_NSQD_ADDRESS")
	configs.NSQ.Topic = v.GetString("NSQ_TOPIC")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// Coordinator config
	configs.Coordinator.PINHash = v.GetString("COORDINATOR_PIN_HASH")

	// Match config
	configs.Match.StoreTimeout = getDuration(v, "MATCH_STORE_TIMEOUT", 5*time.Second)
	configs.Match.CompatibleLimit = v.GetInt("MATCH_COMPATIBLE_LIMIT")

	// Rate limit config
	configs.RateLimit.Enabled = v.GetBool("RATE_LIMIT_ENABLED")
	configs.RateLimit.Requests = v.GetInt("RATE_LIMIT_REQUESTS")
	configs.RateLimit.Window = getDuration(v, "RATE_LIMIT_WINDOW", time.Minute)

	// Audit config
	configs.Audit.MaxRetries = v.GetInt("AUDIT_MAX_RETRIES")
	configs.Audit.InitialDelay = getDuration(v, "AUDIT_INITIAL_DELAY", 100*time.Millisecond)
	configs.Audit.MaxDelay = getDuration(v, "AUDIT_MAX_DELAY", 2*time.Second)
	configs.Audit.MaxInFlight = v.GetInt("AUDIT_MAX_IN_FLIGHT")
	configs.Audit.PublishFailureThreshold = v.GetInt("AUDIT_PUBLISH_FAILURE_THRESHOLD")
	configs.Audit.PublishCooldown = getDuration(v, "AUDIT_PUBLISH_COOLDOWN", 30*time.Second)

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")
	configs.Logger.MaxSize = v.GetInt64("LOG_MAX_SIZE")
	configs.Logger.MaxAge = v.GetInt("LOG_MAX_AGE")
	configs.Logger.MaxBackups = v.GetInt("LOG_MAX_BACKUPS")
	configs.Logger.Compress = v.GetBool("LOG_COMPRESS")
	configs.Logger.Type = v.GetString("LOG_TYPE")

	return configs
}

// getDuration parses Go duration strings ("5s", "1m"), falling back on bad input
func getDuration(v *viper.Viper, key string, defaultValue time.Duration) time.Duration {
	raw := v.GetString(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %s", key, defaultValue)
		return defaultValue
	}
	return d
}
