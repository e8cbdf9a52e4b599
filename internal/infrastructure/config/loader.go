package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "AS"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables win over it
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	return LoadConfigFrom(getEnvironment(), ConfigPaths...)
}

// LoadConfigFrom reads <env>.yaml from the first path that has it and applies overrides
func LoadConfigFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in the search paths
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 30) // covers the generation timeout
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 10)
	v.SetDefault("server.shutdownTimeout", 10)
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.slowThreshold", 200)  // milliseconds
	v.SetDefault("database.autoMigrate", true)
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("database.mongo.database", "adspark")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.backend", "memory")
	v.SetDefault("rateLimit.limit", 10)
	v.SetDefault("rateLimit.window", 60) // seconds
	v.SetDefault("rateLimit.pathPrefix", "/api")
	v.SetDefault("rateLimit.cleanupInterval", 60) // seconds

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("generator.provider", "template")
	v.SetDefault("generator.model", "gemini-1.5-flash")
	v.SetDefault("generator.timeout", 15) // seconds
	v.SetDefault("generator.variants", 3)

	v.SetDefault("payment.appURL", "http://localhost:3000")
	v.SetDefault("payment.currency", "usd")

	v.SetDefault("auth.issuer", "adspark")
	v.SetDefault("auth.tokenTTL", 60) // minutes
}

// getEnvironment determines the environment from AS_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides lets explicit environment variables override file values.
// Secrets are expected to arrive this way rather than through the yaml files.
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"AS_DB_DRIVER":             "database.driver",
		"AS_DB_HOST":               "database.host",
		"AS_DB_PORT":               "database.port",
		"AS_DB_USERNAME":           "database.username",
		"AS_DB_PASSWORD":           "database.password",
		"AS_DB_NAME":               "database.database",
		"AS_DB_SSL_MODE":           "database.sslMode",
		"AS_MONGO_URI":             "database.mongo.uri",
		"AS_MONGO_DATABASE":        "database.mongo.database",
		"AS_SERVER_HOST":           "server.host",
		"AS_LOGGER_LEVEL":          "logger.level",
		"AS_RATE_LIMIT_BACKEND":    "rateLimit.backend",
		"AS_REDIS_ADDR":            "redis.addr",
		"AS_REDIS_PASSWORD":        "redis.password",
		"AS_GENERATOR_PROVIDER":    "generator.provider",
		"AS_GENERATOR_ENDPOINT":    "generator.endpoint",
		"AS_GENERATOR_API_KEY":     "generator.apiKey",
		"AS_GENERATOR_MODEL":       "generator.model",
		"AS_STRIPE_SECRET_KEY":     "payment.secretKey",
		"AS_STRIPE_WEBHOOK_SECRET": "payment.webhookSecret",
		"AS_APP_URL":               "payment.appURL",
		"AS_JWT_SECRET":            "auth.jwtSecret",
	}
	for env, key := range stringOverrides {
		if val := os.Getenv(env); val != "" {
			v.Set(key, val)
		}
	}

	if port := getEnvInt("AS_SERVER_PORT", 0); port > 0 {
		v.Set("server.port", port)
	}
	if maxOpenConns := getEnvInt("AS_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("AS_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if limit := getEnvInt("AS_RATE_LIMIT_LIMIT", 0); limit > 0 {
		v.Set("rateLimit.limit", limit)
	}
	if window := getEnvInt("AS_RATE_LIMIT_WINDOW_SECONDS", 0); window > 0 {
		v.Set("rateLimit.window", window)
	}
	if timeout := getEnvInt("AS_GENERATOR_TIMEOUT_SECONDS", 0); timeout > 0 {
		v.Set("generator.timeout", timeout)
	}
	if enabled := os.Getenv("AS_RATE_LIMIT_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			v.Set("rateLimit.enabled", b)
		}
	}
}

// getEnvInt reads an environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts the raw unit counts read from yaml into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.SlowThreshold = time.Duration(config.Database.SlowThreshold) * time.Millisecond
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.RateLimit.Window = time.Duration(config.RateLimit.Window) * time.Second
	config.RateLimit.CleanupInterval = time.Duration(config.RateLimit.CleanupInterval) * time.Second

	config.Generator.Timeout = time.Duration(config.Generator.Timeout) * time.Second
	config.Auth.TokenTTL = time.Duration(config.Auth.TokenTTL) * time.Minute
}

// DSN builds the postgres connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode)
}
