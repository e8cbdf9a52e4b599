package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/generator"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/config"
)

// validateConfig ensures all required configuration values are present and consistent
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate the selected store
	switch cfg.Database.Driver {
	case "postgres":
		if cfg.Database.Host == "" {
			missingConfigs = append(missingConfigs, "database.host (or AS_DB_HOST)")
		}
		if cfg.Database.Username == "" {
			missingConfigs = append(missingConfigs, "database.username (or AS_DB_USERNAME)")
		}
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database (or AS_DB_NAME)")
		}
	case "mongo":
		if cfg.Database.Mongo.URI == "" {
			missingConfigs = append(missingConfigs, "database.mongo.uri (or AS_MONGO_URI)")
		}
		if cfg.Database.Mongo.Database == "" {
			missingConfigs = append(missingConfigs, "database.mongo.database")
		}
	default:
		return fmt.Errorf("invalid database.driver: %q, must be postgres or mongo", cfg.Database.Driver)
	}

	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or AS_JWT_SECRET)")
	}
	if cfg.Payment.WebhookSecret == "" {
		missingConfigs = append(missingConfigs, "payment.webhookSecret (or AS_STRIPE_WEBHOOK_SECRET)")
	}
	if cfg.Payment.SecretKey == "" {
		missingConfigs = append(missingConfigs, "payment.secretKey (or AS_STRIPE_SECRET_KEY)")
	}

	switch cfg.Generator.Provider {
	case "", generator.ProviderTemplate:
	case generator.ProviderHTTP:
		if cfg.Generator.Endpoint == "" {
			missingConfigs = append(missingConfigs, "generator.endpoint (or AS_GENERATOR_ENDPOINT)")
		}
	case generator.ProviderGemini:
		if cfg.Generator.APIKey == "" {
			missingConfigs = append(missingConfigs, "generator.apiKey (or AS_GENERATOR_API_KEY)")
		}
	default:
		return fmt.Errorf("invalid generator.provider: %q, must be template, http or gemini", cfg.Generator.Provider)
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.Limit <= 0 {
			missingConfigs = append(missingConfigs, "rateLimit.limit")
		}
		if cfg.RateLimit.Window <= 0 {
			missingConfigs = append(missingConfigs, "rateLimit.window")
		}
		switch cfg.RateLimit.Backend {
		case "memory":
		case "redis":
			if cfg.Redis.Addr == "" {
				missingConfigs = append(missingConfigs, "redis.addr (or AS_REDIS_ADDR)")
			}
		default:
			return fmt.Errorf("invalid rateLimit.backend: %q, must be memory or redis", cfg.RateLimit.Backend)
		}
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// Generation must finish inside the write timeout
	if cfg.Generator.Timeout >= cfg.Server.WriteTimeout {
		return fmt.Errorf("generator.timeout (%s) must be shorter than server.writeTimeout (%s)",
			cfg.Generator.Timeout, cfg.Server.WriteTimeout)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Database.Driver == "postgres" && sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if len(cfg.Server.AllowedOrigins) == 1 && cfg.Server.AllowedOrigins[0] == "*" {
			warnings = append(warnings, "server.allowedOrigins allows every origin")
		}
		if cfg.RateLimit.Enabled && cfg.RateLimit.Backend == "memory" {
			warnings = append(warnings, "rateLimit.backend memory does not share counters between instances")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}
