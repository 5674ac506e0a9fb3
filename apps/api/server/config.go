package server

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/aurajewels/storefront-api/libs/go/constants"
	"github.com/aurajewels/storefront-api/libs/go/helpers"
	"github.com/aurajewels/storefront-api/libs/go/interfaces"
	"github.com/aurajewels/storefront-api/libs/go/logger"
	"github.com/aurajewels/storefront-api/libs/go/services"
)

const defaultEmailFromAddress = "lucky@aurajewels.in"

// Config is everything the API needs at startup
type Config struct {
	Stage            string
	DatabaseURL      string
	SupabaseSecret   string
	ResendAPIKey     string
	StoreLocation    *time.Location
	RuleCacheTTL     time.Duration
	RedisURL         string
	EmailFromAddress string
	EmailFromName    string
}

// LoadConfig resolves secrets through the secrets client and reads the
// remaining settings from the environment.
func LoadConfig(ctx context.Context, secrets interfaces.SecretsClient, stage string) (*Config, error) {
	cfg := &Config{Stage: stage}

	dbSSLMode := os.Getenv("DB_SSLMODE")
	if dbSSLMode == "" && stage != helpers.StageLocal {
		dbSSLMode = "require"
		logger.Log.Warn("DB_SSLMODE not set, defaulting to 'require'")
	}

	var err error
	cfg.DatabaseURL, err = secrets.GetDatabaseURL(ctx, "DATABASE_SECRET_ARN", "DATABASE_URL", dbSSLMode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve database url")
	}

	// A JWKS endpoint can stand in for the shared secret
	cfg.SupabaseSecret, err = secrets.GetSecretString(ctx, "SUPABASE_JWT_SECRET_ARN", "SUPABASE_JWT_SECRET")
	if err != nil && os.Getenv("SUPABASE_JWKS_URL") == "" {
		return nil, errors.Wrap(err, "failed to get Supabase JWT secret")
	}

	cfg.ResendAPIKey, err = secrets.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
	if err != nil || cfg.ResendAPIKey == "" {
		logger.Log.Warn("Failed to get Resend API Key. Lucky discount emails will not be sent.", zap.Error(err))
		cfg.ResendAPIKey = ""
	}

	timezone := getEnvWithDefault("STORE_TIMEZONE", constants.DefaultStoreTimezone)
	cfg.StoreLocation, err = time.LoadLocation(timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid STORE_TIMEZONE %q", timezone)
	}

	cfg.RuleCacheTTL = services.DefaultRuleCacheTTL
	if raw := os.Getenv("LUCKY_RULE_CACHE_TTL"); raw != "" {
		cfg.RuleCacheTTL, err = time.ParseDuration(raw)
		if err != nil || cfg.RuleCacheTTL < 0 {
			return nil, errors.Errorf("invalid LUCKY_RULE_CACHE_TTL %q", raw)
		}
	}

	cfg.RedisURL = os.Getenv("REDIS_URL")
	cfg.EmailFromAddress = getEnvWithDefault("EMAIL_FROM_ADDRESS", defaultEmailFromAddress)
	cfg.EmailFromName = getEnvWithDefault("EMAIL_FROM_NAME", constants.DefaultEmailFromName)

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
