package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aurajewels/storefront-api/libs/go/helpers"
	"github.com/aurajewels/storefront-api/libs/go/logger"
	"github.com/aurajewels/storefront-api/libs/go/mocks"
)

func init() {
	logger.InitLogger("test")
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DB_SSLMODE", "SUPABASE_JWKS_URL", "STORE_TIMEZONE", "LUCKY_RULE_CACHE_TTL",
		"REDIS_URL", "EMAIL_FROM_ADDRESS", "EMAIL_FROM_NAME",
	} {
		t.Setenv(key, "")
	}
}

func newSecretsMock(t *testing.T) *mocks.MockSecretsClient {
	ctrl := gomock.NewController(t)
	return mocks.NewMockSecretsClient(ctrl)
}

func TestLoadConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		clearConfigEnv(t)
		secrets := newSecretsMock(t)
		secrets.EXPECT().GetDatabaseURL(ctx, "DATABASE_SECRET_ARN", "DATABASE_URL", "require").
			Return("postgres://app@db/store", nil)
		secrets.EXPECT().GetSecretString(ctx, "SUPABASE_JWT_SECRET_ARN", "SUPABASE_JWT_SECRET").Return("jwt-secret", nil)
		secrets.EXPECT().GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY").Return("re_123", nil)

		cfg, err := LoadConfig(ctx, secrets, helpers.StageProd)
		require.NoError(t, err)
		assert.Equal(t, "postgres://app@db/store", cfg.DatabaseURL)
		assert.Equal(t, "jwt-secret", cfg.SupabaseSecret)
		assert.Equal(t, "re_123", cfg.ResendAPIKey)
		assert.Equal(t, "Asia/Kolkata", cfg.StoreLocation.String())
		assert.Equal(t, 60*time.Second, cfg.RuleCacheTTL)
		assert.Equal(t, "Aura Jewels", cfg.EmailFromName)
		assert.Empty(t, cfg.RedisURL)
	})

	t.Run("local stage keeps ssl mode from the dsn", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("STORE_TIMEZONE", "UTC")
		t.Setenv("LUCKY_RULE_CACHE_TTL", "5m")
		t.Setenv("REDIS_URL", "redis://localhost:6379/0")
		secrets := newSecretsMock(t)
		secrets.EXPECT().GetDatabaseURL(ctx, "DATABASE_SECRET_ARN", "DATABASE_URL", "").
			Return("postgres://localhost/store?sslmode=disable", nil)
		secrets.EXPECT().GetSecretString(ctx, "SUPABASE_JWT_SECRET_ARN", "SUPABASE_JWT_SECRET").Return("jwt-secret", nil)
		secrets.EXPECT().GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY").Return("", errors.New("not set"))

		cfg, err := LoadConfig(ctx, secrets, helpers.StageLocal)
		require.NoError(t, err)
		assert.Equal(t, "UTC", cfg.StoreLocation.String())
		assert.Equal(t, 5*time.Minute, cfg.RuleCacheTTL)
		assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
		assert.Empty(t, cfg.ResendAPIKey)
	})

	t.Run("missing database url", func(t *testing.T) {
		clearConfigEnv(t)
		secrets := newSecretsMock(t)
		secrets.EXPECT().GetDatabaseURL(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("not found"))

		_, err := LoadConfig(ctx, secrets, helpers.StageDev)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to resolve database url")
	})

	t.Run("missing jwt secret without jwks", func(t *testing.T) {
		clearConfigEnv(t)
		secrets := newSecretsMock(t)
		secrets.EXPECT().GetDatabaseURL(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return("postgres://db/store", nil)
		secrets.EXPECT().GetSecretString(ctx, "SUPABASE_JWT_SECRET_ARN", "SUPABASE_JWT_SECRET").Return("", errors.New("not found"))

		_, err := LoadConfig(ctx, secrets, helpers.StageDev)
		require.Error(t, err)
	})

	t.Run("jwks url stands in for the secret", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("SUPABASE_JWKS_URL", "https://project.supabase.co/auth/v1/.well-known/jwks.json")
		secrets := newSecretsMock(t)
		secrets.EXPECT().GetDatabaseURL(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return("postgres://db/store", nil)
		secrets.EXPECT().GetSecretString(ctx, "SUPABASE_JWT_SECRET_ARN", "SUPABASE_JWT_SECRET").Return("", errors.New("not found"))
		secrets.EXPECT().GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY").Return("re_123", nil)

		_, err := LoadConfig(ctx, secrets, helpers.StageDev)
		require.NoError(t, err)
	})

	invalid := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad timezone", key: "STORE_TIMEZONE", val: "Mars/Olympus"},
		{name: "bad ttl", key: "LUCKY_RULE_CACHE_TTL", val: "soon"},
		{name: "negative ttl", key: "LUCKY_RULE_CACHE_TTL", val: "-1s"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv(tt.key, tt.val)
			secrets := newSecretsMock(t)
			secrets.EXPECT().GetDatabaseURL(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return("postgres://db/store", nil)
			secrets.EXPECT().GetSecretString(ctx, gomock.Any(), gomock.Any()).Return("value", nil).Times(2)

			_, err := LoadConfig(ctx, secrets, helpers.StageDev)
			assert.Error(t, err)
		})
	}
}

func TestNewRuleCache_MemoryWithoutRedis(t *testing.T) {
	cache, err := newRuleCache(context.Background(), "", time.Minute)
	require.NoError(t, err)
	assert.NotNil(t, cache)
	assert.Nil(t, redisClient)
}

func TestNewRuleCache_InvalidRedisURL(t *testing.T) {
	_, err := newRuleCache(context.Background(), "not a url", time.Minute)
	assert.Error(t, err)
}

func TestSplitEnvList(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://aurajewels.in, https://admin.aurajewels.in")
	assert.Equal(t, []string{"https://aurajewels.in", "https://admin.aurajewels.in"},
		splitEnvList("CORS_ALLOWED_ORIGINS", nil))

	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	assert.Equal(t, []string{"http://localhost:3000"},
		splitEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}))
}
