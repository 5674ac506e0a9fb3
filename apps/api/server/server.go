package server

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/aurajewels/storefront-api/apps/api/handlers"
	"github.com/aurajewels/storefront-api/libs/go/client/auth"
	awsclient "github.com/aurajewels/storefront-api/libs/go/client/aws"
	"github.com/aurajewels/storefront-api/libs/go/constants"
	"github.com/aurajewels/storefront-api/libs/go/db"
	"github.com/aurajewels/storefront-api/libs/go/helpers"
	"github.com/aurajewels/storefront-api/libs/go/interfaces"
	"github.com/aurajewels/storefront-api/libs/go/logger"
	"github.com/aurajewels/storefront-api/libs/go/middleware"
	"github.com/aurajewels/storefront-api/libs/go/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handler Definitions
var (
	healthHandler            *handlers.HealthHandler
	luckyDiscountHandler     *handlers.LuckyDiscountHandler
	luckyDiscountRuleHandler *handlers.LuckyDiscountRuleHandler

	// Database
	dbPool *pgxpool.Pool

	// Clients
	authClient  *auth.AuthClient
	redisClient *redis.Client
)

// InitializeHandlers loads configuration and builds every handler. Startup
// failures are fatal.
func InitializeHandlers() {
	// Load environment variables from .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err) // Use basic log before logger init
	}

	// --- Determine and Validate Stage ---
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	// --- Initialize Logger (AFTER stage validation) ---
	logger.InitLogger(stage)
	logger.Log.Info("Initializing handlers for stage", zap.String("stage", stage))

	if err := initialize(context.Background(), stage); err != nil {
		logger.Log.Fatal("Failed to initialize handlers", zap.Error(err))
	}
}

func initialize(ctx context.Context, stage string) error {
	var secretsClient interfaces.SecretsClient
	if stage == helpers.StageLocal {
		secretsClient = awsclient.NewEnvOnlySecretsClient()
	} else {
		smClient, err := awsclient.NewSecretsManagerClient(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to initialize AWS Secrets Manager client")
		}
		secretsClient = smClient
	}

	cfg, err := LoadConfig(ctx, secretsClient, stage)
	if err != nil {
		return err
	}

	// --- Database Pool Initialization ---
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return errors.Wrap(err, "unable to parse database DSN")
	}
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Minute * 30
	poolConfig.MaxConnIdleTime = time.Minute * 15

	dbPool, err = pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return errors.Wrap(err, "unable to create connection pool")
	}
	dbQueries := db.New(dbPool)

	ruleCache, err := newRuleCache(ctx, cfg.RedisURL, cfg.RuleCacheTTL)
	if err != nil {
		return err
	}

	emailService := services.NewEmailService(cfg.ResendAPIKey, cfg.EmailFromAddress, cfg.EmailFromName, cfg.StoreLocation, logger.Log)

	// --- Services & handlers ---
	authClient = auth.NewAuthClient(cfg.SupabaseSecret)

	luckyDiscountService := services.NewLuckyDiscountService(dbQueries, emailService,
		services.WithRuleCache(ruleCache),
		services.WithStoreLocation(cfg.StoreLocation),
	)

	commonServices := handlers.NewCommonServices(handlers.CommonServicesConfig{
		Pinger: dbPool,
		Logger: logger.Log,
	})
	healthHandler = handlers.NewHealthHandler(commonServices)
	luckyDiscountHandler = handlers.NewLuckyDiscountHandler(commonServices, luckyDiscountService, time.Now)
	luckyDiscountRuleHandler = handlers.NewLuckyDiscountRuleHandler(commonServices, luckyDiscountService)

	logger.Log.Info("Handlers initialized",
		zap.String("store_timezone", cfg.StoreLocation.String()),
		zap.Duration("rule_cache_ttl", cfg.RuleCacheTTL),
		zap.Bool("redis_rule_cache", redisClient != nil),
		zap.Bool("email_enabled", emailService.Enabled()))
	return nil
}

// newRuleCache shares the active rule list through Redis when a URL is
// configured and keeps it per process otherwise.
func newRuleCache(ctx context.Context, redisURL string, ttl time.Duration) (services.RuleCache, error) {
	if redisURL == "" {
		return services.NewMemoryRuleCache(ttl), nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid REDIS_URL")
	}
	redisClient = redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		// The service falls back to the database on cache errors.
		logger.Log.Warn("Redis not reachable at startup", zap.Error(err))
	}
	return services.NewRedisRuleCache(redisClient, ttl), nil
}

// InitializeRoutes registers middleware and routes on router
func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.DefaultRateLimiter.Middleware())

	isDevelopment := os.Getenv("GIN_MODE") != "release"
	router.Use(middleware.EnhancedLoggingMiddleware(isDevelopment))
	if !isDevelopment {
		router.Use(middleware.RequestLoggingMiddleware())
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health for raw lambda url check
	router.GET("/:stage/health", healthHandler.Health)
	router.GET("/health", healthHandler.Health)
	router.HEAD("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Health)

		// Public with optional sign-in; anonymous visitors are never eligible
		v1.POST("/lucky-discount/evaluate",
			authClient.OptionalAuth(),
			middleware.ValidateInput(middleware.EvaluateLuckyDiscountValidation),
			luckyDiscountHandler.Evaluate)

		protected := v1.Group("/")
		protected.Use(authClient.EnsureValidToken())
		{
			luckyDiscount := protected.Group("/lucky-discount")
			{
				luckyDiscount.POST("/claims",
					middleware.StrictRateLimiter.Middleware(),
					middleware.ValidateInput(middleware.ClaimLuckyDiscountValidation),
					luckyDiscountHandler.Claim)
				luckyDiscount.GET("/claims", luckyDiscountHandler.ListClaims)
				luckyDiscount.POST("/redeem/validate",
					middleware.ValidateInput(middleware.ValidateLuckyDiscountCodeValidation),
					luckyDiscountHandler.ValidateCode)
			}

			admin := protected.Group("/admin")
			admin.Use(authClient.RequireRoles(constants.AdminRole))
			admin.Use(middleware.AdminRateLimiter.Middleware())
			{
				rules := admin.Group("/lucky-discount/rules")
				{
					rules.GET("", luckyDiscountRuleHandler.ListRules)
					rules.POST("",
						middleware.ValidateInput(middleware.CreateLuckyDiscountRuleValidation),
						luckyDiscountRuleHandler.CreateRule)
					rules.GET("/:rule_id", luckyDiscountRuleHandler.GetRule)
					rules.PUT("/:rule_id",
						middleware.ValidateInput(middleware.UpdateLuckyDiscountRuleValidation),
						luckyDiscountRuleHandler.UpdateRule)
					rules.PATCH("/:rule_id/active",
						middleware.ValidateInput(middleware.SetLuckyDiscountRuleActiveValidation),
						luckyDiscountRuleHandler.SetRuleActive)
					rules.DELETE("/:rule_id", luckyDiscountRuleHandler.DeleteRule)
				}
			}
		}
	}
}

// Shutdown releases the database pool, the Redis client and the rate limiter janitors
func Shutdown() {
	middleware.DefaultRateLimiter.Stop()
	middleware.StrictRateLimiter.Stop()
	middleware.AdminRateLimiter.Stop()

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Log.Warn("Failed to close Redis client", zap.Error(err))
		}
	}
	if dbPool != nil {
		dbPool.Close()
	}
	logger.Sync()
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable
	corsConfig.AllowOrigins = splitEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	corsConfig.AllowMethods = splitEnvList("CORS_ALLOWED_METHODS",
		[]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	corsConfig.AllowHeaders = splitEnvList("CORS_ALLOWED_HEADERS",
		[]string{"Origin", "Content-Type", "Accept", "Authorization", "X-Correlation-ID"})

	// Default exposed headers including rate limit headers
	corsConfig.ExposeHeaders = splitEnvList("CORS_EXPOSED_HEADERS", []string{
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"X-RateLimit-Reset",
		"Retry-After",
		"X-Correlation-ID",
	})

	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}

func splitEnvList(name string, fallback []string) []string {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	values := strings.Split(raw, ",")
	for i, v := range values {
		values[i] = strings.TrimSpace(v)
	}
	return values
}
