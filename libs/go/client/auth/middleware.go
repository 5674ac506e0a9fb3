package auth

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aurajewels/storefront-api/libs/go/constants"
	"github.com/aurajewels/storefront-api/libs/go/logger"
)

var (
	// ErrInvalidToken is returned when the provided token is invalid
	ErrInvalidToken = errors.New("invalid token")
	// ErrMissingToken is returned when no bearer token was sent
	ErrMissingToken = errors.New("no authentication provided")
)

// AuthClient validates Supabase access tokens. HS256 tokens are checked with
// the project JWT secret; asymmetric tokens with the project JWKS when configured.
type AuthClient struct {
	jwtSecret []byte
	JWKSURL   string
	Issuer    string
	Audience  string
	jwks      *keyfunc.JWKS
	parser    *jwt.Parser
}

// NewAuthClient reads SUPABASE_JWKS_URL, SUPABASE_JWT_ISSUER and
// SUPABASE_JWT_AUDIENCE from the environment.
func NewAuthClient(jwtSecret string) *AuthClient {
	audience := os.Getenv("SUPABASE_JWT_AUDIENCE")
	if audience == "" {
		audience = constants.SupabaseAudience
	}

	client := &AuthClient{
		jwtSecret: []byte(jwtSecret),
		JWKSURL:   os.Getenv("SUPABASE_JWKS_URL"),
		Issuer:    os.Getenv("SUPABASE_JWT_ISSUER"),
		Audience:  audience,
	}

	if client.JWKSURL != "" {
		if err := client.initializeJWKS(); err != nil {
			logger.Log.Error("Failed to initialize JWKS", zap.Error(err))
		}
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256", "RS256", "ES256"}),
		jwt.WithAudience(client.Audience),
		jwt.WithExpirationRequired(),
	}
	if client.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(client.Issuer))
	}
	client.parser = jwt.NewParser(opts...)

	return client
}

// OptionalAuth sets the user when a valid bearer token is present and lets
// anonymous requests through. A present but invalid token is rejected.
func (ac *AuthClient) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Set(constants.ContextAuthType, constants.AuthTypeAnonymous)
			c.Next()
			return
		}
		ac.authenticate(c)
	}
}

// EnsureValidToken requires a valid Supabase access token.
func (ac *AuthClient) EnsureValidToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		ac.authenticate(c)
	}
}

func (ac *AuthClient) authenticate(c *gin.Context) {
	claims, err := ac.ValidateToken(c.GetHeader("Authorization"))
	if err != nil {
		logger.NewStructuredLogger(logger.ComponentAuth).
			WithCorrelationID(c.GetHeader("X-Correlation-ID")).
			WithField("path", c.Request.URL.Path).
			LogAuthEvent("validate_token", "", false, err.Error())
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token subject"})
		c.Abort()
		return
	}

	roles := append([]string{}, claims.AppMetadata.Roles...)
	if claims.AppMetadata.Role != "" {
		roles = append(roles, claims.AppMetadata.Role)
	}

	c.Set(constants.ContextUserID, userID.String())
	c.Set(constants.ContextUserEmail, claims.Email)
	c.Set(constants.ContextUserName, claims.DisplayName())
	c.Set(constants.ContextUserRoles, roles)
	c.Set(constants.ContextAuthType, constants.AuthTypeJWT)
	c.Next()
}

// ValidateToken parses and verifies a bearer token.
func (ac *AuthClient) ValidateToken(authHeader string) (*SupabaseClaims, error) {
	if authHeader == "" {
		return nil, ErrMissingToken
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if tokenString == "" || tokenString == authHeader {
		return nil, fmt.Errorf("%w: expected bearer token", ErrInvalidToken)
	}

	token, err := ac.parser.ParseWithClaims(tokenString, &SupabaseClaims{}, ac.keyFunc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*SupabaseClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims, nil
}

func (ac *AuthClient) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
		if len(ac.jwtSecret) == 0 {
			return nil, fmt.Errorf("jwt secret not configured")
		}
		return ac.jwtSecret, nil
	}
	if ac.jwks == nil {
		return nil, fmt.Errorf("JWKS not initialized")
	}
	return ac.jwks.Keyfunc(token)
}

// RequireRoles allows the request when the authenticated user holds any of roles.
func (ac *AuthClient) RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		held := c.GetStringSlice(constants.ContextUserRoles)
		for _, want := range roles {
			for _, have := range held {
				if strings.EqualFold(want, have) {
					c.Next()
					return
				}
			}
		}

		logger.Log.Debug("Insufficient role",
			zap.Strings("required", roles),
			zap.Strings("held", held),
			zap.String("user_id", c.GetString(constants.ContextUserID)),
		)
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		c.Abort()
	}
}

func (ac *AuthClient) initializeJWKS() error {
	jwks, err := keyfunc.Get(ac.JWKSURL, keyfunc.Options{
		RefreshInterval:  time.Hour,
		RefreshRateLimit: time.Minute,
		RefreshTimeout:   time.Second * 10,
		RefreshErrorHandler: func(err error) {
			logger.Log.Error("JWKS refresh error", zap.Error(err))
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create JWKS: %w", err)
	}
	ac.jwks = jwks

	logger.Log.Info("Supabase JWKS initialized", zap.String("jwks_url", ac.JWKSURL))
	return nil
}

// UserIDFromContext returns the authenticated user id, if any.
func UserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString(constants.ContextUserID)
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
