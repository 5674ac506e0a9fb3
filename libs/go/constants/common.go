package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// User roles
	AdminRole    = "admin"
	CustomerRole = "customer"

	// Auth types
	AuthTypeJWT       = "jwt"
	AuthTypeAnonymous = "anonymous"

	// Supabase access tokens are issued for this audience
	SupabaseAudience = "authenticated"

	// Store defaults
	DefaultStoreTimezone = "Asia/Kolkata"
	DefaultEmailFromName = "Aura Jewels"
)

// Gin context keys set by the auth middleware
const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserName  = "userName"
	ContextUserRoles = "userRoles"
	ContextAuthType  = "authType"
)
