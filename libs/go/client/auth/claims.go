package auth

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// AppMetadata is the server-controlled metadata Supabase embeds in access tokens.
type AppMetadata struct {
	Provider string   `json:"provider,omitempty"`
	Role     string   `json:"role,omitempty"`
	Roles    []string `json:"roles,omitempty"`
}

// SupabaseClaims are the claims of a Supabase access token.
type SupabaseClaims struct {
	jwt.RegisteredClaims
	Email        string                 `json:"email"`
	Phone        string                 `json:"phone,omitempty"`
	Role         string                 `json:"role"`
	AppMetadata  AppMetadata            `json:"app_metadata"`
	UserMetadata map[string]interface{} `json:"user_metadata,omitempty"`
}

// HasRole reports whether app_metadata grants role.
func (c *SupabaseClaims) HasRole(role string) bool {
	if strings.EqualFold(c.AppMetadata.Role, role) {
		return true
	}
	for _, r := range c.AppMetadata.Roles {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}

// DisplayName returns the user's name from user_metadata, if any.
func (c *SupabaseClaims) DisplayName() string {
	for _, key := range []string{"full_name", "name"} {
		if v, ok := c.UserMetadata[key].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
