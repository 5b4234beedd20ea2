package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"care-connect.backend/internal/domain/entities"
	"care-connect.backend/pkg/jwt"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// AccountIDKey is the context key for the authenticated account ID
	AccountIDKey = "accountId"
	// RoleKey is the context key for the authenticated role
	RoleKey = "role"
)

// AuthMiddleware resolves the caller to {accountId, role} from a bearer token
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header is required",
			})
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization format. Use: Bearer <token>",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			status := "Invalid token"
			if err == jwt.ErrExpiredToken {
				status = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": status})
			return
		}

		c.Set(AccountIDKey, claims.UserID)
		c.Set(RoleKey, entities.UserRole(claims.Role))
		c.Next()
	}
}

// RequireRole aborts unless the authenticated role matches
func RequireRole(role entities.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		actual, ok := GetRole(c)
		if !ok || actual != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			return
		}
		c.Next()
	}
}

// GetAccountID extracts the authenticated account ID from the gin context
func GetAccountID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(AccountIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// GetRole extracts the authenticated role from the gin context
func GetRole(c *gin.Context) (entities.UserRole, bool) {
	v, exists := c.Get(RoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(entities.UserRole)
	return role, ok
}
