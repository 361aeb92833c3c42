package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"kennelbook/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware guards breeder tooling routes. Tokens come from the main
// application's login; the booking service only validates the bearer token
// and exposes the breeder identity to handlers.
type AuthMiddleware struct {
	tokens *jwt.Service
}

const (
	ctxBreederIDKey   = "breeder_id"
	ctxBreederRoleKey = "breeder_role"
)

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxBreederIDKey, claims.BreederID)
		c.Set(ctxBreederRoleKey, claims.Role)
		c.Set("jwt_claims", map[string]any{
			"breeder_id": claims.BreederID.String(),
			"role":       claims.Role,
		})
		c.Next()
	}
}

func GetBreederID(c *gin.Context) (uuid.UUID, bool) {
	breederID, exists := c.Get(ctxBreederIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := breederID.(uuid.UUID)
	return id, ok
}

func GetBreederRole(c *gin.Context) (string, bool) {
	breederRole, exists := c.Get(ctxBreederRoleKey)
	if !exists {
		return "", false
	}

	role, ok := breederRole.(string)
	return role, ok
}
