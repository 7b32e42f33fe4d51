package auth

import (
	"context"
	"net/http"
	"strings"

	"one-on-one-backend/internal/database/models"
	apperrors "one-on-one-backend/internal/errors"
	"one-on-one-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	claimsKey = "auth_claims"
	actorKey  = "actor"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}
	return tokenString, true
}

// RequireAuth validates the bearer token and stores its claims
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// LoadActor re-reads the authenticated user on every request so that role changes
// take effect without a new sign-in. It must run after RequireAuth.
func (m *AuthMiddleware) LoadActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetAuthClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUserIDNotFound.Error()})
			return
		}

		user, err := m.service.LoadUser(claims)
		if err != nil {
			if apperrors.IsAuthentication(err) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to load authenticated user")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
			return
		}

		SetActor(c, user)
		c.Next()
	}
}

// SetActor stores the acting user on the gin context and tags the request context for logging
func SetActor(c *gin.Context, user *models.User) {
	c.Set(actorKey, user)
	ctx := context.WithValue(c.Request.Context(), logger.UserIDKey, user.ID.String())
	ctx = context.WithValue(ctx, logger.EmailKey, user.Email)
	c.Request = c.Request.WithContext(ctx)
}

// ActorFromContext returns the user loaded by LoadActor
func ActorFromContext(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(actorKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
