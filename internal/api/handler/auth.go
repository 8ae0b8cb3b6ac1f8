package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"

	"casechain/backend/internal/config"
	"casechain/backend/internal/models"
)

// Credential is a login entry for one of the role portals.
type Credential struct {
	Password string
	Name     string
	Role     string
}

const callerKey = "caller"

// generateToken issues a JWT carrying the resolved caller identity.
func (h *Handler) generateToken(identity models.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":  identity.ID,
		"name": identity.Name,
		"role": identity.Role,
		"exp":  time.Now().Add(config.TokenTTL).Unix(),
		"iss":  config.TokenIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.JWTSecret)
}

// parseToken validates the JWT and returns the caller identity it carries.
func (h *Handler) parseToken(tokenString string) (models.Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return h.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return models.Identity{}, jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Identity{}, jwt.ErrTokenInvalidClaims
	}

	identity := models.Identity{}
	if sub, ok := claims["sub"].(string); ok {
		identity.ID = sub
	}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}
	if role, ok := claims["role"].(string); ok {
		identity.Role = role
	}
	return identity, nil
}

// Login returns a handler that authenticates portal users of the given role
// and issues their token.
func (h *Handler) Login(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Bad request", "message": "Username and password are required"})
			return
		}

		cred, ok := h.Users[req.Username]
		if !ok || cred.Password != req.Password || cred.Role != role {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "message": "Invalid credentials"})
			return
		}

		identity := models.Identity{ID: req.Username, Name: cred.Name, Role: cred.Role}
		token, err := h.generateToken(identity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error", "message": "Failed to create token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "user": identity})
	}
}

// RequireRole is the single capability-check middleware used by every
// protected route. It resolves the caller identity from the bearer token and
// rejects callers whose role is not in the allowed set.
func (h *Handler) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "message": "No token provided"})
			return
		}

		identity, err := h.parseToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "message": "Invalid token"})
			return
		}

		if !identity.HasRole(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden", "message": "Insufficient permissions"})
			return
		}

		c.Set(callerKey, identity)
		c.Next()
	}
}

// callerFrom returns the identity RequireRole stored on the context.
func callerFrom(c *gin.Context) models.Identity {
	if v, ok := c.Get(callerKey); ok {
		if identity, ok := v.(models.Identity); ok {
			return identity
		}
	}
	return models.Anonymous
}
