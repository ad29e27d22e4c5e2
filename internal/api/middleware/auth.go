package middleware

import (
	"net/http"
	"strings"

	"hostelops/backend/internal/models"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
)

// identityKey is the gin context key the auth middleware stores the caller
// identity under.
const identityKey = "identity"

// AuthRequired validates the Bearer token minted by the external auth
// service and attaches the caller identity to the request context. Tokens
// are HS256 with snake_case claims.
func AuthRequired(secret string) gin.HandlerFunc {
	secretBytes := []byte(secret)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authorization token missing",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		identity, err := parseIdentity(tokenString, secretBytes)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// AdminOnly rejects callers without the administrator role. Must run after
// AuthRequired.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok || !identity.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Access denied",
			})
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the caller identity attached by AuthRequired.
func IdentityFrom(c *gin.Context) (models.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return models.Identity{}, false
	}
	identity, ok := v.(models.Identity)
	return identity, ok
}

func parseIdentity(tokenString string, secret []byte) (models.Identity, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Identity{}, err
	}

	return models.Identity{
		UserID:      claimString(claims, "user_id"),
		Name:        claimString(claims, "name"),
		Role:        models.Role(claimString(claims, "role")),
		RoomNumber:  claimString(claims, "room_number"),
		HostelBlock: claimString(claims, "hostel_block"),
	}, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
