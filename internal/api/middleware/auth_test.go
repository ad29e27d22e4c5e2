package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func newAuthedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{AuthRequired(testSecret)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		identity, _ := IdentityFrom(c)
		c.JSON(http.StatusOK, gin.H{"success": true, "identity": identity})
	})
	r.GET("/probe", handlers...)
	return r
}

// TestAuthRequired_AttachesIdentity verifies a valid token yields the caller
// identity in the request context.
func TestAuthRequired_AttachesIdentity(t *testing.T) {
	r := newAuthedRouter()
	token := signToken(t, jwt.MapClaims{
		"user_id":      "student-1",
		"name":         "Asha",
		"role":         "student",
		"room_number":  "101",
		"hostel_block": "B1",
		"exp":          time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "student-1")
	assert.Contains(t, w.Body.String(), "B1")
}

// TestAuthRequired_Rejections covers the missing, malformed and expired
// token paths.
func TestAuthRequired_Rejections(t *testing.T) {
	r := newAuthedRouter()

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
		{"expired token", "Bearer " + signToken(t, jwt.MapClaims{
			"user_id": "student-1",
			"role":    "student",
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}

// TestAuthRequired_RejectsWrongSigningMethod verifies algorithm confusion is
// not possible.
func TestAuthRequired_RejectsWrongSigningMethod(t *testing.T) {
	r := newAuthedRouter()

	// alg=none style token signed with no key.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": "student-1",
		"role":    "admin",
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestAdminOnly verifies the role gate.
func TestAdminOnly(t *testing.T) {
	r := newAuthedRouter(AdminOnly())

	studentToken := signToken(t, jwt.MapClaims{
		"user_id": "student-1",
		"role":    "student",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	adminToken := signToken(t, jwt.MapClaims{
		"user_id": "admin-1",
		"role":    "admin",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
