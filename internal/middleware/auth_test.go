package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/codetern/gotasks/internal/pkg/token"
)

func protectedRouter(tokens *token.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Auth(tokens))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(200, gin.H{"userID": c.GetString("userID")})
	})
	return r
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	r := protectedRouter(token.NewManager("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, false, body["success"])
	require.Equal(t, float64(401), body["statusCode"])
	require.Equal(t, "Authorization header required", body["message"])
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r := protectedRouter(token.NewManager("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, "Invalid token", body["message"])
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	expired := token.NewManager("test-secret", -time.Hour)
	tok, err := expired.Generate("user123", "alice@example.com")
	require.NoError(t, err)

	r := protectedRouter(token.NewManager("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	tok, err := tokens.Generate("user123", "alice@example.com")
	require.NoError(t, err)

	r := protectedRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "user123", body["userID"])
}

func TestAuthMiddleware_RawHeaderToken(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	tok, err := tokens.Generate("user123", "alice@example.com")
	require.NoError(t, err)

	r := protectedRouter(tokens)

	// The raw token without a Bearer prefix is also accepted.
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", tok)
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
}
