package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/youssefmarket/storefront-api/config"
	"github.com/youssefmarket/storefront-api/session"
	"github.com/youssefmarket/storefront-api/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *session.Resolver) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		DatabaseURL:   config.PlaceholderDatabaseURL,
		BackendAPIKey: config.PlaceholderAPIKey,
	}
	resolver := session.NewResolver(cfg, store.NewMockSource())

	router := gin.New()
	router.Use(ResolveSession(resolver))
	router.GET("/open", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "admin": IsAdminRequest(c), "token": SessionToken(c)})
	})
	router.GET("/protected", RequireAuth(), func(c *gin.Context) {
		sess, err := GetSession(c)
		assert.NoError(t, err)
		c.JSON(http.StatusOK, gin.H{"success": true, "email": sess.User.Email})
	})
	router.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router, resolver
}

func doRequest(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestOpenRoutePassesAnonymous(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "/open", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, false, response["admin"])
	assert.Equal(t, "", response["token"])
}

func TestRequireAuth(t *testing.T) {
	router, resolver := newTestRouter(t)

	// Anonymous request is rejected
	w := doRequest(router, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	errBody := response["error"].(map[string]interface{})
	assert.Equal(t, "UNAUTHORIZED", errBody["code"])

	// Unknown token is still anonymous
	w = doRequest(router, "/protected", "bogus-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Authenticated client passes
	sess, err := resolver.Login(context.Background(), store.DemoClientEmail, store.DemoClientPassword)
	assert.NoError(t, err)

	w = doRequest(router, "/protected", sess.Token)
	assert.Equal(t, http.StatusOK, w.Code)
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, store.DemoClientEmail, response["email"])
}

func TestRequireAdmin(t *testing.T) {
	router, resolver := newTestRouter(t)

	// Anonymous gets 401
	w := doRequest(router, "/admin", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// A client session gets 403, not 401
	client, err := resolver.Login(context.Background(), store.DemoClientEmail, store.DemoClientPassword)
	assert.NoError(t, err)
	w = doRequest(router, "/admin", client.Token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	errBody := response["error"].(map[string]interface{})
	assert.Equal(t, "FORBIDDEN", errBody["code"])

	// An admin session passes
	admin, err := resolver.Login(context.Background(), store.DemoAdminEmail, store.DemoAdminPassword)
	assert.NoError(t, err)
	w = doRequest(router, "/admin", admin.Token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBearerTokenParsing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "no header", header: "", expected: ""},
		{name: "well-formed", header: "Bearer abc123", expected: "abc123"},
		{name: "lowercase scheme", header: "bearer abc123", expected: "abc123"},
		{name: "wrong scheme", header: "Basic abc123", expected: ""},
		{name: "scheme only", header: "Bearer", expected: ""},
		{name: "padded token", header: "Bearer   abc123", expected: "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				c.Request.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.expected, bearerToken(c))
		})
	}
}

func TestGetSessionWithoutResolveMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, err := GetSession(c)
	assert.Error(t, err)

	var ae *AuthError
	assert.ErrorAs(t, err, &ae)
	assert.Equal(t, "NO_SESSION", ae.Code)
}
