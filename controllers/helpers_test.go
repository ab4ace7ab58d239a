package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/youssefmarket/storefront-api/config"
	"github.com/youssefmarket/storefront-api/services"
	"github.com/youssefmarket/storefront-api/session"
	"github.com/youssefmarket/storefront-api/state"
	"github.com/youssefmarket/storefront-api/store"
)

// testEnv bundles a demo-mode application wired through the real router
type testEnv struct {
	router   *gin.Engine
	app      *state.Store
	resolver *session.Resolver
	storage  *services.MockObjectStorage
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		DatabaseURL:   config.PlaceholderDatabaseURL,
		BackendAPIKey: config.PlaceholderAPIKey,
	}

	src := store.NewMockSource()
	app := state.NewStore(src)
	app.Load(context.Background())

	resolver := session.NewResolver(cfg, src)
	storage := services.NewMockObjectStorage()

	router := gin.New()
	RegisterRoutes(router, Deps{
		App:      app,
		Resolver: resolver,
		Images:   services.NewImageService(storage),
	})

	return &testEnv{router: router, app: app, resolver: resolver, storage: storage}
}

// request performs an HTTP request against the test router. A non-empty
// token is sent as a bearer token.
func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// parseBody decodes a JSON response envelope
func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Response is not valid JSON: %v\n%s", err, w.Body.String())
	}
	return response
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	response := parseBody(t, w)
	errBody, ok := response["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("Response has no error object: %s", w.Body.String())
	}
	code, _ := errBody["code"].(string)
	return code
}

// loginAs logs in through the HTTP API and returns the session token
func (e *testEnv) loginAs(t *testing.T, email, password string) string {
	t.Helper()

	w := e.request(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Login as %s failed with status %d: %s", email, w.Code, w.Body.String())
	}

	data := parseBody(t, w)["data"].(map[string]interface{})
	token, _ := data["token"].(string)
	if token == "" {
		t.Fatalf("Login response carried no token: %s", w.Body.String())
	}
	return token
}

func (e *testEnv) loginAdmin(t *testing.T) string {
	return e.loginAs(t, store.DemoAdminEmail, store.DemoAdminPassword)
}

func (e *testEnv) loginClient(t *testing.T) string {
	return e.loginAs(t, store.DemoClientEmail, store.DemoClientPassword)
}

// firstProductID returns a seeded product ID for tests that need one
func (e *testEnv) firstProductID() string {
	return e.app.FilteredProducts(state.Filter{})[0].ID
}
