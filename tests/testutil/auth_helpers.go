package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// LoginForToken performs a login through the HTTP API and returns the issued
// session token.
func LoginForToken(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		t.Fatalf("Failed to marshal login payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Login as %s failed with status %d: %s", email, w.Code, w.Body.String())
	}

	var response struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Login response is not valid JSON: %v", err)
	}
	if response.Data.Token == "" {
		t.Fatalf("Login response carried no token: %s", w.Body.String())
	}
	return response.Data.Token
}

// AuthedJSONRequest performs a JSON request with an optional bearer token
// and returns the recorder.
func AuthedJSONRequest(router *gin.Engine, method, path, token string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
