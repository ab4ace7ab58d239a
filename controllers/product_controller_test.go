package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListProducts(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/v1/products", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := parseBody(t, w)
	assert.True(t, response["success"].(bool))
	assert.Len(t, response["data"].([]interface{}), 11)
}

func TestListProductsFiltered(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{name: "explicit all", query: "?category=all", expected: 11},
		{name: "by category", query: "?category=Produits+Laitiers", expected: 2},
		{name: "by search", query: "?q=riz", expected: 1},
		{name: "search is case-insensitive", query: "?q=RIZ", expected: 1},
		{name: "category and search combined", query: "?category=Epicerie&q=camembert", expected: 0},
		{name: "unknown category", query: "?category=Inexistante", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.request(t, http.MethodGet, "/api/v1/products"+tt.query, "", nil)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Len(t, parseBody(t, w)["data"].([]interface{}), tt.expected)
		})
	}
}

func TestListProductsHidesInvisibleFromGuests(t *testing.T) {
	env := newTestEnv(t)
	admin := env.loginAdmin(t)

	// Hide one product
	w := env.request(t, http.MethodPut, "/api/v1/products/"+env.firstProductID(), admin, map[string]interface{}{
		"visible": false,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Guests see 10, the admin still sees 11
	w = env.request(t, http.MethodGet, "/api/v1/products", "", nil)
	assert.Len(t, parseBody(t, w)["data"].([]interface{}), 10)

	w = env.request(t, http.MethodGet, "/api/v1/products", admin, nil)
	assert.Len(t, parseBody(t, w)["data"].([]interface{}), 11)

	// A client session is not an admin either
	client := env.loginClient(t)
	w = env.request(t, http.MethodGet, "/api/v1/products", client, nil)
	assert.Len(t, parseBody(t, w)["data"].([]interface{}), 10)
}

func TestCreateProduct(t *testing.T) {
	env := newTestEnv(t)
	admin := env.loginAdmin(t)

	body := map[string]interface{}{
		"name":        "Thé Vert",
		"description": "Thé vert de Chine",
		"price":       39.90,
		"unit":        "100g",
		"category":    "Boissons Chaudes",
	}

	// Guests and clients are rejected before validation runs
	w := env.request(t, http.MethodPost, "/api/v1/products", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	client := env.loginClient(t)
	w = env.request(t, http.MethodPost, "/api/v1/products", client, body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admin creates; new products default to in stock and visible
	w = env.request(t, http.MethodPost, "/api/v1/products", admin, body)
	assert.Equal(t, http.StatusCreated, w.Code)

	data := parseBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Thé Vert", data["name"])
	assert.Equal(t, "Boissons Chaudes", data["category"])
	assert.Equal(t, true, data["in_stock"])
	assert.Equal(t, true, data["visible"])

	// Explicit flags are honored
	body["name"] = "Thé Noir"
	body["visible"] = false
	w = env.request(t, http.MethodPost, "/api/v1/products", admin, body)
	assert.Equal(t, http.StatusCreated, w.Code)
	data = parseBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, false, data["visible"])
}

func TestCreateProductValidation(t *testing.T) {
	env := newTestEnv(t)
	admin := env.loginAdmin(t)

	tests := []struct {
		name           string
		body           map[string]interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "missing name",
			body:           map[string]interface{}{"description": "d", "price": 1.0, "unit": "1kg", "category": "Epicerie"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name:           "zero price",
			body:           map[string]interface{}{"name": "X", "description": "d", "price": 0, "unit": "1kg", "category": "Epicerie"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name:           "negative price",
			body:           map[string]interface{}{"name": "X", "description": "d", "price": -5, "unit": "1kg", "category": "Epicerie"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name:           "unknown category",
			body:           map[string]interface{}{"name": "X", "description": "d", "price": 1.0, "unit": "1kg", "category": "Inexistante"},
			expectedStatus: http.StatusNotFound,
			expectedError:  "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.request(t, http.MethodPost, "/api/v1/products", admin, tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedError, errorCode(t, w))
		})
	}
}

func TestUpdateProductPartial(t *testing.T) {
	env := newTestEnv(t)
	admin := env.loginAdmin(t)
	id := env.firstProductID()

	// Only the price changes; every other field survives
	w := env.request(t, http.MethodPut, "/api/v1/products/"+id, admin, map[string]interface{}{
		"price": 59.90,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	data := parseBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, 59.90, data["price"])
	assert.Equal(t, "Riz Basmati Premium", data["name"])
	assert.Equal(t, "1kg", data["unit"])
	assert.Equal(t, true, data["in_stock"])

	// Unknown product
	w = env.request(t, http.MethodPut, "/api/v1/products/no-such-id", admin, map[string]interface{}{
		"price": 10.0,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)
	admin := env.loginAdmin(t)
	id := env.firstProductID()

	w := env.request(t, http.MethodDelete, "/api/v1/products/"+id, admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, "/api/v1/products", admin, nil)
	assert.Len(t, parseBody(t, w)["data"].([]interface{}), 10)

	w = env.request(t, http.MethodDelete, "/api/v1/products/"+id, admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
