package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/youssefmarket/storefront-api/state"
)

// cartRequest is like testEnv.request but carries an explicit guest cart
// token header.
func (e *testEnv) cartRequest(t *testing.T, method, path, cartToken string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if cartToken != "" {
		req.Header.Set(CartTokenHeader, cartToken)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestGuestCartTokenIssuedAndEchoed(t *testing.T) {
	env := newTestEnv(t)

	// A first-time guest with no token gets one back in the response header
	w := env.cartRequest(t, http.MethodGet, "/api/v1/cart", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	issued := w.Header().Get(CartTokenHeader)
	assert.NotEmpty(t, issued)

	// Subsequent requests with that token see the same cart
	w = env.cartRequest(t, http.MethodPost, "/api/v1/cart/items", issued, map[string]interface{}{
		"product_id": env.firstProductID(),
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.cartRequest(t, http.MethodGet, "/api/v1/cart", issued, nil)
	data := parseBody(t, w)["data"].(map[string]interface{})
	assert.Len(t, data["items"].([]interface{}), 1)
}

func TestCartAddIncrementsQuantity(t *testing.T) {
	env := newTestEnv(t)
	id := env.firstProductID()

	body := map[string]interface{}{"product_id": id}
	env.cartRequest(t, http.MethodPost, "/api/v1/cart/items", "guest-1", body)
	w := env.cartRequest(t, http.MethodPost, "/api/v1/cart/items", "guest-1", body)
	assert.Equal(t, http.StatusOK, w.Code)

	data := parseBody(t, w)["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	assert.Len(t, items, 1, "adding the same product twice must merge into one line")
	assert.Equal(t, float64(2), items[0].(map[string]interface{})["quantity"])
}

func TestCartAddUnknownProduct(t *testing.T) {
	env := newTestEnv(t)

	w := env.cartRequest(t, http.MethodPost, "/api/v1/cart/items", "guest-1", map[string]interface{}{
		"product_id": "no-such-product",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, w))
}

func TestCartUpdateAndRemove(t *testing.T) {
	env := newTestEnv(t)
	id := env.firstProductID()

	env.cartRequest(t, http.MethodPost, "/api/v1/cart/items", "guest-1", map[string]interface{}{"product_id": id})

	w := env.cartRequest(t, http.MethodPut, "/api/v1/cart/items/"+id, "guest-1", map[string]interface{}{"quantity": 4})
	assert.Equal(t, http.StatusOK, w.Code)
	data := parseBody(t, w)["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	assert.Equal(t, float64(4), items[0].(map[string]interface{})["quantity"])

	// Quantity zero removes the line
	w = env.cartRequest(t, http.MethodPut, "/api/v1/cart/items/"+id, "guest-1", map[string]interface{}{"quantity": 0})
	data = parseBody(t, w)["data"].(map[string]interface{})
	assert.Empty(t, data["items"].([]interface{}))

	// Explicit removal
	env.cartRequest(t, http.MethodPost, "/api/v1/cart/items", "guest-1", map[string]interface{}{"product_id": id})
	w = env.cartRequest(t, http.MethodDelete, "/api/v1/cart/items/"+id, "guest-1", nil)
	data = parseBody(t, w)["data"].(map[string]interface{})
	assert.Empty(t, data["items"].([]interface{}))
}

func TestCartTotalTracksLines(t *testing.T) {
	env := newTestEnv(t)
	products := env.app.FilteredProducts(state.Filter{})

	env.cartRequest(t, http.MethodPost, "/api/v1/cart/items", "guest-1", map[string]interface{}{"product_id": products[0].ID})
	env.cartRequest(t, http.MethodPost, "/api/v1/cart/items", "guest-1", map[string]interface{}{"product_id": products[0].ID})
	w := env.cartRequest(t, http.MethodPost, "/api/v1/cart/items", "guest-1", map[string]interface{}{"product_id": products[1].ID})

	data := parseBody(t, w)["data"].(map[string]interface{})
	assert.InDelta(t, products[0].Price*2+products[1].Price, data["total"].(float64), 0.001)
}

func TestCartsAreIsolated(t *testing.T) {
	env := newTestEnv(t)
	id := env.firstProductID()

	env.cartRequest(t, http.MethodPost, "/api/v1/cart/items", "guest-1", map[string]interface{}{"product_id": id})

	w := env.cartRequest(t, http.MethodGet, "/api/v1/cart", "guest-2", nil)
	data := parseBody(t, w)["data"].(map[string]interface{})
	assert.Empty(t, data["items"].([]interface{}))

	// An authenticated session keys its cart by session token, not header
	token := env.loginClient(t)
	w = env.request(t, http.MethodGet, "/api/v1/cart", token, nil)
	data = parseBody(t, w)["data"].(map[string]interface{})
	assert.Empty(t, data["items"].([]interface{}))
}

func TestCartClear(t *testing.T) {
	env := newTestEnv(t)
	id := env.firstProductID()

	env.cartRequest(t, http.MethodPost, "/api/v1/cart/items", "guest-1", map[string]interface{}{"product_id": id})
	w := env.cartRequest(t, http.MethodDelete, "/api/v1/cart", "guest-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.cartRequest(t, http.MethodGet, "/api/v1/cart", "guest-1", nil)
	data := parseBody(t, w)["data"].(map[string]interface{})
	assert.Empty(t, data["items"].([]interface{}))
}

func TestCheckout(t *testing.T) {
	env := newTestEnv(t)
	id := env.firstProductID()

	env.cartRequest(t, http.MethodPost, "/api/v1/cart/items", "guest-1", map[string]interface{}{"product_id": id})

	w := env.cartRequest(t, http.MethodPost, "/api/v1/cart/checkout", "guest-1", map[string]interface{}{
		"client_name":  "Jean Dupont",
		"client_phone": "+212600000000",
		"client_email": "jean@test.com",
		"notes":        "Livraison le matin",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	data := parseBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "pending", data["status"])
	assert.Len(t, data["items"].([]interface{}), 1)

	// The cart is cleared after a successful checkout
	w = env.cartRequest(t, http.MethodGet, "/api/v1/cart", "guest-1", nil)
	cart := parseBody(t, w)["data"].(map[string]interface{})
	assert.Empty(t, cart["items"].([]interface{}))
}

func TestCheckoutValidationFailures(t *testing.T) {
	env := newTestEnv(t)
	id := env.firstProductID()
	env.cartRequest(t, http.MethodPost, "/api/v1/cart/items", "guest-1", map[string]interface{}{"product_id": id})

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{name: "missing name", body: map[string]interface{}{"client_phone": "0600"}},
		{name: "missing phone", body: map[string]interface{}{"client_name": "Jean"}},
		{name: "malformed email", body: map[string]interface{}{"client_name": "Jean", "client_phone": "0600", "client_email": "bad"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.cartRequest(t, http.MethodPost, "/api/v1/cart/checkout", "guest-1", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))
		})
	}

	// All failures left the cart intact
	w := env.cartRequest(t, http.MethodGet, "/api/v1/cart", "guest-1", nil)
	data := parseBody(t, w)["data"].(map[string]interface{})
	assert.Len(t, data["items"].([]interface{}), 1)
}

func TestCheckoutEmptyCart(t *testing.T) {
	env := newTestEnv(t)

	w := env.cartRequest(t, http.MethodPost, "/api/v1/cart/checkout", "guest-1", map[string]interface{}{
		"client_name":  "Jean",
		"client_phone": "0600",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "EMPTY_CART", errorCode(t, w))
}
