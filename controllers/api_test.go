package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"gadget-shop/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newRouter builds a fresh app (fresh catalog, cart, and seeded order
// history) per test.
func newRouter() *gin.Engine {
	router := gin.New()
	routes.SetupRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func TestHealth(t *testing.T) {
	router := newRouter()

	w, body := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestGetProducts(t *testing.T) {
	router := newRouter()

	w, body := doJSON(t, router, http.MethodGet, "/products", nil)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, true, body["success"])

	data := body["data"].([]interface{})
	require.Len(t, data, 8)

	first := data[0].(map[string]interface{})
	assert.Equal(t, "Wireless Headphones", first["name"])
	assert.Equal(t, float64(12999), first["price_cents"])
}

func TestGetProductByID(t *testing.T) {
	router := newRouter()

	w, body := doJSON(t, router, http.MethodGet, "/products/2", nil)
	assert.Equal(t, 200, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Smart Watch", data["name"])

	w, body = doJSON(t, router, http.MethodGet, "/products/99", nil)
	assert.Equal(t, 404, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestGetCategories(t *testing.T) {
	router := newRouter()

	w, body := doJSON(t, router, http.MethodGet, "/categories", nil)
	assert.Equal(t, 200, w.Code)
	data := body["data"].([]interface{})
	assert.Equal(t, []interface{}{"Electronics", "Accessories"}, data)
}

func TestAddToCartFlow(t *testing.T) {
	router := newRouter()

	w, body := doJSON(t, router, http.MethodPost, "/cart/items", gin.H{"product_id": 1})
	assert.Equal(t, 200, w.Code)
	toast := body["toast"].(map[string]interface{})
	assert.Equal(t, "success", toast["type"])
	assert.Equal(t, "Added to cart", toast["message"])

	w, body = doJSON(t, router, http.MethodPost, "/cart/items", gin.H{"product_id": 1})
	assert.Equal(t, 200, w.Code)
	toast = body["toast"].(map[string]interface{})
	assert.Equal(t, "Quantity updated in cart", toast["message"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total_items"])
	assert.Equal(t, float64(25998), data["total_cents"])
}

func TestAddToCartOutOfStock(t *testing.T) {
	router := newRouter()

	w, body := doJSON(t, router, http.MethodPost, "/cart/items", gin.H{"product_id": 7})
	assert.Equal(t, 409, w.Code)
	assert.Equal(t, false, body["success"])
	toast := body["toast"].(map[string]interface{})
	assert.Equal(t, "warning", toast["type"])
	assert.Equal(t, "Product is out of stock", toast["message"])
}

func TestAddToCartUnknownProduct(t *testing.T) {
	router := newRouter()

	w, body := doJSON(t, router, http.MethodPost, "/cart/items", gin.H{"product_id": 42})
	assert.Equal(t, 404, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestAddToCartMissingBody(t *testing.T) {
	router := newRouter()

	w, body := doJSON(t, router, http.MethodPost, "/cart/items", gin.H{})
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestUpdateAndRemoveCartLine(t *testing.T) {
	router := newRouter()

	_, _ = doJSON(t, router, http.MethodPost, "/cart/items", gin.H{"product_id": 3})

	w, body := doJSON(t, router, http.MethodPatch, "/cart/items/3", gin.H{"change": 2})
	assert.Equal(t, 200, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["total_items"])

	// stepping below one removes the line
	w, body = doJSON(t, router, http.MethodPatch, "/cart/items/3", gin.H{"change": -3})
	assert.Equal(t, 200, w.Code)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["total_items"])
	assert.Len(t, data["items"].([]interface{}), 0)

	_, _ = doJSON(t, router, http.MethodPost, "/cart/items", gin.H{"product_id": 3})

	w, body = doJSON(t, router, http.MethodDelete, "/cart/items/3", nil)
	assert.Equal(t, 200, w.Code)
	toast := body["toast"].(map[string]interface{})
	assert.Equal(t, "info", toast["type"])
	assert.Equal(t, "Removed from cart", toast["message"])
	data = body["data"].(map[string]interface{})
	assert.Len(t, data["items"].([]interface{}), 0)
}

func TestGetCart(t *testing.T) {
	router := newRouter()

	_, _ = doJSON(t, router, http.MethodPost, "/cart/items", gin.H{"product_id": 4})

	w, body := doJSON(t, router, http.MethodGet, "/cart", nil)
	assert.Equal(t, 200, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total_items"])
	assert.Equal(t, float64(1999), data["total_cents"])
	assert.Equal(t, "$19.99", data["total_display"])
}

func TestCheckoutEmptyCart(t *testing.T) {
	router := newRouter()

	w, body := doJSON(t, router, http.MethodPost, "/checkout", nil)
	assert.Equal(t, 409, w.Code)
	toast := body["toast"].(map[string]interface{})
	assert.Equal(t, "warning", toast["type"])
	assert.Equal(t, "Your cart is empty", toast["message"])
}

func TestCheckoutFlow(t *testing.T) {
	router := newRouter()

	_, _ = doJSON(t, router, http.MethodPost, "/cart/items", gin.H{"product_id": 1})
	_, _ = doJSON(t, router, http.MethodPost, "/cart/items", gin.H{"product_id": 4})

	w, body := doJSON(t, router, http.MethodPost, "/checkout", nil)
	assert.Equal(t, 200, w.Code)
	toast := body["toast"].(map[string]interface{})
	assert.Equal(t, "Order placed successfully!", toast["message"])

	order := body["data"].(map[string]interface{})
	assert.Equal(t, "ORD-003", order["id"])
	assert.Equal(t, "pending", order["status"])
	assert.Equal(t, float64(12999+1999), order["total_cents"])

	badge := order["status_badge"].(map[string]interface{})
	assert.Equal(t, "Pending", badge["label"])

	// cart is empty afterwards
	w, body = doJSON(t, router, http.MethodGet, "/cart", nil)
	require.Equal(t, 200, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["total_items"])

	// the new order leads the history
	w, body = doJSON(t, router, http.MethodGet, "/orders", nil)
	require.Equal(t, 200, w.Code)
	orders := body["data"].([]interface{})
	require.Len(t, orders, 3)
	assert.Equal(t, "ORD-003", orders[0].(map[string]interface{})["id"])
}

func TestGetOrdersSeed(t *testing.T) {
	router := newRouter()

	w, body := doJSON(t, router, http.MethodGet, "/orders", nil)
	assert.Equal(t, 200, w.Code)

	orders := body["data"].([]interface{})
	require.Len(t, orders, 2)

	first := orders[0].(map[string]interface{})
	assert.Equal(t, "ORD-001", first["id"])
	assert.Equal(t, "2024-01-15", first["date"])
	assert.Equal(t, "delivered", first["status"])
	assert.Equal(t, "$129.99", first["total_display"])

	badge := first["status_badge"].(map[string]interface{})
	assert.Equal(t, "Delivered", badge["label"])
	assert.Equal(t, "#34C759", badge["color"])
}

func TestRapidAddsBothApply(t *testing.T) {
	router := newRouter()

	for i := 0; i < 2; i++ {
		w, _ := doJSON(t, router, http.MethodPost, "/cart/items", gin.H{"product_id": 8})
		require.Equal(t, 200, w.Code, fmt.Sprintf("add %d", i+1))
	}

	_, body := doJSON(t, router, http.MethodGet, "/cart", nil)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total_items"])
}
