package orderControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dulanji-Amanda/SweetZone/models"
	"github.com/Dulanji-Amanda/SweetZone/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderRouter(carts *store.CartStore, orders *store.OrderStore, deliveryFee int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "user-1")
	})

	r.POST("/user/orders", PlaceOrderHandler(carts, orders, deliveryFee))
	r.GET("/user/orders", GetUserOrdersHandler(orders))
	return r
}

func placeOrder(t *testing.T, r *gin.Engine, req PlaceOrderRequest) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(req)
	require.NoError(t, err)

	httpReq := httptest.NewRequest(http.MethodPost, "/user/orders", bytes.NewReader(payload))
	httpReq.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httpReq)
	return w
}

func floatPtr(v float64) *float64 { return &v }

func TestPlaceOrder_EmptyCartRejected(t *testing.T) {
	carts := store.NewCartStore()
	orders := store.NewOrderStore()
	r := newOrderRouter(carts, orders, 100)

	w := placeOrder(t, r, PlaceOrderRequest{
		PaymentMethod: "cod",
		Address:       "12 Cocoa Lane",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, orders.All())
}

func TestPlaceOrder_NoLocationRejected(t *testing.T) {
	carts := store.NewCartStore()
	orders := store.NewOrderStore()
	carts.Add("user-1", store.AddPayload{Name: "Truffle Box", Price: 28, Quantity: 1})
	r := newOrderRouter(carts, orders, 100)

	w := placeOrder(t, r, PlaceOrderRequest{PaymentMethod: "cod"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, orders.All())
	// Rejection must leave the cart untouched.
	assert.Len(t, carts.Items("user-1"), 1)
}

func TestPlaceOrder_InvalidPaymentMethod(t *testing.T) {
	carts := store.NewCartStore()
	orders := store.NewOrderStore()
	carts.Add("user-1", store.AddPayload{Name: "Truffle Box", Price: 28, Quantity: 1})
	r := newOrderRouter(carts, orders, 100)

	w := placeOrder(t, r, PlaceOrderRequest{
		PaymentMethod: "cheque",
		Address:       "12 Cocoa Lane",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, orders.All())
	assert.Len(t, carts.Items("user-1"), 1)
}

func TestPlaceOrder_SnapshotsAndClearsCart(t *testing.T) {
	carts := store.NewCartStore()
	orders := store.NewOrderStore()
	carts.Add("user-1", store.AddPayload{Name: "Grand Tasting Box", Price: 750, Quantity: 2})
	r := newOrderRouter(carts, orders, 650)

	w := placeOrder(t, r, PlaceOrderRequest{
		PaymentMethod: "card",
		Address:       "12 Cocoa Lane",
		Latitude:      floatPtr(40.7128),
		Longitude:     floatPtr(-74.006),
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var record models.OrderRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, int64(1500), record.Subtotal)
	assert.Equal(t, int64(650), record.DeliveryFee)
	assert.Equal(t, int64(2150), record.Total)
	assert.Equal(t, models.PaymentCard, record.PaymentMethod)
	require.NotNil(t, record.Coords)
	assert.Equal(t, 40.7128, record.Coords.Latitude)
	require.Len(t, record.Items, 1)

	// Cart is cleared only after the order is recorded.
	assert.Empty(t, carts.Items("user-1"))
	assert.Len(t, orders.ListByUser("user-1"), 1)
}

func TestPlaceOrder_CoordsOnlyLocationAccepted(t *testing.T) {
	carts := store.NewCartStore()
	orders := store.NewOrderStore()
	carts.Add("user-1", store.AddPayload{Name: "Truffle Box", Price: 28, Quantity: 1})
	r := newOrderRouter(carts, orders, 100)

	w := placeOrder(t, r, PlaceOrderRequest{
		PaymentMethod: "cod",
		Latitude:      floatPtr(6.9271),
		Longitude:     floatPtr(79.8612),
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, orders.All(), 1)
}

func TestPlaceOrder_LaterCartMutationsLeaveHistoryAlone(t *testing.T) {
	carts := store.NewCartStore()
	orders := store.NewOrderStore()
	carts.Add("user-1", store.AddPayload{Name: "Truffle Box", Price: 28, Quantity: 3})
	r := newOrderRouter(carts, orders, 100)

	w := placeOrder(t, r, PlaceOrderRequest{PaymentMethod: "cod", Address: "12 Cocoa Lane"})
	require.Equal(t, http.StatusCreated, w.Code)

	carts.Add("user-1", store.AddPayload{Name: "Truffle Box", Price: 99, Quantity: 7})

	history := orders.ListByUser("user-1")
	require.Len(t, history, 1)
	require.Len(t, history[0].Items, 1)
	assert.Equal(t, int64(28), history[0].Items[0].Price)
	assert.Equal(t, 3, history[0].Items[0].Quantity)
}

func TestGetUserOrders_NewestFirst(t *testing.T) {
	carts := store.NewCartStore()
	orders := store.NewOrderStore()
	r := newOrderRouter(carts, orders, 100)

	carts.Add("user-1", store.AddPayload{Name: "First", Price: 10, Quantity: 1})
	require.Equal(t, http.StatusCreated, placeOrder(t, r, PlaceOrderRequest{PaymentMethod: "cod", Address: "A"}).Code)

	carts.Add("user-1", store.AddPayload{Name: "Second", Price: 20, Quantity: 1})
	require.Equal(t, http.StatusCreated, placeOrder(t, r, PlaceOrderRequest{PaymentMethod: "cod", Address: "B"}).Code)

	req := httptest.NewRequest(http.MethodGet, "/user/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var history []models.OrderRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history, 2)
	assert.Equal(t, "Second", history[0].Items[0].Name)
	assert.Equal(t, "First", history[1].Items[0].Name)
}
