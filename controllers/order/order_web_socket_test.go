package orderControllers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dulanji-Amanda/SweetZone/models"
	"github.com/Dulanji-Amanda/SweetZone/store"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderFeed_BroadcastsPlacedOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/orders/ws", OrderFeedHandler)

	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/orders/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// The handler registers the connection after the upgrade completes.
	require.Eventually(t, func() bool {
		wsMu.Lock()
		defer wsMu.Unlock()
		return len(wsClients) > 0
	}, time.Second, 10*time.Millisecond)

	orders := store.NewOrderStore()
	record := orders.Add("user-1",
		[]models.CartLine{{ID: "l1", Name: "Truffle Box", Price: 28, Quantity: 2}},
		56, 100, 156, models.PaymentCard, "12 Cocoa Lane", nil)
	broadcastNewOrder(record)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var got models.OrderRecord
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, record.ID, got.ID)
	assert.Equal(t, int64(156), got.Total)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Truffle Box", got.Items[0].Name)
}
