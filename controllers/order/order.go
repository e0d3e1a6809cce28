package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Dulanji-Amanda/SweetZone/models"
	"github.com/Dulanji-Amanda/SweetZone/store"
	"github.com/gin-gonic/gin"
)

// -------- Request Structs --------

type PlaceOrderRequest struct {
	PaymentMethod string   `json:"payment_method" binding:"required"`
	Address       string   `json:"address"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

// -------- Helpers --------

func mapPaymentMethod(method string) (models.PaymentMethod, error) {
	switch strings.ToLower(method) {
	case string(models.PaymentCashOnDelivery):
		return models.PaymentCashOnDelivery, nil
	case string(models.PaymentCard):
		return models.PaymentCard, nil
	default:
		return "", errors.New("invalid payment method")
	}
}

func userID(c *gin.Context) (string, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	id, ok := val.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id, true
}

// -------- Handlers --------

// POST /user/orders
//
// Checkout snapshots the cart into an order record, then clears the cart.
// The cart is only cleared after the record is in the history, so a shopper
// never observes a cleared cart without its order.
func PlaceOrderHandler(carts *store.CartStore, orders *store.OrderStore, deliveryFee int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := userID(c)
		if !ok {
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		method, err := mapPaymentMethod(req.PaymentMethod)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		items := carts.Items(uid)
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		var coords *models.Coordinate
		if req.Latitude != nil && req.Longitude != nil {
			coords = &models.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}
		}
		if req.Address == "" && coords == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Delivery location not set"})
			return
		}

		// Totals come from the snapshot itself, so the record is
		// consistent even if the cart changed since Items was read.
		var subtotal int64
		for _, item := range items {
			subtotal += item.Price * int64(item.Quantity)
		}
		total := subtotal + deliveryFee

		record := orders.Add(uid, items, subtotal, deliveryFee, total, method, req.Address, coords)
		carts.Clear(uid)

		broadcastNewOrder(record)

		c.JSON(http.StatusCreated, record)
	}
}

// GET /user/orders
func GetUserOrdersHandler(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := userID(c)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, orders.ListByUser(uid))
	}
}

// GET /orders (admin)
func GetAllOrdersHandler(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, orders.All())
	}
}
