package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dopetech/dopetech-api/edge"
	"github.com/dopetech/dopetech-api/models"
	"github.com/dopetech/dopetech-api/supabase"
)

// OrderController proxies order reads and writes. Orders are schema-light,
// so bodies travel as raw JSON objects. Only the order list is cacheable.
type OrderController struct {
	store *supabase.Client
	log   zerolog.Logger
}

func NewOrderController(store *supabase.Client, logger zerolog.Logger) *OrderController {
	return &OrderController{store: store, log: logger}
}

// GetOrders returns one order when orderId is given, otherwise the full list
// newest first.
func (oc *OrderController) GetOrders(ctx *gin.Context) {
	orderID := ctx.Query("orderId")
	if orderID != "" {
		var order models.Order
		err := oc.store.QueryOne(ctx.Request.Context(), "orders", &order, supabase.Eq("order_id", orderID))
		if err != nil {
			if !errors.Is(err, supabase.ErrNotFound) {
				oc.log.Error().Err(err).Str("order_id", orderID).Msg("failed to fetch order")
			}
			respondWithError(ctx, http.StatusNotFound, "Order not found", nil)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"order": order})
		return
	}

	var orders []models.Order
	err := oc.store.Query(ctx.Request.Context(), "orders", &orders, nil,
		&supabase.SortOrder{Column: "created_at", Ascending: false})
	if err != nil {
		oc.log.Error().Err(err).Msg("failed to list orders")
		respondWithError(ctx, http.StatusInternalServerError, "Failed to get orders", nil)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	edge.CachedJSON(ctx, edge.ClassOrders, orders)
}

func (oc *OrderController) CreateOrder(ctx *gin.Context) {
	var order models.Order
	if err := ctx.ShouldBindJSON(&order); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var created models.Order
	if err := oc.store.Insert(ctx.Request.Context(), "orders", order, &created); err != nil {
		oc.log.Error().Err(err).Msg("failed to create order")
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create order", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"order": created})
}

// UpdateOrderStatus sets order_status and refreshes updated_at. The CORS
// middleware on the router guarantees these responses carry the CORS headers
// on every path, including errors.
func (oc *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	var body struct {
		OrderID     any    `json:"orderId"`
		OrderStatus string `json:"order_status"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil || body.OrderID == nil || body.OrderStatus == "" {
		respondWithError(ctx, http.StatusBadRequest, "Missing required fields: orderId and order_status", nil)
		return
	}

	patch := map[string]any{
		"order_status": body.OrderStatus,
		"updated_at":   time.Now().UTC().Format(time.RFC3339),
	}

	var updated models.Order
	err := oc.store.Update(ctx.Request.Context(), "orders", patch, &updated,
		supabase.Eq("id", fmt.Sprint(body.OrderID)))
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Order not found", nil)
			return
		}
		oc.log.Error().Err(err).Msg("failed to update order status")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status: " + err.Error()})
		return
	}

	oc.log.Info().Str("order_id", updated.ID()).Str("status", updated.Status()).Msg("order status updated")

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order status updated successfully",
		"order":   updated,
	})
}
