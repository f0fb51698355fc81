package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bun612/shop-api/entity"
	orderpkg "github.com/bun612/shop-api/order"
)

// OrderHandler bundles dependencies for order-related HTTP handlers.
type OrderHandler struct {
	service orderpkg.Service
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(svc orderpkg.Service) *OrderHandler {
	return &OrderHandler{service: svc}
}

type orderItemPayload struct {
	ProductID uint     `json:"product_id" binding:"required"`
	Quantity  int      `json:"quantity" binding:"required,gt=0"`
	Price     *float64 `json:"price" binding:"required,gte=0"`
}

type createOrderPayload struct {
	CustomerID uint `json:"customer_id" binding:"required"`
	// Total is accepted for wire compatibility but ignored; the service
	// always recomputes it from the items.
	Total    *float64           `json:"total"`
	Products []orderItemPayload `json:"products" binding:"required,dive"`
}

type updateOrderPayload struct {
	CustomerID *uint              `json:"customer_id"`
	Total      *float64           `json:"total"`
	Products   []orderItemPayload `json:"products" binding:"omitempty,dive"`
}

func toItemRequests(payload []orderItemPayload) []orderpkg.OrderItemRequest {
	items := make([]orderpkg.OrderItemRequest, 0, len(payload))
	for _, it := range payload {
		items = append(items, orderpkg.OrderItemRequest{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     *it.Price,
		})
	}
	return items
}

func (h *OrderHandler) CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createOrderPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		req := orderpkg.CreateOrderRequest{
			CustomerID: p.CustomerID,
			Items:      toItemRequests(p.Products),
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()
		created, err := h.service.CreateOrder(ctx, req)
		if err != nil {
			switch {
			case errors.Is(err, orderpkg.ErrCustomerNotFound), errors.Is(err, orderpkg.ErrProductNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
			}
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "order created", "order_id": created.ID, "total": created.Total})
	}
}

func (h *OrderHandler) ListOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()
		orders, err := h.service.ListOrders(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
			return
		}
		rows := make([]gin.H, 0, len(orders))
		for i := range orders {
			o := &orders[i]
			row := gin.H{
				"id":          o.ID,
				"customer_id": o.CustomerID,
				"order_date":  o.OrderDate,
				"total":       o.Total,
			}
			if o.Customer != nil {
				row["customer_name"] = o.Customer.Name
				row["customer_phone"] = o.Customer.Phone
			}
			rows = append(rows, row)
		}
		c.JSON(http.StatusOK, rows)
	}
}

// GetOrder returns the order joined with its customer and line items; a zero
// stored total is repaired before the response is built.
func (h *OrderHandler) GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()
		o, err := h.service.GetOrder(ctx, id)
		if err != nil {
			if errors.Is(err, orderpkg.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get order"})
			return
		}
		c.JSON(http.StatusOK, orderDetailResponse(o))
	}
}

func orderDetailResponse(o *entity.Order) gin.H {
	details := make([]gin.H, 0, len(o.Items))
	for _, it := range o.Items {
		d := gin.H{
			"product_id": it.ProductID,
			"quantity":   it.Quantity,
			"price":      it.Price,
		}
		if it.Product != nil {
			d["product_name"] = it.Product.Name
		}
		details = append(details, d)
	}
	resp := gin.H{
		"order_id":    o.ID,
		"customer_id": o.CustomerID,
		"order_date":  o.OrderDate,
		"total":       o.Total,
		"details":     details,
	}
	if o.Customer != nil {
		resp["customer_name"] = o.Customer.Name
		resp["customer_phone"] = o.Customer.Phone
	}
	return resp
}

func (h *OrderHandler) UpdateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var p updateOrderPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		req := orderpkg.UpdateOrderRequest{
			CustomerID: p.CustomerID,
			Total:      p.Total,
		}
		if p.Products != nil {
			req.Items = toItemRequests(p.Products)
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()
		if err := h.service.UpdateOrder(ctx, id, req); err != nil {
			switch {
			case errors.Is(err, orderpkg.ErrOrderNotFound),
				errors.Is(err, orderpkg.ErrCustomerNotFound),
				errors.Is(err, orderpkg.ErrProductNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "order updated"})
	}
}

func (h *OrderHandler) DeleteOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()
		if err := h.service.DeleteOrder(ctx, id); err != nil {
			if errors.Is(err, orderpkg.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
	}
}

// FixZeroTotals runs the batch repair and reports which orders changed.
func (h *OrderHandler) FixZeroTotals() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()
		fixed, err := h.service.RepairZeroTotals(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to repair order totals"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders_fixed": fixed})
	}
}
