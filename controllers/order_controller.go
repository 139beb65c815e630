package controllers

import (
	"errors"

	"gadget-shop/models"
	"gadget-shop/services"
	"gadget-shop/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController(orderService *services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

func orderJSON(order models.Order) gin.H {
	return gin.H{
		"id":            order.ID,
		"date":          order.Date,
		"items":         order.Items,
		"total_cents":   order.TotalCents,
		"total_display": utils.FormatCents(order.TotalCents),
		"status":        order.Status,
		"status_badge":  order.Status.Badge(),
	}
}

// @Summary Get order history
// @Description Get all orders, most recent checkout first
// @Tags Orders
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	orders := ctrl.orderService.GetAllOrders()

	data := []gin.H{}
	for _, order := range orders {
		data = append(data, orderJSON(order))
	}

	c.JSON(200, gin.H{"success": true, "message": "Orders retrieved", "data": data})
}

// @Summary Checkout
// @Description Turn the cart into a new pending order and clear the cart
// @Tags Orders
// @Produce json
// @Success 200 {object} models.Response
// @Failure 409 {object} models.Response
// @Router /checkout [post]
func (ctrl *OrderController) Checkout(c *gin.Context) {
	order, toast, err := ctrl.orderService.Checkout()
	if err != nil {
		if errors.Is(err, models.ErrEmptyCart) {
			c.JSON(409, gin.H{"success": false, "message": err.Error(), "toast": toast})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Checkout failed"})
		return
	}

	c.JSON(200, gin.H{
		"success": true, "message": toast.Message, "toast": toast,
		"data": orderJSON(*order),
	})
}
