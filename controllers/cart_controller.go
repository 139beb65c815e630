package controllers

import (
	"errors"
	"strconv"

	"gadget-shop/models"
	"gadget-shop/services"
	"gadget-shop/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

type AddItemRequest struct {
	ProductID int `json:"product_id" binding:"required,min=1"`
}

type UpdateQuantityRequest struct {
	Change int `json:"change" binding:"required"`
}

// @Summary Get cart
// @Description Get the cart items with totals
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	items := ctrl.cartService.GetCartItems()
	totalCents := ctrl.cartService.GetTotalPrice()

	c.JSON(200, gin.H{
		"success": true, "message": "Cart retrieved",
		"data": gin.H{
			"items":         items,
			"total_items":   ctrl.cartService.GetTotalItems(),
			"total_cents":   totalCents,
			"total_display": utils.FormatCents(totalCents),
		},
	})
}

// @Summary Add to cart
// @Description Add one unit of a product to the cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body controllers.AddItemRequest true "Product to add"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 409 {object} models.Response
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "product_id is required"})
		return
	}

	toast, err := ctrl.cartService.AddToCart(req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrProductNotFound):
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		case errors.Is(err, models.ErrOutOfStock), errors.Is(err, models.ErrStockLimit):
			c.JSON(409, gin.H{"success": false, "message": err.Error(), "toast": toast})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Failed to add to cart"})
		}
		return
	}

	c.JSON(200, gin.H{
		"success": true, "message": toast.Message, "toast": toast,
		"data": gin.H{
			"items":       ctrl.cartService.GetCartItems(),
			"total_items": ctrl.cartService.GetTotalItems(),
			"total_cents": ctrl.cartService.GetTotalPrice(),
		},
	})
}

// @Summary Update quantity
// @Description Apply a signed quantity change to a cart line; zero or below removes it
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body controllers.UpdateQuantityRequest true "Quantity change"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.Response
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "change is required and must be non-zero"})
		return
	}

	ctrl.cartService.UpdateQuantity(id, req.Change)

	c.JSON(200, gin.H{
		"success": true, "message": "Cart updated",
		"data": gin.H{
			"items":       ctrl.cartService.GetCartItems(),
			"total_items": ctrl.cartService.GetTotalItems(),
			"total_cents": ctrl.cartService.GetTotalPrice(),
		},
	})
}

// @Summary Remove from cart
// @Description Remove a cart line entirely
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	toast := ctrl.cartService.RemoveFromCart(id)

	c.JSON(200, gin.H{
		"success": true, "message": toast.Message, "toast": toast,
		"data": gin.H{
			"items":       ctrl.cartService.GetCartItems(),
			"total_items": ctrl.cartService.GetTotalItems(),
			"total_cents": ctrl.cartService.GetTotalPrice(),
		},
	})
}
