package services

import (
	"testing"

	"gadget-shop/models"
	"gadget-shop/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShopServices() (*CartService, *OrderService) {
	catalog := repositories.NewCatalogRepository()
	store := repositories.NewStoreRepository(models.SeedOrders())
	return NewCartService(catalog, store), NewOrderService(store)
}

func TestCheckoutEmptyCartToast(t *testing.T) {
	_, orders := newShopServices()

	order, toast, err := orders.Checkout()
	assert.ErrorIs(t, err, models.ErrEmptyCart)
	assert.Nil(t, order)
	require.NotNil(t, toast)
	assert.Equal(t, models.ToastWarning, toast.Type)
	assert.Equal(t, "Your cart is empty", toast.Message)

	assert.Len(t, orders.GetAllOrders(), 2)
}

func TestCheckoutSuccess(t *testing.T) {
	cart, orders := newShopServices()

	_, err := cart.AddToCart(3)
	require.NoError(t, err)

	order, toast, err := orders.Checkout()
	require.NoError(t, err)
	assert.Equal(t, models.ToastSuccess, toast.Type)
	assert.Equal(t, "Order placed successfully!", toast.Message)

	assert.Equal(t, "ORD-003", order.ID)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Empty(t, cart.GetCartItems())

	history := orders.GetAllOrders()
	require.Len(t, history, 3)
	assert.Equal(t, order.ID, history[0].ID)
}

// The end-to-end sequence: add a product twice, step the quantity back down,
// then check out.
func TestShoppingScenario(t *testing.T) {
	cart, orders := newShopServices()

	_, err := cart.AddToCart(1) // Wireless Headphones, $129.99
	require.NoError(t, err)
	_, err = cart.AddToCart(1)
	require.NoError(t, err)

	items := cart.GetCartItems()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, int64(25998), cart.GetTotalPrice())

	cart.UpdateQuantity(1, -1)
	items = cart.GetCartItems()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, int64(12999), cart.GetTotalPrice())

	order, _, err := orders.Checkout()
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.Equal(t, int64(12999), order.TotalCents)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Empty(t, cart.GetCartItems())
}
