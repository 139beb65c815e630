package repositories

import (
	"sync"
	"time"

	"gadget-shop/models"
)

// AddResult distinguishes a fresh cart line from an incremented one.
type AddResult int

const (
	AddResultNew AddResult = iota
	AddResultIncremented
)

// StoreRepository holds the session's mutable state: the cart and the order
// history. All transitions run to completion under one mutex, so operations
// apply in the order they are issued and checkout is atomic.
type StoreRepository struct {
	mu     sync.Mutex
	cart   []models.CartItem
	orders []models.Order
}

func NewStoreRepository(seedOrders []models.Order) *StoreRepository {
	r := &StoreRepository{}
	r.Reset(seedOrders)
	return r
}

// Reset restores the seed state. Test hook; nothing tears the store down in
// normal operation.
func (r *StoreRepository) Reset(seedOrders []models.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cart = []models.CartItem{}
	r.orders = make([]models.Order, len(seedOrders))
	copy(r.orders, seedOrders)
}

func (r *StoreRepository) CartItems() []models.CartItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]models.CartItem, len(r.cart))
	copy(items, r.cart)
	return items
}

func (r *StoreRepository) TotalCents() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.totalCentsLocked()
}

func (r *StoreRepository) TotalItems() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for _, item := range r.cart {
		total += item.Quantity
	}
	return total
}

func (r *StoreRepository) totalCentsLocked() int64 {
	var total int64
	for _, item := range r.cart {
		total += item.SubtotalCents()
	}
	return total
}

// AddItem puts one unit of the product in the cart. Out-of-stock products and
// quantities already at the stock cap are rejected with no state change.
func (r *StoreRepository) AddItem(product models.Product) (AddResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !product.InStock {
		return 0, models.ErrOutOfStock
	}

	for i := range r.cart {
		if r.cart[i].ID == product.ID {
			if r.cart[i].Quantity >= product.StockCount {
				return 0, models.ErrStockLimit
			}
			r.cart[i].Quantity++
			return AddResultIncremented, nil
		}
	}

	r.cart = append(r.cart, models.CartItem{Product: product, Quantity: 1})
	return AddResultNew, nil
}

// RemoveItem deletes the cart line for the product id. Absent ids are a
// no-op; the bool reports whether anything was removed.
func (r *StoreRepository) RemoveItem(productID int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.cart {
		if r.cart[i].ID == productID {
			r.cart = append(r.cart[:i], r.cart[i+1:]...)
			return true
		}
	}
	return false
}

// AdjustQuantity adds change to the line's quantity. A result of zero or less
// removes the line; absent ids are a no-op.
func (r *StoreRepository) AdjustQuantity(productID, change int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.cart {
		if r.cart[i].ID == productID {
			newQuantity := r.cart[i].Quantity + change
			if newQuantity <= 0 {
				r.cart = append(r.cart[:i], r.cart[i+1:]...)
			} else {
				r.cart[i].Quantity = newQuantity
			}
			return
		}
	}
}

// Checkout turns the cart into a new order at the front of the history and
// clears the cart, all under the lock: either the full order exists and the
// cart is empty, or nothing changed.
func (r *StoreRepository) Checkout() (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.cart) == 0 {
		return nil, models.ErrEmptyCart
	}

	items := make([]models.CartItem, len(r.cart))
	copy(items, r.cart)

	order := models.Order{
		ID:         models.OrderNumber(len(r.orders) + 1),
		Date:       time.Now().Format("2006-01-02"),
		Items:      items,
		TotalCents: r.totalCentsLocked(),
		Status:     models.StatusPending,
	}

	r.orders = append([]models.Order{order}, r.orders...)
	r.cart = []models.CartItem{}

	return &order, nil
}

func (r *StoreRepository) Orders() []models.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := make([]models.Order, len(r.orders))
	copy(orders, r.orders)
	return orders
}
