package services

import (
	"errors"

	"gadget-shop/models"
	"gadget-shop/repositories"
)

type OrderService struct {
	storeRepo *repositories.StoreRepository
}

func NewOrderService(storeRepo *repositories.StoreRepository) *OrderService {
	return &OrderService{
		storeRepo: storeRepo,
	}
}

// Checkout converts the cart into a pending order. On success the order sits
// at the front of the history and the cart is empty.
func (s *OrderService) Checkout() (*models.Order, *models.Toast, error) {
	order, err := s.storeRepo.Checkout()
	if err != nil {
		if errors.Is(err, models.ErrEmptyCart) {
			return nil, models.NewToast(models.ToastWarning, "Your cart is empty"), err
		}
		return nil, nil, err
	}

	return order, models.NewToast(models.ToastSuccess, "Order placed successfully!"), nil
}

func (s *OrderService) GetAllOrders() []models.Order {
	return s.storeRepo.Orders()
}
