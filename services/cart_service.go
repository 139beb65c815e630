package services

import (
	"errors"

	"gadget-shop/models"
	"gadget-shop/repositories"
)

type CartService struct {
	catalogRepo *repositories.CatalogRepository
	storeRepo   *repositories.StoreRepository
}

func NewCartService(catalogRepo *repositories.CatalogRepository, storeRepo *repositories.StoreRepository) *CartService {
	return &CartService{
		catalogRepo: catalogRepo,
		storeRepo:   storeRepo,
	}
}

// AddToCart adds one unit of the product and returns the toast describing the
// outcome. Stock rejections come back as both a warning toast and the
// matching sentinel error so the handler can pick a status code.
func (s *CartService) AddToCart(productID int) (*models.Toast, error) {
	product, err := s.catalogRepo.GetProductByID(productID)
	if err != nil {
		return nil, err
	}

	result, err := s.storeRepo.AddItem(*product)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrOutOfStock):
			return models.NewToast(models.ToastWarning, "Product is out of stock"), err
		case errors.Is(err, models.ErrStockLimit):
			return models.NewToast(models.ToastWarning, "Maximum stock reached"), err
		}
		return nil, err
	}

	if result == repositories.AddResultIncremented {
		return models.NewToast(models.ToastSuccess, "Quantity updated in cart"), nil
	}
	return models.NewToast(models.ToastSuccess, "Added to cart"), nil
}

// RemoveFromCart deletes the cart line. A missing id is not an error; the
// informational toast is produced either way.
func (s *CartService) RemoveFromCart(productID int) *models.Toast {
	s.storeRepo.RemoveItem(productID)
	return models.NewToast(models.ToastInfo, "Removed from cart")
}

// UpdateQuantity applies a signed change to the line's quantity. Dropping to
// zero or below removes the line; unknown ids are a silent no-op.
func (s *CartService) UpdateQuantity(productID, change int) {
	s.storeRepo.AdjustQuantity(productID, change)
}

func (s *CartService) GetCartItems() []models.CartItem {
	return s.storeRepo.CartItems()
}

func (s *CartService) GetTotalPrice() int64 {
	return s.storeRepo.TotalCents()
}

func (s *CartService) GetTotalItems() int {
	return s.storeRepo.TotalItems()
}
