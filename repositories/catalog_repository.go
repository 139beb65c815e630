package repositories

import (
	"gadget-shop/models"
)

// CatalogRepository serves the fixed product catalog. It is read-only for the
// process lifetime.
type CatalogRepository struct {
	products []models.Product
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		products: models.SeedProducts(),
	}
}

func (r *CatalogRepository) GetAllProducts() []models.Product {
	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products
}

func (r *CatalogRepository) GetProductByID(id int) (*models.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, models.ErrProductNotFound
}

// GetAllCategories returns the distinct categories in first-seen order.
func (r *CatalogRepository) GetAllCategories() []string {
	seen := map[string]bool{}
	categories := []string{}
	for _, p := range r.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}
