package services

import (
	"gadget-shop/models"
	"gadget-shop/repositories"
)

type ProductService struct {
	catalogRepo *repositories.CatalogRepository
}

func NewProductService(catalogRepo *repositories.CatalogRepository) *ProductService {
	return &ProductService{
		catalogRepo: catalogRepo,
	}
}

func (s *ProductService) GetAllProducts() []models.Product {
	return s.catalogRepo.GetAllProducts()
}

func (s *ProductService) GetProductByID(id int) (*models.Product, error) {
	return s.catalogRepo.GetProductByID(id)
}

func (s *ProductService) GetAllCategories() []string {
	return s.catalogRepo.GetAllCategories()
}
