package service

import (
	"context"

	"crm-backend/internal/domain"
	"crm-backend/internal/repository"
)

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) CreateProduct(ctx context.Context, p *domain.Product) error {
	p.Active = true
	return s.productRepo.Create(ctx, p)
}

func (s *productService) GetProduct(ctx context.Context, id int32) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *productService) ListProducts(ctx context.Context, page, pageSize int32) ([]domain.Product, int32, error) {
	return s.productRepo.List(ctx, page, pageSize)
}

func (s *productService) UpdateProduct(ctx context.Context, p *domain.Product) error {
	return s.productRepo.Update(ctx, p)
}

func (s *productService) DeleteProduct(ctx context.Context, id int32) error {
	return s.productRepo.Delete(ctx, id)
}
