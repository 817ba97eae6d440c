package services

import (
	"context"
	"fmt"

	"github.com/avolkovs/storekeeper/internal/client/api"
	"github.com/avolkovs/storekeeper/internal/client/models"
)

// ProductService covers the catalog endpoints of the admin console.
type ProductService interface {
	All(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, req ProductCreateRequest) (*models.Product, error)
	Update(ctx context.Context, id int64, req ProductUpdateRequest) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
}

type productService struct {
	api         *api.Client
	productsURL string
}

// NewProductService constructs a ProductService rooted at productsURL.
func NewProductService(client *api.Client, productsURL string) ProductService {
	return &productService{api: client, productsURL: productsURL}
}

func (s *productService) All(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if _, err := s.api.Get(ctx, s.productsURL+"/all", &products); err != nil {
		return nil, fmt.Errorf("fetch products error: %w", err)
	}
	return products, nil
}

func (s *productService) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if _, err := s.api.Get(ctx, fmt.Sprintf("%s/%d", s.productsURL, id), &product); err != nil {
		return nil, fmt.Errorf("fetch product error: %w", err)
	}
	return &product, nil
}

func (s *productService) Create(ctx context.Context, req ProductCreateRequest) (*models.Product, error) {
	var product models.Product
	if _, err := s.api.Post(ctx, s.productsURL+"/add", req, &product); err != nil {
		return nil, fmt.Errorf("create product error: %w", err)
	}
	return &product, nil
}

func (s *productService) Update(ctx context.Context, id int64, req ProductUpdateRequest) (*models.Product, error) {
	var product models.Product
	if _, err := s.api.Put(ctx, fmt.Sprintf("%s/%d/update", s.productsURL, id), req, &product); err != nil {
		return nil, fmt.Errorf("update product error: %w", err)
	}
	return &product, nil
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	if _, err := s.api.Delete(ctx, fmt.Sprintf("%s/%d/delete", s.productsURL, id)); err != nil {
		return fmt.Errorf("delete product error: %w", err)
	}
	return nil
}
