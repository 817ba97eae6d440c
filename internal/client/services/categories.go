package services

import (
	"context"
	"fmt"

	"github.com/avolkovs/storekeeper/internal/client/api"
	"github.com/avolkovs/storekeeper/internal/client/models"
)

// CategoryService lists the product categories used by product dialogs.
type CategoryService interface {
	All(ctx context.Context) ([]models.Category, error)
}

type categoryService struct {
	api         *api.Client
	categoryURL string
}

// NewCategoryService constructs a CategoryService rooted at categoryURL.
func NewCategoryService(client *api.Client, categoryURL string) CategoryService {
	return &categoryService{api: client, categoryURL: categoryURL}
}

func (s *categoryService) All(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if _, err := s.api.Get(ctx, s.categoryURL+"/all", &categories); err != nil {
		return nil, fmt.Errorf("fetch categories error: %w", err)
	}
	return categories, nil
}
