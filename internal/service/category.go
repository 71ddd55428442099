package service

import (
	"context"
	"strings"

	"github.com/coopconnect/backend/internal/domain"
	"github.com/coopconnect/backend/internal/repository"
)

type categoryService struct {
	categoryRepository repository.Categories
}

func newCategoryService(categoryRepository repository.Categories) *categoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
	}
}

func (s *categoryService) GetAll(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepository.GetAll(ctx)
}

func (s *categoryService) Create(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, domain.NewValidationError("name", "is required")
	}
	return s.categoryRepository.Create(ctx, name)
}
