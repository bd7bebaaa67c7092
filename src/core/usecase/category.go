package usecase

import (
	"context"

	"fintrack/src/core/domain"
	"fintrack/src/core/ports"
)

// CategoryService exposes the shared category list.
type CategoryService struct {
	repo ports.FinanceRepository
}

func NewCategoryService(repo ports.FinanceRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}
