package usecase

import (
	"context"
	"log/slog"

	"fintrack/src/core/domain"
	"fintrack/src/core/ports"
)

// BudgetService manages monthly category budgets.
type BudgetService struct {
	repo ports.FinanceRepository
	log  *slog.Logger
}

func NewBudgetService(repo ports.FinanceRepository, log *slog.Logger) *BudgetService {
	return &BudgetService{repo: repo, log: log}
}

// List returns all budgets of a user, or only those of period when non-nil.
func (s *BudgetService) List(ctx context.Context, userID int64, period *domain.BudgetPeriod) ([]domain.Budget, error) {
	return s.repo.ListBudgets(ctx, userID, period)
}

func (s *BudgetService) Create(ctx context.Context, in ports.BudgetInput) (*domain.Budget, error) {
	return s.repo.CreateBudget(ctx, in)
}

func (s *BudgetService) Update(ctx context.Context, budgetID int64, in ports.BudgetInput) (*domain.Budget, error) {
	return s.repo.UpdateBudget(ctx, budgetID, in)
}

func (s *BudgetService) Delete(ctx context.Context, budgetID int64) error {
	if err := s.repo.DeleteBudget(ctx, budgetID); err != nil {
		return err
	}
	s.log.Info("budget deleted", "budget_id", budgetID)
	return nil
}
