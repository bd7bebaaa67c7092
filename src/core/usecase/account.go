package usecase

import (
	"context"
	"log/slog"

	"fintrack/src/core/domain"
	"fintrack/src/core/ports"
)

// AccountService manages a user's accounts.
type AccountService struct {
	repo ports.FinanceRepository
	log  *slog.Logger
}

func NewAccountService(repo ports.FinanceRepository, log *slog.Logger) *AccountService {
	return &AccountService{repo: repo, log: log}
}

func (s *AccountService) List(ctx context.Context, userID int64) ([]domain.Account, error) {
	return s.repo.ListAccounts(ctx, userID)
}

func (s *AccountService) Create(ctx context.Context, in ports.AccountInput) (*domain.Account, error) {
	return s.repo.CreateAccount(ctx, in)
}

func (s *AccountService) Update(ctx context.Context, accountID int64, in ports.AccountInput) (*domain.Account, error) {
	return s.repo.UpdateAccount(ctx, accountID, in)
}

func (s *AccountService) Delete(ctx context.Context, accountID int64) error {
	if err := s.repo.DeleteAccount(ctx, accountID); err != nil {
		return err
	}
	s.log.Info("account deleted", "account_id", accountID)
	return nil
}
