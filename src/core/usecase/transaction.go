package usecase

import (
	"context"
	"log/slog"

	"fintrack/src/core/domain"
	"fintrack/src/core/ports"
)

// TransactionService records and lists money movements.
type TransactionService struct {
	repo ports.FinanceRepository
	log  *slog.Logger
}

func NewTransactionService(repo ports.FinanceRepository, log *slog.Logger) *TransactionService {
	return &TransactionService{repo: repo, log: log}
}

func (s *TransactionService) List(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	return s.repo.ListTransactions(ctx, userID)
}

func (s *TransactionService) Create(ctx context.Context, in ports.TransactionInput) (*domain.Transaction, error) {
	return s.repo.CreateTransaction(ctx, in)
}

func (s *TransactionService) Delete(ctx context.Context, transactionID int64) error {
	if err := s.repo.DeleteTransaction(ctx, transactionID); err != nil {
		return err
	}
	s.log.Info("transaction deleted", "transaction_id", transactionID)
	return nil
}
