// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"
	"time"

	"fintrack/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// NewUser carries the registration fields as submitted.
type NewUser struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// AccountInput carries writable account fields.
type AccountInput struct {
	UserID         int64
	Name           string
	Type           string
	CurrentBalance float64
}

// TransactionInput carries writable transaction fields.
type TransactionInput struct {
	UserID      int64
	AccountID   int64
	CategoryID  int64
	Date        time.Time
	Amount      float64
	Description *string
}

// BudgetInput carries writable budget fields.
type BudgetInput struct {
	UserID      int64
	CategoryID  int64
	AmountLimit float64
	Month       int
	Year        int
}

// FinanceRepository covers every statement the API issues. Each method runs
// exactly one SQL statement on a connection it opens and closes itself.
type FinanceRepository interface {
	Repository

	// Users
	CreateUser(ctx context.Context, in NewUser) (*domain.User, error)
	// FindUserByCredentials returns (nil, nil) when no row matches.
	FindUserByCredentials(ctx context.Context, email, password string) (*domain.User, error)

	// Categories
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// Accounts
	ListAccounts(ctx context.Context, userID int64) ([]domain.Account, error)
	CreateAccount(ctx context.Context, in AccountInput) (*domain.Account, error)
	UpdateAccount(ctx context.Context, accountID int64, in AccountInput) (*domain.Account, error)
	DeleteAccount(ctx context.Context, accountID int64) error

	// Transactions
	ListTransactions(ctx context.Context, userID int64) ([]domain.Transaction, error)
	CreateTransaction(ctx context.Context, in TransactionInput) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID int64) error

	// Budgets
	ListBudgets(ctx context.Context, userID int64, period *domain.BudgetPeriod) ([]domain.Budget, error)
	CreateBudget(ctx context.Context, in BudgetInput) (*domain.Budget, error)
	UpdateBudget(ctx context.Context, budgetID int64, in BudgetInput) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, budgetID int64) error
}
