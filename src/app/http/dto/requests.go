package dto

import (
	"time"

	"fintrack/src/core/domain"
	"fintrack/src/core/ports"
)

// DateLayout is the format of transaction_date in requests.
const DateLayout = "2006-01-02"

// CreateUserRequest is the payload for POST /users.
type CreateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (r *CreateUserRequest) ToInput() ports.NewUser {
	return ports.NewUser{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
	}
}

// LoginRequest is the payload for POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountRequest is the payload for POST /accounts and PUT /accounts/:account_id.
// UserID is ignored on update.
type AccountRequest struct {
	UserID         int64   `json:"user_id"`
	AccountName    string  `json:"account_name"`
	AccountType    string  `json:"account_type"`
	CurrentBalance float64 `json:"current_balance"`
}

func (r *AccountRequest) ToInput() ports.AccountInput {
	return ports.AccountInput{
		UserID:         r.UserID,
		Name:           r.AccountName,
		Type:           r.AccountType,
		CurrentBalance: r.CurrentBalance,
	}
}

// TransactionRequest is the payload for POST /transactions.
type TransactionRequest struct {
	UserID          int64   `json:"user_id"`
	AccountID       int64   `json:"account_id"`
	CategoryID      int64   `json:"category_id"`
	TransactionDate string  `json:"transaction_date"`
	Amount          float64 `json:"amount"`
	Description     *string `json:"description"`
}

// ToInput parses transaction_date, which must be YYYY-MM-DD.
func (r *TransactionRequest) ToInput() (ports.TransactionInput, error) {
	date, err := time.Parse(DateLayout, r.TransactionDate)
	if err != nil {
		return ports.TransactionInput{}, domain.NewValidationError("transaction_date", "expected YYYY-MM-DD")
	}
	return ports.TransactionInput{
		UserID:      r.UserID,
		AccountID:   r.AccountID,
		CategoryID:  r.CategoryID,
		Date:        date,
		Amount:      r.Amount,
		Description: r.Description,
	}, nil
}

// BudgetRequest is the payload for POST /budgets and PUT /budgets/:budget_id.
// UserID is ignored on update.
type BudgetRequest struct {
	UserID      int64   `json:"user_id"`
	CategoryID  int64   `json:"category_id"`
	AmountLimit float64 `json:"amount_limit"`
	BudgetMonth int     `json:"budget_month"`
	BudgetYear  int     `json:"budget_year"`
}

func (r *BudgetRequest) ToInput() ports.BudgetInput {
	return ports.BudgetInput{
		UserID:      r.UserID,
		CategoryID:  r.CategoryID,
		AmountLimit: r.AmountLimit,
		Month:       r.BudgetMonth,
		Year:        r.BudgetYear,
	}
}
