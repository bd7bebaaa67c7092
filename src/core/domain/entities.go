package domain

import "time"

// User is a registered person. Password is stored as submitted and never
// serialized back to clients.
type User struct {
	ID        int64     `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Created   time.Time `json:"created"`
}

// Account is a money container owned by a user (checking, savings, card...).
type Account struct {
	ID             int64   `json:"account_id"`
	UserID         int64   `json:"user_id"`
	Name           string  `json:"account_name"`
	Type           string  `json:"account_type"`
	CurrentBalance float64 `json:"current_balance"`
}

// CategoryType separates income from expense categories.
type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
)

// Category classifies transactions and budgets. Categories are shared by
// all users.
type Category struct {
	ID   int64        `json:"category_id"`
	Name string       `json:"category_name"`
	Type CategoryType `json:"category_type"`
}

// Transaction is a single movement of money on an account.
type Transaction struct {
	ID          int64     `json:"transaction_id"`
	UserID      int64     `json:"user_id"`
	AccountID   int64     `json:"account_id"`
	CategoryID  int64     `json:"category_id"`
	Date        time.Time `json:"transaction_date"`
	Amount      float64   `json:"amount"`
	Description *string   `json:"description"`
}

// Budget caps spending for a category in one calendar month.
type Budget struct {
	ID          int64   `json:"budget_id"`
	UserID      int64   `json:"user_id"`
	CategoryID  int64   `json:"category_id"`
	AmountLimit float64 `json:"amount_limit"`
	Month       int     `json:"budget_month"`
	Year        int     `json:"budget_year"`
}

// BudgetPeriod narrows a budget listing to one month. A nil period lists all.
type BudgetPeriod struct {
	Month int
	Year  int
}
