package expense

import (
	"strings"
	"time"

	"github.com/frahmantamala/budget-tracker/internal/category"
	"github.com/shopspring/decimal"
)

// CreateExpenseDTO represents the request payload for creating an expense
type CreateExpenseDTO struct {
	Amount      *decimal.Decimal `json:"amount" validate:"required,gte=0.01,lte=9999999999.99"`
	Description string           `json:"description" validate:"max=500"`
	Date        string           `json:"date" validate:"omitempty,isodate"`
	Category    int64            `json:"category" validate:"required,gt=0"`
}

func (d *CreateExpenseDTO) Normalize() {
	d.Description = strings.TrimSpace(d.Description)
	d.Date = strings.TrimSpace(d.Date)
}

type ExpenseResponse struct {
	ID          int64                 `json:"id"`
	Amount      float64               `json:"amount"`
	Description string                `json:"description"`
	Date        time.Time             `json:"date"`
	CategoryID  int64                 `json:"categoryId"`
	Category    *category.CategoryRef `json:"category"`
	User        int64                 `json:"user"`
	CreatedAt   time.Time             `json:"createdAt"`
}

type BudgetStatusResponse struct {
	IsOverBudget bool     `json:"isOverBudget"`
	TotalSpent   float64  `json:"totalSpent"`
	BudgetAmount float64  `json:"budgetAmount"`
	Remaining    *float64 `json:"remaining"`
}

type CreateExpenseResponse struct {
	Expense      ExpenseResponse      `json:"expense"`
	BudgetStatus BudgetStatusResponse `json:"budgetStatus"`
}
