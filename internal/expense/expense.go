package expense

import (
	"errors"
	"strings"
	"time"

	"github.com/frahmantamala/budget-tracker/internal/category"
	expenseDatamodel "github.com/frahmantamala/budget-tracker/internal/core/datamodel/expense"
	"github.com/frahmantamala/budget-tracker/internal/core/money"
	"github.com/shopspring/decimal"
)

// Expense is immutable once recorded.
type Expense struct {
	ID          int64
	UserID      int64
	CategoryID  int64
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	// Category is nil when the referenced category has been deleted.
	Category *category.CategoryRef
}

var ErrNotFound = errors.New("expense not found")

func NewExpense(userID, categoryID int64, amount decimal.Decimal, description string, date time.Time) *Expense {
	now := time.Now().UTC()
	if date.IsZero() {
		date = now
	}
	return &Expense{
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: strings.TrimSpace(description),
		Date:        date.UTC(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (e *Expense) ToResponse() ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Amount:      money.Float(e.Amount),
		Description: e.Description,
		Date:        e.Date.UTC(),
		CategoryID:  e.CategoryID,
		Category:    e.Category,
		User:        e.UserID,
		CreatedAt:   e.CreatedAt,
	}
}

func ToResponses(expenses []*Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, e.ToResponse())
	}
	return out
}

func ToDataModel(e *Expense) *expenseDatamodel.Expense {
	return &expenseDatamodel.Expense{
		ID:          e.ID,
		UserID:      e.UserID,
		CategoryID:  e.CategoryID,
		Amount:      e.Amount,
		Description: e.Description,
		Date:        e.Date.UTC(),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func FromDataModel(e *expenseDatamodel.Expense) *Expense {
	return &Expense{
		ID:          e.ID,
		UserID:      e.UserID,
		CategoryID:  e.CategoryID,
		Amount:      e.Amount,
		Description: e.Description,
		Date:        e.Date.UTC(),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		Category:    category.RefFromDataModel(e.Category),
	}
}

func FromDataModelSlice(expenses []*expenseDatamodel.Expense) []*Expense {
	result := make([]*Expense, len(expenses))
	for i, e := range expenses {
		result[i] = FromDataModel(e)
	}
	return result
}

// BudgetStatus is the advisory feedback returned with a newly recorded expense.
type BudgetStatus struct {
	IsOverBudget bool
	TotalSpent   decimal.Decimal
	BudgetAmount decimal.Decimal
	// Remaining is nil when no budget is set for the category and month.
	Remaining *decimal.Decimal
}

// NewBudgetStatus compares the month's spend against budget, which may be nil.
func NewBudgetStatus(totalSpent decimal.Decimal, budget *decimal.Decimal) BudgetStatus {
	status := BudgetStatus{TotalSpent: totalSpent, BudgetAmount: decimal.Zero}
	if budget == nil {
		return status
	}
	remaining := budget.Sub(totalSpent)
	status.BudgetAmount = *budget
	status.Remaining = &remaining
	status.IsOverBudget = totalSpent.GreaterThan(*budget)
	return status
}

func (s BudgetStatus) ToResponse() BudgetStatusResponse {
	return BudgetStatusResponse{
		IsOverBudget: s.IsOverBudget,
		TotalSpent:   money.Float(s.TotalSpent),
		BudgetAmount: money.Float(s.BudgetAmount),
		Remaining:    money.FloatPtr(s.Remaining),
	}
}
