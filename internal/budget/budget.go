package budget

import (
	"errors"
	"time"

	"github.com/frahmantamala/budget-tracker/internal/category"
	budgetDatamodel "github.com/frahmantamala/budget-tracker/internal/core/datamodel/budget"
	"github.com/frahmantamala/budget-tracker/internal/core/money"
	"github.com/shopspring/decimal"
)

// Budget is a spending ceiling for one category in one month. (UserID, CategoryID, Month) is unique.
type Budget struct {
	ID         int64
	UserID     int64
	CategoryID int64
	Month      string
	Amount     decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Category   *category.CategoryRef
}

var ErrNotFound = errors.New("budget not found")

func NewBudget(userID, categoryID int64, month string, amount decimal.Decimal) *Budget {
	now := time.Now().UTC()
	return &Budget{
		UserID:     userID,
		CategoryID: categoryID,
		Month:      month,
		Amount:     amount,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *Budget) ToResponse() BudgetResponse {
	return BudgetResponse{
		ID:         b.ID,
		Month:      b.Month,
		Amount:     money.Float(b.Amount),
		CategoryID: b.CategoryID,
		Category:   b.Category,
		User:       b.UserID,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func ToResponses(budgets []*Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, b.ToResponse())
	}
	return out
}

func ToDataModel(b *Budget) *budgetDatamodel.Budget {
	return &budgetDatamodel.Budget{
		ID:         b.ID,
		UserID:     b.UserID,
		CategoryID: b.CategoryID,
		Month:      b.Month,
		Amount:     b.Amount,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func FromDataModel(b *budgetDatamodel.Budget) *Budget {
	return &Budget{
		ID:         b.ID,
		UserID:     b.UserID,
		CategoryID: b.CategoryID,
		Month:      b.Month,
		Amount:     b.Amount,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
		Category:   category.RefFromDataModel(b.Category),
	}
}

func FromDataModelSlice(budgets []*budgetDatamodel.Budget) []*Budget {
	result := make([]*Budget, len(budgets))
	for i, b := range budgets {
		result[i] = FromDataModel(b)
	}
	return result
}
