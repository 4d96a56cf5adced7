package expense

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/frahmantamala/budget-tracker/internal"
	"github.com/frahmantamala/budget-tracker/internal/category"
	"github.com/frahmantamala/budget-tracker/internal/core/common/validation"
	"github.com/frahmantamala/budget-tracker/internal/core/month"
	"github.com/frahmantamala/budget-tracker/pkg/logger"
	"github.com/shopspring/decimal"
)

type RepositoryAPI interface {
	Create(ctx context.Context, e *Expense) error
	// ListByOwner returns the owner's expenses newest first.
	ListByOwner(ctx context.Context, userID int64) ([]*Expense, error)
	// ListByOwnerBetween returns expenses dated in [start, end), newest first.
	ListByOwnerBetween(ctx context.Context, userID int64, start, end time.Time) ([]*Expense, error)
}

// SpendingReader sums recorded spend. It is re-queried on every expense, nothing is cached.
type SpendingReader interface {
	TotalForCategory(ctx context.Context, userID, categoryID int64, start, end time.Time) (decimal.Decimal, error)
}

// BudgetLookup returns the budget amount for a category and month, or nil when none is set.
type BudgetLookup interface {
	AmountFor(ctx context.Context, userID, categoryID int64, month string) (*decimal.Decimal, error)
}

type CategoryLookup interface {
	Owned(ctx context.Context, userID, id int64) (*category.Category, error)
}

type Service struct {
	repo       RepositoryAPI
	spending   SpendingReader
	budgets    BudgetLookup
	categories CategoryLookup
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, spending SpendingReader, budgets BudgetLookup, categories CategoryLookup, lg *slog.Logger) *Service {
	if lg == nil {
		lg = logger.LoggerWrapper()
	}
	return &Service{
		repo:       repo,
		spending:   spending,
		budgets:    budgets,
		categories: categories,
		logger:     lg,
	}
}

// CreateExpense records the expense and reports how the category's month now compares with its budget.
// Exceeding the budget never blocks the write.
func (s *Service) CreateExpense(ctx context.Context, userID int64, dto CreateExpenseDTO) (*Expense, *BudgetStatus, error) {
	dto.Normalize()
	if appErr := validation.Struct(dto); appErr != nil {
		return nil, nil, appErr
	}

	var date time.Time
	if dto.Date != "" {
		parsed, err := validation.ParseDate(dto.Date)
		if err != nil {
			return nil, nil, internal.NewValidationFieldError("date", "Please provide a valid date", dto.Date)
		}
		date = parsed
	}

	cat, err := s.categories.Owned(ctx, userID, dto.Category)
	if err != nil {
		if errors.Is(err, internal.ErrCategoryNotFound) {
			return nil, nil, internal.NewValidationFieldError("category", "Category not found", dto.Category)
		}
		return nil, nil, internal.NewInternalError("Server error while adding expense", err)
	}

	e := NewExpense(userID, cat.ID, *dto.Amount, dto.Description, date)
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, nil, internal.NewInternalError("Server error while adding expense", err)
	}
	e.Category = &category.CategoryRef{ID: cat.ID, Name: cat.Name, Color: cat.Color}

	s.logger.Info("expense created",
		"expense_id", e.ID,
		"user_id", userID,
		"category_id", cat.ID,
		"amount", e.Amount.String())

	status, err := s.budgetStatus(ctx, e)
	if err != nil {
		return nil, nil, internal.NewInternalError("Server error while adding expense", err)
	}
	return e, status, nil
}

func (s *Service) budgetStatus(ctx context.Context, e *Expense) (*BudgetStatus, error) {
	m := month.Of(e.Date)
	start, end := m.Window()

	total, err := s.spending.TotalForCategory(ctx, e.UserID, e.CategoryID, start, end)
	if err != nil {
		return nil, err
	}

	amount, err := s.budgets.AmountFor(ctx, e.UserID, e.CategoryID, m.String())
	if err != nil {
		return nil, err
	}

	status := NewBudgetStatus(total, amount)
	if status.IsOverBudget {
		s.logger.Info("category over budget", "user_id", e.UserID, "category_id", e.CategoryID, "month", m.String())
	}
	return &status, nil
}

func (s *Service) GetUserExpenses(ctx context.Context, userID int64) ([]*Expense, error) {
	expenses, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, internal.NewInternalError("Server error while fetching expenses", err)
	}
	return expenses, nil
}

// GetExpensesByMonth validates raw as YYYY-MM and lists that month's expenses.
func (s *Service) GetExpensesByMonth(ctx context.Context, userID int64, raw string) ([]*Expense, error) {
	m, err := month.Parse(raw)
	if err != nil {
		return nil, internal.ErrInvalidMonth
	}
	return s.ListForMonth(ctx, userID, m)
}

func (s *Service) ListForMonth(ctx context.Context, userID int64, m month.Month) ([]*Expense, error) {
	start, end := m.Window()
	expenses, err := s.repo.ListByOwnerBetween(ctx, userID, start, end)
	if err != nil {
		return nil, internal.NewInternalError("Server error while fetching monthly expenses", err)
	}
	return expenses, nil
}
