package report

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/budget-tracker/internal"
	"github.com/frahmantamala/budget-tracker/internal/budget"
	"github.com/frahmantamala/budget-tracker/internal/category"
	"github.com/frahmantamala/budget-tracker/internal/core/month"
	"github.com/frahmantamala/budget-tracker/internal/expense"
	"github.com/frahmantamala/budget-tracker/pkg/logger"
	"golang.org/x/sync/errgroup"
)

type CategoryLister interface {
	List(ctx context.Context, userID int64) ([]*category.Category, error)
}

type BudgetLister interface {
	ListForMonth(ctx context.Context, userID int64, m month.Month) ([]*budget.Budget, error)
}

type ExpenseLister interface {
	ListForMonth(ctx context.Context, userID int64, m month.Month) ([]*expense.Expense, error)
}

type Service struct {
	categories CategoryLister
	budgets    BudgetLister
	expenses   ExpenseLister
	logger     *slog.Logger
}

func NewService(categories CategoryLister, budgets BudgetLister, expenses ExpenseLister, lg *slog.Logger) *Service {
	if lg == nil {
		lg = logger.LoggerWrapper()
	}
	return &Service{
		categories: categories,
		budgets:    budgets,
		expenses:   expenses,
		logger:     lg,
	}
}

// Monthly loads the three inputs concurrently and folds them with Build.
func (s *Service) Monthly(ctx context.Context, userID int64, raw string) (*MonthlyReport, error) {
	m, err := month.Parse(raw)
	if err != nil {
		return nil, internal.ErrInvalidMonth
	}

	var (
		categories []*category.Category
		budgets    []*budget.Budget
		expenses   []*expense.Expense
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		categories, err = s.categories.List(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		budgets, err = s.budgets.ListForMonth(gctx, userID, m)
		return err
	})
	g.Go(func() (err error) {
		expenses, err = s.expenses.ListForMonth(gctx, userID, m)
		return err
	})
	if err := g.Wait(); err != nil {
		if _, ok := internal.IsAppError(err); ok {
			return nil, err
		}
		return nil, internal.NewInternalError("Server error while generating report", err)
	}

	report := Build(m, categories, budgets, expenses)
	s.logger.Debug("monthly report built",
		"user_id", userID,
		"month", m.String(),
		"categories", len(report.Rows),
		"expenses", len(report.Expenses))
	return &report, nil
}
