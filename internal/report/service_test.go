package report_test

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/frahmantamala/budget-tracker/internal"
	"github.com/frahmantamala/budget-tracker/internal/budget"
	"github.com/frahmantamala/budget-tracker/internal/category"
	"github.com/frahmantamala/budget-tracker/internal/core/month"
	"github.com/frahmantamala/budget-tracker/internal/expense"
	"github.com/frahmantamala/budget-tracker/internal/report"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type stubCategories struct {
	categories []*category.Category
	err        error
}

func (s stubCategories) List(context.Context, int64) ([]*category.Category, error) {
	return s.categories, s.err
}

type stubBudgets struct {
	budgets []*budget.Budget
	err     error
	asked   *month.Month
}

func (s *stubBudgets) ListForMonth(_ context.Context, _ int64, m month.Month) ([]*budget.Budget, error) {
	s.asked = &m
	return s.budgets, s.err
}

type stubExpenses struct {
	expenses []*expense.Expense
	err      error
}

func (s stubExpenses) ListForMonth(context.Context, int64, month.Month) ([]*expense.Expense, error) {
	return s.expenses, s.err
}

var _ = Describe("Report Service", func() {
	var (
		categories stubCategories
		budgets    *stubBudgets
		expenses   stubExpenses
		slogger    *slog.Logger
	)

	BeforeEach(func() {
		categories = stubCategories{categories: []*category.Category{cat(1, "A"), cat(2, "B")}}
		budgets = &stubBudgets{budgets: []*budget.Budget{limit(1, "2024-03", "100")}}
		expenses = stubExpenses{expenses: []*expense.Expense{spent(1, "120", on(1)), spent(2, "30", on(2))}}
		slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	})

	service := func() *report.Service {
		return report.NewService(categories, budgets, expenses, slogger)
	}

	It("should load and fold the month", func() {
		r, err := service().Monthly(context.Background(), 1, "2024-03")
		Expect(err).NotTo(HaveOccurred())
		Expect(*budgets.asked).To(Equal(march))
		Expect(r.Rows).To(HaveLen(2))
		Expect(r.Summary.TotalRemaining.String()).To(Equal("-50"))
	})

	It("should reject a malformed month before loading anything", func() {
		_, err := service().Monthly(context.Background(), 1, "2024/03")
		Expect(err).To(MatchError(internal.ErrInvalidMonth))
		Expect(budgets.asked).To(BeNil())
	})

	It("should pass through application errors from a loader", func() {
		expenses.err = internal.NewInternalError("Server error while fetching monthly expenses", errors.New("boom"))
		_, err := service().Monthly(context.Background(), 1, "2024-03")
		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.Message).To(Equal("Server error while fetching monthly expenses"))
	})

	It("should wrap raw loader errors", func() {
		categories.err = errors.New("connection reset")
		_, err := service().Monthly(context.Background(), 1, "2024-03")
		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.StatusCode).To(Equal(500))
	})
})
