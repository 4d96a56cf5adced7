package expense_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"

	"github.com/frahmantamala/budget-tracker/internal"
	"github.com/frahmantamala/budget-tracker/internal/budget"
	budgetPostgres "github.com/frahmantamala/budget-tracker/internal/budget/postgres"
	"github.com/frahmantamala/budget-tracker/internal/category"
	categoryPostgres "github.com/frahmantamala/budget-tracker/internal/category/postgres"
	"github.com/frahmantamala/budget-tracker/internal/expense"
	expensePostgres "github.com/frahmantamala/budget-tracker/internal/expense/postgres"
	"github.com/frahmantamala/budget-tracker/internal/testdb"
	"github.com/go-chi/chi"
	"github.com/jmoiron/sqlx"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Expense Handler Integration", func() {
	var (
		router     http.Handler
		owner      int64
		foodID     int64
		categories *category.Service
	)

	BeforeEach(func() {
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err := testdb.Open()
		Expect(err).NotTo(HaveOccurred())
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		owner, err = testdb.SeedUser(db, "owner@example.com")
		Expect(err).NotTo(HaveOccurred())

		categories = category.NewService(categoryPostgres.NewCategoryRepository(db), slogger)
		food, err := categories.Create(context.Background(), owner, category.CreateCategoryDTO{Name: "Food", Color: "#FF0000"})
		Expect(err).NotTo(HaveOccurred())
		foodID = food.ID

		budgets := budget.NewService(budgetPostgres.NewBudgetRepository(db), categories, slogger)
		_, err = budgets.Set(context.Background(), owner, budget.SetBudgetDTO{
			Month:    "2024-03",
			Amount:   amount("100"),
			Category: foodID,
		})
		Expect(err).NotTo(HaveOccurred())

		service := expense.NewService(
			expensePostgres.NewExpenseRepository(db),
			expensePostgres.NewSpendingRepository(sqlx.NewDb(sqlDB, "sqlite3")),
			budgets,
			categories,
			slogger,
		)
		handler := expense.NewHandler(service)
		handler.Logger = slogger

		r := chi.NewRouter()
		r.Post("/expenses", handler.CreateExpense)
		r.Get("/expenses", handler.GetUserExpenses)
		r.Get("/expenses/month/{month}", handler.GetExpensesByMonth)
		router = r
	})

	do := func(method, path string, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req = req.WithContext(internal.ContextWithUserID(req.Context(), owner))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	spend := func(amount, date string) expense.CreateExpenseResponse {
		body := `{"amount":` + amount + `,"date":"` + date + `","description":"groceries","category":` + strconv.FormatInt(foodID, 10) + `}`
		w := do(http.MethodPost, "/expenses", body)
		Expect(w.Code).To(Equal(http.StatusCreated))
		var resp expense.CreateExpenseResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		return resp
	}

	It("should report budget status after each expense", func() {
		first := spend("60", "2024-03-04")
		Expect(first.Expense.Category.Name).To(Equal("Food"))
		Expect(first.BudgetStatus.IsOverBudget).To(BeFalse())
		Expect(first.BudgetStatus.TotalSpent).To(Equal(60.0))
		Expect(*first.BudgetStatus.Remaining).To(Equal(40.0))

		second := spend("60.25", "2024-03-20T10:00:00Z")
		Expect(second.BudgetStatus.IsOverBudget).To(BeTrue())
		Expect(second.BudgetStatus.TotalSpent).To(Equal(120.25))
		Expect(second.BudgetStatus.BudgetAmount).To(Equal(100.0))
		Expect(*second.BudgetStatus.Remaining).To(Equal(-20.25))
	})

	It("should report a null remaining when no budget is set", func() {
		resp := spend("10", "2024-05-01")
		Expect(resp.BudgetStatus.IsOverBudget).To(BeFalse())
		Expect(resp.BudgetStatus.BudgetAmount).To(Equal(0.0))
		Expect(resp.BudgetStatus.Remaining).To(BeNil())
	})

	It("should list by month newest first", func() {
		spend("1", "2024-03-01")
		spend("2", "2024-03-31T23:59:59Z")
		spend("3", "2024-04-01")

		w := do(http.MethodGet, "/expenses/month/2024-03", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		var list []expense.ExpenseResponse
		Expect(json.NewDecoder(w.Body).Decode(&list)).To(Succeed())
		Expect(list).To(HaveLen(2))
		Expect(list[0].Amount).To(Equal(2.0))

		w = do(http.MethodGet, "/expenses", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(json.NewDecoder(w.Body).Decode(&list)).To(Succeed())
		Expect(list).To(HaveLen(3))
	})

	It("should render a deleted category as null", func() {
		spend("5", "2024-03-02")
		Expect(categories.Delete(context.Background(), owner, foodID)).To(Succeed())

		w := do(http.MethodGet, "/expenses", "")
		Expect(w.Body.String()).To(ContainSubstring(`"category":null`))
	})

	It("should return 400 for a malformed month or body", func() {
		Expect(do(http.MethodGet, "/expenses/month/2024-00", "").Code).To(Equal(http.StatusBadRequest))
		Expect(do(http.MethodPost, "/expenses", `{"amount":`).Code).To(Equal(http.StatusBadRequest))
	})
})
