package budget_test

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
	"github.com/frahmantamala/budget-tracker/internal/testdb"
	"github.com/frahmantamala/budget-tracker/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Budget Handler Integration", func() {
	var (
		router http.Handler
		owner  int64
		foodID int64
	)

	BeforeEach(func() {
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err := testdb.Open()
		Expect(err).NotTo(HaveOccurred())
		owner, err = testdb.SeedUser(db, "owner@example.com")
		Expect(err).NotTo(HaveOccurred())

		categories := category.NewService(categoryPostgres.NewCategoryRepository(db), slogger)
		food, err := categories.Create(context.Background(), owner, category.CreateCategoryDTO{Name: "Food"})
		Expect(err).NotTo(HaveOccurred())
		foodID = food.ID

		service := budget.NewService(budgetPostgres.NewBudgetRepository(db), categories, slogger)
		handler := budget.NewHandler(&transport.BaseHandler{Logger: slogger}, service)

		r := chi.NewRouter()
		r.Post("/budgets", handler.SetBudget)
		r.Get("/budgets/month/{month}", handler.GetBudgetsByMonth)
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

	setBody := func(amount string) string {
		return `{"month":"2024-03","amount":` + amount + `,"category":` + strconv.FormatInt(foodID, 10) + `}`
	}

	It("should upsert and return 200 with the category", func() {
		w := do(http.MethodPost, "/budgets", setBody("100"))
		Expect(w.Code).To(Equal(http.StatusOK))

		w = do(http.MethodPost, "/budgets", setBody("125.5"))
		Expect(w.Code).To(Equal(http.StatusOK))

		var b budget.BudgetResponse
		Expect(json.NewDecoder(w.Body).Decode(&b)).To(Succeed())
		Expect(b.Amount).To(Equal(125.5))
		Expect(b.Category.Name).To(Equal("Food"))

		w = do(http.MethodGet, "/budgets/month/2024-03", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		var list []budget.BudgetResponse
		Expect(json.NewDecoder(w.Body).Decode(&list)).To(Succeed())
		Expect(list).To(HaveLen(1))
	})

	It("should return 400 with field errors for a bad payload", func() {
		w := do(http.MethodPost, "/budgets", `{"month":"03-2024","amount":-5}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var body internal.ErrorBody
		Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
		Expect(body.Message).To(Equal("Validation failed"))
		Expect(body.Errors).To(HaveLen(3))
	})

	It("should return 400 for a malformed month in the path", func() {
		w := do(http.MethodGet, "/budgets/month/2024-3", "")
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})
})
