package rest

import (
	"net/http"

	"github.com/frahmantamala/budget-tracker/internal/auth"
	"github.com/frahmantamala/budget-tracker/internal/budget"
	"github.com/frahmantamala/budget-tracker/internal/category"
	"github.com/frahmantamala/budget-tracker/internal/expense"
	"github.com/frahmantamala/budget-tracker/internal/report"
	"github.com/frahmantamala/budget-tracker/internal/transport/middleware"
	"github.com/frahmantamala/budget-tracker/internal/transport/swagger"
	"github.com/go-chi/chi"
)

// Handlers are the route targets. A nil domain handler leaves its routes unregistered.
type Handlers struct {
	Health   *HealthHandler
	Auth     *auth.Handler
	Guard    *auth.Guard
	Category *category.Handler
	Expense  *expense.Handler
	Budget   *budget.Handler
	Report   *report.Handler
	// OpenAPI is the raw document served at /openapi.yml.
	OpenAPI []byte
}

func NewRouter(h Handlers) *chi.Mux {
	router := chi.NewRouter()
	RegisterAllRoutes(router, h)
	return router
}

func RegisterAllRoutes(router *chi.Mux, h Handlers) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recovery)

	if len(h.OpenAPI) > 0 {
		router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/yaml")
			_, _ = w.Write(h.OpenAPI)
		})
		router.Handle("/swagger/*", swagger.Handler())
	}

	router.Route("/api", func(r chi.Router) {
		if h.Health != nil {
			r.Get("/health", h.Health.Liveness)
			r.Get("/health/ready", h.Health.Readiness)
		}

		if h.Auth != nil {
			r.Post("/auth/register", h.Auth.Register)
			r.Post("/auth/login", h.Auth.Login)
		}

		if h.Guard == nil {
			return
		}

		r.Group(func(pr chi.Router) {
			pr.Use(h.Guard.Middleware)

			if h.Auth != nil {
				pr.Get("/auth/me", h.Auth.Me)
			}

			if h.Category != nil {
				pr.Route("/categories", func(cr chi.Router) {
					cr.Get("/", h.Category.GetCategories)
					cr.Post("/", h.Category.CreateCategory)
					cr.Put("/{id}", h.Category.UpdateCategory)
					cr.Delete("/{id}", h.Category.DeleteCategory)
				})
			}

			if h.Expense != nil {
				pr.Route("/expenses", func(er chi.Router) {
					er.Get("/", h.Expense.GetUserExpenses)
					er.Post("/", h.Expense.CreateExpense)
					er.Get("/month/{month}", h.Expense.GetExpensesByMonth)
				})
			}

			if h.Budget != nil {
				pr.Route("/budgets", func(br chi.Router) {
					br.Post("/", h.Budget.SetBudget)
					br.Get("/month/{month}", h.Budget.GetBudgetsByMonth)
				})
			}

			if h.Report != nil {
				pr.Get("/reports/monthly/{month}", h.Report.GetMonthlyReport)
			}
		})
	})
}
