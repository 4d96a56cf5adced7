package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/budget-tracker/api"
	"github.com/frahmantamala/budget-tracker/internal"
	"github.com/frahmantamala/budget-tracker/internal/auth"
	"github.com/frahmantamala/budget-tracker/internal/budget"
	budgetPostgres "github.com/frahmantamala/budget-tracker/internal/budget/postgres"
	"github.com/frahmantamala/budget-tracker/internal/category"
	categoryPostgres "github.com/frahmantamala/budget-tracker/internal/category/postgres"
	"github.com/frahmantamala/budget-tracker/internal/expense"
	expensePostgres "github.com/frahmantamala/budget-tracker/internal/expense/postgres"
	"github.com/frahmantamala/budget-tracker/internal/report"
	"github.com/frahmantamala/budget-tracker/internal/transport"
	"github.com/frahmantamala/budget-tracker/internal/transport/openapi"
	"github.com/frahmantamala/budget-tracker/internal/transport/rest"
	"github.com/frahmantamala/budget-tracker/internal/user"
	userPostgres "github.com/frahmantamala/budget-tracker/internal/user/postgres"
	"github.com/go-chi/chi"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// Services are the domain services built over one database.
type Services struct {
	Tokens     *auth.TokenService
	Users      *user.Service
	Auth       *auth.Service
	Categories *category.Service
	Budgets    *budget.Service
	Expenses   *expense.Service
	Reports    *report.Service
}

func NewServices(cfg *internal.Config, gdb *gorm.DB, sdb *sqlx.DB, lg *slog.Logger) (*Services, error) {
	tokens, err := auth.NewTokenService(cfg.Security)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	users := user.NewService(userPostgres.NewUserRepository(gdb), lg)
	categories := category.NewService(categoryPostgres.NewCategoryRepository(gdb), lg)
	budgets := budget.NewService(budgetPostgres.NewBudgetRepository(gdb), categories, lg)
	expenses := expense.NewService(
		expensePostgres.NewExpenseRepository(gdb),
		expensePostgres.NewSpendingRepository(sdb),
		budgets,
		categories,
		lg,
	)

	return &Services{
		Tokens:     tokens,
		Users:      users,
		Auth:       auth.NewService(users, tokens, cfg.Security, lg),
		Categories: categories,
		Budgets:    budgets,
		Expenses:   expenses,
		Reports:    report.NewService(categories, budgets, expenses, lg),
	}, nil
}

// NewRouter validates the API document and mounts every handler.
func NewRouter(ctx context.Context, svc *Services, sdb *sqlx.DB, lg *slog.Logger) (*chi.Mux, error) {
	if _, err := openapi.Load(ctx); err != nil {
		return nil, err
	}

	base := transport.NewBaseHandler(lg)
	return rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(sdb),
		Auth:     auth.NewHandler(svc.Auth),
		Guard:    auth.NewGuard(svc.Tokens, svc.Users, base),
		Category: category.NewHandler(base, svc.Categories),
		Expense:  expense.NewHandler(svc.Expenses),
		Budget:   budget.NewHandler(base, svc.Budgets),
		Report:   report.NewHandler(base, svc.Reports),
		OpenAPI:  api.Document,
	}), nil
}
