package budget

import (
	"context"
	"errors"
	"log/slog"

	"github.com/frahmantamala/budget-tracker/internal"
	"github.com/frahmantamala/budget-tracker/internal/category"
	"github.com/frahmantamala/budget-tracker/internal/core/common/validation"
	"github.com/frahmantamala/budget-tracker/internal/core/month"
	"github.com/frahmantamala/budget-tracker/pkg/logger"
	"github.com/shopspring/decimal"
)

type RepositoryAPI interface {
	// Upsert inserts the budget or overwrites the amount of the existing (user, category, month) row,
	// and returns the stored row with its category.
	Upsert(ctx context.Context, b *Budget) (*Budget, error)
	ListByMonth(ctx context.Context, userID int64, month string) ([]*Budget, error)
	// Get returns ErrNotFound when no budget is set for the triple.
	Get(ctx context.Context, userID, categoryID int64, month string) (*Budget, error)
}

type CategoryLookup interface {
	Owned(ctx context.Context, userID, id int64) (*category.Category, error)
}

type Service struct {
	repo       RepositoryAPI
	categories CategoryLookup
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, categories CategoryLookup, lg *slog.Logger) *Service {
	if lg == nil {
		lg = logger.LoggerWrapper()
	}
	return &Service{
		repo:       repo,
		categories: categories,
		logger:     lg,
	}
}

// Set creates or replaces the budget for the category and month. Last write wins.
func (s *Service) Set(ctx context.Context, userID int64, dto SetBudgetDTO) (*Budget, error) {
	dto.Normalize()
	if appErr := validation.Struct(dto); appErr != nil {
		return nil, appErr
	}

	cat, err := s.categories.Owned(ctx, userID, dto.Category)
	if err != nil {
		if errors.Is(err, internal.ErrCategoryNotFound) {
			return nil, internal.NewValidationFieldError("category", "Category not found", dto.Category)
		}
		return nil, internal.NewInternalError("Server error while setting budget", err)
	}

	stored, err := s.repo.Upsert(ctx, NewBudget(userID, cat.ID, dto.Month, *dto.Amount))
	if err != nil {
		return nil, internal.NewInternalError("Server error while setting budget", err)
	}
	if stored.Category == nil {
		stored.Category = &category.CategoryRef{ID: cat.ID, Name: cat.Name, Color: cat.Color}
	}

	s.logger.Info("budget set",
		"budget_id", stored.ID,
		"user_id", userID,
		"category_id", cat.ID,
		"month", stored.Month,
		"amount", stored.Amount.String())
	return stored, nil
}

func (s *Service) ListByMonth(ctx context.Context, userID int64, raw string) ([]*Budget, error) {
	m, err := month.Parse(raw)
	if err != nil {
		return nil, internal.ErrInvalidMonth
	}
	return s.ListForMonth(ctx, userID, m)
}

// ListForMonth is ListByMonth for an already parsed month.
func (s *Service) ListForMonth(ctx context.Context, userID int64, m month.Month) ([]*Budget, error) {
	budgets, err := s.repo.ListByMonth(ctx, userID, m.String())
	if err != nil {
		return nil, internal.NewInternalError("Server error while fetching budgets", err)
	}
	return budgets, nil
}

// AmountFor returns the budget amount or nil when the category has none for the month.
func (s *Service) AmountFor(ctx context.Context, userID, categoryID int64, month string) (*decimal.Decimal, error) {
	b, err := s.repo.Get(ctx, userID, categoryID, month)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	amount := b.Amount
	return &amount, nil
}
