package postgres

import (
	"context"
	"errors"

	"github.com/frahmantamala/budget-tracker/internal/budget"
	budgetDatamodel "github.com/frahmantamala/budget-tracker/internal/core/datamodel/budget"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BudgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) budget.RepositoryAPI {
	return &BudgetRepository{db: db}
}

// Upsert relies on idx_budgets_user_category_month so concurrent sets never create a second row.
func (r *BudgetRepository) Upsert(ctx context.Context, b *budget.Budget) (*budget.Budget, error) {
	row := budget.ToDataModel(b)
	err := r.db.WithContext(ctx).
		Omit("Category").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "category_id"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
		}).
		Create(row).Error
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, b.UserID, b.CategoryID, b.Month)
}

func (r *BudgetRepository) ListByMonth(ctx context.Context, userID int64, month string) ([]*budget.Budget, error) {
	var rows []*budgetDatamodel.Budget
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND month = ?", userID, month).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return budget.FromDataModelSlice(rows), nil
}

func (r *BudgetRepository) Get(ctx context.Context, userID, categoryID int64, month string) (*budget.Budget, error) {
	var row budgetDatamodel.Budget
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND category_id = ? AND month = ?", userID, categoryID, month).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, budget.ErrNotFound
		}
		return nil, err
	}
	return budget.FromDataModel(&row), nil
}
