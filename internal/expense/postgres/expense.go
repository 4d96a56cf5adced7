package postgres

import (
	"context"
	"time"

	expenseDatamodel "github.com/frahmantamala/budget-tracker/internal/core/datamodel/expense"
	"github.com/frahmantamala/budget-tracker/internal/expense"
	"gorm.io/gorm"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) expense.RepositoryAPI {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	row := expense.ToDataModel(e)
	if err := r.db.WithContext(ctx).Omit("Category").Create(row).Error; err != nil {
		return err
	}
	e.ID = row.ID
	e.CreatedAt = row.CreatedAt
	e.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *ExpenseRepository) ListByOwner(ctx context.Context, userID int64) ([]*expense.Expense, error) {
	var rows []*expenseDatamodel.Expense
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Order("date DESC").Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return expense.FromDataModelSlice(rows), nil
}

func (r *ExpenseRepository) ListByOwnerBetween(ctx context.Context, userID int64, start, end time.Time) ([]*expense.Expense, error) {
	var rows []*expenseDatamodel.Expense
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND date >= ? AND date < ?", userID, start.UTC(), end.UTC()).
		Order("date DESC").Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return expense.FromDataModelSlice(rows), nil
}
