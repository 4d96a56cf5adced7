package postgres

import (
	"context"
	"time"

	"github.com/frahmantamala/budget-tracker/internal/expense"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// SpendingRepository runs the aggregate queries over the expenses table with sqlx.
type SpendingRepository struct {
	db *sqlx.DB
}

func NewSpendingRepository(db *sqlx.DB) expense.SpendingReader {
	return &SpendingRepository{db: db}
}

const totalForCategoryQuery = `
SELECT COALESCE(SUM(amount), 0)
FROM expenses
WHERE user_id = ? AND category_id = ? AND date >= ? AND date < ?`

func (r *SpendingRepository) TotalForCategory(ctx context.Context, userID, categoryID int64, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := r.db.Rebind(totalForCategoryQuery)
	if err := r.db.GetContext(ctx, &total, query, userID, categoryID, start.UTC(), end.UTC()); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
