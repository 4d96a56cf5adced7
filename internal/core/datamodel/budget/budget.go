package budget

import (
	"time"

	categoryDatamodel "github.com/frahmantamala/budget-tracker/internal/core/datamodel/category"
	"github.com/shopspring/decimal"
)

type Budget struct {
	ID         int64                       `gorm:"primaryKey"`
	UserID     int64                       `gorm:"column:user_id;not null;uniqueIndex:idx_budgets_user_category_month,priority:1"`
	CategoryID int64                       `gorm:"column:category_id;not null;uniqueIndex:idx_budgets_user_category_month,priority:2"`
	Month      string                      `gorm:"column:month;size:7;not null;uniqueIndex:idx_budgets_user_category_month,priority:3"`
	Amount     decimal.Decimal             `gorm:"column:amount;type:numeric(12,2);not null"`
	CreatedAt  time.Time                   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time                   `gorm:"column:updated_at;autoUpdateTime"`
	Category   *categoryDatamodel.Category `gorm:"foreignKey:CategoryID"`
}
