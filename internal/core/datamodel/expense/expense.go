package expense

import (
	"time"

	categoryDatamodel "github.com/frahmantamala/budget-tracker/internal/core/datamodel/category"
	"github.com/shopspring/decimal"
)

// Expense keeps CategoryID after its category is deleted; Category is then nil on preload.
type Expense struct {
	ID          int64                       `gorm:"primaryKey"`
	UserID      int64                       `gorm:"column:user_id;not null;index:idx_expenses_user_date,priority:1"`
	CategoryID  int64                       `gorm:"column:category_id;not null;index"`
	Amount      decimal.Decimal             `gorm:"column:amount;type:numeric(12,2);not null"`
	Description string                      `gorm:"column:description;size:500;not null;default:''"`
	Date        time.Time                   `gorm:"column:date;not null;index:idx_expenses_user_date,priority:2"`
	CreatedAt   time.Time                   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time                   `gorm:"column:updated_at;autoUpdateTime"`
	Category    *categoryDatamodel.Category `gorm:"foreignKey:CategoryID"`
}
