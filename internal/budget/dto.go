package budget

import (
	"strings"
	"time"

	"github.com/frahmantamala/budget-tracker/internal/category"
	"github.com/shopspring/decimal"
)

// SetBudgetDTO is the upsert payload. Zero is a valid amount.
type SetBudgetDTO struct {
	Month    string           `json:"month" validate:"required,yearmonth"`
	Amount   *decimal.Decimal `json:"amount" validate:"required,gte=0,lte=9999999999.99"`
	Category int64            `json:"category" validate:"required,gt=0"`
}

func (d *SetBudgetDTO) Normalize() {
	d.Month = strings.TrimSpace(d.Month)
}

type BudgetResponse struct {
	ID         int64                 `json:"id"`
	Month      string                `json:"month"`
	Amount     float64               `json:"amount"`
	CategoryID int64                 `json:"categoryId"`
	Category   *category.CategoryRef `json:"category"`
	User       int64                 `json:"user"`
	CreatedAt  time.Time             `json:"createdAt"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}
