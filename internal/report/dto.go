package report

import (
	"github.com/frahmantamala/budget-tracker/internal/category"
	"github.com/frahmantamala/budget-tracker/internal/core/money"
	"github.com/frahmantamala/budget-tracker/internal/expense"
)

type RowResponse struct {
	Category     category.CategoryRef `json:"category"`
	Spent        float64              `json:"spent"`
	Budget       float64              `json:"budget"`
	Remaining    float64              `json:"remaining"`
	IsOverBudget bool                 `json:"isOverBudget"`
}

type SummaryResponse struct {
	TotalSpent          float64 `json:"totalSpent"`
	TotalBudget         float64 `json:"totalBudget"`
	TotalRemaining      float64 `json:"totalRemaining"`
	IsOverallOverBudget bool    `json:"isOverallOverBudget"`
}

type MonthlyReportResponse struct {
	Month      string                    `json:"month"`
	ReportData []RowResponse             `json:"reportData"`
	Summary    SummaryResponse           `json:"summary"`
	Expenses   []expense.ExpenseResponse `json:"expenses"`
}

func (r MonthlyReport) ToResponse() MonthlyReportResponse {
	rows := make([]RowResponse, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, RowResponse{
			Category:     row.Category,
			Spent:        money.Float(row.Spent),
			Budget:       money.Float(row.Budget),
			Remaining:    money.Float(row.Remaining),
			IsOverBudget: row.IsOverBudget,
		})
	}
	return MonthlyReportResponse{
		Month:      r.Month.String(),
		ReportData: rows,
		Summary: SummaryResponse{
			TotalSpent:          money.Float(r.Summary.TotalSpent),
			TotalBudget:         money.Float(r.Summary.TotalBudget),
			TotalRemaining:      money.Float(r.Summary.TotalRemaining),
			IsOverallOverBudget: r.Summary.IsOverallOverBudget,
		},
		Expenses: expense.ToResponses(r.Expenses),
	}
}
