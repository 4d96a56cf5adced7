// Package report folds a month of categories, budgets and expenses into a spending-vs-budget report.
package report

import (
	"github.com/frahmantamala/budget-tracker/internal/budget"
	"github.com/frahmantamala/budget-tracker/internal/category"
	"github.com/frahmantamala/budget-tracker/internal/core/money"
	"github.com/frahmantamala/budget-tracker/internal/core/month"
	"github.com/frahmantamala/budget-tracker/internal/expense"
	"github.com/shopspring/decimal"
)

// Row compares one category's spend with its budget. Amounts are rounded.
type Row struct {
	Category     category.CategoryRef
	Spent        decimal.Decimal
	Budget       decimal.Decimal
	Remaining    decimal.Decimal
	IsOverBudget bool
}

type Summary struct {
	TotalSpent          decimal.Decimal
	TotalBudget         decimal.Decimal
	TotalRemaining      decimal.Decimal
	IsOverallOverBudget bool
}

type MonthlyReport struct {
	Month    month.Month
	Rows     []Row
	Summary  Summary
	Expenses []*expense.Expense
}

// Build has one row per category, in the order given, including categories with no spend or budget.
// A missing budget counts as zero. Expenses outside the month or with no matching category
// contribute to no row but are still returned.
func Build(m month.Month, categories []*category.Category, budgets []*budget.Budget, expenses []*expense.Expense) MonthlyReport {
	limits := make(map[int64]decimal.Decimal, len(budgets))
	for _, b := range budgets {
		if b.Month == m.String() {
			limits[b.CategoryID] = b.Amount
		}
	}

	spent := make(map[int64]decimal.Decimal, len(categories))
	for _, e := range expenses {
		if !m.Contains(e.Date) {
			continue
		}
		spent[e.CategoryID] = spent[e.CategoryID].Add(e.Amount)
	}

	report := MonthlyReport{
		Month:    m,
		Rows:     make([]Row, 0, len(categories)),
		Expenses: expenses,
		Summary: Summary{
			TotalSpent:     decimal.Zero,
			TotalBudget:    decimal.Zero,
			TotalRemaining: decimal.Zero,
		},
	}
	if report.Expenses == nil {
		report.Expenses = []*expense.Expense{}
	}

	for _, c := range categories {
		s := spent[c.ID]
		l := limits[c.ID]
		row := Row{
			Category:  category.CategoryRef{ID: c.ID, Name: c.Name, Color: c.Color},
			Spent:     money.Round(s),
			Budget:    money.Round(l),
			Remaining: money.Round(l.Sub(s)),
		}
		row.IsOverBudget = row.Remaining.IsNegative()
		report.Rows = append(report.Rows, row)

		report.Summary.TotalSpent = report.Summary.TotalSpent.Add(row.Spent)
		report.Summary.TotalBudget = report.Summary.TotalBudget.Add(row.Budget)
		report.Summary.TotalRemaining = report.Summary.TotalRemaining.Add(row.Remaining)
	}
	report.Summary.IsOverallOverBudget = report.Summary.TotalRemaining.IsNegative()

	return report
}
