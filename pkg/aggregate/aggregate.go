// Package aggregate sums categorized transactions by category and by
// (month, category).
package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/yurifrl/bankstat/pkg/models"
)

// Totals maps a category to the sum of its transaction amounts.
type Totals map[string]decimal.Decimal

// Categories returns the categories in lexicographic order.
func (t Totals) Categories() []string {
	out := make([]string, 0, len(t))
	for category := range t {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}

// Sum returns the total over all categories.
func (t Totals) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, amount := range t {
		sum = sum.Add(amount)
	}
	return sum
}

// Row is one (month, category) line of the monthly report.
type Row struct {
	Month    string
	Category string
	Amount   decimal.Decimal
}

type monthCategory struct {
	month    string
	category string
}

// TotalsByCategory groups transactions by category and sums their amounts.
func TotalsByCategory(txns []*models.Transaction) Totals {
	totals := make(Totals)
	for _, t := range txns {
		if t == nil {
			continue
		}
		cat := categoryOf(t)
		totals[cat] = totals[cat].Add(t.Amount)
	}
	return totals
}

// MonthCategoryReport groups transactions by (month, category) and returns
// the sums ordered by month, then category.
func MonthCategoryReport(txns []*models.Transaction) []Row {
	sums := make(map[monthCategory]decimal.Decimal)
	for _, t := range txns {
		if t == nil {
			continue
		}
		key := monthCategory{month: t.Month(), category: categoryOf(t)}
		sums[key] = sums[key].Add(t.Amount)
	}
	if len(sums) == 0 {
		return nil
	}

	rows := make([]Row, 0, len(sums))
	for key, amount := range sums {
		rows = append(rows, Row{Month: key.month, Category: key.category, Amount: amount})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Month != rows[j].Month {
			return rows[i].Month < rows[j].Month
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}

// SumRows returns the total over all report rows.
func SumRows(rows []Row) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range rows {
		sum = sum.Add(r.Amount)
	}
	return sum
}

// categoryOf falls back to models.Other for transactions that never went
// through the categorizer.
func categoryOf(t *models.Transaction) string {
	if t.Category == "" {
		return models.Other
	}
	return t.Category
}
