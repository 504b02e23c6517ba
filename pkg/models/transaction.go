package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// Uncategorized is the category of a transaction before categorization runs.
	Uncategorized = "Uncategorized"
	// Other is assigned when no keyword rule matches.
	Other = "Other"
)

// MonthLayout formats a date as YYYY-MM.
const MonthLayout = "2006-01"

// Transaction represents one bank ledger entry. Negative amounts are debits.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    string
}

func NewTransaction(date time.Time, description string, amount decimal.Decimal) *Transaction {
	return &Transaction{
		Date:        date,
		Description: description,
		Amount:      amount,
		Category:    Uncategorized,
	}
}

// Month returns the YYYY-MM month the transaction belongs to.
func (t *Transaction) Month() string {
	return t.Date.Format(MonthLayout)
}
