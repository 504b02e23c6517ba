package categorizer

// Rule maps a lowercase keyword to the category assigned when the keyword
// occurs anywhere in a transaction description.
type Rule struct {
	Keyword  string
	Category string
}

// Rules is an ordered rule table. Earlier rules take priority.
type Rules []Rule

// DefaultRules returns a fresh copy of the built-in rule table.
func DefaultRules() Rules {
	return Rules{
		{Keyword: "whole foods", Category: "Groceries"},
		{Keyword: "walmart", Category: "Groceries"},
		{Keyword: "costco", Category: "Groceries"},
		{Keyword: "uber", Category: "Transport"},
		{Keyword: "lyft", Category: "Transport"},
		{Keyword: "netflix", Category: "Entertainment"},
		{Keyword: "spotify", Category: "Entertainment"},
		{Keyword: "shell", Category: "Gas"},
		{Keyword: "exxon", Category: "Gas"},
		{Keyword: "amazon", Category: "Shopping"},
		{Keyword: "starbucks", Category: "Dining"},
		{Keyword: "rent", Category: "Rent"},
		{Keyword: "payroll", Category: "Income"},
	}
}
