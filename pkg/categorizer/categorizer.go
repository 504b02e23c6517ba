// Package categorizer assigns spending categories to transactions by matching
// description substrings against an ordered keyword rule table.
package categorizer

import (
	"strings"

	"github.com/yurifrl/bankstat/pkg/models"
)

type Categorizer struct {
	rules Rules
}

// New returns a Categorizer over a private copy of rules. Keywords are
// expected in lowercase.
func New(rules Rules) *Categorizer {
	return &Categorizer{
		rules: append(Rules(nil), rules...),
	}
}

// Categorize returns the category of the first rule whose keyword is
// contained in the lowercased description, or models.Other.
func (c *Categorizer) Categorize(description string) string {
	d := strings.ToLower(description)
	for _, rule := range c.rules {
		if strings.Contains(d, rule.Keyword) {
			return rule.Category
		}
	}
	return models.Other
}

// CategorizeAll sets the category of every transaction in place.
func (c *Categorizer) CategorizeAll(txns []*models.Transaction) {
	for _, t := range txns {
		t.Category = c.Categorize(t.Description)
	}
}

func (c *Categorizer) Rules() Rules {
	return append(Rules(nil), c.rules...)
}
