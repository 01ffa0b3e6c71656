// Package classification provides keyword-driven expense categorization and
// financial input validation.
package classification

import (
	"strings"

	"github.com/harperdean/pocketwise/internal/model"
)

// CategoryKeywords pairs a category with the keywords that trigger it.
type CategoryKeywords struct {
	Category model.Category
	Keywords []string
}

// Classifier maps free text to an expense category by substring matching
// against a fixed, ordered keyword table. The first category with a hit
// wins; iteration order is the table order.
type Classifier struct {
	table []CategoryKeywords
}

// NewClassifier creates a classifier with the given keyword table. Passing
// nil uses the default table.
func NewClassifier(table []CategoryKeywords) *Classifier {
	if table == nil {
		table = DefaultKeywords()
	}
	return &Classifier{table: table}
}

// Categorize returns the first category whose keyword set has a hit in the
// lower-cased text, or CategoryOther when nothing matches. It never fails.
func (c *Classifier) Categorize(text string) model.Category {
	textLower := strings.ToLower(text)

	for _, entry := range c.table {
		for _, keyword := range entry.Keywords {
			if strings.Contains(textLower, keyword) {
				return entry.Category
			}
		}
	}

	return model.CategoryOther
}
