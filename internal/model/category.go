package model

// Category is an expense category derived from keyword matching.
type Category string

// Expense category constants. CategoryOther is the default when no
// keyword matches.
const (
	CategoryFood           Category = "food"
	CategoryTransportation Category = "transportation"
	CategoryEntertainment  Category = "entertainment"
	CategoryShopping       Category = "shopping"
	CategoryUtilities      Category = "utilities"
	CategoryHealthcare     Category = "healthcare"
	CategoryOther          Category = "other"
)
