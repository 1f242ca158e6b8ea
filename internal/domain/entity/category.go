package entity

// Category classifies a cost item. The set is closed.
type Category string

const (
	Food      Category = "food"
	Health    Category = "health"
	Housing   Category = "housing"
	Sport     Category = "sport"
	Education Category = "education"
)

// Categories lists every category in report order.
var Categories = []Category{Food, Health, Housing, Sport, Education}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}
