package types

// Category is a spending classification. The set of categories is fixed and
// shared between validation, aggregation and the categories endpoint.
type Category string

const (
	CategoryFoodDining     Category = "Food & Dining"
	CategoryTransportation Category = "Transportation"
	CategoryHousing        Category = "Housing"
	CategoryEntertainment  Category = "Entertainment"
	CategoryUtilities      Category = "Utilities"
	CategoryShopping       Category = "Shopping"
	CategoryHealthcare     Category = "Healthcare"
	CategoryEducation      Category = "Education"
	CategoryTravel         Category = "Travel"
	CategoryOther          Category = "Other"
)

// Categories returns all valid categories in display order.
func Categories() []Category {
	return []Category{
		CategoryFoodDining,
		CategoryTransportation,
		CategoryHousing,
		CategoryEntertainment,
		CategoryUtilities,
		CategoryShopping,
		CategoryHealthcare,
		CategoryEducation,
		CategoryTravel,
		CategoryOther,
	}
}

// Valid reports whether c is a member of the fixed category set.
func (c Category) Valid() bool {
	for _, category := range Categories() {
		if c == category {
			return true
		}
	}

	return false
}

func (c Category) String() string {
	return string(c)
}
