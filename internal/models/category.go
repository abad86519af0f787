package models

// Category is a closed transaction category code. The set is fixed at deploy
// time; stored values are validated against it at the API boundary.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryUtilities     Category = "utilities"
	CategoryEntertainment Category = "entertainment"
	CategoryHealth        Category = "health"
	CategoryShopping      Category = "shopping"
	CategoryOther         Category = "other"
)

type CategoryChoice struct {
	Value Category `json:"value"`
	Label string   `json:"label"`
}

var categoryChoices = []CategoryChoice{
	{CategoryFood, "Food & Groceries"},
	{CategoryTransport, "Transport"},
	{CategoryUtilities, "Utilities"},
	{CategoryEntertainment, "Entertainment"},
	{CategoryHealth, "Health"},
	{CategoryShopping, "Shopping"},
	{CategoryOther, "Other"},
}

// Categories returns the registry in its fixed display order.
func Categories() []CategoryChoice {
	out := make([]CategoryChoice, len(categoryChoices))
	copy(out, categoryChoices)
	return out
}

func ValidCategory(c Category) bool {
	for _, ch := range categoryChoices {
		if ch.Value == c {
			return true
		}
	}
	return false
}
