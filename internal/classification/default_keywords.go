package classification

import "github.com/harperdean/pocketwise/internal/model"

// DefaultKeywords returns the default ordered expense keyword table.
// Earlier entries take priority when a text matches multiple categories.
func DefaultKeywords() []CategoryKeywords {
	return []CategoryKeywords{
		{
			Category: model.CategoryFood,
			Keywords: []string{"restaurant", "grocery", "food", "dining", "coffee", "lunch", "dinner"},
		},
		{
			Category: model.CategoryTransportation,
			Keywords: []string{"gas", "uber", "taxi", "bus", "train", "parking", "car"},
		},
		{
			Category: model.CategoryEntertainment,
			Keywords: []string{"movie", "concert", "game", "entertainment", "streaming"},
		},
		{
			Category: model.CategoryShopping,
			Keywords: []string{"amazon", "store", "mall", "shopping", "clothes", "electronics"},
		},
		{
			Category: model.CategoryUtilities,
			Keywords: []string{"electric", "water", "internet", "phone", "utility"},
		},
		{
			Category: model.CategoryHealthcare,
			Keywords: []string{"doctor", "hospital", "pharmacy", "medical", "dentist"},
		},
	}
}
