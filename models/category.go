package models

// MaxCategorySelection caps how many categories a plan may carry.
const MaxCategorySelection = 2

// Category is one entry of the static plan-category catalog.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Categories is the catalog shown by the category picker.
var Categories = []Category{
	{ID: 1, Name: "Earning"},
	{ID: 2, Name: "Digital"},
	{ID: 3, Name: "Art"},
	{ID: 4, Name: "Writing & Reading"},
	{ID: 5, Name: "Health & Fitness"},
	{ID: 6, Name: "Motivation & Growth"},
	{ID: 7, Name: "Hobby & Leisure"},
	{ID: 8, Name: "Language"},
}

// CategoryByID looks a category up in the catalog.
func CategoryByID(id int) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
