package types

// Category groups formulas for browsing. Categories are static metadata and
// are not searchable content.
type Category struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Icon          string   `json:"icon"`
	Description   string   `json:"description"`
	Color         string   `json:"color"`
	Subcategories []string `json:"subcategories,omitempty"`
}

// HasSubcategory reports whether label is one of the category's subcategories.
func (c Category) HasSubcategory(label string) bool {
	for _, s := range c.Subcategories {
		if s == label {
			return true
		}
	}
	return false
}
