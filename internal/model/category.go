package model

// CategoryRowEmployee marks categories that identify internal staff.
const CategoryRowEmployee = 2

// Category classifies ledger transactions. Rows other than CategoryRowEmployee
// are projects that stock can be written off to.
type Category struct {
	BaseModel
	Title     string `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Row       int    `gorm:"not null;default:0" json:"row"`
	IsVisible *bool  `gorm:"default:true" json:"is_visible"`
}

// IsEmployee reports whether the category is a visible employee category.
// A missing visibility flag counts as visible.
func (c *Category) IsEmployee() bool {
	return c.Row == CategoryRowEmployee && (c.IsVisible == nil || *c.IsVisible)
}

// EmployeeCategories keeps visible employee categories in source order.
func EmployeeCategories(categories []Category) []Category {
	result := []Category{}
	for i := range categories {
		if categories[i].IsEmployee() {
			result = append(result, categories[i])
		}
	}
	return result
}

// ProjectCategories is the complement of EmployeeCategories, in source order.
func ProjectCategories(categories []Category) []Category {
	result := []Category{}
	for i := range categories {
		if !categories[i].IsEmployee() {
			result = append(result, categories[i])
		}
	}
	return result
}
