package models

// Category groups car ads (Sedan, SUV, ...).
type Category struct {
	ID       int64  `json:"id" gorm:"primaryKey" jsonschema:"example=1"`
	Name     string `json:"name" jsonschema:"example=Sedan"`
	ImageURL string `json:"image_url" jsonschema:"example=https://example.com/category.jpg"`
}

func (Category) TableName() string {
	return "categories"
}

// CreateCategoryRequest is the body of POST /categories
type CreateCategoryRequest struct {
	Name     string `json:"name" jsonschema:"required,example=SUV"`
	ImageURL string `json:"image_url" jsonschema:"required,example=https://example.com/suv.jpg"`
}
