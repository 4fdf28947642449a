package models

type CarAd struct {
	ID             int64   `json:"id" gorm:"primaryKey"`
	CategoryID     int64   `json:"category_id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Year           int     `json:"year"`
	Mileage        int64   `json:"mileage"`
	Color          string  `json:"color"`
	PaintCondition string  `json:"paint_condition"`
	EngineSize     float64 `json:"engine_size"`
}

func (CarAd) TableName() string {
	return "car_ads"
}

// CarListItem is one row of the car listing: the ad joined with its
// category name and primary image.
type CarListItem struct {
	ID           int64   `json:"id" jsonschema:"example=1"`
	CategoryID   int64   `json:"category_id" jsonschema:"example=1"`
	CategoryName string  `json:"category_name" jsonschema:"example=Sedan"`
	Image        *string `json:"image" jsonschema:"example=https://example.com/car.jpg"`
	Name         string  `json:"name" jsonschema:"example=Toyota Camry"`
	Price        float64 `json:"price" jsonschema:"example=24500"`
	Year         int     `json:"year" jsonschema:"example=2020"`
	Mileage      int64   `json:"mileage" jsonschema:"example=62000"`
	Color        string  `json:"color" jsonschema:"example=Oq"`
}

// CarDetail is a single ad with its gallery in display order.
type CarDetail struct {
	ID             int64    `json:"id" jsonschema:"example=1"`
	Name           string   `json:"name" jsonschema:"example=Toyota Camry"`
	Year           int      `json:"year" jsonschema:"example=2020"`
	Color          string   `json:"color" jsonschema:"example=Oq"`
	PaintCondition string   `json:"paint_condition" jsonschema:"example=Original"`
	Mileage        int64    `json:"mileage" jsonschema:"example=62000"`
	EngineSize     float64  `json:"engine_size" jsonschema:"example=2.5"`
	Images         []string `json:"images" gorm:"-"`
}
