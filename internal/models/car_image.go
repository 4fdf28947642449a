package models

type CarImage struct {
	ID        int64  `json:"id" gorm:"primaryKey"`
	CarID     int64  `json:"car_id"`
	ImageURL  string `json:"image_url"`
	SortOrder int    `json:"sort_order"`
}

func (CarImage) TableName() string {
	return "car_images"
}
