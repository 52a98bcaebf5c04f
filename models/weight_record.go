package models

import "time"

type WeightRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Date      time.Time `gorm:"index;not null" json:"date"`
	Weight    float64   `gorm:"not null" json:"weight"`
	BodyFat   *float64  `json:"bodyFat"`
	Waist     *float64  `json:"waist"`
	Hip       *float64  `json:"hip"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
