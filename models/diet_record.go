package models

import "time"

// MealType is one of breakfast, lunch, dinner or snack.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

type DietRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Date      time.Time `gorm:"index;not null" json:"date"`
	Type      MealType  `gorm:"type:varchar(16);not null" json:"type"`
	FoodName  string    `gorm:"not null" json:"foodName"`
	Amount    *float64  `json:"amount"`
	Calories  float64   `gorm:"not null" json:"calories"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
