package models

import "time"

type ExerciseRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Date      time.Time `gorm:"index;not null" json:"date"`
	Type      string    `gorm:"not null" json:"type"`
	Duration  float64   `gorm:"not null" json:"duration"` // minutes
	Calories  float64   `gorm:"not null" json:"calories"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
