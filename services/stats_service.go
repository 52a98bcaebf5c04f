package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Jeffrey-mu/weight-loss/models"
	"github.com/Jeffrey-mu/weight-loss/utils"
)

// dayRange returns the local-midnight bounds [start, end) of the day t
// falls in.
func dayRange(t time.Time) (time.Time, time.Time) {
	tt := t.In(time.Local)
	start := time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 0, 1)
}

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

type TodayStats struct {
	Weight      *float64 `json:"weight"`
	BMI         *float64 `json:"bmi"`
	BMICategory string   `json:"bmiCategory,omitempty"`
	TotalIntake float64  `json:"totalIntake"`
	TotalBurned float64  `json:"totalBurned"`
}

// Today reports the user's latest weight of the day, calories taken in
// and calories burned. When the user has a height on file the BMI for
// today's weight is included as well.
func (s *StatsService) Today(ctx context.Context, userID uint) (*TodayStats, error) {
	start, end := dayRange(time.Now())
	db := s.db.WithContext(ctx)
	stats := &TodayStats{}

	var record models.WeightRecord
	err := db.Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date DESC").
		First(&record).Error
	switch {
	case err == nil:
		stats.Weight = &record.Weight
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	if stats.TotalIntake, err = s.sumCalories(ctx, &models.DietRecord{}, userID, start, end); err != nil {
		return nil, err
	}
	if stats.TotalBurned, err = s.sumCalories(ctx, &models.ExerciseRecord{}, userID, start, end); err != nil {
		return nil, err
	}

	if stats.Weight != nil {
		var user models.User
		if err := db.Select("height").First(&user, userID).Error; err == nil && user.Height != nil {
			if bmi, err := utils.CalculateBMI(*user.Height, *stats.Weight); err == nil {
				stats.BMI = &bmi
				stats.BMICategory = utils.BMICategory(bmi)
			}
		}
	}

	return stats, nil
}

func (s *StatsService) sumCalories(ctx context.Context, model any, userID uint, start, end time.Time) (float64, error) {
	var total float64
	err := s.db.WithContext(ctx).Model(model).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Select("COALESCE(SUM(calories), 0)").
		Scan(&total).Error
	return total, err
}
