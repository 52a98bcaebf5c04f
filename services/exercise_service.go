package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Jeffrey-mu/weight-loss/models"
)

type ExerciseService struct {
	db *gorm.DB
}

func NewExerciseService(db *gorm.DB) *ExerciseService {
	return &ExerciseService{db: db}
}

func (s *ExerciseService) List(ctx context.Context, userID uint, date *time.Time) ([]models.ExerciseRecord, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if date != nil {
		start, end := dayRange(*date)
		query = query.Where("date >= ? AND date < ?", start, end)
	}

	var records []models.ExerciseRecord
	err := query.Order("date DESC").Find(&records).Error
	return records, err
}

type ExerciseInput struct {
	Date     time.Time
	Type     string
	Duration float64
	Calories float64
}

func (s *ExerciseService) Create(ctx context.Context, userID uint, in ExerciseInput) (*models.ExerciseRecord, error) {
	if in.Type == "" {
		return nil, &ValidationError{Msg: "type is required"}
	}

	record := &models.ExerciseRecord{
		UserID:   userID,
		Date:     in.Date,
		Type:     in.Type,
		Duration: in.Duration,
		Calories: in.Calories,
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

type ExerciseUpdate struct {
	Date     *time.Time
	Type     *string
	Duration *float64
	Calories *float64
}

func (s *ExerciseService) Update(ctx context.Context, userID, id uint, in ExerciseUpdate) (*models.ExerciseRecord, error) {
	record, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if in.Date != nil {
		record.Date = *in.Date
	}
	if in.Type != nil {
		record.Type = *in.Type
	}
	if in.Duration != nil {
		record.Duration = *in.Duration
	}
	if in.Calories != nil {
		record.Calories = *in.Calories
	}

	if err := s.db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (s *ExerciseService) Delete(ctx context.Context, userID, id uint) error {
	record, err := s.owned(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(record).Error
}

func (s *ExerciseService) owned(ctx context.Context, userID, id uint) (*models.ExerciseRecord, error) {
	var record models.ExerciseRecord
	err := s.db.WithContext(ctx).First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if record.UserID != userID {
		return nil, ErrNotOwner
	}
	return &record, nil
}
