package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Jeffrey-mu/weight-loss/models"
)

type DietService struct {
	db *gorm.DB
}

func NewDietService(db *gorm.DB) *DietService {
	return &DietService{db: db}
}

// List returns the user's diet records newest first; a non-nil date
// narrows to that calendar day.
func (s *DietService) List(ctx context.Context, userID uint, date *time.Time) ([]models.DietRecord, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if date != nil {
		start, end := dayRange(*date)
		query = query.Where("date >= ? AND date < ?", start, end)
	}

	var records []models.DietRecord
	err := query.Order("date DESC").Find(&records).Error
	return records, err
}

type DietInput struct {
	Date     time.Time
	Type     models.MealType
	FoodName string
	Amount   *float64
	Calories float64
}

func (s *DietService) Create(ctx context.Context, userID uint, in DietInput) (*models.DietRecord, error) {
	if in.FoodName == "" {
		return nil, &ValidationError{Msg: "foodName is required"}
	}

	record := &models.DietRecord{
		UserID:   userID,
		Date:     in.Date,
		Type:     in.Type,
		FoodName: in.FoodName,
		Amount:   in.Amount,
		Calories: in.Calories,
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

type DietUpdate struct {
	Date     *time.Time
	Type     *models.MealType
	FoodName *string
	Amount   *float64
	Calories *float64
}

func (s *DietService) Update(ctx context.Context, userID, id uint, in DietUpdate) (*models.DietRecord, error) {
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
	if in.FoodName != nil {
		record.FoodName = *in.FoodName
	}
	if in.Amount != nil {
		record.Amount = in.Amount
	}
	if in.Calories != nil {
		record.Calories = *in.Calories
	}

	if err := s.db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (s *DietService) Delete(ctx context.Context, userID, id uint) error {
	record, err := s.owned(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(record).Error
}

func (s *DietService) owned(ctx context.Context, userID, id uint) (*models.DietRecord, error) {
	var record models.DietRecord
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
