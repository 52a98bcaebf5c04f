package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Jeffrey-mu/weight-loss/models"
)

type WeightService struct {
	db *gorm.DB
}

func NewWeightService(db *gorm.DB) *WeightService {
	return &WeightService{db: db}
}

func (s *WeightService) List(ctx context.Context, userID uint) ([]models.WeightRecord, error) {
	var records []models.WeightRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&records).Error
	return records, err
}

type WeightInput struct {
	Date    time.Time
	Weight  float64
	BodyFat *float64
	Waist   *float64
	Hip     *float64
	Note    string
}

func (s *WeightService) Create(ctx context.Context, userID uint, in WeightInput) (*models.WeightRecord, error) {
	if in.Weight <= 0 {
		return nil, &ValidationError{Msg: "weight must be positive"}
	}

	record := &models.WeightRecord{
		UserID:  userID,
		Date:    in.Date,
		Weight:  in.Weight,
		BodyFat: in.BodyFat,
		Waist:   in.Waist,
		Hip:     in.Hip,
		Note:    in.Note,
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// WeightUpdate carries optional fields; nil means unchanged.
type WeightUpdate struct {
	Date    *time.Time
	Weight  *float64
	BodyFat *float64
	Waist   *float64
	Hip     *float64
	Note    *string
}

func (s *WeightService) Update(ctx context.Context, userID, id uint, in WeightUpdate) (*models.WeightRecord, error) {
	record, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if in.Date != nil {
		record.Date = *in.Date
	}
	if in.Weight != nil {
		record.Weight = *in.Weight
	}
	if in.BodyFat != nil {
		record.BodyFat = in.BodyFat
	}
	if in.Waist != nil {
		record.Waist = in.Waist
	}
	if in.Hip != nil {
		record.Hip = in.Hip
	}
	if in.Note != nil {
		record.Note = *in.Note
	}

	if err := s.db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (s *WeightService) Delete(ctx context.Context, userID, id uint) error {
	record, err := s.owned(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(record).Error
}

func (s *WeightService) owned(ctx context.Context, userID, id uint) (*models.WeightRecord, error) {
	var record models.WeightRecord
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
