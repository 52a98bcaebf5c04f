package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Jeffrey-mu/weight-loss/models"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ProfileUpdate carries optional profile fields; nil means unchanged.
type ProfileUpdate struct {
	Nickname      *string
	Gender        *string
	Age           *int
	Height        *float64
	InitialWeight *float64
	TargetWeight  *float64
	TargetDate    *time.Time
}

func (s *UserService) UpdateProfile(ctx context.Context, id uint, in ProfileUpdate) (*models.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Nickname != nil {
		user.Nickname = *in.Nickname
	}
	if in.Gender != nil {
		user.Gender = *in.Gender
	}
	if in.Age != nil {
		user.Age = in.Age
	}
	if in.Height != nil {
		user.Height = in.Height
	}
	if in.InitialWeight != nil {
		user.InitialWeight = in.InitialWeight
	}
	if in.TargetWeight != nil {
		user.TargetWeight = in.TargetWeight
	}
	if in.TargetDate != nil {
		user.TargetDate = in.TargetDate
	}

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) SetAvatar(ctx context.Context, id uint, url string) error {
	res := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("avatar", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
