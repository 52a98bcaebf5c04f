package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Jeffrey-mu/weight-loss/models"
)

type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

type RecordCounts struct {
	Weight   int64 `json:"weight"`
	Diet     int64 `json:"diet"`
	Exercise int64 `json:"exercise"`
}

type Overview struct {
	UserCount   int64        `json:"userCount"`
	RecordCount RecordCounts `json:"recordCount"`
}

func (s *AdminService) Overview(ctx context.Context) (*Overview, error) {
	db := s.db.WithContext(ctx)
	var o Overview

	counts := []struct {
		model any
		dst   *int64
	}{
		{&models.User{}, &o.UserCount},
		{&models.WeightRecord{}, &o.RecordCount.Weight},
		{&models.DietRecord{}, &o.RecordCount.Diet},
		{&models.ExerciseRecord{}, &o.RecordCount.Exercise},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return &o, nil
}

// UserSummary is the admin-console projection of a user; it never
// carries the password hash.
type UserSummary struct {
	ID            uint         `json:"id"`
	Email         *string      `json:"email"`
	Phone         *string      `json:"phone"`
	Nickname      string       `json:"nickname"`
	Gender        string       `json:"gender"`
	Age           *int         `json:"age"`
	Height        *float64     `json:"height"`
	InitialWeight *float64     `json:"initialWeight"`
	TargetWeight  *float64     `json:"targetWeight"`
	TargetDate    *time.Time   `json:"targetDate"`
	Role          models.Role  `json:"role"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
	Records       RecordCounts `json:"records"`
}

// ListUsers returns all users, newest first, with their per-table
// record counts. A non-empty q narrows by email/phone/nickname
// substring.
func (s *AdminService) ListUsers(ctx context.Context, q string) ([]UserSummary, error) {
	db := s.db.WithContext(ctx)

	query := db.Model(&models.User{}).Order("created_at DESC")
	if q != "" {
		like := "%" + q + "%"
		query = query.Where(
			"email LIKE ? OR phone LIKE ? OR nickname LIKE ?",
			like, like, like,
		)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}

	weight, err := countsByUser(db, &models.WeightRecord{})
	if err != nil {
		return nil, err
	}
	diet, err := countsByUser(db, &models.DietRecord{})
	if err != nil {
		return nil, err
	}
	exercise, err := countsByUser(db, &models.ExerciseRecord{})
	if err != nil {
		return nil, err
	}

	summaries := make([]UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, UserSummary{
			ID:            u.ID,
			Email:         u.Email,
			Phone:         u.Phone,
			Nickname:      u.Nickname,
			Gender:        u.Gender,
			Age:           u.Age,
			Height:        u.Height,
			InitialWeight: u.InitialWeight,
			TargetWeight:  u.TargetWeight,
			TargetDate:    u.TargetDate,
			Role:          u.Role,
			CreatedAt:     u.CreatedAt,
			UpdatedAt:     u.UpdatedAt,
			Records: RecordCounts{
				Weight:   weight[u.ID],
				Diet:     diet[u.ID],
				Exercise: exercise[u.ID],
			},
		})
	}
	return summaries, nil
}

func countsByUser(db *gorm.DB, model any) (map[uint]int64, error) {
	var rows []struct {
		UserID uint
		N      int64
	}
	err := db.Model(model).
		Select("user_id, COUNT(*) AS n").
		Group("user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.UserID] = r.N
	}
	return counts, nil
}

// UpdateRole sets the target user's role. Admins cannot change their
// own role.
func (s *AdminService) UpdateRole(ctx context.Context, actorID, targetID uint, role models.Role) error {
	if !role.Valid() {
		return &ValidationError{Msg: "invalid role"}
	}
	if targetID == actorID {
		return &ValidationError{Msg: "cannot change own role"}
	}

	db := s.db.WithContext(ctx)
	if err := db.Select("id").First(&models.User{}, targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return db.Model(&models.User{}).
		Where("id = ?", targetID).
		Update("role", role).Error
}

// DeleteUser removes the user and every record they own in one
// transaction; a failure anywhere rolls the whole removal back. Admins
// cannot delete themselves.
func (s *AdminService) DeleteUser(ctx context.Context, actorID, targetID uint) error {
	if targetID == actorID {
		return &ValidationError{Msg: "cannot delete current admin user"}
	}

	db := s.db.WithContext(ctx)
	if err := db.Select("id").First(&models.User{}, targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", targetID).Delete(&models.WeightRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", targetID).Delete(&models.DietRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", targetID).Delete(&models.ExerciseRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, targetID).Error
	})
}
