package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Jeffrey-mu/weight-loss/models"
	"github.com/Jeffrey-mu/weight-loss/utils"
)

// AuthService owns registration and credential checking.
type AuthService struct {
	db   *gorm.DB
	cost int
	log  *zap.Logger
}

func NewAuthService(db *gorm.DB, bcryptCost int, log *zap.Logger) *AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthService{db: db, cost: bcryptCost, log: log}
}

type RegisterInput struct {
	Email    string
	Phone    string
	Password string
	Nickname string
}

// Register creates a new user with role "user". At least one of email
// and phone must be present; both are checked independently for
// conflicts against existing accounts.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	email := strings.TrimSpace(in.Email)
	phone := strings.TrimSpace(in.Phone)

	if email == "" && phone == "" {
		return nil, &ValidationError{Msg: "email or phone is required"}
	}
	if in.Password == "" {
		return nil, &ValidationError{Msg: "password is required"}
	}

	if email != "" {
		taken, err := s.identifierTaken(ctx, "email", email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, &ConflictError{Msg: "email already registered"}
		}
	}
	if phone != "" {
		taken, err := s.identifierTaken(ctx, "phone", phone)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, &ConflictError{Msg: "phone already registered"}
		}
	}

	hash, err := utils.HashPassword(in.Password, s.cost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		PasswordHash: hash,
		Nickname:     strings.TrimSpace(in.Nickname),
		Role:         models.RoleUser,
	}
	if email != "" {
		user.Email = &email
	}
	if phone != "" {
		user.Phone = &phone
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) identifierTaken(ctx context.Context, column, value string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where(column+" = ?", value).
		Count(&count).Error
	return count > 0, err
}

// ResolveAccount looks up the credential record a login identifier
// names. The match is exact against the email or phone column picked by
// ClassifyAccount; a miss is ErrNotFound, not a hard failure.
func (s *AuthService) ResolveAccount(ctx context.Context, account string) (*models.User, error) {
	account = strings.TrimSpace(account)
	if account == "" {
		return nil, &ValidationError{Msg: "account is required"}
	}

	column := "phone"
	if ClassifyAccount(account) == AccountEmail {
		column = "email"
	}

	var user models.User
	err := s.db.WithContext(ctx).Where(column+" = ?", account).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Login authenticates an account+password pair. Unknown accounts and
// password mismatches both come back as ErrInvalidCredentials; the
// distinction is only logged server-side.
func (s *AuthService) Login(ctx context.Context, account, password string) (*models.User, error) {
	user, err := s.ResolveAccount(ctx, account)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.Info("login rejected: unknown account",
				zap.String("account", strings.TrimSpace(account)))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.log.Info("login rejected: password mismatch", zap.Uint("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
