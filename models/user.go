package models

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the credential record behind every account. Email and Phone
// are pointers so a user registered with a single identifier does not
// collide with other NULL rows under the unique indexes.
type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Email        *string `gorm:"uniqueIndex" json:"email"`
	Phone        *string `gorm:"uniqueIndex" json:"phone"`
	PasswordHash string  `gorm:"not null" json:"-"`
	Nickname     string  `json:"nickname"`

	Gender        string     `json:"gender"`
	Age           *int       `json:"age"`
	Height        *float64   `json:"height"`
	InitialWeight *float64   `json:"initialWeight"`
	TargetWeight  *float64   `json:"targetWeight"`
	TargetDate    *time.Time `json:"targetDate"`
	Avatar        string     `json:"avatar"`

	Role      Role      `gorm:"type:varchar(16);not null;default:user" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
